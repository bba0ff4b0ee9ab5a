package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/angelmondragon/storefront-backend/api/routes"
	"github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/internal/checkout"
	"github.com/angelmondragon/storefront-backend/internal/orders"
	"github.com/angelmondragon/storefront-backend/internal/products"
	"github.com/angelmondragon/storefront-backend/internal/users"
	"github.com/angelmondragon/storefront-backend/internal/wishlist"
	"github.com/angelmondragon/storefront-backend/pkg/config"
	"github.com/angelmondragon/storefront-backend/pkg/instance"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/metrics"
	"github.com/angelmondragon/storefront-backend/pkg/security"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Console:     cfg.App.ConsoleLogs(),
		Fields: map[string]string{
			"env":      cfg.App.Env,
			"instance": instance.GetID(),
		},
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	services, err := buildServices(cfg, logg, registry)
	if err != nil {
		logg.Error(context.Background(), "failed to build services", err)
		os.Exit(1)
	}

	addr := cfg.App.ListenAddr()
	ctx := logg.WithField(context.Background(), "addr", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, services, registry),
		ReadHeaderTimeout: 10 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(runCtx)
	group.Go(func() error {
		logg.Info(ctx, "starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}

func buildServices(cfg *config.Config, logg *logger.Logger, registry prometheus.Registerer) (routes.Services, error) {
	productSvc, err := products.NewService(products.NewRepository(products.DefaultCatalog()), cfg.Catalog.FeaturedLimit)
	if err != nil {
		return routes.Services{}, err
	}
	cartSvc, err := cart.NewService(cart.NewRepository(), productSvc)
	if err != nil {
		return routes.Services{}, err
	}
	orderSvc, err := orders.NewService(orders.NewRepository(), nil)
	if err != nil {
		return routes.Services{}, err
	}
	wishlistSvc, err := wishlist.NewService(wishlist.NewRepository(), productSvc)
	if err != nil {
		return routes.Services{}, err
	}
	userSvc, err := users.NewService(users.NewRepository(users.ProfileDTO{
		ID:      cfg.DemoUser.UserID(),
		Name:    cfg.DemoUser.Name,
		Email:   cfg.DemoUser.Email,
		Address: cfg.DemoUser.Address,
		Phone:   cfg.DemoUser.Phone,
	}), security.NewHasher(cfg.Password), nil)
	if err != nil {
		return routes.Services{}, err
	}
	processor := checkout.NewBreakerProcessor(
		checkout.SimulatedProcessor{Delay: cfg.Checkout.ProcessingDelay},
		checkout.BreakerSettings{
			ConsecutiveFailures: cfg.Checkout.BreakerFailures,
			Cooldown:            cfg.Checkout.BreakerCooldown,
		},
		logg,
	)
	checkoutSvc, err := checkout.NewService(checkout.Options{
		Carts:             cartSvc,
		Orders:            orderSvc,
		Profiles:          userSvc,
		Processor:         processor,
		Metrics:           metrics.NewCheckoutMetrics(registry),
		Logger:            logg,
		ProcessingTimeout: cfg.Checkout.ProcessingTimeout,
	})
	if err != nil {
		return routes.Services{}, err
	}

	return routes.Services{
		Products: productSvc,
		Cart:     cartSvc,
		Checkout: checkoutSvc,
		Orders:   orderSvc,
		Wishlist: wishlistSvc,
		Users:    userSvc,
	}, nil
}
