package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/storefront-backend/api/controllers"
	"github.com/angelmondragon/storefront-backend/api/middleware"
	"github.com/angelmondragon/storefront-backend/internal/cart"
	checkoutsvc "github.com/angelmondragon/storefront-backend/internal/checkout"
	"github.com/angelmondragon/storefront-backend/internal/orders"
	"github.com/angelmondragon/storefront-backend/internal/products"
	"github.com/angelmondragon/storefront-backend/internal/users"
	"github.com/angelmondragon/storefront-backend/internal/wishlist"
	"github.com/angelmondragon/storefront-backend/pkg/config"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

// Services groups the domain services the HTTP surface depends on.
type Services struct {
	Products products.Service
	Cart     cart.Service
	Checkout checkoutsvc.Service
	Orders   orders.Service
	Wishlist wishlist.Service
	Users    users.Service
}

// NewRouter mounts every route. A nil gatherer disables the metrics endpoint.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	svcs Services,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	if cfg.Metrics.Enabled && gatherer != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.User(cfg.DemoUser.UserID(), logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(svcs.Products, logg))
			r.Get("/featured", controllers.ProductFeatured(svcs.Products, logg))
			r.Get("/{productId}", controllers.ProductDetail(svcs.Products, svcs.Wishlist, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(svcs.Cart, logg))
			r.Delete("/", controllers.CartClear(svcs.Cart, logg))
			r.Post("/items", controllers.CartAddItem(svcs.Cart, logg))
			r.Put("/items/{productId}", controllers.CartUpdateItem(svcs.Cart, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(svcs.Cart, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", controllers.CheckoutSubmit(svcs.Checkout, logg))
			r.Post("/format", controllers.CheckoutFormat(logg))
			r.Get("/summary", controllers.CheckoutSummary(svcs.Checkout, logg))
		})

		r.Route("/account", func(r chi.Router) {
			r.Get("/profile", controllers.ProfileFetch(svcs.Users, logg))
			r.Put("/profile", controllers.ProfileUpdate(svcs.Users, logg))
			r.Post("/password", controllers.PasswordChange(svcs.Users, logg))

			r.Get("/orders", controllers.OrderList(svcs.Orders, logg))
			r.Get("/orders/{orderId}", controllers.OrderDetail(svcs.Orders, logg))
			r.Post("/orders/{orderId}/cancel", controllers.OrderCancel(svcs.Orders, logg))

			r.Get("/wishlist", controllers.WishlistFetch(svcs.Wishlist, logg))
			r.Post("/wishlist/toggle", controllers.WishlistToggle(svcs.Wishlist, logg))
		})
	})

	return r
}
