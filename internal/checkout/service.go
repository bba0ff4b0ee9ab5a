package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/internal/orders"
	"github.com/angelmondragon/storefront-backend/internal/users"
	"github.com/angelmondragon/storefront-backend/pkg/checkout"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/metrics"
)

type cartStore interface {
	Get(ctx context.Context, userID uuid.UUID) (cart.CartDTO, error)
	RemoveOrdered(ctx context.Context, userID uuid.UUID, ordered []cart.Item) (cart.CartDTO, error)
}

type orderRecorder interface {
	Create(ctx context.Context, input orders.CreateOrderInput) (*orders.Order, error)
}

type profileReader interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*users.ProfileDTO, error)
}

// Service places orders from the user's cart.
type Service interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, form Form) (*orders.Order, error)
	Preview(ctx context.Context, userID uuid.UUID) (*PreviewDTO, error)
}

// Options wires the checkout service.
type Options struct {
	Carts     cartStore
	Orders    orderRecorder
	Profiles  profileReader
	Processor PaymentProcessor
	Metrics   *metrics.CheckoutMetrics
	Logger    *logger.Logger
	// ProcessingTimeout bounds the payment step; zero leaves it to the caller's context.
	ProcessingTimeout time.Duration
}

type service struct {
	carts     cartStore
	orders    orderRecorder
	profiles  profileReader
	processor PaymentProcessor
	metrics   *metrics.CheckoutMetrics
	logg      *logger.Logger
	timeout   time.Duration
	inFlight  sync.Map
}

// NewService builds the checkout service. Profiles and Metrics are optional.
func NewService(opts Options) (Service, error) {
	if opts.Carts == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if opts.Orders == nil {
		return nil, fmt.Errorf("order recorder required")
	}
	if opts.Processor == nil {
		return nil, fmt.Errorf("payment processor required")
	}
	if opts.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		carts:     opts.Carts,
		orders:    opts.Orders,
		profiles:  opts.Profiles,
		processor: opts.Processor,
		metrics:   opts.Metrics,
		logg:      opts.Logger,
		timeout:   opts.ProcessingTimeout,
	}, nil
}

func (s *service) PlaceOrder(ctx context.Context, userID uuid.UUID, form Form) (*orders.Order, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	ctx = s.logg.WithUserID(ctx, userID)

	if _, busy := s.inFlight.LoadOrStore(userID, struct{}{}); busy {
		s.metrics.IncAttempt(metrics.OutcomeInProgress)
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "checkout already in progress")
	}
	defer s.inFlight.Delete(userID)

	snapshot, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snapshot.IsEmpty() {
		s.metrics.IncAttempt(metrics.OutcomeEmptyCart)
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart contains no items")
	}
	ctx = s.logg.WithCheckout(ctx, logger.CheckoutFields{
		ItemCount: snapshot.ItemCount,
		Subtotal:  snapshot.Subtotal.StringFixed(2),
	})

	form = s.prefill(ctx, userID, form)
	summary, result := checkout.Evaluate(form.input(snapshot.Subtotal))
	if !result.Valid() {
		s.metrics.IncAttempt(metrics.OutcomeInvalid)
		s.metrics.IncFieldErrors(result.Fields())
		s.logg.Debug(s.logg.WithRejectedFields(ctx, result.Fields()), "checkout rejected")
		return nil, result.Err()
	}

	if err := s.charge(ctx, userID, summary); err != nil {
		s.metrics.IncAttempt(metrics.OutcomeFailed)
		s.logg.Error(ctx, "payment processing failed", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodePaymentFailed, err, checkout.MsgProcessingFailed).
			WithDetails(map[string]string(checkout.ProcessingFailure()))
	}

	order, err := s.orders.Create(ctx, orders.CreateOrderInput{
		UserID:  userID,
		Items:   lineItems(snapshot),
		Summary: *summary,
	})
	if err != nil {
		return nil, err
	}
	ctx = s.logg.WithOrderID(ctx, order.ID)

	if _, err := s.carts.RemoveOrdered(ctx, userID, snapshot.Items); err != nil {
		s.logg.Error(ctx, "remove ordered items from cart", err)
	}

	s.metrics.IncAttempt(metrics.OutcomePlaced)
	s.metrics.AddRevenue(order.Total.InexactFloat64())
	s.logg.Info(s.logg.WithCheckout(ctx, logger.CheckoutFields{
		Total:         order.Total.StringFixed(2),
		PaymentMethod: order.PaymentMethod,
	}), "order placed")
	return order, nil
}

func (s *service) Preview(ctx context.Context, userID uuid.UUID) (*PreviewDTO, error) {
	snapshot, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	pricing := checkout.Quote(snapshot.Subtotal)
	return &PreviewDTO{
		Items:        snapshot.Items,
		ItemCount:    snapshot.ItemCount,
		Pricing:      pricing.Display(),
		FreeShipping: pricing.FreeShipping(),
	}, nil
}

func (s *service) charge(ctx context.Context, userID uuid.UUID, summary *checkout.OrderSummary) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	start := time.Now()
	err := s.processor.Process(ctx, PaymentRequest{
		UserID:        userID,
		Amount:        summary.Total,
		PaymentMethod: summary.MaskedPaymentMethod,
	})
	s.metrics.ObserveProcessing(time.Since(start))
	return err
}

// prefill fills a blank shipping address and cardholder name from the profile.
func (s *service) prefill(ctx context.Context, userID uuid.UUID, form Form) Form {
	if s.profiles == nil || (form.ShippingAddress != "" && form.CardholderName != "") {
		return form
	}
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			s.logg.Warn(ctx, "profile lookup for checkout prefill failed")
		}
		return form
	}
	if form.ShippingAddress == "" {
		form.ShippingAddress = profile.Address
	}
	if form.CardholderName == "" {
		form.CardholderName = profile.Name
	}
	return form
}
