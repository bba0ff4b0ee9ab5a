package orders

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/pkg/checkout"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/pagination"
)

// CreateOrderInput carries a validated checkout into an order record.
type CreateOrderInput struct {
	UserID  uuid.UUID
	Items   []LineItem
	Summary checkout.OrderSummary
}

// Service manages placed orders.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*Order, error)
	Get(ctx context.Context, userID, orderID uuid.UUID) (*Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
	ListPage(ctx context.Context, userID uuid.UUID, status Status, params pagination.Params) (pagination.Page[Order], error)
	UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, next Status) (*Order, error)
}

var allowedTransitions = map[Status][]Status{
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

type service struct {
	repo OrderRepository
	now  func() time.Time
}

// NewService builds the order service. A nil clock uses time.Now.
func NewService(repo OrderRepository, now func() time.Time) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, now: now}, nil
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (*Order, error) {
	if input.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order requires at least one item")
	}

	summary := input.Summary
	order := Order{
		ID:              uuid.New(),
		UserID:          input.UserID,
		Status:          StatusProcessing,
		Items:           append([]LineItem(nil), input.Items...),
		ShippingAddress: summary.ShippingAddressLine,
		PaymentMethod:   summary.MaskedPaymentMethod,
		OrderNotes:      summary.OrderNotes,
		Subtotal:        summary.Subtotal,
		ShippingCost:    summary.ShippingCost,
		Tax:             summary.Tax,
		Total:           summary.Total,
		PlacedAt:        s.now().UTC(),
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store order")
	}
	return &order, nil
}

// Get returns the order only when it belongs to userID.
func (s *service) Get(ctx context.Context, userID, orderID uuid.UUID) (*Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	if order == nil || order.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}

// ListByUser returns the user's orders, newest first.
func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]Order, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	sort.SliceStable(list, func(i, j int) bool {
		return orderCursor(list[j]).Before(orderCursor(list[i]))
	})
	return list, nil
}

// ListPage returns one page of the user's history, newest first. An empty status matches every order.
func (s *service) ListPage(ctx context.Context, userID uuid.UUID, status Status, params pagination.Params) (pagination.Page[Order], error) {
	list, err := s.ListByUser(ctx, userID)
	if err != nil {
		return pagination.Page[Order]{}, err
	}
	if status != "" {
		filtered := list[:0]
		for _, o := range list {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		list = filtered
	}
	page, err := pagination.Slice(list, params, orderCursor)
	if err != nil {
		return pagination.Page[Order]{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor").
			WithDetails(map[string]string{"cursor": "is invalid"})
	}
	return page, nil
}

func orderCursor(o Order) pagination.Cursor {
	return pagination.Cursor{CreatedAt: o.PlacedAt, ID: o.ID}
}

func (s *service) UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, next Status) (*Order, error) {
	order, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !canTransition(order.Status, next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("cannot move order from %s to %s", order.Status, next)).
			WithDetails(map[string]any{"from": order.Status, "to": next})
	}
	moved, err := s.repo.Transition(ctx, orderID, order.Status, next)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}
	if !moved {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order status changed by another request").
			WithDetails(map[string]any{"from": order.Status, "to": next})
	}
	order.Status = next
	return order, nil
}

func canTransition(from, to Status) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
