package orders

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository is the storage surface the order service needs.
type OrderRepository interface {
	Create(ctx context.Context, order Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
	Transition(ctx context.Context, id uuid.UUID, from, to Status) (bool, error)
}
