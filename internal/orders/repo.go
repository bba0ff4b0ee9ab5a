package orders

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Repository holds orders in memory.
type Repository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]Order
	byUser map[uuid.UUID][]uuid.UUID
}

// NewRepository returns an empty order repository.
func NewRepository() *Repository {
	return &Repository{
		byID:   map[uuid.UUID]Order{},
		byUser: map[uuid.UUID][]uuid.UUID{},
	}
}

func (r *Repository) Create(ctx context.Context, order Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[order.ID] = order
	r.byUser[order.UserID] = append(r.byUser[order.UserID], order.ID)
	return nil
}

// FindByID returns nil when the order does not exist.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

// ListByUser returns the user's orders in placement order.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byUser[userID]
	out := make([]Order, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	return out, nil
}

// Transition moves the order from one status to another. It reports false when the order is
// missing or no longer in the from status.
func (r *Repository) Transition(ctx context.Context, id uuid.UUID, from, to Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.byID[id]
	if !ok || order.Status != from {
		return false, nil
	}
	order.Status = to
	r.byID[id] = order
	return true, nil
}
