package cart

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Repository keeps carts in memory, keyed by user.
type Repository struct {
	mu    sync.Mutex
	carts map[uuid.UUID][]Item
}

// NewRepository returns an empty cart repository.
func NewRepository() *Repository {
	return &Repository{carts: map[uuid.UUID][]Item{}}
}

// Load returns a copy of the user's items.
func (r *Repository) Load(ctx context.Context, userID uuid.UUID) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Item(nil), r.carts[userID]...), nil
}

// Update applies fn to the user's items atomically and stores the result.
func (r *Repository) Update(ctx context.Context, userID uuid.UUID, fn func([]Item) ([]Item, error)) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, err := fn(append([]Item(nil), r.carts[userID]...))
	if err != nil {
		return nil, err
	}
	if len(next) == 0 {
		delete(r.carts, userID)
		return nil, nil
	}
	r.carts[userID] = next
	return append([]Item(nil), next...), nil
}

// Clear drops the user's cart.
func (r *Repository) Clear(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}
