package wishlist

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Repository keeps wishlists in memory, in the order products were added.
type Repository struct {
	mu    sync.Mutex
	items map[uuid.UUID][]uuid.UUID
}

// NewRepository returns an empty wishlist repository.
func NewRepository() *Repository {
	return &Repository{items: map[uuid.UUID][]uuid.UUID{}}
}

// Toggle adds the product when absent and removes it when present. It returns true when the product was added.
func (r *Repository) Toggle(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.items[userID]
	if idx := slices.Index(ids, productID); idx >= 0 {
		r.items[userID] = slices.Delete(ids, idx, idx+1)
		return false, nil
	}
	r.items[userID] = append(ids, productID)
	return true, nil
}

func (r *Repository) ListItemIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.items[userID]), nil
}
