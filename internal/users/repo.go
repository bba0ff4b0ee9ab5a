package users

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Repository stores profiles in memory.
type Repository struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]ProfileDTO
}

// NewRepository seeds the repository with the given profiles.
func NewRepository(seed ...ProfileDTO) *Repository {
	r := &Repository{profiles: make(map[uuid.UUID]ProfileDTO, len(seed))}
	for _, p := range seed {
		r.profiles[p.ID] = p
	}
	return r
}

// FindByID returns nil when no profile exists.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*ProfileDTO, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *Repository) Save(ctx context.Context, profile ProfileDTO) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.ID] = profile
	return nil
}
