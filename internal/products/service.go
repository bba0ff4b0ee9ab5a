package products

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
)

const defaultFeaturedLimit = 6

type productStore interface {
	List(ctx context.Context) ([]ProductDTO, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
}

// Service exposes catalog reads.
type Service interface {
	List(ctx context.Context) ([]ProductDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	Featured(ctx context.Context) ([]ProductDTO, error)
}

type service struct {
	store         productStore
	featuredLimit int
}

// NewService builds the catalog service. A non-positive featuredLimit falls back to 6.
func NewService(store productStore, featuredLimit int) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("product store required")
	}
	if featuredLimit <= 0 {
		featuredLimit = defaultFeaturedLimit
	}
	return &service{store: store, featuredLimit: featuredLimit}, nil
}

func (s *service) List(ctx context.Context) ([]ProductDTO, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if p == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return p, nil
}

// Featured returns the first products of the catalog, as shown on the home page.
func (s *service) Featured(ctx context.Context) ([]ProductDTO, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) > s.featuredLimit {
		items = items[:s.featuredLimit]
	}
	return items, nil
}
