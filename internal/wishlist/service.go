package wishlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/internal/products"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
)

type wishlistStore interface {
	Toggle(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	ListItemIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type productLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*products.ProductDTO, error)
}

// Service exposes wishlist operations for the account page.
type Service interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) (WishlistDTO, error)
	Toggle(ctx context.Context, userID, productID uuid.UUID) (ToggleResult, error)
	Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

type service struct {
	store    wishlistStore
	products productLookup
}

// NewService constructs a wishlist service.
func NewService(store wishlistStore, products productLookup) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("wishlist store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product lookup required")
	}
	return &service{store: store, products: products}, nil
}

// GetWishlist resolves saved ids to catalog entries. Products no longer in the catalog are skipped.
func (s *service) GetWishlist(ctx context.Context, userID uuid.UUID) (WishlistDTO, error) {
	ids, err := s.store.ListItemIDs(ctx, userID)
	if err != nil {
		return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlist")
	}
	items := make([]products.ProductDTO, 0, len(ids))
	for _, id := range ids {
		p, err := s.products.Get(ctx, id)
		if err != nil {
			if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
				continue
			}
			return WishlistDTO{}, err
		}
		items = append(items, *p)
	}
	return WishlistDTO{Items: items}, nil
}

func (s *service) Toggle(ctx context.Context, userID, productID uuid.UUID) (ToggleResult, error) {
	if userID == uuid.Nil {
		return ToggleResult{}, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if _, err := s.products.Get(ctx, productID); err != nil {
		return ToggleResult{}, err
	}
	added, err := s.store.Toggle(ctx, userID, productID)
	if err != nil {
		return ToggleResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "toggle wishlist")
	}
	return ToggleResult{Wishlisted: added}, nil
}

func (s *service) Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	ids, err := s.store.ListItemIDs(ctx, userID)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlist")
	}
	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}
