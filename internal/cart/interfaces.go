package cart

import (
	"context"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/internal/products"
)

// CartRepository stores per-user carts.
type CartRepository interface {
	Load(ctx context.Context, userID uuid.UUID) ([]Item, error)
	Update(ctx context.Context, userID uuid.UUID, fn func([]Item) ([]Item, error)) ([]Item, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type productLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*products.ProductDTO, error)
}
