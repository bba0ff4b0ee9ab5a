package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
)

const maxLineQuantity = 99

// Service manages shopping carts.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (CartDTO, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (CartDTO, error)
	SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (CartDTO, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (CartDTO, error)
	Clear(ctx context.Context, userID uuid.UUID) error
	RemoveOrdered(ctx context.Context, userID uuid.UUID, ordered []Item) (CartDTO, error)
}

type service struct {
	repo     CartRepository
	products productLookup
}

// NewService builds the cart service.
func NewService(repo CartRepository, products productLookup) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product lookup required")
	}
	return &service{repo: repo, products: products}, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (CartDTO, error) {
	if userID == uuid.Nil {
		return CartDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	items, err := s.repo.Load(ctx, userID)
	if err != nil {
		return CartDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return newCartDTO(userID, items), nil
}

// AddItem adds quantity of the product, merging with an existing line.
func (s *service) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (CartDTO, error) {
	if userID == uuid.Nil {
		return CartDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if quantity <= 0 {
		return CartDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return CartDTO{}, err
	}
	if !product.InStock {
		return CartDTO{}, pkgerrors.New(pkgerrors.CodeStateConflict, "product out of stock")
	}

	items, err := s.repo.Update(ctx, userID, func(items []Item) ([]Item, error) {
		for i := range items {
			if items[i].ProductID != productID {
				continue
			}
			if items[i].Quantity+quantity > maxLineQuantity {
				return nil, quantityLimitError()
			}
			items[i].Quantity += quantity
			return items, nil
		}
		if quantity > maxLineQuantity {
			return nil, quantityLimitError()
		}
		return append(items, Item{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  quantity,
		}), nil
	})
	if err != nil {
		return CartDTO{}, err
	}
	return newCartDTO(userID, items), nil
}

// SetQuantity replaces the line quantity; zero removes the line.
func (s *service) SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (CartDTO, error) {
	if userID == uuid.Nil {
		return CartDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if quantity < 0 {
		return CartDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}
	if quantity > maxLineQuantity {
		return CartDTO{}, quantityLimitError()
	}
	items, err := s.repo.Update(ctx, userID, func(items []Item) ([]Item, error) {
		for i := range items {
			if items[i].ProductID != productID {
				continue
			}
			if quantity == 0 {
				return append(items[:i], items[i+1:]...), nil
			}
			items[i].Quantity = quantity
			return items, nil
		}
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not in cart")
	})
	if err != nil {
		return CartDTO{}, err
	}
	return newCartDTO(userID, items), nil
}

func (s *service) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (CartDTO, error) {
	return s.SetQuantity(ctx, userID, productID, 0)
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

// RemoveOrdered subtracts the ordered quantities from the current cart. Lines added or raised
// after the ordered snapshot was taken stay in the cart.
func (s *service) RemoveOrdered(ctx context.Context, userID uuid.UUID, ordered []Item) (CartDTO, error) {
	if userID == uuid.Nil {
		return CartDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	taken := make(map[uuid.UUID]int, len(ordered))
	for _, item := range ordered {
		taken[item.ProductID] += item.Quantity
	}
	items, err := s.repo.Update(ctx, userID, func(items []Item) ([]Item, error) {
		remaining := items[:0]
		for _, item := range items {
			item.Quantity -= taken[item.ProductID]
			if item.Quantity > 0 {
				remaining = append(remaining, item)
			}
		}
		return remaining, nil
	})
	if err != nil {
		return CartDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove ordered items")
	}
	return newCartDTO(userID, items), nil
}

func quantityLimitError() error {
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("quantity cannot exceed %d", maxLineQuantity)).
		WithDetails(map[string]any{"max_quantity": maxLineQuantity})
}
