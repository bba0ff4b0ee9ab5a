package products

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
)

// catalogNamespace derives stable product ids from product names.
var catalogNamespace = uuid.MustParse("5b1e3c52-0f7e-4d7a-9a5e-6c1d2b8f4a10")

// ProductID returns the stable id assigned to a seeded product name.
func ProductID(name string) uuid.UUID {
	return uuid.NewSHA1(catalogNamespace, []byte(name))
}

// Repository is an in-memory, insertion-ordered catalog.
type Repository struct {
	mu    sync.RWMutex
	order []uuid.UUID
	byID  map[uuid.UUID]ProductDTO
}

// NewRepository builds a catalog holding the given products in order.
func NewRepository(seed []ProductDTO) *Repository {
	r := &Repository{byID: make(map[uuid.UUID]ProductDTO, len(seed))}
	for _, p := range seed {
		if p.ID == uuid.Nil {
			p.ID = ProductID(p.Name)
		}
		if _, exists := r.byID[p.ID]; exists {
			continue
		}
		r.order = append(r.order, p.ID)
		r.byID[p.ID] = p
	}
	return r
}

// List returns every product in catalog order.
func (r *Repository) List(ctx context.Context) ([]ProductDTO, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ProductDTO, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

// FindByID returns the product or nil when it does not exist.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// DefaultCatalog is the demo assortment the storefront boots with.
func DefaultCatalog() []ProductDTO {
	item := func(name string, category enums.ProductCategory, price, description string, rating float64) ProductDTO {
		return ProductDTO{
			ID:          ProductID(name),
			Name:        name,
			Description: description,
			Category:    category,
			Price:       decimal.RequireFromString(price),
			Image:       "/images/products/" + uuidSlug(name) + ".jpg",
			Rating:      rating,
			InStock:     true,
		}
	}
	return []ProductDTO{
		item("Wireless Headphones", enums.ProductCategoryElectronics, "89.99", "Over-ear headphones with active noise cancelling.", 4.5),
		item("Smart Watch", enums.ProductCategoryElectronics, "199.99", "Fitness tracking, notifications and a week of battery.", 4.3),
		item("Running Shoes", enums.ProductCategorySports, "59.99", "Lightweight trainers for daily runs.", 4.6),
		item("Coffee Maker", enums.ProductCategoryHome, "49.99", "Twelve cup programmable drip brewer.", 4.1),
		item("Yoga Mat", enums.ProductCategorySports, "24.99", "Non-slip mat with carrying strap.", 4.7),
		item("Backpack", enums.ProductCategoryAccessories, "39.99", "Water resistant daypack with laptop sleeve.", 4.4),
		item("Desk Lamp", enums.ProductCategoryHome, "19.99", "LED lamp with three brightness levels.", 4.0),
		item("Bluetooth Speaker", enums.ProductCategoryElectronics, "34.99", "Pocket speaker with twelve hour playback.", 4.2),
	}
}

func uuidSlug(name string) string {
	return ProductID(name).String()[:8]
}
