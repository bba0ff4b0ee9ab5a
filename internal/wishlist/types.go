package wishlist

import "github.com/angelmondragon/storefront-backend/internal/products"

// WishlistDTO lists the products a user saved.
type WishlistDTO struct {
	Items []products.ProductDTO `json:"items"`
}

// ToggleResult reports the state after a toggle.
type ToggleResult struct {
	Wishlisted bool `json:"wishlisted"`
}
