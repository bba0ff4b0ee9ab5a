package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is one product line in a cart.
type Item struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is unit price times quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartDTO is a snapshot of a user's cart.
type CartDTO struct {
	UserID    uuid.UUID       `json:"user_id"`
	Items     []Item          `json:"items"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// IsEmpty reports whether the cart holds no items.
func (c CartDTO) IsEmpty() bool {
	return len(c.Items) == 0
}

func newCartDTO(userID uuid.UUID, items []Item) CartDTO {
	dto := CartDTO{UserID: userID, Items: items, Subtotal: decimal.Zero}
	if dto.Items == nil {
		dto.Items = []Item{}
	}
	for _, item := range items {
		dto.ItemCount += item.Quantity
		dto.Subtotal = dto.Subtotal.Add(item.LineTotal())
	}
	return dto
}
