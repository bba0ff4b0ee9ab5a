package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
)

// Status is the fulfilment state of an order.
type Status = enums.OrderStatus

const (
	StatusProcessing = enums.OrderStatusProcessing
	StatusShipped    = enums.OrderStatusShipped
	StatusDelivered  = enums.OrderStatusDelivered
	StatusCancelled  = enums.OrderStatusCancelled
)

// LineItem is a product captured at checkout time.
type LineItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Order is a placed order as shown on the account page.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	Status          Status          `json:"status"`
	Items           []LineItem      `json:"items"`
	ShippingAddress string          `json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"`
	OrderNotes      string          `json:"order_notes,omitempty"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	PlacedAt        time.Time       `json:"placed_at"`
}
