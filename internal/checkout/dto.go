package checkout

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/internal/orders"
	"github.com/angelmondragon/storefront-backend/pkg/checkout"
)

// Form is the checkout form as submitted by the storefront. Keys match the
// field names reported in validation details.
type Form struct {
	ShippingAddress string `json:"shippingAddress"`
	City            string `json:"city"`
	ZipCode         string `json:"zipCode"`
	Country         string `json:"country"`
	CardNumber      string `json:"cardNumber"`
	ExpiryDate      string `json:"expiryDate"`
	CVV             string `json:"cvv"`
	CardholderName  string `json:"cardholderName"`
	OrderNotes      string `json:"orderNotes"`
}

const defaultCountry = "United States"

func (f Form) input(subtotal decimal.Decimal) checkout.CheckoutInput {
	country := f.Country
	if strings.TrimSpace(country) == "" {
		country = defaultCountry
	}
	return checkout.CheckoutInput{
		ShippingAddress: f.ShippingAddress,
		City:            f.City,
		ZipCode:         f.ZipCode,
		Country:         country,
		CardNumber:      f.CardNumber,
		ExpiryDate:      f.ExpiryDate,
		CVV:             f.CVV,
		CardholderName:  f.CardholderName,
		OrderNotes:      f.OrderNotes,
		CartSubtotal:    subtotal,
	}
}

// PreviewDTO is the order summary column shown beside the form.
type PreviewDTO struct {
	Items        []cart.Item             `json:"items"`
	ItemCount    int                     `json:"item_count"`
	Pricing      checkout.PricingDisplay `json:"pricing"`
	FreeShipping bool                    `json:"free_shipping"`
}

func lineItems(snapshot cart.CartDTO) []orders.LineItem {
	items := make([]orders.LineItem, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, orders.LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
	}
	return items
}
