package checkout

import "github.com/shopspring/decimal"

var (
	freeShippingThreshold = decimal.NewFromInt(50)
	flatShippingCost      = decimal.RequireFromString("9.99")
	taxRate               = decimal.RequireFromString("0.08")
)

// Pricing is the derived cost breakdown for a cart subtotal. Amounts keep full precision;
// round only for display.
type Pricing struct {
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
}

// Quote prices a subtotal. Shipping is free strictly above 50.
func Quote(subtotal decimal.Decimal) Pricing {
	shipping := flatShippingCost
	if subtotal.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(taxRate)
	return Pricing{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          tax,
		Total:        subtotal.Add(shipping).Add(tax),
	}
}

// FreeShipping reports whether the quote carries no shipping charge.
func (p Pricing) FreeShipping() bool {
	return p.ShippingCost.IsZero()
}

// Display returns the breakdown rounded to cents.
func (p Pricing) Display() PricingDisplay {
	shipping := FormatAmount(p.ShippingCost)
	if p.FreeShipping() {
		shipping = "Free"
	}
	return PricingDisplay{
		Subtotal: FormatAmount(p.Subtotal),
		Shipping: shipping,
		Tax:      FormatAmount(p.Tax),
		Total:    FormatAmount(p.Total),
	}
}

// PricingDisplay is the order summary column as the storefront renders it.
type PricingDisplay struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// FormatAmount renders a currency amount as "$12.34".
func FormatAmount(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
