package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestQuote(t *testing.T) {
	t.Parallel()
	tests := []struct {
		subtotal string
		shipping string
		tax      string
		total    string
		display  PricingDisplay
	}{
		{"40", "9.99", "3.2", "53.19", PricingDisplay{Subtotal: "$40.00", Shipping: "$9.99", Tax: "$3.20", Total: "$53.19"}},
		{"60", "0", "4.8", "64.8", PricingDisplay{Subtotal: "$60.00", Shipping: "Free", Tax: "$4.80", Total: "$64.80"}},
		{"50", "9.99", "4", "63.99", PricingDisplay{Subtotal: "$50.00", Shipping: "$9.99", Tax: "$4.00", Total: "$63.99"}},
		{"0", "9.99", "0", "9.99", PricingDisplay{Subtotal: "$0.00", Shipping: "$9.99", Tax: "$0.00", Total: "$9.99"}},
	}
	for _, tt := range tests {
		p := Quote(decimal.RequireFromString(tt.subtotal))
		if !p.ShippingCost.Equal(decimal.RequireFromString(tt.shipping)) {
			t.Fatalf("subtotal %s: shipping %s, want %s", tt.subtotal, p.ShippingCost, tt.shipping)
		}
		if !p.Tax.Equal(decimal.RequireFromString(tt.tax)) {
			t.Fatalf("subtotal %s: tax %s, want %s", tt.subtotal, p.Tax, tt.tax)
		}
		if !p.Total.Equal(decimal.RequireFromString(tt.total)) {
			t.Fatalf("subtotal %s: total %s, want %s", tt.subtotal, p.Total, tt.total)
		}
		if got := p.Display(); got != tt.display {
			t.Fatalf("subtotal %s: display %+v, want %+v", tt.subtotal, got, tt.display)
		}
	}
}

func TestQuoteKeepsFullPrecision(t *testing.T) {
	t.Parallel()
	p := Quote(decimal.RequireFromString("12.345"))
	if !p.Tax.Equal(decimal.RequireFromString("0.9876")) {
		t.Fatalf("expected unrounded tax 0.9876, got %s", p.Tax)
	}
	if got := FormatAmount(p.Tax); got != "$0.99" {
		t.Fatalf("expected display $0.99, got %s", got)
	}
}
