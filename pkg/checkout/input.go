package checkout

import "github.com/shopspring/decimal"

// Form field identifiers used as ValidationResult keys.
const (
	FieldShippingAddress = "shippingAddress"
	FieldCity            = "city"
	FieldZipCode         = "zipCode"
	FieldCardNumber      = "cardNumber"
	FieldExpiryDate      = "expiryDate"
	FieldCVV             = "cvv"
	FieldCardholderName  = "cardholderName"
	FieldGeneral         = "general"
)

// CheckoutInput is a snapshot of the checkout form taken at submission time.
type CheckoutInput struct {
	ShippingAddress string
	City            string
	ZipCode         string
	Country         string

	CardNumber     string
	ExpiryDate     string
	CVV            string
	CardholderName string

	OrderNotes string

	// CartSubtotal is owned by the cart and is never negative.
	CartSubtotal decimal.Decimal
}

// OrderSummary is the normalized result of a successful evaluation.
type OrderSummary struct {
	ShippingAddressLine string
	MaskedPaymentMethod string
	OrderNotes          string
	Pricing
}
