package checkout

import "fmt"

// Evaluate validates the submission and, only when it is valid, derives the order summary.
// Exactly one of the return values is set.
func Evaluate(in CheckoutInput) (*OrderSummary, ValidationResult) {
	if result := Validate(in); !result.Valid() {
		return nil, result
	}
	return &OrderSummary{
		ShippingAddressLine: fmt.Sprintf("%s, %s, %s", in.ShippingAddress, in.City, in.ZipCode),
		MaskedPaymentMethod: MaskCardNumber(in.CardNumber),
		OrderNotes:          in.OrderNotes,
		Pricing:             Quote(in.CartSubtotal),
	}, nil
}
