package checkout

import (
	"testing"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
)

func validInput() CheckoutInput {
	return CheckoutInput{
		ShippingAddress: "742 Evergreen Terrace",
		City:            "Springfield",
		ZipCode:         "49007",
		Country:         "United States",
		CardNumber:      "4111 1111 1111 1111",
		ExpiryDate:      "12/25",
		CVV:             "123",
		CardholderName:  "Marge Simpson",
		OrderNotes:      "Leave at the door",
		CartSubtotal:    decimal.NewFromInt(40),
	}
}

func TestValidate_ValidInput(t *testing.T) {
	t.Parallel()
	if result := Validate(validInput()); !result.Valid() {
		t.Fatalf("expected no errors, got %v", result)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*CheckoutInput)
		field   string
		message string
	}{
		{"shipping address blank", func(in *CheckoutInput) { in.ShippingAddress = "   " }, FieldShippingAddress, MsgShippingAddressRequired},
		{"city empty", func(in *CheckoutInput) { in.City = "" }, FieldCity, MsgCityRequired},
		{"zip whitespace", func(in *CheckoutInput) { in.ZipCode = "\t" }, FieldZipCode, MsgZipCodeRequired},
		{"card spaces only", func(in *CheckoutInput) { in.CardNumber = "    " }, FieldCardNumber, MsgCardNumberRequired},
		{"expiry empty", func(in *CheckoutInput) { in.ExpiryDate = "" }, FieldExpiryDate, MsgExpiryDateRequired},
		{"cvv empty", func(in *CheckoutInput) { in.CVV = "" }, FieldCVV, MsgCVVRequired},
		{"cardholder blank", func(in *CheckoutInput) { in.CardholderName = " " }, FieldCardholderName, MsgCardholderNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			result := Validate(in)
			if len(result) != 1 {
				t.Fatalf("expected exactly one error, got %v", result)
			}
			if got := result[tt.field]; got != tt.message {
				t.Fatalf("expected %s=%q, got %q", tt.field, tt.message, got)
			}
		})
	}
}

func TestValidate_CollectsEveryError(t *testing.T) {
	t.Parallel()
	result := Validate(CheckoutInput{})
	want := map[string]string{
		FieldShippingAddress: MsgShippingAddressRequired,
		FieldCity:            MsgCityRequired,
		FieldZipCode:         MsgZipCodeRequired,
		FieldCardNumber:      MsgCardNumberRequired,
		FieldExpiryDate:      MsgExpiryDateRequired,
		FieldCVV:             MsgCVVRequired,
		FieldCardholderName:  MsgCardholderNameRequired,
	}
	if len(result) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), result)
	}
	for field, msg := range want {
		if result[field] != msg {
			t.Fatalf("expected %s=%q, got %q", field, msg, result[field])
		}
	}
	if _, ok := result[FieldGeneral]; ok {
		t.Fatalf("general is reserved for processing failures")
	}
}

func TestValidate_CardNumberLength(t *testing.T) {
	t.Parallel()
	tests := []struct {
		card  string
		valid bool
	}{
		{"4111 1111 1111 111", true},
		{"4111111111111", true},
		{"4111 1111 1111 1111 111", true},
		{"123", false},
		{"411111111111", false},
		{"41111111111111111111", false},
	}
	for _, tt := range tests {
		in := validInput()
		in.CardNumber = tt.card
		result := Validate(in)
		msg, failed := result[FieldCardNumber]
		if tt.valid && failed {
			t.Fatalf("card %q: unexpected error %q", tt.card, msg)
		}
		if !tt.valid && msg != MsgCardNumberInvalid {
			t.Fatalf("card %q: expected %q, got %q", tt.card, MsgCardNumberInvalid, msg)
		}
	}
}

func TestValidate_CVVLength(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cvv string
		msg string
	}{
		{"12", MsgCVVInvalid},
		{"123", ""},
		{"1234", ""},
		{"12345", MsgCVVInvalid},
	}
	for _, tt := range tests {
		in := validInput()
		in.CVV = tt.cvv
		if got := Validate(in)[FieldCVV]; got != tt.msg {
			t.Fatalf("cvv %q: expected %q, got %q", tt.cvv, tt.msg, got)
		}
	}
}

func TestValidate_ExpiryFormatNotChecked(t *testing.T) {
	t.Parallel()
	in := validInput()
	in.ExpiryDate = "whenever"
	if result := Validate(in); !result.Valid() {
		t.Fatalf("expiry format should not be validated, got %v", result)
	}
}

func TestValidationResultErr(t *testing.T) {
	t.Parallel()
	if err := (ValidationResult{}).Err(); err != nil {
		t.Fatalf("expected nil error for valid result, got %v", err)
	}

	result := ValidationResult{FieldCVV: MsgCVVInvalid, FieldCity: MsgCityRequired}
	err := result.Err()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	if details[FieldCVV] != MsgCVVInvalid || details[FieldCity] != MsgCityRequired {
		t.Fatalf("unexpected details %v", details)
	}
	if fields := result.Fields(); len(fields) != 2 || fields[0] != FieldCity || fields[1] != FieldCVV {
		t.Fatalf("expected sorted fields, got %v", fields)
	}
}

func TestProcessingFailure(t *testing.T) {
	t.Parallel()
	result := ProcessingFailure()
	if result[FieldGeneral] != "Payment processing failed. Please try again." {
		t.Fatalf("unexpected general message %q", result[FieldGeneral])
	}
}
