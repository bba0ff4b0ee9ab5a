package checkout

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
)

const (
	MsgShippingAddressRequired = "Shipping address is required"
	MsgCityRequired            = "City is required"
	MsgZipCodeRequired         = "ZIP code is required"
	MsgCardNumberRequired      = "Card number is required"
	MsgCardNumberInvalid       = "Invalid card number"
	MsgExpiryDateRequired      = "Expiry date is required"
	MsgCVVRequired             = "CVV is required"
	MsgCVVInvalid              = "Invalid CVV"
	MsgCardholderNameRequired  = "Cardholder name is required"
	MsgProcessingFailed        = "Payment processing failed. Please try again."
)

const (
	minCardDigits = 13
	maxCardDigits = 19
	minCVVLength  = 3
	maxCVVLength  = 4
)

// ValidationResult maps a form field to its error message. An empty result means the input is acceptable.
type ValidationResult map[string]string

// Valid reports whether no field was rejected.
func (v ValidationResult) Valid() bool {
	return len(v) == 0
}

// Fields returns the rejected field names in sorted order.
func (v ValidationResult) Fields() []string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Err converts a non-empty result into a typed validation error carrying the field messages.
func (v ValidationResult) Err() error {
	if v.Valid() {
		return nil
	}
	details := make(map[string]string, len(v))
	for field, msg := range v {
		details[field] = msg
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "checkout validation failed").WithDetails(details)
}

// ProcessingFailure is the result surfaced when the payment step after validation fails.
func ProcessingFailure() ValidationResult {
	return ValidationResult{FieldGeneral: MsgProcessingFailed}
}

// Validate applies every field rule and collects all failures. When several rules fire
// for one field the last one wins.
func Validate(in CheckoutInput) ValidationResult {
	result := ValidationResult{}

	if strings.TrimSpace(in.ShippingAddress) == "" {
		result[FieldShippingAddress] = MsgShippingAddressRequired
	}
	if strings.TrimSpace(in.City) == "" {
		result[FieldCity] = MsgCityRequired
	}
	if strings.TrimSpace(in.ZipCode) == "" {
		result[FieldZipCode] = MsgZipCodeRequired
	}

	card := stripWhitespace(in.CardNumber)
	if card == "" {
		result[FieldCardNumber] = MsgCardNumberRequired
	}
	if in.ExpiryDate == "" {
		result[FieldExpiryDate] = MsgExpiryDateRequired
	}
	if in.CVV == "" {
		result[FieldCVV] = MsgCVVRequired
	}
	if strings.TrimSpace(in.CardholderName) == "" {
		result[FieldCardholderName] = MsgCardholderNameRequired
	}

	if n := utf8.RuneCountInString(card); card != "" && (n < minCardDigits || n > maxCardDigits) {
		result[FieldCardNumber] = MsgCardNumberInvalid
	}
	if n := utf8.RuneCountInString(in.CVV); in.CVV != "" && (n < minCVVLength || n > maxCVVLength) {
		result[FieldCVV] = MsgCVVInvalid
	}

	return result
}

func stripWhitespace(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
}
