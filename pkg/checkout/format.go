package checkout

import "strings"

const (
	cardGroupSize     = 4
	maxCardDisplayLen = 19
	maxCVVDigits      = 4
)

// FormatCardNumber groups the digits of raw in blocks of four, e.g. "4111 1111 1111 1111".
// The result never exceeds 19 characters.
func FormatCardNumber(raw string) string {
	digits := digitsOnly(raw)
	var b strings.Builder
	for i := 0; i < len(digits); i += cardGroupSize {
		end := min(i+cardGroupSize, len(digits))
		b.WriteString(digits[i:end])
		b.WriteByte(' ')
	}
	formatted := strings.TrimSpace(b.String())
	if len(formatted) > maxCardDisplayLen {
		formatted = formatted[:maxCardDisplayLen]
	}
	return formatted
}

// FormatExpiryDate renders typed digits as MM/YY.
func FormatExpiryDate(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) < 2 {
		return digits
	}
	year := digits[2:]
	if len(year) > 2 {
		year = year[:2]
	}
	return digits[:2] + "/" + year
}

// SanitizeCVV keeps at most four digits.
func SanitizeCVV(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) > maxCVVDigits {
		digits = digits[:maxCVVDigits]
	}
	return digits
}

// MaskCardNumber keeps only the last four characters of the whitespace-stripped number.
func MaskCardNumber(raw string) string {
	card := []rune(stripWhitespace(raw))
	if len(card) > 4 {
		card = card[len(card)-4:]
	}
	return "****" + string(card)
}

func digitsOnly(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
}
