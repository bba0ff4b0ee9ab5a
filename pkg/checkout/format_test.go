package checkout

import "testing"

func TestFormatCardNumber(t *testing.T) {
	t.Parallel()
	tests := []struct {
		raw  string
		want string
	}{
		{"4111111111111111", "4111 1111 1111 1111"},
		{"4111-1111-1111-1111", "4111 1111 1111 1111"},
		{"41111", "4111 1"},
		{"4111", "4111"},
		{"", ""},
		{"abc", ""},
		{"41111111111111112222", "4111 1111 1111 1111"},
		{"4111 1111 1111 11119", "4111 1111 1111 1111"},
	}
	for _, tt := range tests {
		if got := FormatCardNumber(tt.raw); got != tt.want {
			t.Fatalf("FormatCardNumber(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFormatExpiryDate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		raw  string
		want string
	}{
		{"1225", "12/25"},
		{"1", "1"},
		{"12", "12/"},
		{"12/2", "12/2"},
		{"122599", "12/25"},
		{"ab", ""},
	}
	for _, tt := range tests {
		if got := FormatExpiryDate(tt.raw); got != tt.want {
			t.Fatalf("FormatExpiryDate(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestSanitizeCVV(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"123":    "123",
		"12a3":   "123",
		"123456": "1234",
		"":       "",
	}
	for raw, want := range tests {
		if got := SanitizeCVV(raw); got != want {
			t.Fatalf("SanitizeCVV(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestMaskCardNumber(t *testing.T) {
	t.Parallel()
	if got := MaskCardNumber("4111 1111 1111 1111"); got != "****1111" {
		t.Fatalf("expected ****1111, got %q", got)
	}
	if got := MaskCardNumber("5500 0000 0000 0004 "); got != "****0004" {
		t.Fatalf("expected ****0004, got %q", got)
	}
}
