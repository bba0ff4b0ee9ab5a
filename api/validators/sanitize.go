package validators

import "strings"

// SanitizeString trims whitespace and truncates to maxLen runes; a non-positive maxLen keeps the full value.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen <= 0 {
		return trimmed
	}
	runes := []rune(trimmed)
	if len(runes) > maxLen {
		return string(runes[:maxLen])
	}
	return trimmed
}
