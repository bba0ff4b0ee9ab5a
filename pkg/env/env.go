package env

import (
	"os"
	"strings"
)

// Get returns the value of the given environment variable or a fallback.
// Values made only of whitespace count as unset.
func Get(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

// FirstSet returns the first non-empty value among keys, or fallback.
func FirstSet(fallback string, keys ...string) string {
	for _, key := range keys {
		if val := Get(key, ""); val != "" {
			return val
		}
	}
	return fallback
}
