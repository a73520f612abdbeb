package validation

import (
	"strings"
)

// Units codes accepted by weatherstack: metric, scientific, fahrenheit
var supportedUnits = map[string]bool{
	"m": true,
	"s": true,
	"f": true,
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidUnits validates a weatherstack units code
func IsValidUnits(units string) bool {
	return supportedUnits[units]
}

// IsHTTPURL reports whether s uses the http or https scheme
func IsHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
