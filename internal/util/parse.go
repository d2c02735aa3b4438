package util

import "strconv"

// ParseIntOrZero parses a decimal integer from a persisted counter value.
// Malformed or empty strings fall back to zero rather than erroring, so a
// corrupted counter degrades to a default instead of breaking the UI.
func ParseIntOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
