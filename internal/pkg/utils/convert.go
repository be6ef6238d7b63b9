package utils

import (
	"strconv"
	"strings"
)

// ConvertToInt parses a query parameter as int, returning 0 for anything
// that is not a non-negative integer.
func ConvertToInt(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseBool parses a query or flag value, falling back to def when the
// value is empty or malformed.
func ParseBool(value string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return b
}
