// Package strutil holds small string conversion helpers for query parameters.
package strutil

import "strconv"

// ConvertToInt parses s as an int, returning 0 when it cannot be parsed.
func ConvertToInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToInt64 parses s as an int64, returning 0 when it cannot be parsed.
func ConvertToInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToUint parses s as a uint, returning 0 when it cannot be parsed.
func ConvertToUint(s string) uint {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}
