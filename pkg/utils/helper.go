package utils

import (
	"strconv"
)

// ParseID parses a positive integer identifier. ok is false for anything else.
func ParseID(value string) (id int64, ok bool) {
	if value == "" {
		return 0, false
	}

	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil || result < 1 {
		return 0, false
	}

	return result, true
}
