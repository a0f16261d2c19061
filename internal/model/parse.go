package model

import (
	"strconv"
	"strings"
)

// ParseLenientInt parses a form field as an integer. Anything that is not a
// plain base-10 integer yields fallback instead of an error.
func ParseLenientInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
