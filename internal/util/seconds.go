package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSeconds parses a whole number of seconds typed into a digits-only
// field. Signs, spaces inside the number and units are rejected.
func ParseSeconds(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("empty interval")
	}
	if !IsDigits(input) {
		return 0, fmt.Errorf("invalid interval %q: only digits are allowed", input)
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: %w", input, err)
	}
	return n, nil
}

// IsDigits reports whether s is non-empty and made of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
