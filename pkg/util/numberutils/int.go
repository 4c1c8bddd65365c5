package numberutils

import (
	"strconv"
	"strings"
)

// ToOptionalInt converts the given string to an integer pointer.
// A blank or "null" string yields nil without error.
func ToOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if isBlank(s) {
		return nil, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// IsIntInRange checks if the given number is within the specified range (inclusive).
func IsIntInRange(num, min, max int) bool {
	return num >= min && num <= max
}

func isBlank(s string) bool {
	return s == "" || strings.EqualFold(s, "null")
}
