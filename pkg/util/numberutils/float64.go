package numberutils

import (
	"math"
	"strconv"
	"strings"
)

// ToOptionalFloat64 converts the given string to a float64 pointer.
// A blank or "null" string yields nil without error; NaN and infinities are rejected.
func ToOptionalFloat64(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if isBlank(s) {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, strconv.ErrSyntax
	}
	return &f, nil
}

// IsFloat64InRange checks if the given number is within the specified range (inclusive).
func IsFloat64InRange(num, min, max float64) bool {
	return num >= min && num <= max
}
