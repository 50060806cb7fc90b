package valuation

import (
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches the first integer or decimal substring in a field
// like "25.7 y.o.".
var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// ParseValue converts a comma-grouped value string like "9,500" to a float.
// Any input that does not parse yields 0.0 so aggregate sums never fail.
func ParseValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
	if err != nil {
		return 0.0
	}
	return v
}

// ParseAge extracts the numeric age from a string like "25.7 y.o.".
// Returns 0.0 when no numeric substring is present.
func ParseAge(s string) float64 {
	m := numberPattern.FindString(s)
	if m == "" {
		return 0.0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0.0
	}
	return v
}
