package pricing

import (
	"math"
	"strconv"
	"strings"
)

// Best-effort coercion for live-typed form values. The quote form recalculates
// on every keystroke, so half-typed numbers must degrade to a safe zero
// instead of failing the request.

// ParseAmount parses a currency amount, tolerating "$" and "," noise.
// Anything unparsable becomes 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseCount parses a non-negative integer count; unparsable or negative
// input becomes 0.
func ParseCount(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
