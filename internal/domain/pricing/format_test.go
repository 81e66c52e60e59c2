//go:build unit

package pricing_test

import (
	"testing"

	"boat-quotes/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "zero", amount: 0, want: "$0.00"},
		{name: "small", amount: 22, want: "$22.00"},
		{name: "thousands", amount: 1800, want: "$1,800.00"},
		{name: "rounding", amount: 1694.9152542372883, want: "$1,694.92"},
		{name: "millions", amount: 1234567.891, want: "$1,234,567.89"},
		{name: "negative", amount: -50, want: "-$50.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.FormatUSD(tc.amount))
		})
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain number", input: "120.5", want: 120.5},
		{name: "dollar sign and commas", input: "$1,250.00", want: 1250},
		{name: "surrounding whitespace", input: "  42 ", want: 42},
		{name: "empty", input: "", want: 0},
		{name: "garbage", input: "abc", want: 0},
		{name: "half-typed", input: "12.", want: 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, pricing.ParseAmount(tc.input), 1e-9)
		})
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 3, pricing.ParseCount("3"))
	assert.Equal(t, 0, pricing.ParseCount(""))
	assert.Equal(t, 0, pricing.ParseCount("-2"))
	assert.Equal(t, 0, pricing.ParseCount("two"))
}
