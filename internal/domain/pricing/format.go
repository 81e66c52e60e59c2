package pricing

import (
	"fmt"
	"math"
	"strings"
)

// FormatUSD renders an amount the way the quote form shows it: en-US,
// dollar sign, thousands separators, exactly two decimals.
func FormatUSD(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	neg := amount < 0
	abs := math.Abs(amount)

	s := fmt.Sprintf("%.2f", abs)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')

	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}

	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
