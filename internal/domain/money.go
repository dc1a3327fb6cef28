package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders a monetary value the way the UI shows it, e.g.
// "R$ 1.234,56". Rounding to two places happens here, at the presentation
// edge; internal arithmetic keeps full precision.
func FormatBRL(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	sb.WriteString("R$ ")

	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte(',')
	sb.WriteString(fracPart)

	return sb.String()
}
