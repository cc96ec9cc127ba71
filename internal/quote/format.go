package quote

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatBRL renders a monetary value the pt-BR way: "R$ 1.234,56".
// Rounding to two places happens here and nowhere earlier.
func FormatBRL(v decimal.Decimal) string {
	s := v.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := "R$ " + b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatAmount renders a plain two-decimal amount, "R$ 180.00", the form
// the rental and scenography documents use.
func FormatAmount(v decimal.Decimal) string {
	return "R$ " + v.StringFixed(2)
}

// FormatDate renders a date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
