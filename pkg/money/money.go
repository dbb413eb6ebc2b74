package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a monetary or quantity string into a decimal. Legacy ledgers
// store amounts as free-form strings, so parsing is lenient: empty values,
// stray whitespace and comma decimal separators are tolerated, and anything
// unparseable comes back as zero rather than an error.
func Parse(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Round2 rounds to two decimal places, the precision every stored amount uses.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders an amount as a plain fixed two-decimal string ("1500.00").
// Locale formatting (grouping, currency symbols) belongs to the client.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// IsZero reports whether the amount is exactly zero after rounding.
func IsZero(d decimal.Decimal) bool {
	return Round2(d).IsZero()
}
