// Package money implements the canonical decimal-comma money handling used
// across the PDV: input masks applied to raw field text, parsing of masked
// values into decimals, and the profit margin derivation.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// MaskDigits strips every non-digit character from s. Used for quantity-like
// fields: invalid characters are dropped silently, never reported.
func MaskDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// MaskMoney reformats raw field text into the canonical decimal-comma
// two-place currency string. The transform operates on the digit stream only
// and is idempotent: MaskMoney(MaskMoney(s)) == MaskMoney(s).
//
//	""     → "0,00"
//	"5"    → "0,05"
//	"50"   → "0,50"
//	"1050" → "10,50"
func MaskMoney(s string) string {
	digits := MaskDigits(s)
	switch len(digits) {
	case 0:
		return "0,00"
	case 1:
		return "0,0" + digits
	case 2:
		return "0," + digits
	default:
		return digits[:len(digits)-2] + "," + digits[len(digits)-2:]
	}
}

// ParseAmount parses a decimal-comma money string ("10,50") into a decimal.
// Empty or non-numeric input is an error; callers decide whether that means
// "treat as zero" (live margin display) or "reject" (form validation).
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}

// Margin derives the profit margin percentage from cost and sale price:
// (sale − cost) / cost × 100 when cost > 0, zero otherwise. Pure function;
// a negative result is legitimate (selling below cost).
func Margin(cost, sale decimal.Decimal) decimal.Decimal {
	if cost.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return sale.Sub(cost).Div(cost).Mul(hundred)
}

// Format renders d as a two-place decimal-comma string ("10,50").
func Format(d decimal.Decimal) string {
	return strings.ReplaceAll(d.StringFixed(2), ".", ",")
}

// FormatMargin renders a margin percentage for display ("60,00%").
func FormatMargin(d decimal.Decimal) string {
	return Format(d) + "%"
}

// FormatBRL renders d as Brazilian currency with thousand separators,
// e.g. 1234.5 → "R$ 1.234,56". Used by the dashboard cards.
func FormatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s[:len(s)-3]
	decPart := s[len(s)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + decPart
	if neg {
		out = "R$ -" + b.String() + "," + decPart
	}
	return out
}
