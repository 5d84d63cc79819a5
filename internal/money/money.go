// Package money provides currency-precision decimal helpers shared by the
// invoicing and quotation domains. All monetary amounts in the system are
// shopspring decimals rounded to two places with round-half-to-even, so
// repeated recomputation of totals never drifts.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimal places kept for currency amounts.
const Precision = 2

// Round rounds d to currency precision using round-half-to-even.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(Precision)
}

// Parse parses a decimal amount from boundary input (JSON strings, CSV cells).
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return d, nil
}

// IsNegative reports whether d is strictly below zero.
func IsNegative(d decimal.Decimal) bool {
	return d.Sign() < 0
}

// IsPositive reports whether d is strictly above zero.
func IsPositive(d decimal.Decimal) bool {
	return d.Sign() > 0
}

// Max returns the larger of a and b.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}

	return b
}

// String formats d at currency precision, e.g. "672.00".
func String(d decimal.Decimal) string {
	return d.StringFixed(Precision)
}
