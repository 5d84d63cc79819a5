package invoice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mfava/shoproll/internal/money"
)

// Totals holds the derived amounts for an invoice. Subtotal + Tax == Total
// at currency precision.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals derives subtotal, tax, and total from line items. It is pure
// and order-invariant: reordering items never changes the result. Items with
// a non-positive quantity or negative unit price are rejected with a
// ValidationError before anything is summed.
func ComputeTotals(items []Item, rates TaxRates) (Totals, error) {
	if err := validationError(validateItems(items)); err != nil {
		return Totals{}, err
	}

	if err := validationError(validateRates(rates)); err != nil {
		return Totals{}, err
	}

	return computeTotals(items, rates), nil
}

// computeTotals assumes items and rates have already been validated.
func computeTotals(items []Item, rates TaxRates) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal())
	}

	subtotal = money.Round(subtotal)

	var tax decimal.Decimal
	if rates.split() {
		// GST and PST are rounded independently, matching how the two
		// taxes appear as separate lines on the printed invoice.
		gst := money.Round(subtotal.Mul(*rates.GST))
		pst := money.Round(subtotal.Mul(*rates.PST))
		tax = gst.Add(pst)
	} else {
		tax = money.Round(subtotal.Mul(rates.Rate))
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Totals derives the invoice's amounts from its items. Items are validated
// when the invoice is created, so derivation cannot fail afterwards.
func (inv Invoice) Totals() Totals {
	return computeTotals(inv.Items, inv.Rates)
}

func validateItems(items []Item) []Violation {
	var violations []Violation

	if len(items) == 0 {
		violations = append(violations, Violation{Field: "items", Message: "at least one item is required"})
	}

	for i, it := range items {
		field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }

		switch it.Type {
		case ItemTire, ItemService, ItemPart, ItemOther:
		default:
			violations = append(violations, Violation{Field: field("type"), Message: fmt.Sprintf("unknown item type %q", it.Type)})
		}

		if it.Quantity <= 0 {
			violations = append(violations, Violation{Field: field("quantity"), Message: "must be positive"})
		}

		if money.IsNegative(it.UnitPrice) {
			violations = append(violations, Violation{Field: field("unit_price"), Message: "must not be negative"})
		}
	}

	return violations
}

func validateRates(rates TaxRates) []Violation {
	var violations []Violation

	if money.IsNegative(rates.Rate) {
		violations = append(violations, Violation{Field: "tax_rate", Message: "must not be negative"})
	}

	if (rates.GST == nil) != (rates.PST == nil) {
		violations = append(violations, Violation{Field: "gst_rate", Message: "gst and pst rates must be set together"})
	}

	if rates.GST != nil && money.IsNegative(*rates.GST) {
		violations = append(violations, Violation{Field: "gst_rate", Message: "must not be negative"})
	}

	if rates.PST != nil && money.IsNegative(*rates.PST) {
		violations = append(violations, Violation{Field: "pst_rate", Message: "must not be negative"})
	}

	return violations
}
