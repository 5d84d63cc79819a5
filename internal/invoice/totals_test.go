package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfava/shoproll/internal/invoice"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func flatRates(s string) invoice.TaxRates {
	return invoice.TaxRates{Rate: dec(s)}
}

func TestComputeTotals_FlatRate(t *testing.T) {
	items := []invoice.Item{
		{Type: invoice.ItemTire, Description: "All-season 205/55R16", Quantity: 4, UnitPrice: dec("150.00")},
	}

	totals, err := invoice.ComputeTotals(items, flatRates("0.12"))
	require.NoError(t, err)

	assert.Equal(t, "600.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "72.00", totals.Tax.StringFixed(2))
	assert.Equal(t, "672.00", totals.Total.StringFixed(2))
}

func TestComputeTotals_SplitGSTPST(t *testing.T) {
	items := []invoice.Item{
		{Type: invoice.ItemService, Description: "Alignment", Quantity: 1, UnitPrice: dec("99.99")},
	}

	rates := invoice.TaxRates{
		GST: decPtr("0.05"),
		PST: decPtr("0.07"),
	}

	totals, err := invoice.ComputeTotals(items, rates)
	require.NoError(t, err)

	// 5.00 (GST, 4.9995 rounded) + 7.00 (PST, 6.9993 rounded), each rounded
	// on its own before summing.
	assert.Equal(t, "99.99", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "12.00", totals.Tax.StringFixed(2))
	assert.Equal(t, "111.99", totals.Total.StringFixed(2))
}

func TestComputeTotals_OrderInvariant(t *testing.T) {
	a := invoice.Item{Type: invoice.ItemTire, Quantity: 2, UnitPrice: dec("89.95")}
	b := invoice.Item{Type: invoice.ItemService, Quantity: 1, UnitPrice: dec("35.50")}
	c := invoice.Item{Type: invoice.ItemPart, Quantity: 3, UnitPrice: dec("12.33")}

	first, err := invoice.ComputeTotals([]invoice.Item{a, b, c}, flatRates("0.12"))
	require.NoError(t, err)

	second, err := invoice.ComputeTotals([]invoice.Item{c, a, b}, flatRates("0.12"))
	require.NoError(t, err)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.Tax.Equal(second.Tax))
	assert.True(t, first.Total.Equal(second.Total))
}

func TestComputeTotals_SubtotalPlusTaxEqualsTotal(t *testing.T) {
	items := []invoice.Item{
		{Type: invoice.ItemTire, Quantity: 4, UnitPrice: dec("137.47")},
		{Type: invoice.ItemOther, Quantity: 1, UnitPrice: dec("4.05")},
	}

	totals, err := invoice.ComputeTotals(items, flatRates("0.13"))
	require.NoError(t, err)
	assert.True(t, totals.Subtotal.Add(totals.Tax).Equal(totals.Total))
}

func TestComputeTotals_Validation(t *testing.T) {
	tests := []struct {
		name  string
		items []invoice.Item
		rates invoice.TaxRates
		field string
	}{
		{
			name:  "NoItems",
			items: nil,
			rates: flatRates("0.12"),
			field: "items",
		},
		{
			name: "ZeroQuantity",
			items: []invoice.Item{
				{Type: invoice.ItemTire, Quantity: 0, UnitPrice: dec("10.00")},
			},
			rates: flatRates("0.12"),
			field: "items[0].quantity",
		},
		{
			name: "NegativePrice",
			items: []invoice.Item{
				{Type: invoice.ItemPart, Quantity: 1, UnitPrice: dec("-1.00")},
			},
			rates: flatRates("0.12"),
			field: "items[0].unit_price",
		},
		{
			name: "UnknownType",
			items: []invoice.Item{
				{Type: "coupon", Quantity: 1, UnitPrice: dec("1.00")},
			},
			rates: flatRates("0.12"),
			field: "items[0].type",
		},
		{
			name: "NegativeRate",
			items: []invoice.Item{
				{Type: invoice.ItemTire, Quantity: 1, UnitPrice: dec("1.00")},
			},
			rates: flatRates("-0.05"),
			field: "tax_rate",
		},
		{
			name: "GSTWithoutPST",
			items: []invoice.Item{
				{Type: invoice.ItemTire, Quantity: 1, UnitPrice: dec("1.00")},
			},
			rates: invoice.TaxRates{GST: decPtr("0.05")},
			field: "gst_rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := invoice.ComputeTotals(tt.items, tt.rates)

			var verr *invoice.ValidationError
			require.ErrorAs(t, err, &verr)

			fields := make([]string, len(verr.Violations))
			for i, v := range verr.Violations {
				fields[i] = v.Field
			}

			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestComputeTotals_CollectsAllViolations(t *testing.T) {
	items := []invoice.Item{
		{Type: invoice.ItemTire, Quantity: -2, UnitPrice: dec("-5.00")},
	}

	_, err := invoice.ComputeTotals(items, flatRates("0.12"))

	var verr *invoice.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 2)
}
