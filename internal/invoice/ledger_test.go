package invoice_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfava/shoproll/internal/invoice"
)

// pendingInvoice builds an issued invoice with a 672.00 total
// (4 tires at 150.00 plus 12% tax).
func pendingInvoice() invoice.Invoice {
	return invoice.Invoice{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Items: []invoice.Item{
			{ID: uuid.New(), Type: invoice.ItemTire, Description: "Winter 195/65R15", Quantity: 4, UnitPrice: dec("150.00")},
		},
		Rates:  invoice.TaxRates{Rate: dec("0.12")},
		Status: invoice.StatusPending,
	}
}

func payment(amount string) invoice.PaymentEntry {
	return invoice.PaymentEntry{
		ID:         uuid.New(),
		Method:     invoice.MethodCash,
		Amount:     dec(amount),
		RecordedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestAddPayment_PartialThenPaid(t *testing.T) {
	inv := pendingInvoice()

	inv1, err := invoice.AddPayment(inv, payment("200.00"))
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPartiallyPaid, inv1.Status)
	assert.Equal(t, "200.00", inv1.AmountPaid().StringFixed(2))
	assert.Equal(t, "472.00", inv1.BalanceDue().StringFixed(2))

	inv2, err := invoice.AddPayment(inv1, payment("200.00"))
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPartiallyPaid, inv2.Status)
	assert.Equal(t, "272.00", inv2.BalanceDue().StringFixed(2))

	inv3, err := invoice.AddPayment(inv2, payment("272.00"))
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, inv3.Status)
	assert.Equal(t, "0.00", inv3.BalanceDue().StringFixed(2))
	assert.False(t, inv3.Overpaid())
}

func TestAddPayment_Overpayment(t *testing.T) {
	inv := pendingInvoice()

	next, err := invoice.AddPayment(inv, payment("700.00"))
	require.NoError(t, err)

	assert.Equal(t, invoice.StatusPaid, next.Status)
	assert.True(t, next.Overpaid())
	assert.Equal(t, "0.00", next.BalanceDue().StringFixed(2))
	assert.Equal(t, "700.00", next.AmountPaid().StringFixed(2))
}

func TestAddPayment_DoesNotMutateInput(t *testing.T) {
	inv := pendingInvoice()

	_, err := invoice.AddPayment(inv, payment("100.00"))
	require.NoError(t, err)

	assert.Empty(t, inv.Payments)
	assert.Equal(t, invoice.StatusPending, inv.Status)
}

func TestAddPayment_Cancelled(t *testing.T) {
	inv := pendingInvoice()
	inv.Status = invoice.StatusCancelled

	_, err := invoice.AddPayment(inv, payment("50.00"))

	var serr *invoice.InvalidStateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, invoice.StatusCancelled, serr.Status)
	assert.Empty(t, inv.Payments)
}

func TestAddPayment_Draft(t *testing.T) {
	inv := pendingInvoice()
	inv.Status = invoice.StatusDraft

	_, err := invoice.AddPayment(inv, payment("50.00"))

	var serr *invoice.InvalidStateError
	assert.ErrorAs(t, err, &serr)
}

func TestAddPayment_Validation(t *testing.T) {
	tests := []struct {
		name  string
		entry invoice.PaymentEntry
	}{
		{
			name:  "ZeroAmount",
			entry: invoice.PaymentEntry{Method: invoice.MethodCash, Amount: dec("0")},
		},
		{
			name:  "NegativeAmount",
			entry: invoice.PaymentEntry{Method: invoice.MethodCheck, Amount: dec("-10.00")},
		},
		{
			name:  "UnknownMethod",
			entry: invoice.PaymentEntry{Method: "barter", Amount: dec("10.00")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := invoice.AddPayment(pendingInvoice(), tt.entry)

			var verr *invoice.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestAddPayment_StampsDefaults(t *testing.T) {
	entry := invoice.PaymentEntry{Method: invoice.MethodETransfer, Amount: dec("25.00")}

	next, err := invoice.AddPayment(pendingInvoice(), entry)
	require.NoError(t, err)
	require.Len(t, next.Payments, 1)

	assert.NotEqual(t, uuid.Nil, next.Payments[0].ID)
	assert.False(t, next.Payments[0].RecordedAt.IsZero())
}

func TestAmountPaid_OrderIndependent(t *testing.T) {
	inv := pendingInvoice()

	forward, err := invoice.AddPayment(inv, payment("100.00"))
	require.NoError(t, err)
	forward, err = invoice.AddPayment(forward, payment("350.00"))
	require.NoError(t, err)

	reversed, err := invoice.AddPayment(inv, payment("350.00"))
	require.NoError(t, err)
	reversed, err = invoice.AddPayment(reversed, payment("100.00"))
	require.NoError(t, err)

	assert.True(t, forward.AmountPaid().Equal(reversed.AmountPaid()))
	assert.Equal(t, forward.Status, reversed.Status)
}
