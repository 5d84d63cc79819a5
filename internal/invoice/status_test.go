package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfava/shoproll/internal/invoice"
)

func TestIssue(t *testing.T) {
	inv := pendingInvoice()
	inv.Status = invoice.StatusDraft

	issued, err := invoice.Issue(inv)
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPending, issued.Status)
	assert.Equal(t, invoice.StatusDraft, inv.Status)
}

func TestIssue_OnlyFromDraft(t *testing.T) {
	for _, status := range []invoice.Status{
		invoice.StatusPending,
		invoice.StatusPartiallyPaid,
		invoice.StatusPaid,
		invoice.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			inv := pendingInvoice()
			inv.Status = status

			_, err := invoice.Issue(inv)

			var serr *invoice.InvalidStateError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, status, serr.Status)
		})
	}
}

func TestCancel(t *testing.T) {
	for _, status := range []invoice.Status{
		invoice.StatusDraft,
		invoice.StatusPending,
		invoice.StatusPartiallyPaid,
	} {
		t.Run(string(status), func(t *testing.T) {
			inv := pendingInvoice()
			inv.Status = status

			cancelled, err := invoice.Cancel(inv)
			require.NoError(t, err)
			assert.Equal(t, invoice.StatusCancelled, cancelled.Status)
		})
	}
}

func TestCancel_PaidAndCancelledRejected(t *testing.T) {
	for _, status := range []invoice.Status{invoice.StatusPaid, invoice.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			inv := pendingInvoice()
			inv.Status = status

			_, err := invoice.Cancel(inv)

			var serr *invoice.InvalidStateError
			assert.ErrorAs(t, err, &serr)
		})
	}
}

// Deriving status twice over the same ledger yields the same state: the
// second payment of zero effect is simulated by re-adding and checking the
// transition landed where the ledger says it should.
func TestStatus_Reconciliation(t *testing.T) {
	inv := pendingInvoice()

	paid, err := invoice.AddPayment(inv, payment("672.00"))
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, paid.Status)

	// A further payment on a paid invoice keeps it paid and marks it overpaid.
	over, err := invoice.AddPayment(paid, payment("0.01"))
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, over.Status)
	assert.True(t, over.Overpaid())
}
