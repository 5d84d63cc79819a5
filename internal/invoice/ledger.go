package invoice

import (
	"time"

	"github.com/google/uuid"

	"github.com/mfava/shoproll/internal/money"
)

// AddPayment appends entry to the invoice's ledger and returns the updated
// snapshot with its status re-derived. The input invoice is not mutated.
//
// Payments are only accepted after issuance: a draft has not been handed to
// the customer yet and a cancelled invoice's ledger is frozen. Overpayment is
// allowed and surfaces through Overpaid().
func AddPayment(inv Invoice, entry PaymentEntry) (Invoice, error) {
	switch inv.Status {
	case StatusCancelled, StatusDraft:
		return Invoice{}, &InvalidStateError{Status: inv.Status, Op: "record a payment against"}
	}

	if err := validationError(validatePayment(entry)); err != nil {
		return Invoice{}, err
	}

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now().UTC()
	}

	next := inv.clone()
	next.Payments = append(next.Payments, entry)
	next.Status = next.reconciledStatus()

	return next, nil
}

func validatePayment(entry PaymentEntry) []Violation {
	var violations []Violation

	switch entry.Method {
	case MethodCash, MethodCreditCard, MethodDebitCard, MethodCheck, MethodETransfer, MethodFinancing:
	default:
		violations = append(violations, Violation{Field: "method", Message: "unknown payment method"})
	}

	if !money.IsPositive(entry.Amount) {
		violations = append(violations, Violation{Field: "amount", Message: "must be positive"})
	}

	return violations
}
