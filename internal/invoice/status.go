package invoice

// Issue moves a draft invoice to pending, making it payable. Issuance is an
// explicit caller action; payment activity never pulls an invoice out of
// draft on its own.
func Issue(inv Invoice) (Invoice, error) {
	if inv.Status != StatusDraft {
		return Invoice{}, &InvalidStateError{Status: inv.Status, Op: "issue"}
	}

	next := inv.clone()
	next.Status = StatusPending

	return next, nil
}

// Cancel moves the invoice to its terminal cancelled state and freezes the
// ledger. A fully paid invoice cannot be cancelled; it needs a refund flow
// handled upstream.
func Cancel(inv Invoice) (Invoice, error) {
	switch inv.Status {
	case StatusPaid, StatusCancelled:
		return Invoice{}, &InvalidStateError{Status: inv.Status, Op: "cancel"}
	}

	next := inv.clone()
	next.Status = StatusCancelled

	return next, nil
}

// reconciledStatus derives the post-issuance status from the ledger.
// Draft and cancelled are sticky: they change only through Issue and Cancel.
// The derivation is idempotent, so re-running it on an unchanged ledger is a
// no-op.
func (inv Invoice) reconciledStatus() Status {
	switch inv.Status {
	case StatusDraft, StatusCancelled:
		return inv.Status
	}

	paid := inv.AmountPaid()
	if paid.Sign() == 0 {
		return StatusPending
	}

	if paid.LessThan(inv.Totals().Total) {
		return StatusPartiallyPaid
	}

	return StatusPaid
}
