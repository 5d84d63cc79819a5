package quotation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mfava/shoproll/internal/invoice"
)

var ErrNotFound = errors.New("quotation not found")

// Status represents the lifecycle state of a quotation. A quotation is
// non-binding until accepted; acceptance makes it convertible into a draft
// invoice exactly once.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusConverted Status = "converted"
)

// Quotation is a priced, non-binding precursor to an invoice. Items and tax
// rates share the invoice shapes so totals come from the same calculator.
type Quotation struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	VehicleID  *uuid.UUID
	Items      []invoice.Item
	Rates      invoice.TaxRates
	Notes      string
	Status     Status
	InvoiceID  *uuid.UUID
	ValidUntil *time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
}

// Totals derives the quoted amounts from the items.
func (q Quotation) Totals() invoice.Totals {
	totals, err := invoice.ComputeTotals(q.Items, q.Rates)
	if err != nil {
		// Items are validated at creation; a stored quotation cannot fail.
		return invoice.Totals{}
	}

	return totals
}

// InvalidStateError reports a lifecycle operation attempted out of order.
type InvalidStateError struct {
	Status Status
	Op     string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s a quotation in status %q", e.Op, e.Status)
}
