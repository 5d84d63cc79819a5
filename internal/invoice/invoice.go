package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfava/shoproll/internal/money"
)

// ItemType classifies a billable line item.
type ItemType string

const (
	ItemTire    ItemType = "tire"
	ItemService ItemType = "service"
	ItemPart    ItemType = "part"
	ItemOther   ItemType = "other"
)

// Method is how a payment was made.
type Method string

const (
	MethodCash       Method = "cash"
	MethodCreditCard Method = "credit_card"
	MethodDebitCard  Method = "debit_card"
	MethodCheck      Method = "check"
	MethodETransfer  Method = "e_transfer"
	MethodFinancing  Method = "financing"
)

// Status represents the lifecycle state of an invoice.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusPending       Status = "pending"
	StatusPartiallyPaid Status = "partially_paid"
	StatusPaid          Status = "paid"
	StatusCancelled     Status = "cancelled"
)

// Item is one billable line on an invoice. Items are immutable once the
// invoice is issued.
type Item struct {
	ID          uuid.UUID
	Type        ItemType
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	TireID      *uuid.UUID
}

// LineTotal is quantity × unit price, unrounded.
func (it Item) LineTotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// PaymentEntry is one recorded payment applied toward an invoice. The ledger
// is append-only; corrections are made by recording a compensating entry, not
// by editing history.
type PaymentEntry struct {
	ID         uuid.UUID
	Method     Method
	Amount     decimal.Decimal
	RecordedAt time.Time
}

// TaxRates describes how tax applies to an invoice. When both GST and PST are
// set, each component is computed and rounded independently; otherwise the
// flat Rate applies to the whole subtotal.
type TaxRates struct {
	Rate decimal.Decimal
	GST  *decimal.Decimal
	PST  *decimal.Decimal
}

func (r TaxRates) split() bool {
	return r.GST != nil && r.PST != nil
}

// Invoice is a value snapshot of a billable record. Mutating operations
// return a new snapshot; callers persist the result and use Version for
// optimistic concurrency at the storage boundary.
type Invoice struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	VehicleID  *uuid.UUID
	Items      []Item
	Rates      TaxRates
	Notes      string
	Status     Status
	Payments   []PaymentEntry
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
}

// clone returns a deep copy so ledger and status operations never alias the
// caller's slices.
func (inv Invoice) clone() Invoice {
	next := inv

	next.Items = make([]Item, len(inv.Items))
	copy(next.Items, inv.Items)

	next.Payments = make([]PaymentEntry, len(inv.Payments))
	copy(next.Payments, inv.Payments)

	return next
}

// AmountPaid is the sum of all ledger entries.
func (inv Invoice) AmountPaid() decimal.Decimal {
	paid := decimal.Zero
	for _, p := range inv.Payments {
		paid = paid.Add(p.Amount)
	}

	return paid
}

// BalanceDue is the remaining amount owed, never negative.
func (inv Invoice) BalanceDue() decimal.Decimal {
	return money.Max(decimal.Zero, inv.Totals().Total.Sub(inv.AmountPaid()))
}

// Overpaid reports whether cumulative payments exceed the invoice total.
// Overpayment is surfaced, never clamped; refund handling is upstream.
func (inv Invoice) Overpaid() bool {
	return inv.AmountPaid().GreaterThan(inv.Totals().Total)
}
