package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, error)

	// UpdateStatus and RecordPayment are version-guarded: they fail with
	// ErrVersionConflict when the stored invoice has moved past version.
	UpdateStatus(ctx context.Context, id uuid.UUID, version int64, status Status) error
	RecordPayment(ctx context.Context, id uuid.UUID, version int64, entry PaymentEntry, status Status) error

	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ItemParams struct {
	Type        ItemType
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	TireID      *uuid.UUID
}

type CreateParams struct {
	CustomerID uuid.UUID
	VehicleID  *uuid.UUID
	Items      []ItemParams
	Rates      TaxRates
	Notes      string
}

type PaymentParams struct {
	Method     Method
	Amount     decimal.Decimal
	RecordedAt *time.Time
}

type ListFilter struct {
	Status     *Status
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// Create validates params and persists a new draft invoice.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	items := make([]Item, len(params.Items))
	for i, p := range params.Items {
		items[i] = Item{
			ID:          uuid.New(),
			Type:        p.Type,
			Description: p.Description,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice,
			TireID:      p.TireID,
		}
	}

	var violations []Violation
	if params.CustomerID == uuid.Nil {
		violations = append(violations, Violation{Field: "customer_id", Message: "is required"})
	}

	violations = append(violations, validateItems(items)...)
	violations = append(violations, validateRates(params.Rates)...)

	if err := validationError(violations); err != nil {
		return nil, err
	}

	inv := &Invoice{
		CustomerID: params.CustomerID,
		VehicleID:  params.VehicleID,
		Items:      items,
		Rates:      params.Rates,
		Notes:      params.Notes,
		Status:     StatusDraft,
	}

	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}

	return inv, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}

// Issue transitions a draft invoice to pending and persists the new status.
func (s *Service) Issue(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.transition(ctx, id, Issue)
}

// Cancel transitions the invoice to its terminal cancelled state.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.transition(ctx, id, Cancel)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, fn func(Invoice) (Invoice, error)) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := fn(*inv)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, inv.Version, next.Status); err != nil {
		return nil, fmt.Errorf("updating status: %w", err)
	}

	return s.repo.GetInvoice(ctx, id)
}

// AddPayment appends a ledger entry and persists it together with the
// re-derived status in one guarded write.
func (s *Service) AddPayment(ctx context.Context, id uuid.UUID, params PaymentParams) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := PaymentEntry{
		ID:         uuid.New(),
		Method:     params.Method,
		Amount:     params.Amount,
		RecordedAt: time.Now().UTC(),
	}
	if params.RecordedAt != nil {
		entry.RecordedAt = *params.RecordedAt
	}

	next, err := AddPayment(*inv, entry)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RecordPayment(ctx, id, inv.Version, entry, next.Status); err != nil {
		return nil, fmt.Errorf("recording payment: %w", err)
	}

	return s.repo.GetInvoice(ctx, id)
}

// Delete soft-deletes an invoice. Only drafts can be deleted; anything issued
// is part of the books and must be cancelled instead.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return err
	}

	if inv.Status != StatusDraft {
		return &InvalidStateError{Status: inv.Status, Op: "delete"}
	}

	return s.repo.DeleteInvoice(ctx, id)
}
