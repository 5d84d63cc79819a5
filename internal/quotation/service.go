package quotation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mfava/shoproll/internal/invoice"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=quotation
type Repository interface {
	CreateQuotation(ctx context.Context, q *Quotation) error
	GetQuotation(ctx context.Context, id uuid.UUID) (*Quotation, error)
	ListQuotations(ctx context.Context, filter ListFilter) ([]*Quotation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	MarkConverted(ctx context.Context, id, invoiceID uuid.UUID) error
	DeleteQuotation(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo     Repository
	invoices *invoice.Service
}

func NewService(repo Repository, invoices *invoice.Service) *Service {
	return &Service{repo: repo, invoices: invoices}
}

type CreateParams struct {
	CustomerID uuid.UUID
	VehicleID  *uuid.UUID
	Items      []invoice.ItemParams
	Rates      invoice.TaxRates
	Notes      string
	ValidUntil *time.Time
}

type ListFilter struct {
	Status     *Status
	CustomerID *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Quotation, error) {
	items := make([]invoice.Item, len(params.Items))
	for i, p := range params.Items {
		items[i] = invoice.Item{
			ID:          uuid.New(),
			Type:        p.Type,
			Description: p.Description,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice,
			TireID:      p.TireID,
		}
	}

	// The invoice calculator doubles as the validator for items and rates.
	if _, err := invoice.ComputeTotals(items, params.Rates); err != nil {
		return nil, err
	}

	if params.CustomerID == uuid.Nil {
		return nil, &invoice.ValidationError{Violations: []invoice.Violation{
			{Field: "customer_id", Message: "is required"},
		}}
	}

	q := &Quotation{
		CustomerID: params.CustomerID,
		VehicleID:  params.VehicleID,
		Items:      items,
		Rates:      params.Rates,
		Notes:      params.Notes,
		Status:     StatusDraft,
		ValidUntil: params.ValidUntil,
	}
	if err := s.repo.CreateQuotation(ctx, q); err != nil {
		return nil, fmt.Errorf("creating quotation: %w", err)
	}

	return q, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Quotation, error) {
	return s.repo.GetQuotation(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Quotation, error) {
	return s.repo.ListQuotations(ctx, filter)
}

// Send marks a draft quotation as delivered to the customer.
func (s *Service) Send(ctx context.Context, id uuid.UUID) (*Quotation, error) {
	return s.transition(ctx, id, "send", StatusSent, StatusDraft)
}

// Accept records the customer's acceptance of a sent quotation.
func (s *Service) Accept(ctx context.Context, id uuid.UUID) (*Quotation, error) {
	return s.transition(ctx, id, "accept", StatusAccepted, StatusSent)
}

// Decline records the customer's rejection of a sent quotation.
func (s *Service) Decline(ctx context.Context, id uuid.UUID) (*Quotation, error) {
	return s.transition(ctx, id, "decline", StatusDeclined, StatusSent)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, op string, to Status, from ...Status) (*Quotation, error) {
	q, err := s.repo.GetQuotation(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, f := range from {
		if q.Status == f {
			allowed = true
			break
		}
	}

	if !allowed {
		return nil, &InvalidStateError{Status: q.Status, Op: op}
	}

	if err := s.repo.UpdateStatus(ctx, id, to); err != nil {
		return nil, fmt.Errorf("updating status: %w", err)
	}

	q.Status = to

	return q, nil
}

// Convert turns an accepted quotation into a draft invoice carrying the same
// items and tax rates. A quotation converts at most once; the resulting
// invoice id is recorded on it.
func (s *Service) Convert(ctx context.Context, id uuid.UUID) (*Quotation, *invoice.Invoice, error) {
	q, err := s.repo.GetQuotation(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if q.Status != StatusAccepted {
		return nil, nil, &InvalidStateError{Status: q.Status, Op: "convert"}
	}

	items := make([]invoice.ItemParams, len(q.Items))
	for i, it := range q.Items {
		items[i] = invoice.ItemParams{
			Type:        it.Type,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TireID:      it.TireID,
		}
	}

	inv, err := s.invoices.Create(ctx, invoice.CreateParams{
		CustomerID: q.CustomerID,
		VehicleID:  q.VehicleID,
		Items:      items,
		Rates:      q.Rates,
		Notes:      q.Notes,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating invoice from quotation: %w", err)
	}

	if err := s.repo.MarkConverted(ctx, id, inv.ID); err != nil {
		return nil, nil, fmt.Errorf("marking quotation converted: %w", err)
	}

	q.Status = StatusConverted
	invID := inv.ID
	q.InvoiceID = &invID

	return q, inv, nil
}

// Delete soft-deletes a quotation; converted quotations stay on record.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	q, err := s.repo.GetQuotation(ctx, id)
	if err != nil {
		return err
	}

	if q.Status == StatusConverted {
		return &InvalidStateError{Status: q.Status, Op: "delete"}
	}

	return s.repo.DeleteQuotation(ctx, id)
}
