package tire

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfava/shoproll/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=tire
type Repository interface {
	CreateTire(ctx context.Context, t *Tire) error
	GetTire(ctx context.Context, id uuid.UUID) (*Tire, error)
	ListTires(ctx context.Context, filter ListFilter) ([]*Tire, error)
	UpdateTire(ctx context.Context, t *Tire) error
	DeleteTire(ctx context.Context, id uuid.UUID) error

	// AdjustQuantity applies delta atomically and fails with
	// ErrInsufficientStock when the result would go below zero.
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error

	BeginImport(ctx context.Context) (ImportTx, error)
}

// ImportTx scopes a stock import to one database transaction so duplicate
// detection and insertion see a consistent inventory.
type ImportTx interface {
	FindBySKUs(ctx context.Context, skus []string) ([]*Tire, error)
	CreateTires(ctx context.Context, tires []*Tire) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Brand     string
	Model     string
	Size      string
	SKU       string
	Condition Condition
	Quantity  int
	UnitPrice decimal.Decimal
}

type ListFilter struct {
	Brand *string
	Size  *string
}

func (p CreateParams) validate() error {
	if strings.TrimSpace(p.Brand) == "" || strings.TrimSpace(p.Size) == "" {
		return errors.New("tire brand and size are required")
	}

	if strings.TrimSpace(p.SKU) == "" {
		return errors.New("tire sku is required")
	}

	if p.Quantity < 0 {
		return errors.New("tire quantity must not be negative")
	}

	if money.IsNegative(p.UnitPrice) {
		return errors.New("tire unit price must not be negative")
	}

	switch p.Condition {
	case ConditionNew, ConditionUsed:
	default:
		return fmt.Errorf("unknown tire condition %q", p.Condition)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Tire, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	t := paramsToTire(params)
	if err := s.repo.CreateTire(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Tire, error) {
	return s.repo.GetTire(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Tire, error) {
	return s.repo.ListTires(ctx, filter)
}

func (s *Service) Update(ctx context.Context, t *Tire) error {
	return s.repo.UpdateTire(ctx, t)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTire(ctx, id)
}

// AdjustStock changes the quantity on hand by delta (negative to consume).
func (s *Service) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	if delta == 0 {
		return nil
	}

	return s.repo.AdjustQuantity(ctx, id, delta)
}

type ImportResult struct {
	Imported  []*Tire
	New       []CreateParams
	Conflicts []Conflict
}

// Conflict pairs an incoming stock line with the inventory row that already
// carries its SKU.
type Conflict struct {
	Incoming CreateParams
	Existing *Tire
}

// ImportBatch inserts a supplier stock sheet inside one transaction. When any
// SKU already exists, nothing is written: the conflicts and the remaining new
// lines are returned for the caller to review and confirm.
func (s *Service) ImportBatch(ctx context.Context, params []CreateParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	for _, p := range params {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("sku %q: %w", p.SKU, err)
		}
	}

	itx, err := s.repo.BeginImport(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	skus := make([]string, len(params))
	for i, p := range params {
		skus[i] = p.SKU
	}

	existing, err := itx.FindBySKUs(ctx, skus)
	if err != nil {
		return nil, fmt.Errorf("find existing skus: %w", err)
	}

	lookup := make(map[string]*Tire, len(existing))
	for _, t := range existing {
		lookup[t.SKU] = t
	}

	var newParams []CreateParams

	var conflicts []Conflict

	for _, p := range params {
		if t, found := lookup[p.SKU]; found {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: t})
			continue
		}

		newParams = append(newParams, p)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: newParams, Conflicts: conflicts}, nil
	}

	tires := paramsToTires(newParams)
	if err := itx.CreateTires(ctx, tires); err != nil {
		return nil, fmt.Errorf("create tires: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return &ImportResult{Imported: tires}, nil
}

// CreateBatch inserts reviewed stock lines without re-running conflict
// detection; callers use it after resolving an ImportBatch conflict report.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Tire, error) {
	if len(params) == 0 {
		return nil, nil
	}

	for _, p := range params {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("sku %q: %w", p.SKU, err)
		}
	}

	itx, err := s.repo.BeginImport(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	tires := paramsToTires(params)
	if err := itx.CreateTires(ctx, tires); err != nil {
		return nil, fmt.Errorf("create tires: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return tires, nil
}

func paramsToTire(p CreateParams) *Tire {
	return &Tire{
		Brand:     strings.TrimSpace(p.Brand),
		Model:     strings.TrimSpace(p.Model),
		Size:      strings.TrimSpace(p.Size),
		SKU:       strings.TrimSpace(p.SKU),
		Condition: p.Condition,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
	}
}

func paramsToTires(params []CreateParams) []*Tire {
	tires := make([]*Tire, len(params))
	for i, p := range params {
		tires[i] = paramsToTire(p)
	}

	return tires
}
