package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfava/shoproll/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanInvoice reads an invoice header row.
// Expected column order: id, customer_id, vehicle_id, tax_rate, gst_rate, pst_rate, notes, status, version, created_at, updated_at, deleted_at
func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var statusStr string

	var notes sql.NullString

	var taxRate string

	var gstRate, pstRate sql.NullString

	if err := s.Scan(
		&inv.ID, &inv.CustomerID, &inv.VehicleID, &taxRate, &gstRate, &pstRate,
		&notes, &statusStr, &inv.Version,
		&inv.CreatedAt, &inv.UpdatedAt, &inv.DeletedAt,
	); err != nil {
		return nil, err
	}

	inv.Status = invoice.Status(statusStr)
	inv.Notes = notes.String

	rate, err := decimal.NewFromString(taxRate)
	if err != nil {
		return nil, fmt.Errorf("parsing tax rate: %w", err)
	}

	inv.Rates.Rate = rate

	if gstRate.Valid {
		d, err := decimal.NewFromString(gstRate.String)
		if err != nil {
			return nil, fmt.Errorf("parsing gst rate: %w", err)
		}

		inv.Rates.GST = &d
	}

	if pstRate.Valid {
		d, err := decimal.NewFromString(pstRate.String)
		if err != nil {
			return nil, fmt.Errorf("parsing pst rate: %w", err)
		}

		inv.Rates.PST = &d
	}

	return &inv, nil
}

const selectInvoiceColumns = `
	id, customer_id, vehicle_id, tax_rate, gst_rate, pst_rate,
	notes, status, version, created_at, updated_at, deleted_at
`

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	var gst, pst *string
	if inv.Rates.GST != nil {
		s := inv.Rates.GST.String()
		gst = &s
	}

	if inv.Rates.PST != nil {
		s := inv.Rates.PST.String()
		pst = &s
	}

	query := `
		INSERT INTO invoices (customer_id, vehicle_id, tax_rate, gst_rate, pst_rate, notes, status, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		inv.CustomerID,
		inv.VehicleID,
		inv.Rates.Rate.String(),
		gst,
		pst,
		inv.Notes,
		inv.Status,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	itemQuery := `
		INSERT INTO invoice_items (id, invoice_id, position, item_type, description, quantity, unit_price, tire_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for i, it := range inv.Items {
		if _, err := dbTx.ExecContext(ctx, itemQuery,
			it.ID, inv.ID, i, it.Type, it.Description, it.Quantity, it.UnitPrice.String(), it.TireID,
		); err != nil {
			return fmt.Errorf("creating invoice item: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE id = $1 AND deleted_at IS NULL`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	if err := s.loadChildren(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Store) ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.CustomerID != nil {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)

		args = append(args, *filter.CustomerID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invs []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invs = append(invs, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	for _, inv := range invs {
		if err := s.loadChildren(ctx, inv); err != nil {
			return nil, err
		}
	}

	return invs, nil
}

func (s *Store) loadChildren(ctx context.Context, inv *invoice.Invoice) error {
	items, err := s.loadItems(ctx, inv.ID)
	if err != nil {
		return err
	}

	payments, err := s.loadPayments(ctx, inv.ID)
	if err != nil {
		return err
	}

	inv.Items = items
	inv.Payments = payments

	return nil
}

func (s *Store) loadItems(ctx context.Context, invoiceID uuid.UUID) ([]invoice.Item, error) {
	query := `
		SELECT id, item_type, description, quantity, unit_price, tire_id
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY position ASC
	`

	rows, err := s.db.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("loading invoice items: %w", err)
	}
	defer rows.Close()

	var items []invoice.Item

	for rows.Next() {
		var it invoice.Item

		var typeStr, priceStr string

		if err := rows.Scan(&it.ID, &typeStr, &it.Description, &it.Quantity, &priceStr, &it.TireID); err != nil {
			return nil, fmt.Errorf("scanning invoice item: %w", err)
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("parsing unit price: %w", err)
		}

		it.Type = invoice.ItemType(typeStr)
		it.UnitPrice = price

		items = append(items, it)
	}

	return items, rows.Err()
}

func (s *Store) loadPayments(ctx context.Context, invoiceID uuid.UUID) ([]invoice.PaymentEntry, error) {
	query := `
		SELECT id, method, amount, recorded_at
		FROM invoice_payments
		WHERE invoice_id = $1
		ORDER BY recorded_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("loading payments: %w", err)
	}
	defer rows.Close()

	var payments []invoice.PaymentEntry

	for rows.Next() {
		var p invoice.PaymentEntry

		var methodStr, amountStr string

		if err := rows.Scan(&p.ID, &methodStr, &amountStr, &p.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("parsing payment amount: %w", err)
		}

		p.Method = invoice.Method(methodStr)
		p.Amount = amount

		payments = append(payments, p)
	}

	return payments, rows.Err()
}

// UpdateStatus applies a status transition guarded by the invoice version.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, version int64, status invoice.Status) error {
	query := `
		UPDATE invoices
		SET status = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND version = $3 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, status, id, version)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	return s.checkGuardedWrite(ctx, res, id)
}

// RecordPayment inserts a ledger entry and moves the invoice to its
// re-derived status in one transaction, guarded by version.
func (s *Store) RecordPayment(ctx context.Context, id uuid.UUID, version int64, entry invoice.PaymentEntry, status invoice.Status) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	invoiceQuery := `
		UPDATE invoices
		SET status = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND version = $3 AND deleted_at IS NULL
	`

	res, err := dbTx.ExecContext(ctx, invoiceQuery, status, id, version)
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update: %w", err)
	}

	if affected == 0 {
		return s.missingOrStale(ctx, id)
	}

	paymentQuery := `
		INSERT INTO invoice_payments (id, invoice_id, method, amount, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := dbTx.ExecContext(ctx, paymentQuery,
		entry.ID, id, entry.Method, entry.Amount.String(), entry.RecordedAt,
	); err != nil {
		return fmt.Errorf("inserting payment: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE invoices
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}

func (s *Store) checkGuardedWrite(ctx context.Context, res sql.Result, id uuid.UUID) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update: %w", err)
	}

	if affected == 0 {
		return s.missingOrStale(ctx, id)
	}

	return nil
}

// missingOrStale distinguishes a vanished invoice from a concurrent edit.
func (s *Store) missingOrStale(ctx context.Context, id uuid.UUID) error {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM invoices WHERE id = $1 AND deleted_at IS NULL)`
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return fmt.Errorf("checking invoice existence: %w", err)
	}

	if !exists {
		return invoice.ErrNotFound
	}

	return invoice.ErrVersionConflict
}
