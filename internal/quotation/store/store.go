package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfava/shoproll/internal/invoice"
	"github.com/mfava/shoproll/internal/quotation"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuotation(s scanner) (*quotation.Quotation, error) {
	var q quotation.Quotation

	var statusStr, taxRate string

	var notes sql.NullString

	var gstRate, pstRate sql.NullString

	if err := s.Scan(
		&q.ID, &q.CustomerID, &q.VehicleID, &taxRate, &gstRate, &pstRate,
		&notes, &statusStr, &q.InvoiceID, &q.ValidUntil,
		&q.CreatedAt, &q.UpdatedAt, &q.DeletedAt,
	); err != nil {
		return nil, err
	}

	q.Status = quotation.Status(statusStr)
	q.Notes = notes.String

	rate, err := decimal.NewFromString(taxRate)
	if err != nil {
		return nil, fmt.Errorf("parsing tax rate: %w", err)
	}

	q.Rates.Rate = rate

	if gstRate.Valid {
		d, err := decimal.NewFromString(gstRate.String)
		if err != nil {
			return nil, fmt.Errorf("parsing gst rate: %w", err)
		}

		q.Rates.GST = &d
	}

	if pstRate.Valid {
		d, err := decimal.NewFromString(pstRate.String)
		if err != nil {
			return nil, fmt.Errorf("parsing pst rate: %w", err)
		}

		q.Rates.PST = &d
	}

	return &q, nil
}

const selectQuotationColumns = `
	id, customer_id, vehicle_id, tax_rate, gst_rate, pst_rate,
	notes, status, invoice_id, valid_until, created_at, updated_at, deleted_at
`

func (s *Store) CreateQuotation(ctx context.Context, q *quotation.Quotation) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	var gst, pst *string
	if q.Rates.GST != nil {
		s := q.Rates.GST.String()
		gst = &s
	}

	if q.Rates.PST != nil {
		s := q.Rates.PST.String()
		pst = &s
	}

	query := `
		INSERT INTO quotations (customer_id, vehicle_id, tax_rate, gst_rate, pst_rate, notes, status, valid_until, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		q.CustomerID, q.VehicleID, q.Rates.Rate.String(), gst, pst, q.Notes, q.Status, q.ValidUntil,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating quotation: %w", err)
	}

	itemQuery := `
		INSERT INTO quotation_items (id, quotation_id, position, item_type, description, quantity, unit_price, tire_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for i, it := range q.Items {
		if _, err := dbTx.ExecContext(ctx, itemQuery,
			it.ID, q.ID, i, it.Type, it.Description, it.Quantity, it.UnitPrice.String(), it.TireID,
		); err != nil {
			return fmt.Errorf("creating quotation item: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetQuotation(ctx context.Context, id uuid.UUID) (*quotation.Quotation, error) {
	query := `SELECT ` + selectQuotationColumns + `
		FROM quotations
		WHERE id = $1 AND deleted_at IS NULL`

	q, err := scanQuotation(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, quotation.ErrNotFound
		}

		return nil, fmt.Errorf("getting quotation: %w", err)
	}

	items, err := s.loadItems(ctx, q.ID)
	if err != nil {
		return nil, err
	}

	q.Items = items

	return q, nil
}

func (s *Store) ListQuotations(ctx context.Context, filter quotation.ListFilter) ([]*quotation.Quotation, error) {
	query := `SELECT ` + selectQuotationColumns + `
		FROM quotations
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

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing quotations: %w", err)
	}
	defer rows.Close()

	var quotes []*quotation.Quotation

	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning quotation: %w", err)
		}

		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotation rows: %w", err)
	}

	for _, q := range quotes {
		items, err := s.loadItems(ctx, q.ID)
		if err != nil {
			return nil, err
		}

		q.Items = items
	}

	return quotes, nil
}

func (s *Store) loadItems(ctx context.Context, quotationID uuid.UUID) ([]invoice.Item, error) {
	query := `
		SELECT id, item_type, description, quantity, unit_price, tire_id
		FROM quotation_items
		WHERE quotation_id = $1
		ORDER BY position ASC
	`

	rows, err := s.db.QueryContext(ctx, query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("loading quotation items: %w", err)
	}
	defer rows.Close()

	var items []invoice.Item

	for rows.Next() {
		var it invoice.Item

		var typeStr, priceStr string

		if err := rows.Scan(&it.ID, &typeStr, &it.Description, &it.Quantity, &priceStr, &it.TireID); err != nil {
			return nil, fmt.Errorf("scanning quotation item: %w", err)
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

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status quotation.Status) error {
	query := `
		UPDATE quotations
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating quotation status: %w", err)
	}

	return nil
}

// MarkConverted links the quotation to its invoice and closes it out. The
// status guard in the WHERE clause makes double conversion a no-op at the
// storage level as well.
func (s *Store) MarkConverted(ctx context.Context, id, invoiceID uuid.UUID) error {
	query := `
		UPDATE quotations
		SET status = $1, invoice_id = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, quotation.StatusConverted, invoiceID, id, quotation.StatusAccepted)
	if err != nil {
		return fmt.Errorf("marking quotation converted: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking conversion: %w", err)
	}

	if affected == 0 {
		return quotation.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteQuotation(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE quotations
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting quotation: %w", err)
	}

	return nil
}
