package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfava/shoproll/internal/tire"
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

func scanTire(s scanner) (*tire.Tire, error) {
	var t tire.Tire

	var model sql.NullString

	var conditionStr, priceStr string

	if err := s.Scan(
		&t.ID, &t.Brand, &model, &t.Size, &t.SKU, &conditionStr, &t.Quantity, &priceStr,
		&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, fmt.Errorf("parsing unit price: %w", err)
	}

	t.Model = model.String
	t.Condition = tire.Condition(conditionStr)
	t.UnitPrice = price

	return &t, nil
}

const selectTireColumns = `
	id, brand, model, size, sku, condition, quantity, unit_price, created_at, updated_at, deleted_at
`

const insertTireQuery = `
	INSERT INTO tires (brand, model, size, sku, condition, quantity, unit_price, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	RETURNING id, created_at, updated_at
`

func (s *Store) CreateTire(ctx context.Context, t *tire.Tire) error {
	err := s.db.QueryRowContext(ctx, insertTireQuery,
		t.Brand, t.Model, t.Size, t.SKU, t.Condition, t.Quantity, t.UnitPrice.String(),
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating tire: %w", err)
	}

	return nil
}

func (s *Store) GetTire(ctx context.Context, id uuid.UUID) (*tire.Tire, error) {
	query := `SELECT ` + selectTireColumns + `
		FROM tires
		WHERE id = $1 AND deleted_at IS NULL`

	t, err := scanTire(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, tire.ErrNotFound
		}

		return nil, fmt.Errorf("getting tire: %w", err)
	}

	return t, nil
}

func (s *Store) ListTires(ctx context.Context, filter tire.ListFilter) ([]*tire.Tire, error) {
	query := `SELECT ` + selectTireColumns + `
		FROM tires
		WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Brand != nil {
		query += fmt.Sprintf(" AND brand ILIKE $%d", argIdx)

		args = append(args, *filter.Brand)
		argIdx++
	}

	if filter.Size != nil {
		query += fmt.Sprintf(" AND size = $%d", argIdx)

		args = append(args, *filter.Size)
		argIdx++
	}

	query += " ORDER BY brand ASC, size ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tires: %w", err)
	}
	defer rows.Close()

	var tires []*tire.Tire

	for rows.Next() {
		t, err := scanTire(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning tire: %w", err)
		}

		tires = append(tires, t)
	}

	return tires, rows.Err()
}

func (s *Store) UpdateTire(ctx context.Context, t *tire.Tire) error {
	query := `
		UPDATE tires
		SET brand = $1, model = $2, size = $3, sku = $4, condition = $5, quantity = $6, unit_price = $7, updated_at = NOW()
		WHERE id = $8 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		t.Brand, t.Model, t.Size, t.SKU, t.Condition, t.Quantity, t.UnitPrice.String(), t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating tire: %w", err)
	}

	return nil
}

func (s *Store) DeleteTire(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE tires
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting tire: %w", err)
	}

	return nil
}

// AdjustQuantity applies delta in one statement; the quantity check rides on
// the UPDATE's WHERE clause so concurrent adjustments cannot oversell.
func (s *Store) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error {
	query := `
		UPDATE tires
		SET quantity = quantity + $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL AND quantity + $1 >= 0
	`

	res, err := s.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("adjusting quantity: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking adjustment: %w", err)
	}

	if affected == 0 {
		if _, err := s.GetTire(ctx, id); err != nil {
			return err
		}

		return tire.ErrInsufficientStock
	}

	return nil
}

type importTx struct {
	tx *sql.Tx
}

func (s *Store) BeginImport(ctx context.Context) (tire.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	return &importTx{tx: dbTx}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) FindBySKUs(ctx context.Context, skus []string) ([]*tire.Tire, error) {
	if len(skus) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(skus))
	args := make([]any, len(skus))

	for i, sku := range skus {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = sku
	}

	query := `SELECT ` + selectTireColumns + `
		FROM tires
		WHERE deleted_at IS NULL AND sku IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := itx.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("finding skus: %w", err)
	}
	defer rows.Close()

	var tires []*tire.Tire

	for rows.Next() {
		t, err := scanTire(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning tire: %w", err)
		}

		tires = append(tires, t)
	}

	return tires, rows.Err()
}

func (itx *importTx) CreateTires(ctx context.Context, tires []*tire.Tire) error {
	for _, t := range tires {
		err := itx.tx.QueryRowContext(ctx, insertTireQuery,
			t.Brand, t.Model, t.Size, t.SKU, t.Condition, t.Quantity, t.UnitPrice.String(),
		).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating tire: %w", err)
		}
	}

	return nil
}
