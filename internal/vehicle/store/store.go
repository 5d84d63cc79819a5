package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mfava/shoproll/internal/vehicle"
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

func scanVehicle(s scanner) (*vehicle.Vehicle, error) {
	var v vehicle.Vehicle

	var year sql.NullInt64

	var plate, vin sql.NullString

	if err := s.Scan(
		&v.ID, &v.CustomerID, &v.Make, &v.Model, &year, &plate, &vin,
		&v.CreatedAt, &v.UpdatedAt, &v.DeletedAt,
	); err != nil {
		return nil, err
	}

	v.Year = int(year.Int64)
	v.Plate = plate.String
	v.VIN = vin.String

	return &v, nil
}

const selectVehicleColumns = `
	id, customer_id, make, model, year, plate, vin, created_at, updated_at, deleted_at
`

func (s *Store) CreateVehicle(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		INSERT INTO vehicles (customer_id, make, model, year, plate, vin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		v.CustomerID, v.Make, v.Model, v.Year, v.Plate, v.VIN,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating vehicle: %w", err)
	}

	return nil
}

func (s *Store) GetVehicle(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	query := `SELECT ` + selectVehicleColumns + `
		FROM vehicles
		WHERE id = $1 AND deleted_at IS NULL`

	v, err := scanVehicle(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, vehicle.ErrNotFound
		}

		return nil, fmt.Errorf("getting vehicle: %w", err)
	}

	return v, nil
}

func (s *Store) ListVehicles(ctx context.Context, filter vehicle.ListFilter) ([]*vehicle.Vehicle, error) {
	query := `SELECT ` + selectVehicleColumns + `
		FROM vehicles
		WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.CustomerID != nil {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)

		args = append(args, *filter.CustomerID)
		argIdx++
	}

	if filter.Plate != nil {
		query += fmt.Sprintf(" AND plate = $%d", argIdx)

		args = append(args, *filter.Plate)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*vehicle.Vehicle

	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}

		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}

func (s *Store) UpdateVehicle(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		UPDATE vehicles
		SET make = $1, model = $2, year = $3, plate = $4, vin = $5, updated_at = NOW()
		WHERE id = $6 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, v.Make, v.Model, v.Year, v.Plate, v.VIN, v.ID)
	if err != nil {
		return fmt.Errorf("updating vehicle: %w", err)
	}

	return nil
}

func (s *Store) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE vehicles
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting vehicle: %w", err)
	}

	return nil
}
