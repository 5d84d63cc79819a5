package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mfava/shoproll/internal/appointment"
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

func scanAppointment(s scanner) (*appointment.Appointment, error) {
	var a appointment.Appointment

	var statusStr string

	var durationMinutes int64

	var description sql.NullString

	if err := s.Scan(
		&a.ID, &a.CustomerID, &a.VehicleID, &a.ScheduledAt, &durationMinutes,
		&description, &statusStr,
		&a.CreatedAt, &a.UpdatedAt, &a.DeletedAt,
	); err != nil {
		return nil, err
	}

	a.Status = appointment.Status(statusStr)
	a.Duration = time.Duration(durationMinutes) * time.Minute
	a.Description = description.String

	return &a, nil
}

const selectAppointmentColumns = `
	id, customer_id, vehicle_id, scheduled_at, duration_minutes,
	description, status, created_at, updated_at, deleted_at
`

func (s *Store) CreateAppointment(ctx context.Context, a *appointment.Appointment) error {
	query := `
		INSERT INTO appointments (customer_id, vehicle_id, scheduled_at, duration_minutes, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.CustomerID, a.VehicleID, a.ScheduledAt, int64(a.Duration/time.Minute), a.Description, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating appointment: %w", err)
	}

	return nil
}

func (s *Store) GetAppointment(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	query := `SELECT ` + selectAppointmentColumns + `
		FROM appointments
		WHERE id = $1 AND deleted_at IS NULL`

	a, err := scanAppointment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appointment.ErrNotFound
		}

		return nil, fmt.Errorf("getting appointment: %w", err)
	}

	return a, nil
}

func (s *Store) ListAppointments(ctx context.Context, filter appointment.ListFilter) ([]*appointment.Appointment, error) {
	query := `SELECT ` + selectAppointmentColumns + `
		FROM appointments
		WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND scheduled_at >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND scheduled_at <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY scheduled_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	defer rows.Close()

	var appts []*appointment.Appointment

	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning appointment: %w", err)
		}

		appts = append(appts, a)
	}

	return appts, rows.Err()
}

func (s *Store) UpdateAppointment(ctx context.Context, a *appointment.Appointment) error {
	query := `
		UPDATE appointments
		SET customer_id = $1, vehicle_id = $2, scheduled_at = $3, duration_minutes = $4, description = $5, updated_at = NOW()
		WHERE id = $6 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		a.CustomerID, a.VehicleID, a.ScheduledAt, int64(a.Duration/time.Minute), a.Description, a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating appointment: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status appointment.Status) error {
	query := `
		UPDATE appointments
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating appointment status: %w", err)
	}

	return nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE appointments
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting appointment: %w", err)
	}

	return nil
}
