package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	CreateAppointment(ctx context.Context, a *Appointment) error
	GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error)
	ListAppointments(ctx context.Context, filter ListFilter) ([]*Appointment, error)
	UpdateAppointment(ctx context.Context, a *Appointment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	CustomerID  uuid.UUID
	VehicleID   *uuid.UUID
	ScheduledAt time.Time
	Duration    time.Duration
	Description string
}

type ListFilter struct {
	Status    *Status
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Appointment, error) {
	if params.CustomerID == uuid.Nil {
		return nil, errors.New("customer id is required")
	}

	if params.ScheduledAt.IsZero() {
		return nil, errors.New("scheduled time is required")
	}

	if params.Duration <= 0 {
		return nil, errors.New("duration must be positive")
	}

	a := &Appointment{
		CustomerID:  params.CustomerID,
		VehicleID:   params.VehicleID,
		ScheduledAt: params.ScheduledAt,
		Duration:    params.Duration,
		Description: params.Description,
		Status:      StatusScheduled,
	}
	if err := s.repo.CreateAppointment(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetAppointment(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Appointment, error) {
	return s.repo.ListAppointments(ctx, filter)
}

func (s *Service) Update(ctx context.Context, a *Appointment) error {
	return s.repo.UpdateAppointment(ctx, a)
}

// UpdateStatus applies a lifecycle transition after checking it is allowed.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Appointment, error) {
	a, err := s.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canTransition(a.Status, status) {
		return nil, &InvalidTransitionError{From: a.Status, To: status}
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	a.Status = status

	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAppointment(ctx, id)
}
