package vehicle

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	CreateVehicle(ctx context.Context, v *Vehicle) error
	GetVehicle(ctx context.Context, id uuid.UUID) (*Vehicle, error)
	ListVehicles(ctx context.Context, filter ListFilter) ([]*Vehicle, error)
	UpdateVehicle(ctx context.Context, v *Vehicle) error
	DeleteVehicle(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	CustomerID uuid.UUID
	Make       string
	Model      string
	Year       int
	Plate      string
	VIN        string
}

type ListFilter struct {
	CustomerID *uuid.UUID
	Plate      *string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Vehicle, error) {
	if params.CustomerID == uuid.Nil {
		return nil, errors.New("customer id is required")
	}

	if strings.TrimSpace(params.Make) == "" || strings.TrimSpace(params.Model) == "" {
		return nil, errors.New("vehicle make and model are required")
	}

	if params.Year != 0 && (params.Year < 1900 || params.Year > time.Now().Year()+1) {
		return nil, errors.New("vehicle year is out of range")
	}

	v := &Vehicle{
		CustomerID: params.CustomerID,
		Make:       strings.TrimSpace(params.Make),
		Model:      strings.TrimSpace(params.Model),
		Year:       params.Year,
		Plate:      strings.ToUpper(strings.TrimSpace(params.Plate)),
		VIN:        strings.ToUpper(strings.TrimSpace(params.VIN)),
	}
	if err := s.repo.CreateVehicle(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Vehicle, error) {
	return s.repo.GetVehicle(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Vehicle, error) {
	return s.repo.ListVehicles(ctx, filter)
}

func (s *Service) Update(ctx context.Context, v *Vehicle) error {
	return s.repo.UpdateVehicle(ctx, v)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteVehicle(ctx, id)
}
