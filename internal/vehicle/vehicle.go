package vehicle

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("vehicle not found")

// Vehicle belongs to exactly one customer.
type Vehicle struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Make       string
	Model      string
	Year       int
	Plate      string
	VIN        string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
}
