package tire

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("tire not found")
	ErrInsufficientStock = errors.New("not enough stock")
)

// Condition distinguishes new stock from used takeoffs.
type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

// Tire is one inventory line: a brand/model/size combination tracked by SKU.
type Tire struct {
	ID        uuid.UUID
	Brand     string
	Model     string
	Size      string
	SKU       string
	Condition Condition
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}
