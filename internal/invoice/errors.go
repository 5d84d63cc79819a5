package invoice

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound        = errors.New("invoice not found")
	ErrVersionConflict = errors.New("invoice was modified concurrently")
)

// Violation is one failed validation check on boundary input.
type Violation struct {
	Field   string
	Message string
}

// ValidationError collects every violation found in one validation pass so
// callers can report them all at once.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Field + ": " + v.Message
	}

	return "invalid input: " + strings.Join(msgs, "; ")
}

func validationError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}

	return &ValidationError{Violations: violations}
}

// InvalidStateError reports an operation attempted in a status that does not
// permit it.
type InvalidStateError struct {
	Status Status
	Op     string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s an invoice in status %q", e.Op, e.Status)
}
