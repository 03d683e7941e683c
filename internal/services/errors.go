package services

import (
	"errors"

	"github.com/mbaocraft/go-admin/validation"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition indicates a lifecycle operation was applied to a
	// record whose current status does not allow it.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrDuplicateEmail indicates an email that is already subscribed.
	ErrDuplicateEmail = errors.New("email already subscribed")
)

// ValidationError carries field violations from a failed gate check. The
// operation it blocked performs no partial writes.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Violations.First()
}
