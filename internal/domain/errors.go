package domain

import (
	"errors"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrInvalidID is returned when an entity ID is malformed or not a
	// positive integer.
	ErrInvalidID = errors.New("ID must be a positive integer")
)

// ValidationErrors holds every human-readable failure found while
// validating one entity mutation. All checks run before the list is
// reported, so a caller always sees the complete set.
type ValidationErrors []string

// Error implements the error interface by joining the individual messages.
func (e ValidationErrors) Error() string {
	return strings.Join(e, "; ")
}

// Messages returns the individual failure messages for serialization
// into an error response's details field.
func (e ValidationErrors) Messages() []string {
	return []string(e)
}

// AsValidationErrors extracts a ValidationErrors value from err, if present.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
