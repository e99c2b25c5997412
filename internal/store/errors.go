package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrEmployeeNotFound, ErrTaskNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., an employee with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity violates a store-level
	// constraint other than uniqueness, such as a task referencing an
	// employee that does not exist. Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnavailable is returned when the store cannot be reached or the
	// connection was terminated mid-operation. Callers should surface this
	// as a retryable condition rather than a permanent failure.
	ErrUnavailable = errors.New("store unavailable")

	// Entity-specific "not found" errors

	// ErrEmployeeNotFound indicates that the requested employee does not exist in the store.
	ErrEmployeeNotFound = fmt.Errorf("%w: employee", ErrNotFound)

	// ErrTaskNotFound indicates that the requested task does not exist in the store.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that an employee with the given email already exists.
	// The same error is returned by both create and update paths so callers can
	// apply one conflict rule everywhere.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
// This includes the generic ErrDuplicate and all entity-specific duplicate errors.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsUnavailableError checks if the error indicates the store could not be reached.
func IsUnavailableError(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
