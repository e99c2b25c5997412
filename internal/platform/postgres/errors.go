package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// connectionExceptionClass is the leading two digits of every
	// connection-exception error code (class 08)
	connectionExceptionClass = "08"

	// operatorInterventionClass covers admin shutdown and crash shutdown
	// codes (57P01, 57P02, 57P03)
	operatorInterventionClass = "57P"

	// internalErrorCode is raised by some poolers when a backend is
	// terminated mid-statement
	internalErrorCode = "XX000"
)

// MapError maps a database error to an appropriate store error.
// It wraps the original error to preserve context for debugging.
// Every store operation routes its errors through here so the
// taxonomy is applied in one place, identically for all paths.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	if isTransient(err) {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolationCode:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case pgErr.Code == foreignKeyViolationCode:
			return fmt.Errorf(
				"%w: foreign key violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		}
	}

	return err
}

// isTransient reports whether err indicates the store is unreachable or
// the connection was terminated, rather than a statement-level failure.
func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, connectionExceptionClass) ||
			strings.HasPrefix(pgErr.Code, operatorInterventionClass) ||
			pgErr.Code == internalErrorCode
	}

	return false
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
// This is useful for detecting duplicate records that violate unique constraints.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign key constraint violation.
// This occurs when an operation would violate referential integrity constraints.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// mapEmployeeError specializes MapError for employee operations:
// not-found becomes ErrEmployeeNotFound and the email unique constraint
// becomes ErrEmailExists. Create and update share this mapping so the
// conflict rule is identical on both paths.
func mapEmployeeError(err error) error {
	if err == nil {
		return nil
	}
	mapped := MapError(err)
	switch {
	case errors.Is(mapped, store.ErrNotFound):
		return store.ErrEmployeeNotFound
	case errors.Is(mapped, store.ErrDuplicate):
		return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
	}
	return mapped
}

// mapTaskError specializes MapError for task operations.
func mapTaskError(err error) error {
	if err == nil {
		return nil
	}
	mapped := MapError(err)
	if errors.Is(mapped, store.ErrNotFound) {
		return store.ErrTaskNotFound
	}
	return mapped
}
