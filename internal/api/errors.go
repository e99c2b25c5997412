package api

import (
	"errors"
	"net/http"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/api/shared"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/service/auth"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrUnknownKey):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Store unreachable
	case store.IsUnavailableError(err):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// respondStoreError maps a store-layer error onto the documented error
// body shape. notFoundLabel names the entity for 404s (e.g. "Employee
// not found"); failLabel is the catch-all 500 label for the operation.
func respondStoreError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	notFoundLabel, failLabel string,
) {
	status := MapErrorToStatusCode(err)
	switch status {
	case http.StatusNotFound:
		shared.RespondWithError(w, r, status, notFoundLabel, "")
	case http.StatusConflict:
		shared.RespondWithErrorAndLog(w, r, status,
			"Email already exists", "", err)
	case http.StatusBadRequest:
		shared.RespondWithErrorAndLog(w, r, status,
			"Invalid reference", "The assigned employee does not exist.", err)
	case http.StatusServiceUnavailable:
		shared.RespondWithErrorAndLog(w, r, status,
			"Database connection issue. Please try again in a moment.", "", err)
	default:
		shared.RespondWithErrorAndLog(w, r, status, failLabel, "", err)
	}
}
