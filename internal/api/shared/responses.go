package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/redact"
)

// ErrorResponse defines the standard error response structure. Every
// error body carries a stable error field; message and details are
// optional elaborations.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id,omitempty"`
	Code    int      `json:"-"` // Not serialized to JSON, used for logging
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status
// code, error label, and optional human-readable message.
// It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, errLabel, message string) {
	traceID := GetTraceID(r.Context())

	errorResponse := ErrorResponse{
		Error:   errLabel,
		Message: message,
		TraceID: traceID,
		Code:    status,
	}

	slog.Debug("sending error response",
		"status_code", status,
		"error", errLabel,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, errorResponse)
}

// RespondWithValidationErrors writes the 400 response for a failed
// validation pass, listing every accumulated failure message.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request, details []string) {
	RespondWithJSON(w, r, http.StatusBadRequest, ErrorResponse{
		Error:   "Validation failed",
		Details: details,
		TraceID: GetTraceID(r.Context()),
		Code:    http.StatusBadRequest,
	})
}

// RespondWithErrorAndLog writes a JSON error response and also logs the
// detailed error. The raw error string never reaches the client; logs
// receive a redacted rendering.
//
// Log level strategy:
//   - 5xx errors: logged at ERROR level
//   - 503: logged at WARN level (operational concern)
//   - other 4xx errors: logged at DEBUG level
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	errLabel, message string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", errLabel),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable:
		logLevel = slog.LevelError
	case status == http.StatusServiceUnavailable:
		logLevel = slog.LevelWarn
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   errLabel,
		Message: message,
		TraceID: traceID,
		Code:    status,
	})
}
