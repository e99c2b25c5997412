package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/api/shared"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/domain"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/store"
)

// EmployeeHandler handles employee-related API requests.
type EmployeeHandler struct {
	employees store.EmployeeStore
	logger    *slog.Logger
}

// NewEmployeeHandler creates a new EmployeeHandler with the given dependencies.
// If logger is nil, a default logger will be used.
func NewEmployeeHandler(employees store.EmployeeStore, logger *slog.Logger) *EmployeeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmployeeHandler{
		employees: employees,
		logger:    logger.With(slog.String("component", "employee_handler")),
	}
}

// idParam parses the {id} path parameter, writing the rejection
// response itself when the value is not a positive integer.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Invalid ID",
			"ID must be a positive integer")
		return 0, false
	}
	return id, true
}

// List handles GET /employees.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.GetAll(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "Employee not found", "Failed to fetch employees")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, employees)
}

// ListWithTasks handles GET /employees/with-tasks: every employee with
// their assigned tasks nested.
func (h *EmployeeHandler) ListWithTasks(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.GetAllWithTasks(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "Employee not found", "Failed to fetch employees")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, employees)
}

// ListWithTaskCount handles GET /employees/with-task-count: every
// employee with aggregate totals over their assigned tasks.
func (h *EmployeeHandler) ListWithTaskCount(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.employees.GetWithTaskCount(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "Employee not found", "Failed to fetch employees")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, summaries)
}

// Get handles GET /employees/{id}.
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	employee, err := h.employees.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Employee not found", "Failed to fetch employee")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, employee)
}

// Create handles POST /employees.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.EmployeeInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", "")
		return
	}

	employee, err := input.Validate()
	if err != nil {
		if ve, ok := domain.AsValidationErrors(err); ok {
			shared.RespondWithValidationErrors(w, r, ve.Messages())
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", "")
		return
	}

	created, err := h.employees.Create(r.Context(), employee)
	if err != nil {
		respondStoreError(w, r, err, "Employee not found", "Failed to create employee")
		return
	}

	h.logger.Info("employee created", slog.Int64("employee_id", created.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// Update handles PUT /employees/{id}. Updates are full replacements of
// the mutable fields; there are no partial semantics.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var input domain.EmployeeInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", "")
		return
	}

	employee, err := input.Validate()
	if err != nil {
		if ve, ok := domain.AsValidationErrors(err); ok {
			shared.RespondWithValidationErrors(w, r, ve.Messages())
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", "")
		return
	}

	updated, err := h.employees.Update(r.Context(), id, employee)
	if err != nil {
		respondStoreError(w, r, err, "Employee not found", "Failed to update employee")
		return
	}

	h.logger.Info("employee updated", slog.Int64("employee_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /employees/{id}, returning the deleted row.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	deleted, err := h.employees.Delete(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Employee not found", "Failed to delete employee")
		return
	}

	h.logger.Info("employee deleted", slog.Int64("employee_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteEmployeeResponse{
		Message:  "Employee deleted successfully",
		Employee: deleted,
	})
}
