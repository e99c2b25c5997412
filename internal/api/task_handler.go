package api

import (
	"log/slog"
	"net/http"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/api/shared"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/domain"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/store"
)

// TaskHandler handles task-related API requests.
type TaskHandler struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
// If logger is nil, a default logger will be used.
func NewTaskHandler(tasks store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// taskFilterFromQuery builds a TaskFilter from the request's query
// parameters, accumulating failures the same way entity validation does.
func taskFilterFromQuery(r *http.Request) (store.TaskFilter, domain.ValidationErrors) {
	var (
		filter store.TaskFilter
		errs   domain.ValidationErrors
	)

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.TaskStatus(raw)
		if !status.Valid() {
			errs = append(errs, "Status must be one of: pending, in_progress, completed, cancelled")
		} else {
			filter.Status = &status
		}
	}

	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		id, err := domain.ParseID(raw)
		if err != nil {
			errs = append(errs, "Employee ID must be a positive integer")
		} else {
			filter.EmployeeID = &id
		}
	}

	return filter, errs
}

// List handles GET /tasks with optional status and employee_id filters.
// Filters compose conjunctively; an absent filter means no constraint.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, errs := taskFilterFromQuery(r)
	if len(errs) > 0 {
		shared.RespondWithValidationErrors(w, r, errs.Messages())
		return
	}

	tasks, err := h.tasks.GetAll(r.Context(), filter)
	if err != nil {
		respondStoreError(w, r, err, "Task not found", "Failed to fetch tasks")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// Stats handles GET /tasks/stats, the dashboard aggregate.
func (h *TaskHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.tasks.GetStats(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "Task not found", "Failed to fetch dashboard stats")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Task not found", "Failed to fetch task")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.TaskInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", "")
		return
	}

	task, err := input.Validate()
	if err != nil {
		if ve, ok := domain.AsValidationErrors(err); ok {
			shared.RespondWithValidationErrors(w, r, ve.Messages())
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", "")
		return
	}

	created, err := h.tasks.Create(r.Context(), task)
	if err != nil {
		respondStoreError(w, r, err, "Task not found", "Failed to create task")
		return
	}

	h.logger.Info("task created",
		slog.Int64("task_id", created.ID),
		slog.String("status", string(created.Status)))
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// Update handles PUT /tasks/{id}. Updates are full replacements of the
// mutable fields; there are no partial semantics.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var input domain.TaskInput
	if err := shared.DecodeJSON(r, &input); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", "")
		return
	}

	task, err := input.Validate()
	if err != nil {
		if ve, ok := domain.AsValidationErrors(err); ok {
			shared.RespondWithValidationErrors(w, r, ve.Messages())
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", "")
		return
	}

	updated, err := h.tasks.Update(r.Context(), id, task)
	if err != nil {
		respondStoreError(w, r, err, "Task not found", "Failed to update task")
		return
	}

	h.logger.Info("task updated", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /tasks/{id}, returning the deleted row.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	deleted, err := h.tasks.Delete(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Task not found", "Failed to delete task")
		return
	}

	h.logger.Info("task deleted", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{
		Message: "Task deleted successfully",
		Task:    deleted,
	})
}
