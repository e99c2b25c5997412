package store

import (
	"context"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/domain"
)

// TaskFilter narrows the result set of TaskStore.GetAll. Zero-valued
// fields place no constraint; populated fields combine conjunctively.
type TaskFilter struct {
	// Status restricts results to tasks with exactly this status.
	Status *domain.TaskStatus

	// EmployeeID restricts results to tasks assigned to this employee.
	EmployeeID *int64
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// GetAll retrieves tasks matching the filter, ordered newest-created-first.
	// Each row carries the assigned employee's name and email as denormalized
	// display fields, absent when the task is unassigned.
	// Returns an empty slice when nothing matches.
	GetAll(ctx context.Context, filter TaskFilter) ([]domain.Task, error)

	// GetByID retrieves a task by its unique ID, with the same denormalized
	// employee fields as GetAll.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Create saves a new task and returns the persisted row, including the
	// generated ID and creation timestamp.
	// Returns ErrInvalidEntity if the assigned employee does not exist.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// Update replaces all mutable fields of a task by ID and returns the
	// updated row.
	// Returns ErrTaskNotFound if no row matched the ID.
	// Returns ErrInvalidEntity if the assigned employee does not exist.
	Update(ctx context.Context, id int64, task *domain.Task) (*domain.Task, error)

	// Delete removes a task by ID and returns the deleted row.
	// Returns ErrTaskNotFound if no row matched the ID.
	Delete(ctx context.Context, id int64) (*domain.Task, error)

	// GetStats computes dashboard statistics over all tasks in a single
	// aggregate query: total count, per-status counts, and the completion
	// rate as a percentage rounded to two decimal places (zero when the
	// store holds no tasks).
	GetStats(ctx context.Context) (*domain.TaskStats, error)
}
