package store

import (
	"context"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/domain"
)

// EmployeeStore defines the interface for employee data persistence.
type EmployeeStore interface {
	// GetAll retrieves every employee, ordered newest-created-first.
	// Returns an empty slice when the store holds no employees.
	GetAll(ctx context.Context) ([]domain.Employee, error)

	// GetByID retrieves an employee by their unique ID.
	// Returns ErrEmployeeNotFound if the employee does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)

	// Create saves a new employee and returns the persisted row,
	// including the generated ID and creation timestamp.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error)

	// Update replaces all mutable fields of an employee by ID and
	// returns the updated row.
	// Returns ErrEmployeeNotFound if no row matched the ID.
	// Returns ErrEmailExists if updating to an email that already exists.
	Update(ctx context.Context, id int64, emp *domain.Employee) (*domain.Employee, error)

	// Delete removes an employee by ID and returns the deleted row.
	// Returns ErrEmployeeNotFound if no row matched the ID.
	// Tasks assigned to the employee are unassigned by the store's
	// foreign key action, not by application logic.
	Delete(ctx context.Context, id int64) (*domain.Employee, error)

	// GetAllWithTasks retrieves every employee together with the tasks
	// currently assigned to them. Assignment is resolved with a second
	// task query grouped in memory, so an employee with no tasks carries
	// an empty list and a task_count of zero.
	GetAllWithTasks(ctx context.Context) ([]domain.EmployeeWithTasks, error)

	// GetWithTaskCount retrieves every employee with aggregate counts of
	// total and completed assigned tasks, computed by the store.
	GetWithTaskCount(ctx context.Context) ([]domain.EmployeeTaskSummary, error)
}
