package mocks

import (
	"context"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/domain"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/store"
)

// MockEmployeeStore implements store.EmployeeStore for testing.
type MockEmployeeStore struct {
	// Custom behavior functions
	GetAllFn           func(ctx context.Context) ([]domain.Employee, error)
	GetByIDFn          func(ctx context.Context, id int64) (*domain.Employee, error)
	CreateFn           func(ctx context.Context, emp *domain.Employee) (*domain.Employee, error)
	UpdateFn           func(ctx context.Context, id int64, emp *domain.Employee) (*domain.Employee, error)
	DeleteFn           func(ctx context.Context, id int64) (*domain.Employee, error)
	GetAllWithTasksFn  func(ctx context.Context) ([]domain.EmployeeWithTasks, error)
	GetWithTaskCountFn func(ctx context.Context) ([]domain.EmployeeTaskSummary, error)

	// Default response values
	Employees []domain.Employee
	Employee  *domain.Employee
	WithTasks []domain.EmployeeWithTasks
	Summaries []domain.EmployeeTaskSummary
	Err       error
}

// Ensure MockEmployeeStore implements store.EmployeeStore interface
var _ store.EmployeeStore = (*MockEmployeeStore)(nil)

// GetAll implements store.EmployeeStore.GetAll
func (m *MockEmployeeStore) GetAll(ctx context.Context) ([]domain.Employee, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return m.Employees, m.Err
}

// GetByID implements store.EmployeeStore.GetByID
func (m *MockEmployeeStore) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Employee, m.Err
}

// Create implements store.EmployeeStore.Create
func (m *MockEmployeeStore) Create(
	ctx context.Context,
	emp *domain.Employee,
) (*domain.Employee, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, emp)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Employee != nil {
		return m.Employee, nil
	}
	return emp, nil
}

// Update implements store.EmployeeStore.Update
func (m *MockEmployeeStore) Update(
	ctx context.Context,
	id int64,
	emp *domain.Employee,
) (*domain.Employee, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, emp)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Employee != nil {
		return m.Employee, nil
	}
	return emp, nil
}

// Delete implements store.EmployeeStore.Delete
func (m *MockEmployeeStore) Delete(ctx context.Context, id int64) (*domain.Employee, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Employee, m.Err
}

// GetAllWithTasks implements store.EmployeeStore.GetAllWithTasks
func (m *MockEmployeeStore) GetAllWithTasks(
	ctx context.Context,
) ([]domain.EmployeeWithTasks, error) {
	if m.GetAllWithTasksFn != nil {
		return m.GetAllWithTasksFn(ctx)
	}
	return m.WithTasks, m.Err
}

// GetWithTaskCount implements store.EmployeeStore.GetWithTaskCount
func (m *MockEmployeeStore) GetWithTaskCount(
	ctx context.Context,
) ([]domain.EmployeeTaskSummary, error) {
	if m.GetWithTaskCountFn != nil {
		return m.GetWithTaskCountFn(ctx)
	}
	return m.Summaries, m.Err
}
