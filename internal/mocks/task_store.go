package mocks

import (
	"context"
	"sync"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/domain"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
type MockTaskStore struct {
	// Custom behavior functions
	GetAllFn   func(ctx context.Context, filter store.TaskFilter) ([]domain.Task, error)
	GetByIDFn  func(ctx context.Context, id int64) (*domain.Task, error)
	CreateFn   func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	UpdateFn   func(ctx context.Context, id int64, task *domain.Task) (*domain.Task, error)
	DeleteFn   func(ctx context.Context, id int64) (*domain.Task, error)
	GetStatsFn func(ctx context.Context) (*domain.TaskStats, error)

	// Default response values
	Tasks []domain.Task
	Task  *domain.Task
	Stats *domain.TaskStats
	Err   error

	// Call tracking for verification
	GetAllCalls struct {
		mu      sync.Mutex
		Count   int
		Filters []store.TaskFilter
	}
}

// Ensure MockTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MockTaskStore)(nil)

// GetAll implements store.TaskStore.GetAll
func (m *MockTaskStore) GetAll(
	ctx context.Context,
	filter store.TaskFilter,
) ([]domain.Task, error) {
	m.GetAllCalls.mu.Lock()
	m.GetAllCalls.Count++
	m.GetAllCalls.Filters = append(m.GetAllCalls.Filters, filter)
	m.GetAllCalls.mu.Unlock()

	if m.GetAllFn != nil {
		return m.GetAllFn(ctx, filter)
	}
	return m.Tasks, m.Err
}

// GetByID implements store.TaskStore.GetByID
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Task, m.Err
}

// Create implements store.TaskStore.Create
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Task != nil {
		return m.Task, nil
	}
	return task, nil
}

// Update implements store.TaskStore.Update
func (m *MockTaskStore) Update(
	ctx context.Context,
	id int64,
	task *domain.Task,
) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, task)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Task != nil {
		return m.Task, nil
	}
	return task, nil
}

// Delete implements store.TaskStore.Delete
func (m *MockTaskStore) Delete(ctx context.Context, id int64) (*domain.Task, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Task, m.Err
}

// GetStats implements store.TaskStore.GetStats
func (m *MockTaskStore) GetStats(ctx context.Context) (*domain.TaskStats, error) {
	if m.GetStatsFn != nil {
		return m.GetStatsFn(ctx)
	}
	return m.Stats, m.Err
}
