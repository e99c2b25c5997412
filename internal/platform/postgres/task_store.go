package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/domain"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/platform/logger"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// taskJoinColumns selects a task row together with the assigned
// employee's name and email as denormalized display fields.
const taskJoinColumns = `
	t.id, t.title, t.description, t.status, t.priority,
	t.employee_id, t.due_date, t.created_at,
	e.name AS employee_name, e.email AS employee_email
`

// scanTaskBase scans a bare task row without denormalized employee fields.
func scanTaskBase(s scanner) (*domain.Task, error) {
	var (
		task        domain.Task
		description sql.NullString
		employeeID  sql.NullInt64
		dueDate     sql.NullTime
		status      string
		priority    string
	)
	if err := s.Scan(
		&task.ID,
		&task.Title,
		&description,
		&status,
		&priority,
		&employeeID,
		&dueDate,
		&task.CreatedAt,
	); err != nil {
		return nil, err
	}
	task.Status = domain.TaskStatus(status)
	task.Priority = domain.TaskPriority(priority)
	applyTaskNullables(&task, description, employeeID, dueDate)
	return &task, nil
}

// scanTaskJoined scans a task row produced with taskJoinColumns.
func scanTaskJoined(s scanner) (*domain.Task, error) {
	var (
		task                        domain.Task
		description                 sql.NullString
		employeeID                  sql.NullInt64
		dueDate                     sql.NullTime
		status, priority            string
		employeeName, employeeEmail sql.NullString
	)
	if err := s.Scan(
		&task.ID,
		&task.Title,
		&description,
		&status,
		&priority,
		&employeeID,
		&dueDate,
		&task.CreatedAt,
		&employeeName,
		&employeeEmail,
	); err != nil {
		return nil, err
	}
	task.Status = domain.TaskStatus(status)
	task.Priority = domain.TaskPriority(priority)
	applyTaskNullables(&task, description, employeeID, dueDate)
	if employeeName.Valid {
		task.EmployeeName = &employeeName.String
	}
	if employeeEmail.Valid {
		task.EmployeeEmail = &employeeEmail.String
	}
	return &task, nil
}

func applyTaskNullables(
	task *domain.Task,
	description sql.NullString,
	employeeID sql.NullInt64,
	dueDate sql.NullTime,
) {
	if description.Valid {
		task.Description = &description.String
	}
	if employeeID.Valid {
		task.EmployeeID = &employeeID.Int64
	}
	if dueDate.Valid {
		formatted := dueDate.Time.Format(domain.DueDateLayout)
		task.DueDate = &formatted
	}
}

// buildTaskListQuery composes the filtered task list query. Filter
// predicates combine conjunctively with positional placeholders; an
// absent filter places no constraint on its field.
func buildTaskListQuery(filter store.TaskFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", len(args)))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("t.employee_id = $%d", len(args)))
	}

	query := "SELECT " + taskJoinColumns + `
	FROM tasks t
	LEFT JOIN employees e ON t.employee_id = e.id`
	if len(conditions) > 0 {
		query += "\n\tWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\n\tORDER BY t.created_at DESC"

	return query, args
}

// GetAll implements store.TaskStore.GetAll
func (s *PostgresTaskStore) GetAll(
	ctx context.Context,
	filter store.TaskFilter,
) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args := buildTaskListQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks", slog.String("error", err.Error()))
		return nil, mapTaskError(err)
	}
	defer closeRows(rows, log)

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTaskJoined(rows)
		if err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, mapTaskError(err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning task rows", slog.String("error", err.Error()))
		return nil, mapTaskError(err)
	}

	log.Debug("tasks retrieved", slog.Int("count", len(tasks)))
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := "SELECT " + taskJoinColumns + `
	FROM tasks t
	LEFT JOIN employees e ON t.employee_id = e.id
	WHERE t.id = $1`

	task, err := scanTaskJoined(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("task not found", slog.Int64("task_id", id))
		} else {
			log.Error("failed to get task by ID",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		}
		return nil, mapTaskError(err)
	}

	return task, nil
}

// Create implements store.TaskStore.Create
// Returns store.ErrInvalidEntity if the assigned employee does not exist.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO tasks (title, description, status, priority, employee_id, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, description, status, priority, employee_id, due_date, created_at
	`

	created, err := scanTaskBase(s.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		task.EmployeeID,
		task.DueDate,
	))
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("unknown employee during task creation",
				slog.String("error", err.Error()))
		} else {
			log.Error("failed to create task", slog.String("error", err.Error()))
		}
		return nil, mapTaskError(err)
	}

	log.Info("task created successfully",
		slog.Int64("task_id", created.ID),
		slog.String("status", string(created.Status)))
	return created, nil
}

// Update implements store.TaskStore.Update
// It replaces all mutable fields by ID and returns the updated row.
// Returns store.ErrTaskNotFound if no row matched,
// store.ErrInvalidEntity if the assigned employee does not exist.
func (s *PostgresTaskStore) Update(
	ctx context.Context,
	id int64,
	task *domain.Task,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, priority = $4, employee_id = $5, due_date = $6
		WHERE id = $7
		RETURNING id, title, description, status, priority, employee_id, due_date, created_at
	`

	updated, err := scanTaskBase(s.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		task.EmployeeID,
		task.DueDate,
		id,
	))
	if err != nil {
		switch {
		case err == sql.ErrNoRows:
			log.Debug("task not found for update", slog.Int64("task_id", id))
		case IsForeignKeyViolation(err):
			log.Warn("unknown employee during task update",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		default:
			log.Error("failed to update task",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		}
		return nil, mapTaskError(err)
	}

	log.Info("task updated successfully",
		slog.Int64("task_id", id),
		slog.String("status", string(updated.Status)))
	return updated, nil
}

// Delete implements store.TaskStore.Delete
// It removes a task by ID and returns the deleted row.
// Returns store.ErrTaskNotFound if no row matched.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM tasks
		WHERE id = $1
		RETURNING id, title, description, status, priority, employee_id, due_date, created_at
	`

	deleted, err := scanTaskBase(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("task not found for delete", slog.Int64("task_id", id))
		} else {
			log.Error("failed to delete task",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		}
		return nil, mapTaskError(err)
	}

	log.Info("task deleted successfully", slog.Int64("task_id", id))
	return deleted, nil
}

// GetStats implements store.TaskStore.GetStats
// It computes the dashboard aggregate in a single pass over all tasks.
// The completion rate is NULL when the table is empty; that scans to
// zero rather than propagating a division by zero.
func (s *PostgresTaskStore) GetStats(ctx context.Context) (*domain.TaskStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			COUNT(*) AS total_tasks,
			COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed_tasks,
			COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending_tasks,
			COUNT(CASE WHEN status = 'in_progress' THEN 1 END) AS in_progress_tasks,
			COUNT(CASE WHEN status = 'cancelled' THEN 1 END) AS cancelled_tasks,
			ROUND(COUNT(CASE WHEN status = 'completed' THEN 1 END)::numeric / NULLIF(COUNT(*), 0) * 100, 2) AS completion_rate
		FROM tasks
	`

	var (
		stats domain.TaskStats
		rate  sql.NullFloat64
	)
	err := s.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalTasks,
		&stats.CompletedTasks,
		&stats.PendingTasks,
		&stats.InProgressTasks,
		&stats.CancelledTasks,
		&rate,
	)
	if err != nil {
		log.Error("failed to compute task stats", slog.String("error", err.Error()))
		return nil, mapTaskError(err)
	}
	if rate.Valid {
		stats.CompletionRate = rate.Float64
	}

	log.Debug("task stats computed", slog.Int64("total_tasks", stats.TotalTasks))
	return &stats, nil
}
