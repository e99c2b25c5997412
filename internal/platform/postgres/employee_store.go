package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/domain"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/platform/logger"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/store"
)

// PostgresEmployeeStore implements the store.EmployeeStore interface
// using a PostgreSQL database as the storage backend.
type PostgresEmployeeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEmployeeStore creates a new PostgreSQL implementation of the
// EmployeeStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresEmployeeStore(db store.DBTX, logger *slog.Logger) *PostgresEmployeeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresEmployeeStore{
		db:     db,
		logger: logger.With(slog.String("component", "employee_store")),
	}
}

// Ensure PostgresEmployeeStore implements store.EmployeeStore interface
var _ store.EmployeeStore = (*PostgresEmployeeStore)(nil)

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(s scanner) (*domain.Employee, error) {
	var (
		emp                  domain.Employee
		position, department sql.NullString
	)
	if err := s.Scan(
		&emp.ID,
		&emp.Name,
		&emp.Email,
		&position,
		&department,
		&emp.CreatedAt,
	); err != nil {
		return nil, err
	}
	if position.Valid {
		emp.Position = &position.String
	}
	if department.Valid {
		emp.Department = &department.String
	}
	return &emp, nil
}

// GetAll implements store.EmployeeStore.GetAll
func (s *PostgresEmployeeStore) GetAll(ctx context.Context) ([]domain.Employee, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, position, department, created_at
		FROM employees
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query employees", slog.String("error", err.Error()))
		return nil, mapEmployeeError(err)
	}
	defer closeRows(rows, log)

	employees := []domain.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			log.Error("failed to scan employee row", slog.String("error", err.Error()))
			return nil, mapEmployeeError(err)
		}
		employees = append(employees, *emp)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning employee rows", slog.String("error", err.Error()))
		return nil, mapEmployeeError(err)
	}

	log.Debug("employees retrieved", slog.Int("count", len(employees)))
	return employees, nil
}

// GetByID implements store.EmployeeStore.GetByID
// Returns store.ErrEmployeeNotFound if the employee does not exist.
func (s *PostgresEmployeeStore) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, position, department, created_at
		FROM employees
		WHERE id = $1
	`

	emp, err := scanEmployee(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("employee not found", slog.Int64("employee_id", id))
		} else {
			log.Error("failed to get employee by ID",
				slog.String("error", err.Error()),
				slog.Int64("employee_id", id))
		}
		return nil, mapEmployeeError(err)
	}

	return emp, nil
}

// Create implements store.EmployeeStore.Create
// Returns store.ErrEmailExists if the email is already taken.
func (s *PostgresEmployeeStore) Create(
	ctx context.Context,
	emp *domain.Employee,
) (*domain.Employee, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO employees (name, email, position, department)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, position, department, created_at
	`

	created, err := scanEmployee(s.db.QueryRowContext(
		ctx,
		query,
		emp.Name,
		emp.Email,
		emp.Position,
		emp.Department,
	))
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate email during employee creation",
				slog.String("error", err.Error()))
		} else {
			log.Error("failed to create employee", slog.String("error", err.Error()))
		}
		return nil, mapEmployeeError(err)
	}

	log.Info("employee created successfully", slog.Int64("employee_id", created.ID))
	return created, nil
}

// Update implements store.EmployeeStore.Update
// It replaces all mutable fields by ID and returns the updated row.
// Returns store.ErrEmployeeNotFound if no row matched,
// store.ErrEmailExists if the new email is already taken.
func (s *PostgresEmployeeStore) Update(
	ctx context.Context,
	id int64,
	emp *domain.Employee,
) (*domain.Employee, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE employees
		SET name = $1, email = $2, position = $3, department = $4
		WHERE id = $5
		RETURNING id, name, email, position, department, created_at
	`

	updated, err := scanEmployee(s.db.QueryRowContext(
		ctx,
		query,
		emp.Name,
		emp.Email,
		emp.Position,
		emp.Department,
		id,
	))
	if err != nil {
		switch {
		case err == sql.ErrNoRows:
			log.Debug("employee not found for update", slog.Int64("employee_id", id))
		case IsUniqueViolation(err):
			log.Warn("duplicate email during employee update",
				slog.String("error", err.Error()),
				slog.Int64("employee_id", id))
		default:
			log.Error("failed to update employee",
				slog.String("error", err.Error()),
				slog.Int64("employee_id", id))
		}
		return nil, mapEmployeeError(err)
	}

	log.Info("employee updated successfully", slog.Int64("employee_id", id))
	return updated, nil
}

// Delete implements store.EmployeeStore.Delete
// It removes an employee by ID and returns the deleted row.
// Returns store.ErrEmployeeNotFound if no row matched.
func (s *PostgresEmployeeStore) Delete(ctx context.Context, id int64) (*domain.Employee, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM employees
		WHERE id = $1
		RETURNING id, name, email, position, department, created_at
	`

	deleted, err := scanEmployee(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("employee not found for delete", slog.Int64("employee_id", id))
		} else {
			log.Error("failed to delete employee",
				slog.String("error", err.Error()),
				slog.Int64("employee_id", id))
		}
		return nil, mapEmployeeError(err)
	}

	log.Info("employee deleted successfully", slog.Int64("employee_id", id))
	return deleted, nil
}

// GetAllWithTasks implements store.EmployeeStore.GetAllWithTasks
// It fetches all employees and all assigned tasks in two queries, then
// groups tasks by employee ID in memory. There is no single query
// producing nested structures, so the join is emulated client-side.
func (s *PostgresEmployeeStore) GetAllWithTasks(
	ctx context.Context,
) ([]domain.EmployeeWithTasks, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	employees, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, title, description, status, priority, employee_id, due_date, created_at
		FROM tasks
		WHERE employee_id IS NOT NULL
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query assigned tasks", slog.String("error", err.Error()))
		return nil, mapTaskError(err)
	}
	defer closeRows(rows, log)

	// Group tasks by employee ID, preserving the query's newest-first order.
	tasksByEmployee := make(map[int64][]domain.Task)
	for rows.Next() {
		task, err := scanTaskBase(rows)
		if err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, mapTaskError(err)
		}
		if task.EmployeeID != nil {
			tasksByEmployee[*task.EmployeeID] = append(tasksByEmployee[*task.EmployeeID], *task)
		}
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning task rows", slog.String("error", err.Error()))
		return nil, mapTaskError(err)
	}

	result := make([]domain.EmployeeWithTasks, 0, len(employees))
	for _, emp := range employees {
		tasks := tasksByEmployee[emp.ID]
		if tasks == nil {
			tasks = []domain.Task{}
		}
		result = append(result, domain.EmployeeWithTasks{
			Employee:  emp,
			Tasks:     tasks,
			TaskCount: len(tasks),
		})
	}

	log.Debug("employees with tasks retrieved", slog.Int("count", len(result)))
	return result, nil
}

// GetWithTaskCount implements store.EmployeeStore.GetWithTaskCount
// It computes total and completed task counts per employee with a
// single aggregate join. Employees without tasks report zero counts.
func (s *PostgresEmployeeStore) GetWithTaskCount(
	ctx context.Context,
) ([]domain.EmployeeTaskSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			e.id, e.name, e.email, e.position, e.department, e.created_at,
			COUNT(t.id) AS task_count,
			COUNT(CASE WHEN t.status = 'completed' THEN 1 END) AS completed_tasks
		FROM employees e
		LEFT JOIN tasks t ON e.id = t.employee_id
		GROUP BY e.id
		ORDER BY e.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query employee task counts", slog.String("error", err.Error()))
		return nil, mapEmployeeError(err)
	}
	defer closeRows(rows, log)

	summaries := []domain.EmployeeTaskSummary{}
	for rows.Next() {
		var (
			summary              domain.EmployeeTaskSummary
			position, department sql.NullString
		)
		if err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Email,
			&position,
			&department,
			&summary.CreatedAt,
			&summary.TaskCount,
			&summary.CompletedTasks,
		); err != nil {
			log.Error("failed to scan employee summary row", slog.String("error", err.Error()))
			return nil, mapEmployeeError(err)
		}
		if position.Valid {
			summary.Position = &position.String
		}
		if department.Valid {
			summary.Department = &department.String
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning employee summary rows", slog.String("error", err.Error()))
		return nil, mapEmployeeError(err)
	}

	log.Debug("employee task counts retrieved", slog.Int("count", len(summaries)))
	return summaries, nil
}

// closeRows closes rows and logs a failure rather than losing it.
func closeRows(rows *sql.Rows, log *slog.Logger) {
	if err := rows.Close(); err != nil {
		log.Error("failed to close rows", slog.String("error", err.Error()))
	}
}
