package domain

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// Possible task status values.
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// TaskStatuses lists every valid status, in the order used for
// validation messages and stats reporting.
var TaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusCompleted,
	TaskStatusCancelled,
}

// Valid reports whether s is one of the known status values.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// TaskPriority represents the urgency of a task.
type TaskPriority string

// Possible task priority values.
const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// TaskPriorities lists every valid priority.
var TaskPriorities = []TaskPriority{
	TaskPriorityLow,
	TaskPriorityMedium,
	TaskPriorityHigh,
}

// Valid reports whether p is one of the known priority values.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// DueDateLayout is the normalized wire format for task due dates.
const DueDateLayout = "2006-01-02"

// dueDateLayouts are the input formats accepted for due dates, tried in
// order. Whatever matches is normalized to DueDateLayout.
var dueDateLayouts = []string{
	DueDateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Task represents a unit of work, optionally assigned to an employee.
// EmployeeName and EmployeeEmail are denormalized display fields joined
// in by reads; they are absent when the task is unassigned.
type Task struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Description   *string      `json:"description"`
	Status        TaskStatus   `json:"status"`
	Priority      TaskPriority `json:"priority"`
	EmployeeID    *int64       `json:"employee_id"`
	DueDate       *string      `json:"due_date"`
	CreatedAt     time.Time    `json:"created_at"`
	EmployeeName  *string      `json:"employee_name,omitempty"`
	EmployeeEmail *string      `json:"employee_email,omitempty"`
}

// TaskStats is the dashboard aggregate computed in one pass over all
// tasks. CompletionRate is completed/total as a percentage rounded to
// two decimal places, defined as zero when there are no tasks.
type TaskStats struct {
	TotalTasks      int64   `json:"total_tasks"`
	CompletedTasks  int64   `json:"completed_tasks"`
	PendingTasks    int64   `json:"pending_tasks"`
	InProgressTasks int64   `json:"in_progress_tasks"`
	CancelledTasks  int64   `json:"cancelled_tasks"`
	CompletionRate  float64 `json:"completion_rate"`
}

// TaskInput is the untrusted payload for a task mutation. Optional
// fields are pointers so that absence survives JSON decoding and can be
// defaulted rather than rejected.
type TaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	EmployeeID  *int64  `json:"employee_id"`
	DueDate     *string `json:"due_date"`
}

// Validate runs every task validation rule, accumulating failures.
// On success it returns a normalized Task with defaults applied:
// status pending, priority medium, unassigned, no due date.
func (in TaskInput) Validate() (*Task, error) {
	var errs ValidationErrors

	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		errs = append(errs, "Title is required and must be a non-empty string")
	case len(title) < 3:
		errs = append(errs, "Title must be at least 3 characters long")
	case len(title) > 255:
		errs = append(errs, "Title must not exceed 255 characters")
	}

	status := TaskStatusPending
	if in.Status != nil && *in.Status != "" {
		status = TaskStatus(*in.Status)
		if !status.Valid() {
			errs = append(errs, fmt.Sprintf("Status must be one of: %s", joinStatuses()))
		}
	}

	priority := TaskPriorityMedium
	if in.Priority != nil && *in.Priority != "" {
		priority = TaskPriority(*in.Priority)
		if !priority.Valid() {
			errs = append(errs, fmt.Sprintf("Priority must be one of: %s", joinPriorities()))
		}
	}

	if in.EmployeeID != nil && *in.EmployeeID <= 0 {
		errs = append(errs, "Employee ID must be a positive integer")
	}

	var dueDate *string
	if in.DueDate != nil && strings.TrimSpace(*in.DueDate) != "" {
		normalized, ok := normalizeDueDate(strings.TrimSpace(*in.DueDate))
		if !ok {
			errs = append(errs, "Due date must be a valid date")
		} else {
			dueDate = &normalized
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Task{
		Title:       title,
		Description: normalizeOptional(in.Description),
		Status:      status,
		Priority:    priority,
		EmployeeID:  in.EmployeeID,
		DueDate:     dueDate,
	}, nil
}

// normalizeDueDate parses raw against the accepted layouts and, on
// success, reformats it as YYYY-MM-DD.
func normalizeDueDate(raw string) (string, bool) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DueDateLayout), true
		}
	}
	return "", false
}

func joinStatuses() string {
	parts := make([]string, len(TaskStatuses))
	for i, s := range TaskStatuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func joinPriorities() string {
	parts := make([]string, len(TaskPriorities))
	for i, p := range TaskPriorities {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}
