package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// emailPattern is a deliberately loose "local@domain.tld" shape check.
// Uniqueness and deliverability are concerns for the store and the
// mail system respectively, not for input validation.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Employee represents a member of staff that tasks can be assigned to.
type Employee struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Position   *string   `json:"position"`
	Department *string   `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// EmployeeWithTasks is the read model for the nested employee view:
// an employee together with every task currently assigned to them.
type EmployeeWithTasks struct {
	Employee
	Tasks     []Task `json:"tasks"`
	TaskCount int    `json:"task_count"`
}

// EmployeeTaskSummary is the read model for the aggregate employee view:
// an employee with store-computed totals over their assigned tasks.
// An employee with no tasks carries zeros, never absent counts.
type EmployeeTaskSummary struct {
	Employee
	TaskCount      int64 `json:"task_count"`
	CompletedTasks int64 `json:"completed_tasks"`
}

// EmployeeInput is the untrusted payload for an employee mutation.
// Optional fields are pointers so that absence survives JSON decoding.
type EmployeeInput struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
}

// Validate runs every employee validation rule, accumulating failures.
// On success it returns a normalized Employee: name and email trimmed,
// email lowercased, optional fields trimmed or nil when blank.
func (in EmployeeInput) Validate() (*Employee, error) {
	var errs ValidationErrors

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs = append(errs, "Name is required and must be a non-empty string")
	case len(name) < 2:
		errs = append(errs, "Name must be at least 2 characters long")
	case len(name) > 255:
		errs = append(errs, "Name must not exceed 255 characters")
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs = append(errs, "Email is required and must be a non-empty string")
	case !emailPattern.MatchString(email):
		errs = append(errs, "Email must be a valid email address")
	case len(email) > 255:
		errs = append(errs, "Email must not exceed 255 characters")
	}

	position := normalizeOptional(in.Position)
	if position != nil && len(*position) > 255 {
		errs = append(errs, "Position must be a string not exceeding 255 characters")
	}

	department := normalizeOptional(in.Department)
	if department != nil && len(*department) > 255 {
		errs = append(errs, "Department must be a string not exceeding 255 characters")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Employee{
		Name:       name,
		Email:      strings.ToLower(email),
		Position:   position,
		Department: department,
	}, nil
}

// normalizeOptional trims an optional string field, collapsing blank
// values to nil so they store as NULL rather than empty strings.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ParseID parses a path parameter bound to an entity ID. Anything that
// is not a positive integer is rejected with ErrInvalidID before the
// value can reach a store.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
