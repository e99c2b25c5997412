package migrations

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/domain"
)

func readMigration(t *testing.T, name string) string {
	t.Helper()
	data, err := FS.ReadFile(name)
	require.NoError(t, err, "embedded migration %s must be readable", name)
	return string(data)
}

// The schema must admit every value the domain layer accepts. A CHECK
// constraint narrower than the domain enums turns validated input into
// a driver error the store cannot classify.
func TestTasksSchemaAcceptsDomainEnums(t *testing.T) {
	t.Parallel()

	schema := readMigration(t, "00002_create_tasks.sql")

	for _, status := range domain.TaskStatuses {
		assert.Contains(t, schema, fmt.Sprintf("'%s'", status),
			"tasks status CHECK must allow %q", status)
	}
	for _, priority := range domain.TaskPriorities {
		assert.Contains(t, schema, fmt.Sprintf("'%s'", priority),
			"tasks priority CHECK must allow %q", priority)
	}
}

// Column widths must match the 255-character ceilings enforced by
// domain validation, otherwise maximum-length valid input is rejected
// by the database with a truncation error.
func TestColumnWidthsMatchValidationCeilings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		migration string
		column    string
	}{
		{name: "employee name", migration: "00001_create_employees.sql", column: "name VARCHAR(255)"},
		{name: "employee email", migration: "00001_create_employees.sql", column: "email VARCHAR(255)"},
		{name: "employee position", migration: "00001_create_employees.sql", column: "position VARCHAR(255)"},
		{name: "employee department", migration: "00001_create_employees.sql", column: "department VARCHAR(255)"},
		{name: "task title", migration: "00002_create_tasks.sql", column: "title VARCHAR(255)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			schema := readMigration(t, tt.migration)
			assert.Contains(t, schema, tt.column)
		})
	}
}
