package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestTaskInputValidate(t *testing.T) {
	t.Parallel()

	t.Run("minimal input applies defaults", func(t *testing.T) {
		t.Parallel()

		task, err := TaskInput{Title: "Write report"}.Validate()
		require.NoError(t, err)
		assert.Equal(t, "Write report", task.Title)
		assert.Equal(t, TaskStatusPending, task.Status)
		assert.Equal(t, TaskPriorityMedium, task.Priority)
		assert.Nil(t, task.Description)
		assert.Nil(t, task.EmployeeID)
		assert.Nil(t, task.DueDate)
	})

	t.Run("full valid input", func(t *testing.T) {
		t.Parallel()

		in := TaskInput{
			Title:       "  Deploy release  ",
			Description: strPtr(" ship it "),
			Status:      strPtr("in_progress"),
			Priority:    strPtr("high"),
			EmployeeID:  int64Ptr(7),
			DueDate:     strPtr("2026-09-15"),
		}

		task, err := in.Validate()
		require.NoError(t, err)
		assert.Equal(t, "Deploy release", task.Title)
		require.NotNil(t, task.Description)
		assert.Equal(t, "ship it", *task.Description)
		assert.Equal(t, TaskStatusInProgress, task.Status)
		assert.Equal(t, TaskPriorityHigh, task.Priority)
		require.NotNil(t, task.EmployeeID)
		assert.Equal(t, int64(7), *task.EmployeeID)
		require.NotNil(t, task.DueDate)
		assert.Equal(t, "2026-09-15", *task.DueDate)
	})

	t.Run("empty status and priority strings fall back to defaults", func(t *testing.T) {
		t.Parallel()

		task, err := TaskInput{
			Title:    "Write report",
			Status:   strPtr(""),
			Priority: strPtr(""),
		}.Validate()
		require.NoError(t, err)
		assert.Equal(t, TaskStatusPending, task.Status)
		assert.Equal(t, TaskPriorityMedium, task.Priority)
	})

	tests := []struct {
		name     string
		input    TaskInput
		expected []string
	}{
		{
			name:  "missing title",
			input: TaskInput{},
			expected: []string{
				"Title is required and must be a non-empty string",
			},
		},
		{
			name:  "title too short",
			input: TaskInput{Title: "ab"},
			expected: []string{
				"Title must be at least 3 characters long",
			},
		},
		{
			name:  "title too long",
			input: TaskInput{Title: strings.Repeat("t", 256)},
			expected: []string{
				"Title must not exceed 255 characters",
			},
		},
		{
			name:  "invalid status",
			input: TaskInput{Title: "Write report", Status: strPtr("done")},
			expected: []string{
				"Status must be one of: pending, in_progress, completed, cancelled",
			},
		},
		{
			name:  "invalid priority",
			input: TaskInput{Title: "Write report", Priority: strPtr("urgent")},
			expected: []string{
				"Priority must be one of: low, medium, high",
			},
		},
		{
			name:  "non-positive employee id",
			input: TaskInput{Title: "Write report", EmployeeID: int64Ptr(0)},
			expected: []string{
				"Employee ID must be a positive integer",
			},
		},
		{
			name:  "unparseable due date",
			input: TaskInput{Title: "Write report", DueDate: strPtr("next tuesday")},
			expected: []string{
				"Due date must be a valid date",
			},
		},
		{
			name: "multiple failures accumulate",
			input: TaskInput{
				Title:    "ab",
				Status:   strPtr("done"),
				Priority: strPtr("urgent"),
			},
			expected: []string{
				"Title must be at least 3 characters long",
				"Status must be one of: pending, in_progress, completed, cancelled",
				"Priority must be one of: low, medium, high",
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			task, err := tc.input.Validate()
			require.Error(t, err)
			assert.Nil(t, task)

			ve, ok := AsValidationErrors(err)
			require.True(t, ok, "expected ValidationErrors, got %T", err)
			assert.Equal(t, tc.expected, ve.Messages())
		})
	}
}

func TestNormalizeDueDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{name: "plain date", raw: "2026-09-15", want: "2026-09-15", ok: true},
		{name: "RFC3339", raw: "2026-09-15T10:30:00Z", want: "2026-09-15", ok: true},
		{name: "datetime", raw: "2026-09-15 10:30:00", want: "2026-09-15", ok: true},
		{name: "garbage", raw: "soon", ok: false},
		{name: "wrong order", raw: "15-09-2026", ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := normalizeDueDate(tc.raw)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestStatusAndPriorityValid(t *testing.T) {
	t.Parallel()

	for _, s := range TaskStatuses {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}
	assert.False(t, TaskStatus("done").Valid())
	assert.False(t, TaskStatus("").Valid())

	for _, p := range TaskPriorities {
		assert.True(t, p.Valid(), "priority %q should be valid", p)
	}
	assert.False(t, TaskPriority("urgent").Valid())
	assert.False(t, TaskPriority("").Valid())
}

func TestValidationErrorsError(t *testing.T) {
	t.Parallel()

	ve := ValidationErrors{"first", "second"}
	assert.Equal(t, "first; second", ve.Error())
	assert.Equal(t, []string{"first", "second"}, ve.Messages())
}
