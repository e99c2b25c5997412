package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/config"
)

func TestStaticKeyDirectoryLookup(t *testing.T) {
	t.Parallel()

	dir := NewStaticKeyDirectory(map[string]config.APIKeyRef{
		"demo-key-123":  {UserID: 1, Name: "Demo User"},
		"admin-key-456": {UserID: 2, Name: "Admin User"},
	})

	t.Run("known keys resolve", func(t *testing.T) {
		t.Parallel()

		identity, ok := dir.Lookup("demo-key-123")
		require.True(t, ok)
		assert.Equal(t, Identity{ID: 1, Name: "Demo User"}, identity)

		identity, ok = dir.Lookup("admin-key-456")
		require.True(t, ok)
		assert.Equal(t, Identity{ID: 2, Name: "Admin User"}, identity)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		t.Parallel()

		_, ok := dir.Lookup("wrong-key")
		assert.False(t, ok)
	})

	t.Run("prefix of a valid key rejected", func(t *testing.T) {
		t.Parallel()

		_, ok := dir.Lookup("demo-key-12")
		assert.False(t, ok)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		t.Parallel()

		_, ok := dir.Lookup("")
		assert.False(t, ok)
	})
}

func TestStaticKeyDirectoryEmpty(t *testing.T) {
	t.Parallel()

	dir := NewStaticKeyDirectory(nil)
	_, ok := dir.Lookup("demo-key-123")
	assert.False(t, ok)
}
