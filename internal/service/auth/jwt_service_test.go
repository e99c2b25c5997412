package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/config"
)

const testSecret = "test-secret-that-is-at-least-32-characters"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:          testSecret,
		TokenLifetimeHours: 24,
		APIKeys: map[string]config.APIKeyRef{
			"demo-key-123": {UserID: 1, Name: "Demo User"},
		},
	}
}

// newTestService builds a service with a fixed clock so expiry behavior
// is deterministic.
func newTestService(t *testing.T, now time.Time) *hmacJWTService {
	t.Helper()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	impl, ok := svc.(*hmacJWTService)
	require.True(t, ok)
	impl.timeFunc = func() time.Time { return now }
	return impl
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		svc, err := NewJWTService(testAuthConfig())
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, svc.TokenLifetime())
	})

	t.Run("short secret rejected", func(t *testing.T) {
		t.Parallel()

		cfg := testAuthConfig()
		cfg.JWTSecret = "too-short"
		_, err := NewJWTService(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("zero lifetime rejected", func(t *testing.T) {
		t.Parallel()

		cfg := testAuthConfig()
		cfg.TokenLifetimeHours = 0
		_, err := NewJWTService(cfg)
		require.Error(t, err)
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, now)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, 3, len(strings.Split(token, ".")), "expected a three-part JWT")

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.IssuedAt.Equal(now))
	assert.True(t, claims.ExpiresAt.Equal(now.Add(24*time.Hour)))
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, now)
		_, err := svc.ValidateToken(ctx, "")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, now)
		_, err := svc.ValidateToken(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, now)
		token, err := svc.GenerateToken(ctx, 1)
		require.NoError(t, err)

		other := newTestService(t, now)
		other.signingKey = []byte("another-secret-that-is-32-chars-long!")
		_, err = other.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, now)
		token, err := svc.GenerateToken(ctx, 1)
		require.NoError(t, err)

		// Move past expiry plus the allowed clock skew.
		svc.timeFunc = func() time.Time {
			return now.Add(24*time.Hour + 3*time.Minute)
		}
		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("token within clock skew still valid", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, now)
		token, err := svc.GenerateToken(ctx, 1)
		require.NoError(t, err)

		svc.timeFunc = func() time.Time {
			return now.Add(24*time.Hour + time.Minute)
		}
		claims, err := svc.ValidateToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
	})
}

func TestGeneratedTokensHaveUniqueIDs(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, now)
	ctx := context.Background()

	first, err := svc.GenerateToken(ctx, 1)
	require.NoError(t, err)
	second, err := svc.GenerateToken(ctx, 1)
	require.NoError(t, err)

	firstClaims, err := svc.ValidateToken(ctx, first)
	require.NoError(t, err)
	secondClaims, err := svc.ValidateToken(ctx, second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}
