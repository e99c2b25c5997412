package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/api/shared"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/mocks"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/service/auth"
)

func testClaims() *auth.Claims {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &auth.Claims{
		UserID:    1,
		IssuedAt:  now,
		ExpiresAt: now.Add(24 * time.Hour),
		ID:        "token-id",
	}
}

// claimsProbe records whether the inner handler ran and what claims it saw.
type claimsProbe struct {
	called bool
	claims *auth.Claims
	ok     bool
}

func (p *claimsProbe) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.called = true
		p.claims, p.ok = GetUser(r)
		w.WriteHeader(http.StatusOK)
	})
}

func errorField(t *testing.T, rr *httptest.ResponseRecorder) (string, string) {
	t.Helper()

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Error, resp.Message
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("valid bearer token passes claims through", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Claims: testClaims()}
		probe := &claimsProbe{}
		mw := NewAuthMiddleware(jwtService).Authenticate(probe.handler())

		req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
		req.Header.Set("Authorization", "Bearer some.jwt.token")
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.True(t, probe.called)
		require.True(t, probe.ok)
		assert.Equal(t, int64(1), probe.claims.UserID)
	})

	t.Run("bare token without prefix is accepted", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Claims: testClaims()}
		probe := &claimsProbe{}
		mw := NewAuthMiddleware(jwtService).Authenticate(probe.handler())

		req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
		req.Header.Set("Authorization", "some.jwt.token")
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, probe.called)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		t.Parallel()

		probe := &claimsProbe{}
		mw := NewAuthMiddleware(&mocks.MockJWTService{}).Authenticate(probe.handler())

		req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, probe.called)

		errLabel, message := errorField(t, rr)
		assert.Equal(t, "Authentication required", errLabel)
		assert.Equal(t, "No token provided. Please include Authorization header.", message)
	})

	t.Run("expired token is reported distinctly", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Err: auth.ErrExpiredToken}
		probe := &claimsProbe{}
		mw := NewAuthMiddleware(jwtService).Authenticate(probe.handler())

		req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
		req.Header.Set("Authorization", "Bearer expired.jwt.token")
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, probe.called)

		errLabel, message := errorField(t, rr)
		assert.Equal(t, "Token expired", errLabel)
		assert.Equal(t, "The token has expired. Please login again.", message)
	})

	t.Run("invalid token is reported distinctly", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Err: auth.ErrInvalidToken}
		probe := &claimsProbe{}
		mw := NewAuthMiddleware(jwtService).Authenticate(probe.handler())

		req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)

		errLabel, message := errorField(t, rr)
		assert.Equal(t, "Invalid token", errLabel)
		assert.Equal(t, "The provided token is invalid or malformed.", message)
	})
}

func TestOptionalAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("no header proceeds unauthenticated", func(t *testing.T) {
		t.Parallel()

		probe := &claimsProbe{}
		mw := NewAuthMiddleware(&mocks.MockJWTService{}).OptionalAuthenticate(probe.handler())

		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.True(t, probe.called)
		assert.False(t, probe.ok)
	})

	t.Run("bad token proceeds unauthenticated", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Err: auth.ErrInvalidToken}
		probe := &claimsProbe{}
		mw := NewAuthMiddleware(jwtService).OptionalAuthenticate(probe.handler())

		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.True(t, probe.called)
		assert.False(t, probe.ok)
	})

	t.Run("valid token attaches claims", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Claims: testClaims()}
		probe := &claimsProbe{}
		mw := NewAuthMiddleware(jwtService).OptionalAuthenticate(probe.handler())

		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		req.Header.Set("Authorization", "Bearer some.jwt.token")
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.True(t, probe.ok)
		assert.Equal(t, int64(1), probe.claims.UserID)
	})
}
