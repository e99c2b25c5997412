package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/api/shared"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/config"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/mocks"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/service/auth"
)

func testKeyDirectory() auth.KeyDirectory {
	return auth.NewStaticKeyDirectory(map[string]config.APIKeyRef{
		"demo-key-123":  {UserID: 1, Name: "Demo User"},
		"admin-key-456": {UserID: 2, Name: "Admin User"},
	})
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid key returns a token", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Token: "signed.jwt.token"}
		handler := NewAuthHandler(testKeyDirectory(), jwtService, nil)

		req := httptest.NewRequest(
			http.MethodPost,
			"/api/auth/login",
			strings.NewReader(`{"apiKey":"demo-key-123"}`),
		)
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp LoginResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Authentication successful", resp.Message)
		assert.Equal(t, "signed.jwt.token", resp.Token)
		assert.Equal(t, auth.Identity{ID: 1, Name: "Demo User"}, resp.User)
		assert.Equal(t, "24h", resp.ExpiresIn)
	})

	t.Run("admin key resolves the admin identity", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{
			GenerateTokenFn: func(ctx context.Context, userID int64) (string, error) {
				assert.Equal(t, int64(2), userID)
				return "admin.jwt.token", nil
			},
		}
		handler := NewAuthHandler(testKeyDirectory(), jwtService, nil)

		req := httptest.NewRequest(
			http.MethodPost,
			"/api/auth/login",
			strings.NewReader(`{"apiKey":"admin-key-456"}`),
		)
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp LoginResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, auth.Identity{ID: 2, Name: "Admin User"}, resp.User)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(testKeyDirectory(), &mocks.MockJWTService{}, nil)

		req := httptest.NewRequest(
			http.MethodPost,
			"/api/auth/login",
			strings.NewReader(`{"apiKey":"wrong-key"}`),
		)
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		resp := decodeErrorResponse(t, rr)
		assert.Equal(t, "Invalid API key", resp.Error)
	})

	t.Run("missing key is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(testKeyDirectory(), &mocks.MockJWTService{}, nil)

		req := httptest.NewRequest(
			http.MethodPost,
			"/api/auth/login",
			strings.NewReader(`{}`),
		)
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeErrorResponse(t, rr)
		assert.Equal(t, "API key required", resp.Error)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(testKeyDirectory(), &mocks.MockJWTService{}, nil)

		req := httptest.NewRequest(
			http.MethodPost,
			"/api/auth/login",
			strings.NewReader(`{malformed`),
		)
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeErrorResponse(t, rr)
		assert.Equal(t, "API key required", resp.Error)
	})

	t.Run("token generation failure is a server error", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Err: errors.New("signing broke")}
		handler := NewAuthHandler(testKeyDirectory(), jwtService, nil)

		req := httptest.NewRequest(
			http.MethodPost,
			"/api/auth/login",
			strings.NewReader(`{"apiKey":"demo-key-123"}`),
		)
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		resp := decodeErrorResponse(t, rr)
		assert.Equal(t, "Authentication failed", resp.Error)
		assert.NotContains(t, rr.Body.String(), "signing broke")
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	t.Run("claims from context are echoed", func(t *testing.T) {
		t.Parallel()

		issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		claims := &auth.Claims{
			UserID:    1,
			IssuedAt:  issued,
			ExpiresAt: issued.Add(24 * time.Hour),
			ID:        "token-id",
		}

		handler := NewAuthHandler(testKeyDirectory(), &mocks.MockJWTService{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
		ctx := context.WithValue(req.Context(), shared.UserContextKey, claims)
		rr := httptest.NewRecorder()
		handler.Verify(rr, req.WithContext(ctx))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp VerifyResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Token is valid", resp.Message)
		assert.Equal(t, int64(1), resp.User.UserID)
		assert.True(t, resp.User.IssuedAt.Equal(issued))
		assert.True(t, resp.User.ExpiresAt.Equal(issued.Add(24*time.Hour)))
	})

	t.Run("missing claims are rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(testKeyDirectory(), &mocks.MockJWTService{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
		rr := httptest.NewRecorder()
		handler.Verify(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		resp := decodeErrorResponse(t, rr)
		assert.Equal(t, "Authentication required", resp.Error)
	})
}
