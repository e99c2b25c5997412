// Package middleware provides HTTP middleware applied ahead of the API
// handlers: authentication and request tracing.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/api/shared"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/redact"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// bearerToken extracts the token from an Authorization header value.
// A bare token without the Bearer prefix is accepted for compatibility
// with clients that send the credential directly.
func bearerToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return strings.TrimSpace(header)
}

// Authenticate validates JWT tokens from the Authorization header and
// adds the decoded claims to the request context for authorized
// requests. The three failure modes are reported distinctly: missing
// token, invalid token, and expired token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				"Authentication required",
				"No token provided. Please include Authorization header.")
			return
		}

		token := bearerToken(authHeader)
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				"Authentication required",
				"Invalid token format. Use: Bearer <token>")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized,
					"Token expired",
					"The token has expired. Please login again.")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized,
					"Invalid token",
					"The provided token is invalid or malformed.")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError,
					"Authentication error",
					"An error occurred during authentication.")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate attempts to decode a token when one is present
// and attaches the claims on success, but never rejects the request.
// Endpoints that degrade gracefully use this instead of Authenticate.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := bearerToken(authHeader)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			// Proceed unauthenticated; this is the one place a token
			// failure is intentionally not reported.
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser extracts the authenticated user's claims from the request context.
// Returns the claims and a boolean indicating if they were found.
func GetUser(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.UserContextKey).(*auth.Claims)
	return claims, ok
}
