package mocks

import (
	"context"
	"time"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	// Custom behavior functions
	GenerateTokenFn func(ctx context.Context, userID int64) (string, error)
	ValidateTokenFn func(ctx context.Context, token string) (*auth.Claims, error)

	// Default response values
	Token    string
	Claims   *auth.Claims
	Err      error
	Lifetime time.Duration
}

// Ensure MockJWTService implements auth.JWTService interface
var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements auth.JWTService.GenerateToken
func (m *MockJWTService) GenerateToken(ctx context.Context, userID int64) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.Token, m.Err
}

// ValidateToken implements auth.JWTService.ValidateToken
func (m *MockJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, token)
	}
	return m.Claims, m.Err
}

// TokenLifetime implements auth.JWTService.TokenLifetime
func (m *MockJWTService) TokenLifetime() time.Duration {
	if m.Lifetime != 0 {
		return m.Lifetime
	}
	return 24 * time.Hour
}
