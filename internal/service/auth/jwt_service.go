// Package auth provides token issuance and verification for the API.
// Authentication is a flat exchange: an opaque API key resolves to an
// identity, which is embedded in a signed, time-limited JWT. Tokens are
// never stored server-side; validity is determined purely by the
// token's own signature and encoded expiry.
package auth

import (
	"context"
	"time"
)

// Claims holds the verified contents of a token after validation.
type Claims struct {
	// UserID identifies the authenticated user.
	UserID int64

	// IssuedAt is when the token was minted.
	IssuedAt time.Time

	// ExpiresAt is when the token stops being valid.
	ExpiresAt time.Time

	// ID is the unique token identifier (jti claim).
	ID string
}

// JWTService defines the operations for working with authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed token embedding the user ID, with a
	// fixed expiry window from issuance.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken validates a token's signature and expiry, returning
	// the decoded claims on success. Failure modes are distinguished:
	// ErrExpiredToken for expiry, ErrInvalidToken for anything malformed
	// or wrongly signed.
	ValidateToken(ctx context.Context, token string) (*Claims, error)

	// TokenLifetime reports the configured expiry window, for callers
	// that echo it in responses.
	TokenLifetime() time.Duration
}
