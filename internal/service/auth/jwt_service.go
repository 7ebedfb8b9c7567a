// Package auth provides password hashing and JWT session tokens for the
// admin login flow.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
//
// Tokens are stateless: any token with a valid signature and an unexpired
// timestamp is honored, and there is no way to revoke a single token before
// it expires. This is a deliberate design limitation; logout is achieved by
// the client discarding its token.
type JWTService interface {
	// GenerateToken creates a signed token for the given admin username.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, username string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken if the token is past its expiry and
	// ErrInvalidToken for any other failure (bad signature, malformed,
	// wrong algorithm).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified content of a session token.
type Claims struct {
	// Username is the admin identity the token was issued for.
	Username string

	// IssuedAt and ExpiresAt are the token's absolute validity window.
	IssuedAt  time.Time
	ExpiresAt time.Time
}
