package store

import (
	"context"

	"github.com/atolltravel/offers-api/internal/domain"
)

// AdminStore defines the interface for admin credential persistence.
//
// The credential set is effectively append-only: admins are created once by
// the bootstrap operation and there is no update or delete path.
type AdminStore interface {
	// Create saves a new admin user to the store. The caller must have
	// hashed the password already; Create never persists a plaintext
	// password. Returns ErrUsernameExists if the username is taken.
	Create(ctx context.Context, user *domain.AdminUser) error

	// GetByUsername retrieves an admin user by username.
	// Returns ErrAdminNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
}
