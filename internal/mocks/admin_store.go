package mocks

import (
	"context"
	"sync"

	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/store"
)

// AdminStore implements store.AdminStore for testing.
type AdminStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.AdminUser) error
	GetByUsernameFn func(ctx context.Context, username string) (*domain.AdminUser, error)

	mu    sync.Mutex
	users map[string]*domain.AdminUser // keyed by username
}

var _ store.AdminStore = (*AdminStore)(nil)

// NewAdminStore creates a mock admin store with initialized defaults.
func NewAdminStore() *AdminStore {
	return &AdminStore{users: make(map[string]*domain.AdminUser)}
}

// Create implements the AdminStore interface.
func (m *AdminStore) Create(ctx context.Context, user *domain.AdminUser) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Username]; exists {
		return store.ErrUsernameExists
	}
	copied := *user
	m.users[user.Username] = &copied
	return nil
}

// GetByUsername implements the AdminStore interface.
func (m *AdminStore) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.users[username]
	if !exists {
		return nil, store.ErrAdminNotFound
	}
	copied := *user
	return &copied, nil
}
