package mocks

import (
	"context"
	"sync"

	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/store"
)

// CategoryStore implements store.CategoryStore for testing.
type CategoryStore struct {
	CreateFn func(ctx context.Context, category *domain.Category) error
	DeleteFn func(ctx context.Context, id string) error

	mu         sync.Mutex
	categories map[string]*domain.Category // keyed by ID
}

var _ store.CategoryStore = (*CategoryStore)(nil)

// NewCategoryStore creates a mock category store with initialized defaults.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{categories: make(map[string]*domain.Category)}
}

// Create implements the CategoryStore interface.
func (m *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.categories {
		if existing.Name == category.Name {
			return store.ErrCategoryNameExists
		}
	}
	copied := *category
	m.categories[category.ID] = &copied
	return nil
}

// GetByID implements the CategoryStore interface.
func (m *CategoryStore) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	category, exists := m.categories[id]
	if !exists {
		return nil, store.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

// List implements the CategoryStore interface.
func (m *CategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []*domain.Category{}
	for _, category := range m.categories {
		copied := *category
		out = append(out, &copied)
	}
	return out, nil
}

// Update implements the CategoryStore interface.
func (m *CategoryStore) Update(
	ctx context.Context,
	id string,
	update store.CategoryUpdate,
) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	category, exists := m.categories[id]
	if !exists {
		return nil, store.ErrCategoryNotFound
	}

	if update.Name != nil {
		for otherID, other := range m.categories {
			if otherID != id && other.Name == *update.Name {
				return nil, store.ErrCategoryNameExists
			}
		}
		category.Name = *update.Name
	}
	if update.Description != nil {
		category.Description = *update.Description
	}

	copied := *category
	return &copied, nil
}

// Delete implements the CategoryStore interface.
func (m *CategoryStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.categories[id]; !exists {
		return store.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

// Len returns the number of stored categories.
func (m *CategoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.categories)
}
