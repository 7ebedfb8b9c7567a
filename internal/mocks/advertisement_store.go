package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/store"
)

// AdvertisementStore implements store.AdvertisementStore for testing.
type AdvertisementStore struct {
	ListFn func(ctx context.Context, filter store.AdFilter) ([]*domain.Advertisement, error)

	mu  sync.Mutex
	ads map[string]*domain.Advertisement // keyed by ID
}

var _ store.AdvertisementStore = (*AdvertisementStore)(nil)

// NewAdvertisementStore creates a mock advertisement store with initialized
// defaults.
func NewAdvertisementStore() *AdvertisementStore {
	return &AdvertisementStore{ads: make(map[string]*domain.Advertisement)}
}

// Create implements the AdvertisementStore interface.
func (m *AdvertisementStore) Create(ctx context.Context, ad *domain.Advertisement) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *ad
	m.ads[ad.ID] = &copied
	return nil
}

// GetByID implements the AdvertisementStore interface.
func (m *AdvertisementStore) GetByID(ctx context.Context, id string) (*domain.Advertisement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ad, exists := m.ads[id]
	if !exists {
		return nil, store.ErrAdvertisementNotFound
	}
	copied := *ad
	return &copied, nil
}

// List implements the AdvertisementStore interface.
func (m *AdvertisementStore) List(
	ctx context.Context,
	filter store.AdFilter,
) ([]*domain.Advertisement, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := []*domain.Advertisement{}
	for _, ad := range m.ads {
		if filter.Location != "" && ad.Placement.Location != filter.Location {
			continue
		}
		if filter.ActiveOnly && !ad.IsActive {
			continue
		}
		copied := *ad
		out = append(out, &copied)
	}
	return out, nil
}

// Update implements the AdvertisementStore interface.
func (m *AdvertisementStore) Update(
	ctx context.Context,
	id string,
	update store.AdvertisementUpdate,
) (*domain.Advertisement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ad, exists := m.ads[id]
	if !exists {
		return nil, store.ErrAdvertisementNotFound
	}

	if update.Title != nil {
		ad.Title = *update.Title
	}
	if update.Description != nil {
		ad.Description = *update.Description
	}
	if update.ImageURL != nil {
		ad.ImageURL = *update.ImageURL
	}
	if update.LinkURL != nil {
		ad.LinkURL = *update.LinkURL
	}
	if update.Placement != nil {
		ad.Placement = *update.Placement
	}
	if update.IsActive != nil {
		ad.IsActive = *update.IsActive
	}
	ad.UpdatedAt = time.Now().UTC()

	copied := *ad
	return &copied, nil
}

// Delete implements the AdvertisementStore interface.
func (m *AdvertisementStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.ads[id]; !exists {
		return store.ErrAdvertisementNotFound
	}
	delete(m.ads, id)
	return nil
}
