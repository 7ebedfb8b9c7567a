package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/store"
)

// OfferStore implements store.OfferStore for testing. Its List method
// mirrors the MongoDB query builder's semantics: case-insensitive substring
// filters, inclusive price bounds, and created_at-descending default order.
type OfferStore struct {
	CreateFn func(ctx context.Context, offer *domain.Offer) error
	ListFn   func(ctx context.Context, filter store.OfferFilter) ([]*domain.Offer, error)

	mu     sync.Mutex
	offers map[string]*domain.Offer // keyed by ID
}

var _ store.OfferStore = (*OfferStore)(nil)

// NewOfferStore creates a mock offer store with initialized defaults.
func NewOfferStore() *OfferStore {
	return &OfferStore{offers: make(map[string]*domain.Offer)}
}

// Create implements the OfferStore interface.
func (m *OfferStore) Create(ctx context.Context, offer *domain.Offer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, offer)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *offer
	m.offers[offer.ID] = &copied
	return nil
}

// GetByID implements the OfferStore interface.
func (m *OfferStore) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	offer, exists := m.offers[id]
	if !exists {
		return nil, store.ErrOfferNotFound
	}
	copied := *offer
	return &copied, nil
}

// List implements the OfferStore interface.
func (m *OfferStore) List(ctx context.Context, filter store.OfferFilter) ([]*domain.Offer, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	matched := []*domain.Offer{}
	for _, offer := range m.offers {
		if !matchesOfferFilter(offer, filter) {
			continue
		}
		copied := *offer
		matched = append(matched, &copied)
	}

	sortOffers(matched, filter)
	return matched, nil
}

// Update implements the OfferStore interface.
func (m *OfferStore) Update(
	ctx context.Context,
	id string,
	update store.OfferUpdate,
) (*domain.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	offer, exists := m.offers[id]
	if !exists {
		return nil, store.ErrOfferNotFound
	}

	applyOfferUpdate(offer, update)
	offer.UpdatedAt = time.Now().UTC()

	copied := *offer
	return &copied, nil
}

// Delete implements the OfferStore interface.
func (m *OfferStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.offers[id]; !exists {
		return store.ErrOfferNotFound
	}
	delete(m.offers, id)
	return nil
}

// DistinctCategories implements the OfferStore interface.
func (m *OfferStore) DistinctCategories(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := map[string]bool{}
	categories := []string{}
	for _, offer := range m.offers {
		if !seen[offer.Category] {
			seen[offer.Category] = true
			categories = append(categories, offer.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// ExistsWithCategory implements the OfferStore interface.
func (m *OfferStore) ExistsWithCategory(ctx context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, offer := range m.offers {
		if offer.Category == name {
			return true, nil
		}
	}
	return false, nil
}

func matchesOfferFilter(offer *domain.Offer, filter store.OfferFilter) bool {
	if filter.Destination != "" &&
		!strings.Contains(strings.ToLower(offer.Destination), strings.ToLower(filter.Destination)) {
		return false
	}
	if filter.Category != "" &&
		!strings.Contains(strings.ToLower(offer.Category), strings.ToLower(filter.Category)) {
		return false
	}
	if filter.MinPrice != nil && offer.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && offer.Price > *filter.MaxPrice {
		return false
	}
	return true
}

func sortOffers(offers []*domain.Offer, filter store.OfferFilter) {
	if filter.SortBy == "" {
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].CreatedAt.After(offers[j].CreatedAt)
		})
		return
	}

	desc := filter.SortOrder == store.SortDesc
	less := func(i, j int) bool {
		// Swapping the operands keeps equal keys unordered, so the
		// stable sort preserves their relative positions.
		if desc {
			i, j = j, i
		}
		switch filter.SortBy {
		case "price":
			return offers[i].Price < offers[j].Price
		case "title":
			return offers[i].Title < offers[j].Title
		case "destination":
			return offers[i].Destination < offers[j].Destination
		case "created_at":
			return offers[i].CreatedAt.Before(offers[j].CreatedAt)
		default:
			return false
		}
	}
	sort.SliceStable(offers, less)
}

func applyOfferUpdate(offer *domain.Offer, update store.OfferUpdate) {
	if update.Title != nil {
		offer.Title = *update.Title
	}
	if update.Destination != nil {
		offer.Destination = *update.Destination
	}
	if update.Description != nil {
		offer.Description = *update.Description
	}
	if update.Price != nil {
		offer.Price = *update.Price
	}
	if update.TravelDates != nil {
		offer.TravelDates = *update.TravelDates
	}
	if update.CompanyName != nil {
		offer.CompanyName = *update.CompanyName
	}
	if update.CompanyWebsite != nil {
		offer.CompanyWebsite = *update.CompanyWebsite
	}
	if update.Category != nil {
		offer.Category = *update.Category
	}
	if update.Images != nil {
		offer.Images = *update.Images
	}
	if update.ContactInfo != nil {
		offer.ContactInfo = update.ContactInfo
	}
	if update.Highlights != nil {
		offer.Highlights = *update.Highlights
	}
	if update.Inclusions != nil {
		offer.Inclusions = *update.Inclusions
	}
	if update.Exclusions != nil {
		offer.Exclusions = *update.Exclusions
	}
	if update.Itinerary != nil {
		offer.Itinerary = *update.Itinerary
	}
}
