package store

import (
	"context"

	"github.com/atolltravel/offers-api/internal/domain"
)

// AdFilter describes the listing parameters for advertisements. Location is
// an exact match on placement.location. ActiveOnly restricts results to
// active advertisements and is the default for the public endpoint.
type AdFilter struct {
	Location   string
	ActiveOnly bool
}

// AdvertisementUpdate is a partial update for an advertisement. Nil fields
// are left untouched; updated_at is refreshed on every successful update.
type AdvertisementUpdate struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	ImageURL    *string             `json:"image_url"`
	LinkURL     *string             `json:"link_url"`
	Placement   *domain.AdPlacement `json:"placement"`
	IsActive    *bool               `json:"is_active"`
}

// AdvertisementStore defines the interface for advertisement persistence.
type AdvertisementStore interface {
	// Create saves a new advertisement.
	Create(ctx context.Context, ad *domain.Advertisement) error

	// GetByID retrieves an advertisement by its ID.
	// Returns ErrAdvertisementNotFound if it does not exist.
	GetByID(ctx context.Context, id string) (*domain.Advertisement, error)

	// List returns all advertisements matching the filter.
	// An empty result is not an error.
	List(ctx context.Context, filter AdFilter) ([]*domain.Advertisement, error)

	// Update applies the non-nil fields of the update to the advertisement
	// and refreshes its updated_at timestamp.
	// Returns ErrAdvertisementNotFound if the ID is unknown.
	Update(ctx context.Context, id string, update AdvertisementUpdate) (*domain.Advertisement, error)

	// Delete removes the advertisement.
	// Returns ErrAdvertisementNotFound if absent.
	Delete(ctx context.Context, id string) error
}
