package store

import (
	"context"

	"github.com/atolltravel/offers-api/internal/domain"
)

// Sort directions accepted in OfferFilter.SortOrder.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// OfferFilter describes the listing parameters for travel offers.
// Destination and Category are case-insensitive substring matches; the
// price bounds are inclusive and may be supplied independently. All
// predicates combine with logical AND.
type OfferFilter struct {
	Destination string
	Category    string
	MinPrice    *float64
	MaxPrice    *float64

	// SortBy names the field to sort on. When empty, results are ordered
	// by creation time, newest first. SortOrder defaults to ascending when
	// SortBy is set.
	SortBy    string
	SortOrder string
}

// OfferUpdate is a partial update for a travel offer. Nil fields are left
// untouched; updated_at is refreshed on every successful update.
type OfferUpdate struct {
	Title          *string                 `json:"title"`
	Destination    *string                 `json:"destination"`
	Description    *string                 `json:"description"`
	Price          *float64                `json:"price"`
	TravelDates    *domain.TravelDateRange `json:"travel_dates"`
	CompanyName    *string                 `json:"company_name"`
	CompanyWebsite *string                 `json:"company_website"`
	Category       *string                 `json:"category"`
	Images         *[]string               `json:"images"`
	ContactInfo    *domain.ContactInfo     `json:"contact_info"`
	Highlights     *[]string               `json:"highlights"`
	Inclusions     *[]string               `json:"inclusions"`
	Exclusions     *[]string               `json:"exclusions"`
	Itinerary      *string                 `json:"itinerary"`
}

// OfferStore defines the interface for travel offer persistence.
type OfferStore interface {
	// Create saves a new offer.
	Create(ctx context.Context, offer *domain.Offer) error

	// GetByID retrieves an offer by its ID.
	// Returns ErrOfferNotFound if it does not exist.
	GetByID(ctx context.Context, id string) (*domain.Offer, error)

	// List returns all offers matching the filter, in the filter's sort
	// order. An empty result is not an error.
	List(ctx context.Context, filter OfferFilter) ([]*domain.Offer, error)

	// Update applies the non-nil fields of the update to the offer and
	// refreshes its updated_at timestamp.
	// Returns ErrOfferNotFound if the ID is unknown.
	Update(ctx context.Context, id string, update OfferUpdate) (*domain.Offer, error)

	// Delete removes the offer. Returns ErrOfferNotFound if absent.
	Delete(ctx context.Context, id string) error

	// DistinctCategories returns the distinct category names currently in
	// use by offers.
	DistinctCategories(ctx context.Context) ([]string, error)

	// ExistsWithCategory reports whether any offer references the given
	// category name. Used as the referential-integrity guard before a
	// category delete.
	ExistsWithCategory(ctx context.Context, name string) (bool, error)
}
