package domain

import (
	"time"

	"github.com/google/uuid"
)

// TravelDateRange holds the start and end dates of an offer's travel window.
// Dates are opaque strings supplied by the admin (the API does not interpret
// them beyond requiring presence).
type TravelDateRange struct {
	StartDate string `json:"start_date" bson:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   bson:"end_date"   validate:"required"`
}

// ContactInfo holds optional contact details attached to an offer.
type ContactInfo struct {
	Phone   string `json:"phone,omitempty"   bson:"phone,omitempty"`
	Email   string `json:"email,omitempty"   bson:"email,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
}

// Offer is a travel package listed publicly and managed by the admin.
// The Category field references a Category by name.
type Offer struct {
	ID             string          `json:"id"                     bson:"id"`
	Title          string          `json:"title"                  bson:"title"`
	Destination    string          `json:"destination"            bson:"destination"`
	Description    string          `json:"description"            bson:"description"`
	Price          float64         `json:"price"                  bson:"price"`
	TravelDates    TravelDateRange `json:"travel_dates"           bson:"travel_dates"`
	CompanyName    string          `json:"company_name"           bson:"company_name"`
	CompanyWebsite string          `json:"company_website"        bson:"company_website"`
	Category       string          `json:"category"               bson:"category"`
	Images         []string        `json:"images"                 bson:"images"`
	ContactInfo    *ContactInfo    `json:"contact_info,omitempty" bson:"contact_info,omitempty"`
	Highlights     []string        `json:"highlights,omitempty"   bson:"highlights,omitempty"`
	Inclusions     []string        `json:"inclusions,omitempty"   bson:"inclusions,omitempty"`
	Exclusions     []string        `json:"exclusions,omitempty"   bson:"exclusions,omitempty"`
	Itinerary      string          `json:"itinerary,omitempty"    bson:"itinerary,omitempty"`
	CreatedAt      time.Time       `json:"created_at"             bson:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"             bson:"updated_at"`
}

// NewOffer assigns a server-generated ID and timestamps to the given offer
// data and validates the result. The input is copied, not mutated.
func NewOffer(offer Offer) (*Offer, error) {
	now := time.Now().UTC()
	offer.ID = uuid.NewString()
	offer.CreatedAt = now
	offer.UpdatedAt = now
	if offer.Images == nil {
		offer.Images = []string{}
	}

	if err := offer.Validate(); err != nil {
		return nil, err
	}

	return &offer, nil
}

// Validate checks if the Offer has valid data.
func (o *Offer) Validate() error {
	if o.ID == "" {
		return NewValidationError("id", "cannot be empty")
	}
	if o.Title == "" {
		return NewValidationError("title", "cannot be empty")
	}
	if o.Destination == "" {
		return NewValidationError("destination", "cannot be empty")
	}
	if o.Price < 0 {
		return NewValidationError("price", "cannot be negative")
	}
	if o.TravelDates.StartDate == "" || o.TravelDates.EndDate == "" {
		return NewValidationError("travel_dates", "must include start and end dates")
	}
	if o.Category == "" {
		return NewValidationError("category", "cannot be empty")
	}
	return nil
}
