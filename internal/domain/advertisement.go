package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdPlacement describes where an advertisement is shown on the site.
type AdPlacement struct {
	Location    string `json:"location"              bson:"location"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Advertisement is a banner shown on the public site, managed by the admin.
type Advertisement struct {
	ID          string      `json:"id"                    bson:"id"`
	Title       string      `json:"title"                 bson:"title"`
	Description string      `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string      `json:"image_url"             bson:"image_url"`
	LinkURL     string      `json:"link_url"              bson:"link_url"`
	Placement   AdPlacement `json:"placement"             bson:"placement"`
	IsActive    bool        `json:"is_active"             bson:"is_active"`
	CreatedAt   time.Time   `json:"created_at"            bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"            bson:"updated_at"`
}

// NewAdvertisement assigns a server-generated ID and timestamps to the given
// advertisement data and validates the result.
func NewAdvertisement(ad Advertisement) (*Advertisement, error) {
	now := time.Now().UTC()
	ad.ID = uuid.NewString()
	ad.CreatedAt = now
	ad.UpdatedAt = now

	if err := ad.Validate(); err != nil {
		return nil, err
	}

	return &ad, nil
}

// Validate checks if the Advertisement has valid data.
func (a *Advertisement) Validate() error {
	if a.ID == "" {
		return NewValidationError("id", "cannot be empty")
	}
	if a.Title == "" {
		return NewValidationError("title", "cannot be empty")
	}
	if a.ImageURL == "" {
		return NewValidationError("image_url", "cannot be empty")
	}
	if a.LinkURL == "" {
		return NewValidationError("link_url", "cannot be empty")
	}
	if a.Placement.Location == "" {
		return NewValidationError("placement.location", "cannot be empty")
	}
	return nil
}
