package api

import "github.com/atolltravel/offers-api/internal/domain"

// Common request/response structures

// LoginRequest defines the payload for the admin login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse is the generic confirmation body for delete and
// bootstrap operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// CategoryNamesResponse lists the distinct category names in use by offers.
type CategoryNamesResponse struct {
	Categories []string `json:"categories"`
}

// ImageURLResponse carries the data URI produced by the upload endpoint.
type ImageURLResponse struct {
	ImageURL string `json:"image_url"`
}

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
}

// CreateOfferRequest defines the payload for creating a travel offer.
// Nested struct fields are validated through their own tags.
type CreateOfferRequest struct {
	Title          string                 `json:"title"           validate:"required"`
	Destination    string                 `json:"destination"     validate:"required"`
	Description    string                 `json:"description"     validate:"required"`
	Price          float64                `json:"price"           validate:"gte=0"`
	TravelDates    domain.TravelDateRange `json:"travel_dates"    validate:"required"`
	CompanyName    string                 `json:"company_name"    validate:"required"`
	CompanyWebsite string                 `json:"company_website" validate:"required"`
	Category       string                 `json:"category"        validate:"required"`
	Images         []string               `json:"images"`
	ContactInfo    *domain.ContactInfo    `json:"contact_info"`
	Highlights     []string               `json:"highlights"`
	Inclusions     []string               `json:"inclusions"`
	Exclusions     []string               `json:"exclusions"`
	Itinerary      string                 `json:"itinerary"`
}

// toDomain converts the request into an Offer ready for NewOffer.
func (req CreateOfferRequest) toDomain() domain.Offer {
	return domain.Offer{
		Title:          req.Title,
		Destination:    req.Destination,
		Description:    req.Description,
		Price:          req.Price,
		TravelDates:    req.TravelDates,
		CompanyName:    req.CompanyName,
		CompanyWebsite: req.CompanyWebsite,
		Category:       req.Category,
		Images:         req.Images,
		ContactInfo:    req.ContactInfo,
		Highlights:     req.Highlights,
		Inclusions:     req.Inclusions,
		Exclusions:     req.Exclusions,
		Itinerary:      req.Itinerary,
	}
}

// AdPlacementPayload mirrors domain.AdPlacement for creation requests.
type AdPlacementPayload struct {
	Location    string `json:"location" validate:"required"`
	Description string `json:"description"`
}

// CreateAdvertisementRequest defines the payload for creating an
// advertisement. IsActive defaults to true when omitted.
type CreateAdvertisementRequest struct {
	Title       string             `json:"title"     validate:"required"`
	Description string             `json:"description"`
	ImageURL    string             `json:"image_url" validate:"required"`
	LinkURL     string             `json:"link_url"  validate:"required"`
	Placement   AdPlacementPayload `json:"placement" validate:"required"`
	IsActive    *bool              `json:"is_active"`
}

// toDomain converts the request into an Advertisement ready for
// NewAdvertisement.
func (req CreateAdvertisementRequest) toDomain() domain.Advertisement {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return domain.Advertisement{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		LinkURL:     req.LinkURL,
		Placement: domain.AdPlacement{
			Location:    req.Placement.Location,
			Description: req.Placement.Description,
		},
		IsActive: isActive,
	}
}
