package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/service/auth"
	"github.com/atolltravel/offers-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes so
// internal error types never leak to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Uniqueness and referential-integrity conflicts
	case store.IsDuplicateError(err),
		errors.Is(err, store.ErrConflict):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly message for the
// given error.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Could not validate credentials"

	case errors.Is(err, store.ErrCategoryInUse):
		return "Cannot delete category that is being used by travel offers"

	case errors.Is(err, store.ErrCategoryNameExists):
		return "Category with this name already exists"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, store.ErrOfferNotFound):
		return "Travel offer not found"

	case errors.Is(err, store.ErrCategoryNotFound):
		return "Category not found"

	case errors.Is(err, store.ErrAdvertisementNotFound):
		return "Advertisement not found"

	case errors.Is(err, store.ErrAdminNotFound):
		return "Admin user not found"

	case errors.Is(err, domain.ErrValidation):
		// Field-level detail from domain validation is safe to surface.
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return "Invalid input: " + validationErr.Error()
		}
		return "Invalid input"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a validator.ValidationErrors message into a
// short field-level message without echoing the raw input back.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'LoginRequest.Username' Error:Field validation for 'Username' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// validationTagMessage maps a validator tag to a human-readable reason.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gte":
		return "value too small"
	case "lte":
		return "value too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
