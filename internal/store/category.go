package store

import (
	"context"

	"github.com/atolltravel/offers-api/internal/domain"
)

// CategoryUpdate is a partial update for a category. Nil fields are left
// untouched. A field that is present but null in the request JSON is
// indistinguishable from an absent one, so optional fields cannot be
// cleared through this path.
type CategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// Create saves a new category.
	// Returns ErrCategoryNameExists if the name is already taken.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its ID.
	// Returns ErrCategoryNotFound if it does not exist.
	GetByID(ctx context.Context, id string) (*domain.Category, error)

	// List returns all categories. An empty result is not an error.
	List(ctx context.Context) ([]*domain.Category, error)

	// Update applies the non-nil fields of the update to the category.
	// Returns ErrCategoryNotFound if the ID is unknown and
	// ErrCategoryNameExists if renaming to a name held by another category.
	Update(ctx context.Context, id string, update CategoryUpdate) (*domain.Category, error)

	// Delete removes the category. Returns ErrCategoryNotFound if absent.
	// The referential-integrity guard against offers that still use the
	// category is performed by the caller, not here.
	Delete(ctx context.Context, id string) error
}
