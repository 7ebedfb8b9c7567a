package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category groups travel offers under a unique name. Offers reference a
// category by its name, not its ID, so renaming a category orphans the
// offers that used the old name.
type Category struct {
	ID          string    `json:"id"          bson:"id"`
	Name        string    `json:"name"        bson:"name"`
	Description string    `json:"description" bson:"description"`
	CreatedAt   time.Time `json:"created_at"  bson:"created_at"`
}

// NewCategory creates a Category with a server-assigned ID and creation
// timestamp. Returns a ValidationError if the name is empty.
func NewCategory(name, description string) (*Category, error) {
	category := &Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.ID == "" {
		return NewValidationError("id", "cannot be empty")
	}
	if c.Name == "" {
		return NewValidationError("name", "cannot be empty")
	}
	return nil
}
