package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic form of the entity-specific variants below.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a category with the same name).
	ErrDuplicate = errors.New("entity already exists")

	// ErrConflict is returned when an operation violates a referential
	// constraint, such as deleting a category still referenced by offers.
	ErrConflict = errors.New("operation conflicts with existing data")

	// Entity-specific "not found" errors

	// ErrAdminNotFound indicates that the requested admin user does not exist.
	ErrAdminNotFound = fmt.Errorf("%w: admin user", ErrNotFound)

	// ErrCategoryNotFound indicates that the requested category does not exist.
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	// ErrOfferNotFound indicates that the requested travel offer does not exist.
	ErrOfferNotFound = fmt.Errorf("%w: travel offer", ErrNotFound)

	// ErrAdvertisementNotFound indicates that the requested advertisement does not exist.
	ErrAdvertisementNotFound = fmt.Errorf("%w: advertisement", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrUsernameExists indicates that an admin with the given username
	// already exists.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)

	// ErrCategoryNameExists indicates that a category with the given name
	// already exists.
	ErrCategoryNameExists = fmt.Errorf("%w: category name", ErrDuplicate)

	// ErrCategoryInUse indicates that a category cannot be deleted because
	// at least one offer still references it by name.
	ErrCategoryInUse = fmt.Errorf("%w: category is referenced by travel offers", ErrConflict)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
