package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/store"
)

// CategoryStore implements store.CategoryStore backed by the categories
// collection.
type CategoryStore struct {
	collection *mongo.Collection
}

var _ store.CategoryStore = (*CategoryStore)(nil)

// NewCategoryStore creates a CategoryStore using the given database handle.
func NewCategoryStore(db *mongo.Database) *CategoryStore {
	return &CategoryStore{collection: db.Collection(categoriesCollection)}
}

// Create saves a new category, rejecting duplicate names.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	err := s.collection.FindOne(ctx, bson.M{"name": category.Name}).Err()
	if err == nil {
		return store.ErrCategoryNameExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to check for existing category: %w", err)
	}

	if _, err := s.collection.InsertOne(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrCategoryNameExists
		}
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by its ID.
func (s *CategoryStore) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	var category domain.Category
	err := s.collection.FindOne(ctx, bson.M{"id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// List returns all categories.
func (s *CategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := []*domain.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

// Update applies the non-nil fields of the update and returns the full
// updated category.
func (s *CategoryStore) Update(
	ctx context.Context,
	id string,
	update store.CategoryUpdate,
) (*domain.Category, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	set := bson.M{}
	if update.Name != nil {
		// Renaming to a name held by a different category is a conflict.
		err := s.collection.FindOne(ctx, bson.M{"name": *update.Name, "id": bson.M{"$ne": id}}).Err()
		if err == nil {
			return nil, store.ErrCategoryNameExists
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("failed to check for name conflict: %w", err)
		}
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}

	if len(set) > 0 {
		if _, err := s.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set}); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, store.ErrCategoryNameExists
			}
			return nil, fmt.Errorf("failed to update category: %w", err)
		}
	}

	return s.GetByID(ctx, id)
}

// Delete removes the category. The offer-reference guard is the caller's
// responsibility.
func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.DeletedCount == 0 {
		return store.ErrCategoryNotFound
	}
	return nil
}
