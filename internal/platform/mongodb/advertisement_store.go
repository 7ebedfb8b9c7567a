package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/store"
)

// AdvertisementStore implements store.AdvertisementStore backed by the
// advertisements collection.
type AdvertisementStore struct {
	collection *mongo.Collection
}

var _ store.AdvertisementStore = (*AdvertisementStore)(nil)

// NewAdvertisementStore creates an AdvertisementStore using the given
// database handle.
func NewAdvertisementStore(db *mongo.Database) *AdvertisementStore {
	return &AdvertisementStore{collection: db.Collection(advertisementsCollection)}
}

// Create saves a new advertisement.
func (s *AdvertisementStore) Create(ctx context.Context, ad *domain.Advertisement) error {
	if err := ad.Validate(); err != nil {
		return err
	}

	if _, err := s.collection.InsertOne(ctx, ad); err != nil {
		return fmt.Errorf("failed to insert advertisement: %w", err)
	}
	return nil
}

// GetByID retrieves an advertisement by its ID.
func (s *AdvertisementStore) GetByID(ctx context.Context, id string) (*domain.Advertisement, error) {
	var ad domain.Advertisement
	err := s.collection.FindOne(ctx, bson.M{"id": id}).Decode(&ad)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrAdvertisementNotFound
		}
		return nil, fmt.Errorf("failed to get advertisement: %w", err)
	}
	return &ad, nil
}

// List returns all advertisements matching the filter.
func (s *AdvertisementStore) List(
	ctx context.Context,
	filter store.AdFilter,
) ([]*domain.Advertisement, error) {
	cursor, err := s.collection.Find(ctx, buildAdQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to list advertisements: %w", err)
	}

	ads := []*domain.Advertisement{}
	if err := cursor.All(ctx, &ads); err != nil {
		return nil, fmt.Errorf("failed to decode advertisements: %w", err)
	}
	return ads, nil
}

// Update applies the non-nil fields of the update, refreshes updated_at,
// and returns the full updated advertisement.
func (s *AdvertisementStore) Update(
	ctx context.Context,
	id string,
	update store.AdvertisementUpdate,
) (*domain.Advertisement, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.ImageURL != nil {
		set["image_url"] = *update.ImageURL
	}
	if update.LinkURL != nil {
		set["link_url"] = *update.LinkURL
	}
	if update.Placement != nil {
		set["placement"] = *update.Placement
	}
	if update.IsActive != nil {
		set["is_active"] = *update.IsActive
	}

	if _, err := s.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set}); err != nil {
		return nil, fmt.Errorf("failed to update advertisement: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Delete removes the advertisement.
func (s *AdvertisementStore) Delete(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete advertisement: %w", err)
	}
	if result.DeletedCount == 0 {
		return store.ErrAdvertisementNotFound
	}
	return nil
}
