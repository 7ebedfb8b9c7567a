package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/store"
)

// OfferStore implements store.OfferStore backed by the travel_offers
// collection.
type OfferStore struct {
	collection *mongo.Collection
}

var _ store.OfferStore = (*OfferStore)(nil)

// NewOfferStore creates an OfferStore using the given database handle.
func NewOfferStore(db *mongo.Database) *OfferStore {
	return &OfferStore{collection: db.Collection(offersCollection)}
}

// Create saves a new offer.
func (s *OfferStore) Create(ctx context.Context, offer *domain.Offer) error {
	if err := offer.Validate(); err != nil {
		return err
	}

	if _, err := s.collection.InsertOne(ctx, offer); err != nil {
		return fmt.Errorf("failed to insert offer: %w", err)
	}
	return nil
}

// GetByID retrieves an offer by its ID.
func (s *OfferStore) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	var offer domain.Offer
	err := s.collection.FindOne(ctx, bson.M{"id": id}).Decode(&offer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return &offer, nil
}

// List returns all offers matching the filter in the filter's sort order.
func (s *OfferStore) List(ctx context.Context, filter store.OfferFilter) ([]*domain.Offer, error) {
	opts := options.Find().SetSort(buildOfferSort(filter))

	cursor, err := s.collection.Find(ctx, buildOfferQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	offers := []*domain.Offer{}
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, fmt.Errorf("failed to decode offers: %w", err)
	}
	return offers, nil
}

// Update applies the non-nil fields of the update, refreshes updated_at,
// and returns the full updated offer.
func (s *OfferStore) Update(
	ctx context.Context,
	id string,
	update store.OfferUpdate,
) (*domain.Offer, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	set := offerUpdateDoc(update)
	set["updated_at"] = time.Now().UTC()

	if _, err := s.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set}); err != nil {
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Delete removes the offer.
func (s *OfferStore) Delete(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	if result.DeletedCount == 0 {
		return store.ErrOfferNotFound
	}
	return nil
}

// DistinctCategories returns the distinct category names in use by offers.
func (s *OfferStore) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := s.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct categories: %w", err)
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if name, ok := v.(string); ok {
			categories = append(categories, name)
		}
	}
	return categories, nil
}

// ExistsWithCategory reports whether any offer references the category name.
func (s *OfferStore) ExistsWithCategory(ctx context.Context, name string) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{"category": name}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to count offers by category: %w", err)
	}
	return count > 0, nil
}

// offerUpdateDoc builds the $set document from the update's non-nil fields.
func offerUpdateDoc(update store.OfferUpdate) bson.M {
	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Destination != nil {
		set["destination"] = *update.Destination
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.TravelDates != nil {
		set["travel_dates"] = *update.TravelDates
	}
	if update.CompanyName != nil {
		set["company_name"] = *update.CompanyName
	}
	if update.CompanyWebsite != nil {
		set["company_website"] = *update.CompanyWebsite
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Images != nil {
		set["images"] = *update.Images
	}
	if update.ContactInfo != nil {
		set["contact_info"] = *update.ContactInfo
	}
	if update.Highlights != nil {
		set["highlights"] = *update.Highlights
	}
	if update.Inclusions != nil {
		set["inclusions"] = *update.Inclusions
	}
	if update.Exclusions != nil {
		set["exclusions"] = *update.Exclusions
	}
	if update.Itinerary != nil {
		set["itinerary"] = *update.Itinerary
	}
	return set
}
