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

// AdminStore implements store.AdminStore backed by the admin_users
// collection.
type AdminStore struct {
	collection *mongo.Collection
}

var _ store.AdminStore = (*AdminStore)(nil)

// NewAdminStore creates an AdminStore using the given database handle.
func NewAdminStore(db *mongo.Database) *AdminStore {
	return &AdminStore{collection: db.Collection(adminUsersCollection)}
}

// Create saves a new admin user. The unique index on username turns a
// concurrent double-create into a duplicate key error, which is mapped to
// ErrUsernameExists like the pre-check.
func (s *AdminStore) Create(ctx context.Context, user *domain.AdminUser) error {
	if err := user.Validate(); err != nil {
		return err
	}
	if user.HashedPassword == "" {
		return domain.ErrEmptyHashedPassword
	}

	err := s.collection.FindOne(ctx, bson.M{"username": user.Username}).Err()
	if err == nil {
		return store.ErrUsernameExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}

	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrUsernameExists
		}
		return fmt.Errorf("failed to insert admin user: %w", err)
	}

	return nil
}

// GetByUsername retrieves an admin user by username.
func (s *AdminStore) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	var user domain.AdminUser
	err := s.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return &user, nil
}
