package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Admin credential validation errors.
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// AdminUser represents the single administrative credential of the system.
// It is created once by the bootstrap operation and never updated or
// deleted afterwards.
type AdminUser struct {
	ID             string    `json:"id"              bson:"id"`
	Username       string    `json:"username"        bson:"username"`
	Password       string    `json:"-"               bson:"-"` // Plaintext, only set during bootstrap
	HashedPassword string    `json:"-"               bson:"hashed_password"`
	CreatedAt      time.Time `json:"created_at"      bson:"created_at"`
}

// NewAdminUser creates a new AdminUser with the given username and plaintext
// password. The caller is responsible for hashing the password before the
// user is stored.
func NewAdminUser(username, password string) (*AdminUser, error) {
	user := &AdminUser{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the AdminUser has valid data.
func (u *AdminUser) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyPassword
	}
	return nil
}
