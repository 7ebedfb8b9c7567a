package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Parallel()

	category, err := NewCategory("Beach", "Sun and sand")
	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "Beach", category.Name)
	assert.False(t, category.CreatedAt.IsZero())

	_, err = NewCategory("", "missing name")
	assert.Error(t, err)
}

func TestNewAdvertisement(t *testing.T) {
	t.Parallel()

	ad, err := NewAdvertisement(Advertisement{
		Title:    "Summer Sale",
		ImageURL: "https://cdn.example.com/banner.png",
		LinkURL:  "https://atoll.example.com/sale",
		Placement: AdPlacement{
			Location: "homepage",
		},
		IsActive: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ad.ID)
	assert.False(t, ad.CreatedAt.IsZero())

	_, err = NewAdvertisement(Advertisement{Title: "No image or link"})
	assert.Error(t, err)
}

func TestNewAdminUser(t *testing.T) {
	t.Parallel()

	user, err := NewAdminUser("admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin123", user.Password)
	assert.Empty(t, user.HashedPassword, "hashing happens in the service layer")

	_, err = NewAdminUser("", "admin123")
	assert.Error(t, err)

	_, err = NewAdminUser("admin", "")
	assert.Error(t, err)
}
