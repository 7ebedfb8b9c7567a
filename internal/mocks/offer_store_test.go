package mocks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/store"
)

func titlesOf(offers []*domain.Offer) []string {
	titles := make([]string, len(offers))
	for i, offer := range offers {
		titles[i] = offer.Title
	}
	return titles
}

func TestSortOffers(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	newOffers := func() []*domain.Offer {
		return []*domain.Offer{
			{Title: "Alps Hiking", Price: 900, CreatedAt: base},
			{Title: "Bali Retreat", Price: 1200, CreatedAt: base.Add(time.Hour)},
			{Title: "Crete Sailing", Price: 1200, CreatedAt: base.Add(2 * time.Hour)},
			{Title: "Dolomites Ski", Price: 700, CreatedAt: base.Add(3 * time.Hour)},
		}
	}

	tests := []struct {
		name   string
		filter store.OfferFilter
		want   []string
	}{
		{
			name:   "price ascending",
			filter: store.OfferFilter{SortBy: "price", SortOrder: store.SortAsc},
			want:   []string{"Dolomites Ski", "Alps Hiking", "Bali Retreat", "Crete Sailing"},
		},
		{
			name:   "price descending keeps tied offers in original order",
			filter: store.OfferFilter{SortBy: "price", SortOrder: store.SortDesc},
			want:   []string{"Bali Retreat", "Crete Sailing", "Alps Hiking", "Dolomites Ski"},
		},
		{
			name:   "title descending",
			filter: store.OfferFilter{SortBy: "title", SortOrder: store.SortDesc},
			want:   []string{"Dolomites Ski", "Crete Sailing", "Bali Retreat", "Alps Hiking"},
		},
		{
			name:   "created_at descending",
			filter: store.OfferFilter{SortBy: "created_at", SortOrder: store.SortDesc},
			want:   []string{"Dolomites Ski", "Crete Sailing", "Bali Retreat", "Alps Hiking"},
		},
		{
			name:   "no sort field defaults to newest first",
			filter: store.OfferFilter{},
			want:   []string{"Dolomites Ski", "Crete Sailing", "Bali Retreat", "Alps Hiking"},
		},
		{
			name:   "unknown sort field leaves order unchanged",
			filter: store.OfferFilter{SortBy: "popularity", SortOrder: store.SortDesc},
			want:   []string{"Alps Hiking", "Bali Retreat", "Crete Sailing", "Dolomites Ski"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			offers := newOffers()
			sortOffers(offers, tc.filter)
			assert.Equal(t, tc.want, titlesOf(offers))
		})
	}
}
