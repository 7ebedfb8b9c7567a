package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/mocks"
)

func seedOffer(t *testing.T, offerStore *mocks.OfferStore, mutate func(*domain.Offer)) *domain.Offer {
	t.Helper()

	offer, err := domain.NewOffer(domain.Offer{
		Title:          "Maldives Escape",
		Destination:    "Maldives",
		Description:    "Seven nights over water",
		Price:          2500,
		TravelDates:    domain.TravelDateRange{StartDate: "2026-09-01", EndDate: "2026-09-08"},
		CompanyName:    "Atoll Travel",
		CompanyWebsite: "https://atoll.example.com",
		Category:       "Beach",
	})
	require.NoError(t, err)

	if mutate != nil {
		mutate(offer)
	}
	require.NoError(t, offerStore.Create(context.Background(), offer))
	return offer
}

func TestCreateOffer(t *testing.T) {
	t.Parallel()

	offerStore := mocks.NewOfferStore()
	handler := NewOfferHandler(offerStore, nil)

	req := newJSONRequest(t, http.MethodPost, "/api/admin/offers", CreateOfferRequest{
		Title:          "Alps Hiking Week",
		Destination:    "Switzerland",
		Description:    "Guided hut-to-hut trek",
		Price:          1800,
		TravelDates:    domain.TravelDateRange{StartDate: "2026-07-01", EndDate: "2026-07-08"},
		CompanyName:    "Atoll Travel",
		CompanyWebsite: "https://atoll.example.com",
		Category:       "Adventure",
	})
	rec := httptest.NewRecorder()

	handler.CreateOffer(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Offer
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Alps Hiking Week", created.Title)
	assert.NotNil(t, created.Images, "images should default to an empty list")
	assert.False(t, created.CreatedAt.IsZero())

	stored, err := offerStore.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, stored.Title)
}

func TestCreateOffer_MissingRequiredField(t *testing.T) {
	t.Parallel()

	handler := NewOfferHandler(mocks.NewOfferStore(), nil)

	req := newJSONRequest(t, http.MethodPost, "/api/admin/offers", map[string]interface{}{
		"destination": "Nowhere",
	})
	rec := httptest.NewRecorder()

	handler.CreateOffer(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOffer(t *testing.T) {
	t.Parallel()

	offerStore := mocks.NewOfferStore()
	handler := NewOfferHandler(offerStore, nil)
	offer := seedOffer(t, offerStore, nil)

	req := withURLParam(
		httptest.NewRequest(http.MethodGet, "/api/offers/"+offer.ID, nil), "id", offer.ID)
	rec := httptest.NewRecorder()

	handler.GetOffer(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Offer
	decodeBody(t, rec, &got)
	assert.Equal(t, offer.ID, got.ID)
	assert.Equal(t, offer.Title, got.Title)
}

func TestGetOffer_NotFound(t *testing.T) {
	t.Parallel()

	handler := NewOfferHandler(mocks.NewOfferStore(), nil)

	req := withURLParam(
		httptest.NewRequest(http.MethodGet, "/api/offers/unknown", nil), "id", "unknown")
	rec := httptest.NewRecorder()

	handler.GetOffer(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Travel offer not found")
}

func TestListOffers_Filtering(t *testing.T) {
	t.Parallel()

	offerStore := mocks.NewOfferStore()
	handler := NewOfferHandler(offerStore, nil)

	seedOffer(t, offerStore, func(o *domain.Offer) {
		o.Title = "Maldives Escape"
		o.Destination = "Maldives"
		o.Category = "Beach"
		o.Price = 2500
	})
	seedOffer(t, offerStore, func(o *domain.Offer) {
		o.Title = "Alps Hiking Week"
		o.Destination = "Switzerland"
		o.Category = "Adventure"
		o.Price = 1800
	})
	seedOffer(t, offerStore, func(o *domain.Offer) {
		o.Title = "City Break Rome"
		o.Destination = "Italy"
		o.Category = "City"
		o.Price = 600
	})

	tests := []struct {
		name       string
		query      string
		wantTitles []string
	}{
		{
			name:       "no filter returns everything",
			query:      "",
			wantTitles: []string{"Maldives Escape", "Alps Hiking Week", "City Break Rome"},
		},
		{
			name:       "destination substring is case insensitive",
			query:      "?destination=mald",
			wantTitles: []string{"Maldives Escape"},
		},
		{
			name:       "category filter",
			query:      "?category=adventure",
			wantTitles: []string{"Alps Hiking Week"},
		},
		{
			name:       "price bounds are inclusive",
			query:      "?min_price=600&max_price=1800",
			wantTitles: []string{"Alps Hiking Week", "City Break Rome"},
		},
		{
			name:       "price floor excludes cheaper offers",
			query:      "?min_price=2000",
			wantTitles: []string{"Maldives Escape"},
		},
		{
			name:       "combined filters",
			query:      "?destination=switz&max_price=2000",
			wantTitles: []string{"Alps Hiking Week"},
		},
		{
			name:       "no matches yields empty list",
			query:      "?destination=atlantis",
			wantTitles: []string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/offers"+tc.query, nil)
			rec := httptest.NewRecorder()

			handler.ListOffers(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var got []domain.Offer
			decodeBody(t, rec, &got)

			titles := make([]string, 0, len(got))
			for _, o := range got {
				titles = append(titles, o.Title)
			}
			assert.ElementsMatch(t, tc.wantTitles, titles)
		})
	}
}

func TestListOffers_Sorting(t *testing.T) {
	t.Parallel()

	offerStore := mocks.NewOfferStore()
	handler := NewOfferHandler(offerStore, nil)

	now := time.Now().UTC()
	seedOffer(t, offerStore, func(o *domain.Offer) {
		o.Title = "Oldest"
		o.Price = 300
		o.CreatedAt = now.Add(-2 * time.Hour)
	})
	seedOffer(t, offerStore, func(o *domain.Offer) {
		o.Title = "Middle"
		o.Price = 100
		o.CreatedAt = now.Add(-time.Hour)
	})
	seedOffer(t, offerStore, func(o *domain.Offer) {
		o.Title = "Newest"
		o.Price = 200
		o.CreatedAt = now
	})

	tests := []struct {
		name      string
		query     string
		wantOrder []string
	}{
		{
			name:      "default is newest first",
			query:     "",
			wantOrder: []string{"Newest", "Middle", "Oldest"},
		},
		{
			name:      "price ascending",
			query:     "?sort_by=price&sort_order=asc",
			wantOrder: []string{"Middle", "Newest", "Oldest"},
		},
		{
			name:      "price descending",
			query:     "?sort_by=price&sort_order=desc",
			wantOrder: []string{"Oldest", "Newest", "Middle"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/offers"+tc.query, nil)
			rec := httptest.NewRecorder()

			handler.ListOffers(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var got []domain.Offer
			decodeBody(t, rec, &got)

			titles := make([]string, 0, len(got))
			for _, o := range got {
				titles = append(titles, o.Title)
			}
			assert.Equal(t, tc.wantOrder, titles)
		})
	}
}

func TestListOffers_MalformedPriceParam(t *testing.T) {
	t.Parallel()

	handler := NewOfferHandler(mocks.NewOfferStore(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/offers?min_price=cheap", nil)
	rec := httptest.NewRecorder()

	handler.ListOffers(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCategoryNames(t *testing.T) {
	t.Parallel()

	offerStore := mocks.NewOfferStore()
	handler := NewOfferHandler(offerStore, nil)

	seedOffer(t, offerStore, func(o *domain.Offer) { o.Category = "Beach" })
	seedOffer(t, offerStore, func(o *domain.Offer) { o.Category = "Adventure" })
	seedOffer(t, offerStore, func(o *domain.Offer) { o.Category = "Beach" })

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()

	handler.ListCategoryNames(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body CategoryNamesResponse
	decodeBody(t, rec, &body)
	assert.ElementsMatch(t, []string{"Adventure", "Beach"}, body.Categories)
}

func TestUpdateOffer_PartialUpdate(t *testing.T) {
	t.Parallel()

	offerStore := mocks.NewOfferStore()
	handler := NewOfferHandler(offerStore, nil)
	offer := seedOffer(t, offerStore, nil)

	req := withURLParam(newJSONRequest(t, http.MethodPut, "/api/admin/offers/"+offer.ID,
		map[string]interface{}{"price": 1999.0}), "id", offer.ID)
	rec := httptest.NewRecorder()

	handler.UpdateOffer(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Offer
	decodeBody(t, rec, &got)
	assert.Equal(t, 1999.0, got.Price)
	assert.Equal(t, offer.Title, got.Title, "unset fields must keep their values")
	assert.Equal(t, offer.Destination, got.Destination)
}

func TestUpdateOffer_NotFound(t *testing.T) {
	t.Parallel()

	handler := NewOfferHandler(mocks.NewOfferStore(), nil)

	req := withURLParam(newJSONRequest(t, http.MethodPut, "/api/admin/offers/unknown",
		map[string]interface{}{"price": 10.0}), "id", "unknown")
	rec := httptest.NewRecorder()

	handler.UpdateOffer(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteOffer(t *testing.T) {
	t.Parallel()

	offerStore := mocks.NewOfferStore()
	handler := NewOfferHandler(offerStore, nil)
	offer := seedOffer(t, offerStore, nil)

	req := withURLParam(
		httptest.NewRequest(http.MethodDelete, "/api/admin/offers/"+offer.ID, nil), "id", offer.ID)
	rec := httptest.NewRecorder()

	handler.DeleteOffer(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body MessageResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Travel offer deleted successfully", body.Message)

	_, err := offerStore.GetByID(context.Background(), offer.ID)
	assert.Error(t, err)

	// Deleting again reports not found.
	again := httptest.NewRecorder()
	handler.DeleteOffer(again, req)
	assert.Equal(t, http.StatusNotFound, again.Code)
}
