package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/atolltravel/offers-api/internal/api/shared"
	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/store"
)

// OfferHandler handles travel offer HTTP requests, both the public read
// endpoints and the admin CRUD endpoints.
type OfferHandler struct {
	offerStore store.OfferStore
	logger     *slog.Logger
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(offerStore store.OfferStore, log *slog.Logger) *OfferHandler {
	if log == nil {
		log = slog.Default()
	}
	return &OfferHandler{
		offerStore: offerStore,
		logger:     log.With(slog.String("component", "offer_handler")),
	}
}

// ListOffers handles GET /api/offers. Filtering and sorting are driven
// entirely by query parameters; no parameter means "all offers, newest
// first".
func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	filter, err := offerFilterFromQuery(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	offers, err := h.offerStore.List(r.Context(), filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list travel offers", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, offers)
}

// GetOffer handles GET /api/offers/{id}.
func (h *OfferHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	offer, err := h.offerStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, offer)
}

// ListCategoryNames handles GET /api/categories: the distinct category
// names currently referenced by offers, not the category documents.
func (h *OfferHandler) ListCategoryNames(w http.ResponseWriter, r *http.Request) {
	categories, err := h.offerStore.DistinctCategories(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list categories", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CategoryNamesResponse{Categories: categories})
}

// CreateOffer handles POST /api/admin/offers.
func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req CreateOfferRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	offer, err := domain.NewOffer(req.toDomain())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.offerStore.Create(r.Context(), offer); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, offer)
}

// UpdateOffer handles PUT /api/admin/offers/{id}. The payload is partial:
// absent fields keep their stored values.
func (h *OfferHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var update store.OfferUpdate
	if err := shared.DecodeJSON(r, &update); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	offer, err := h.offerStore.Update(r.Context(), id, update)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, offer)
}

// DeleteOffer handles DELETE /api/admin/offers/{id}.
func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.offerStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Travel offer deleted successfully",
	})
}

// offerFilterFromQuery parses the listing query parameters. Malformed
// numeric bounds are rejected rather than silently dropped.
func offerFilterFromQuery(r *http.Request) (store.OfferFilter, error) {
	q := r.URL.Query()

	filter := store.OfferFilter{
		Destination: q.Get("destination"),
		Category:    q.Get("category"),
		SortBy:      q.Get("sort_by"),
		SortOrder:   strings.ToLower(q.Get("sort_order")),
	}

	if raw := q.Get("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return store.OfferFilter{}, domain.NewValidationError("min_price", "must be a number")
		}
		filter.MinPrice = &v
	}
	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return store.OfferFilter{}, domain.NewValidationError("max_price", "must be a number")
		}
		filter.MaxPrice = &v
	}

	return filter, nil
}
