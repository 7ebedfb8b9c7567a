package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/atolltravel/offers-api/internal/api/shared"
	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/store"
)

// AdvertisementHandler handles advertisement HTTP requests, both the
// public placement listing and the admin CRUD endpoints.
type AdvertisementHandler struct {
	adStore store.AdvertisementStore
	logger  *slog.Logger
}

// NewAdvertisementHandler creates a new AdvertisementHandler.
func NewAdvertisementHandler(adStore store.AdvertisementStore, log *slog.Logger) *AdvertisementHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AdvertisementHandler{
		adStore: adStore,
		logger:  log.With(slog.String("component", "advertisement_handler")),
	}
}

// ListAdvertisements handles GET /api/advertisements. Only active ads are
// returned unless active_only=false is passed explicitly.
func (h *AdvertisementHandler) ListAdvertisements(w http.ResponseWriter, r *http.Request) {
	filter, err := adFilterFromQuery(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ads, err := h.adStore.List(r.Context(), filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list advertisements", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ads)
}

// GetAdvertisement handles GET /api/advertisements/{id}.
func (h *AdvertisementHandler) GetAdvertisement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ad, err := h.adStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ad)
}

// CreateAdvertisement handles POST /api/admin/advertisements.
func (h *AdvertisementHandler) CreateAdvertisement(w http.ResponseWriter, r *http.Request) {
	var req CreateAdvertisementRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	ad, err := domain.NewAdvertisement(req.toDomain())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.adStore.Create(r.Context(), ad); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, ad)
}

// UpdateAdvertisement handles PUT /api/admin/advertisements/{id}. The
// payload is partial: absent fields keep their stored values.
func (h *AdvertisementHandler) UpdateAdvertisement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var update store.AdvertisementUpdate
	if err := shared.DecodeJSON(r, &update); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	ad, err := h.adStore.Update(r.Context(), id, update)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ad)
}

// DeleteAdvertisement handles DELETE /api/admin/advertisements/{id}.
func (h *AdvertisementHandler) DeleteAdvertisement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.adStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Advertisement deleted successfully",
	})
}

// adFilterFromQuery parses the advertisement listing query parameters.
func adFilterFromQuery(r *http.Request) (store.AdFilter, error) {
	q := r.URL.Query()

	filter := store.AdFilter{
		Location:   q.Get("location"),
		ActiveOnly: true,
	}

	if raw := q.Get("active_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return store.AdFilter{}, domain.NewValidationError("active_only", "must be a boolean")
		}
		filter.ActiveOnly = v
	}

	return filter, nil
}
