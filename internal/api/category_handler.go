package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atolltravel/offers-api/internal/api/shared"
	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/store"
)

// CategoryHandler handles admin category CRUD. It also needs the offer
// store for the referential-integrity guard on delete.
type CategoryHandler struct {
	categoryStore store.CategoryStore
	offerStore    store.OfferStore
	logger        *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(
	categoryStore store.CategoryStore,
	offerStore store.OfferStore,
	log *slog.Logger,
) *CategoryHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CategoryHandler{
		categoryStore: categoryStore,
		offerStore:    offerStore,
		logger:        log.With(slog.String("component", "category_handler")),
	}
}

// ListCategories handles GET /api/admin/categories: the full category
// documents, unlike the public distinct-names endpoint.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list categories", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categories)
}

// CreateCategory handles POST /api/admin/categories.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	category, err := domain.NewCategory(req.Name, req.Description)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.categoryStore.Create(r.Context(), category); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/admin/categories/{id}. The payload is
// partial: absent fields keep their stored values.
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var update store.CategoryUpdate
	if err := shared.DecodeJSON(r, &update); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := h.categoryStore.Update(r.Context(), id, update)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/admin/categories/{id}. A category
// still referenced by offers cannot be deleted; the guard matches offers
// by category name, which is what offers actually store.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	category, err := h.categoryStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	inUse, err := h.offerStore.ExistsWithCategory(r.Context(), category.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to delete category", err)
		return
	}
	if inUse {
		shared.RespondWithErrorAndLog(
			w, r, http.StatusConflict, GetSafeErrorMessage(store.ErrCategoryInUse), store.ErrCategoryInUse)
		return
	}

	if err := h.categoryStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Category deleted successfully",
	})
}
