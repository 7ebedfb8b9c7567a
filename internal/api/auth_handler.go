// Package api provides HTTP handlers for the API.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/atolltravel/offers-api/internal/api/shared"
	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/platform/logger"
	"github.com/atolltravel/offers-api/internal/service/auth"
	"github.com/atolltravel/offers-api/internal/store"
)

// Bootstrap credentials created by CreateDefaultAdmin. Meant for first-run
// setup; the password should be changed out of band in any real deployment.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// AuthHandler handles the admin login and bootstrap endpoints.
type AuthHandler struct {
	adminStore store.AdminStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	adminStore store.AdminStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		adminStore: adminStore,
		jwtService: jwtService,
		hasher:     hasher,
		logger:     log.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /api/admin/login. It exchanges a username and password
// for a bearer token. Unknown usernames and wrong passwords produce the
// same 401 so the response does not reveal which was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.adminStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			shared.RespondWithUnauthorized(w, r, "Incorrect username or password")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to authenticate user", err)
		return
	}

	if err := h.hasher.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithUnauthorized(w, r, "Incorrect username or password")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.Username)
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError, "Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// CreateDefaultAdmin handles POST /api/admin/create-default-admin. It seeds
// the bootstrap credential once and is a no-op when the admin already
// exists.
func (h *AuthHandler) CreateDefaultAdmin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	_, err := h.adminStore.GetByUsername(r.Context(), defaultAdminUsername)
	if err == nil {
		shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
			Message: "Default admin already exists",
		})
		return
	}
	if !errors.Is(err, store.ErrAdminNotFound) {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create default admin", err)
		return
	}

	admin, err := domain.NewAdminUser(defaultAdminUsername, defaultAdminPassword)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create default admin", err)
		return
	}

	hashed, err := h.hasher.Hash(admin.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create default admin", err)
		return
	}
	admin.HashedPassword = hashed
	admin.Password = ""

	if err := h.adminStore.Create(r.Context(), admin); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			// Lost a race with a concurrent bootstrap; same outcome.
			shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
				Message: "Default admin already exists",
			})
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create default admin", err)
		return
	}

	log.Info("default admin created", "username", defaultAdminUsername)
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Default admin created successfully",
	})
}
