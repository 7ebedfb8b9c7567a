package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/atolltravel/offers-api/internal/api/shared"
	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/platform/logger"
	"github.com/atolltravel/offers-api/internal/service/auth"
	"github.com/atolltravel/offers-api/internal/store"
)

// credentialsMessage is the single message returned for every
// authentication failure. A missing header, a bad signature, an expired
// token, and an unknown subject are deliberately indistinguishable to the
// caller.
const credentialsMessage = "Could not validate credentials"

// AuthMiddleware gates admin routes behind JWT authentication.
type AuthMiddleware struct {
	jwtService auth.JWTService
	adminStore store.AdminStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, adminStore store.AdminStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		adminStore: adminStore,
	}
}

// Authenticate validates the bearer token from the Authorization header,
// resolves its subject to a stored admin credential, and attaches that
// credential to the request context for downstream handlers.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithUnauthorized(w, r, credentialsMessage)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithUnauthorized(w, r, credentialsMessage)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			// Invalid and expired collapse into the same response.
			shared.RespondWithUnauthorized(w, r, credentialsMessage)
			return
		}

		admin, err := m.adminStore.GetByUsername(r.Context(), claims.Username)
		if err != nil {
			if !store.IsNotFoundError(err) {
				log.Error("failed to resolve token subject", "error", err)
			}
			shared.RespondWithUnauthorized(w, r, credentialsMessage)
			return
		}

		ctx := context.WithValue(r.Context(), shared.AdminContextKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdmin extracts the authenticated admin from the request context.
// Returns the admin and a boolean indicating if it was found.
func GetAdmin(r *http.Request) (*domain.AdminUser, bool) {
	admin, ok := r.Context().Value(shared.AdminContextKey).(*domain.AdminUser)
	return admin, ok
}
