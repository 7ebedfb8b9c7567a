package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/atolltravel/offers-api/internal/api/shared"
	"github.com/atolltravel/offers-api/internal/config"
	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/mocks"
	"github.com/atolltravel/offers-api/internal/service/auth"
)

func newAuthHandlerFixture(t *testing.T) (*AuthHandler, *mocks.AdminStore, auth.JWTService) {
	t.Helper()

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-secret-that-is-at-least-32-characters-long",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	adminStore := mocks.NewAdminStore()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	return NewAuthHandler(adminStore, jwtService, hasher, nil), adminStore, jwtService
}

func seedAdmin(t *testing.T, adminStore *mocks.AdminStore, username, password string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, adminStore.Create(context.Background(), &domain.AdminUser{
		ID:             "admin-id",
		Username:       username,
		HashedPassword: string(hash),
	}))
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	handler, adminStore, jwtService := newAuthHandlerFixture(t)
	seedAdmin(t, adminStore, "admin", "admin123")

	req := newJSONRequest(t, http.MethodPost, "/api/admin/login", LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body TokenResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "bearer", body.TokenType)

	claims, err := jwtService.ValidateToken(context.Background(), body.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestLogin_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "wrong password",
			body:       LoginRequest{Username: "admin", Password: "nope"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown username",
			body:       LoginRequest{Username: "ghost", Password: "admin123"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing password",
			body:       LoginRequest{Username: "admin"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty body",
			body:       map[string]string{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler, adminStore, _ := newAuthHandlerFixture(t)
			seedAdmin(t, adminStore, "admin", "admin123")

			req := newJSONRequest(t, http.MethodPost, "/api/admin/login", tc.body)
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusUnauthorized {
				var body shared.ErrorResponse
				decodeBody(t, rec, &body)
				// Unknown user and wrong password must be indistinguishable.
				assert.Equal(t, "Incorrect username or password", body.Error)
			}
		})
	}
}

func TestCreateDefaultAdmin(t *testing.T) {
	t.Parallel()

	handler, adminStore, _ := newAuthHandlerFixture(t)

	req := newJSONRequest(t, http.MethodPost, "/api/admin/create-default-admin", nil)
	rec := httptest.NewRecorder()
	handler.CreateDefaultAdmin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body MessageResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Default admin created successfully", body.Message)

	admin, err := adminStore.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, admin.HashedPassword)
	assert.Empty(t, admin.Password, "plaintext password must not be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte("admin123")))

	// The default credential should let the admin log in immediately.
	loginRec := httptest.NewRecorder()
	handler.Login(loginRec, newJSONRequest(t, http.MethodPost, "/api/admin/login", LoginRequest{
		Username: "admin",
		Password: "admin123",
	}))
	assert.Equal(t, http.StatusOK, loginRec.Code)
}

func TestCreateDefaultAdmin_Idempotent(t *testing.T) {
	t.Parallel()

	handler, _, _ := newAuthHandlerFixture(t)

	first := httptest.NewRecorder()
	handler.CreateDefaultAdmin(first, newJSONRequest(t, http.MethodPost, "/api/admin/create-default-admin", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.CreateDefaultAdmin(second, newJSONRequest(t, http.MethodPost, "/api/admin/create-default-admin", nil))
	require.Equal(t, http.StatusOK, second.Code)

	var body MessageResponse
	decodeBody(t, second, &body)
	assert.Equal(t, "Default admin already exists", body.Message)
}
