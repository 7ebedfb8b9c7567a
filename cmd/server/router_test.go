package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/atolltravel/offers-api/internal/config"
	"github.com/atolltravel/offers-api/internal/domain"
	"github.com/atolltravel/offers-api/internal/metrics"
	"github.com/atolltravel/offers-api/internal/mocks"
	"github.com/atolltravel/offers-api/internal/service/auth"
)

// newTestApplication builds an application backed by mock stores so the
// full router can be exercised without a MongoDB connection.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           8000,
			LogLevel:       "info",
			AllowedOrigins: []string{"*"},
		},
		Auth: config.AuthConfig{
			JWTSecret:            "router-test-secret-at-least-32-characters",
			TokenLifetimeMinutes: 60,
			BcryptCost:           bcrypt.MinCost,
		},
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()

	return &application{
		config:        cfg,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		adminStore:    mocks.NewAdminStore(),
		categoryStore: mocks.NewCategoryStore(),
		offerStore:    mocks.NewOfferStore(),
		adStore:       mocks.NewAdvertisementStore(),
		jwtService:    jwtService,
		hasher:        auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		registry:      registry,
		collector:     metrics.NewCollector(registry),
	}
}

// seedAdminToken stores an admin credential in the mock store and returns
// a bearer token for it.
func seedAdminToken(t *testing.T, app *application) string {
	t.Helper()
	ctx := context.Background()

	hashed, err := app.hasher.Hash("admin123")
	require.NoError(t, err)

	require.NoError(t, app.adminStore.Create(ctx, &domain.AdminUser{
		ID:             uuid.NewString(),
		Username:       "admin",
		HashedPassword: hashed,
		CreatedAt:      time.Now().UTC(),
	}))

	token, err := app.jwtService.GenerateToken(ctx, "admin")
	require.NoError(t, err)
	return token
}

func newMultipartUpload(t *testing.T, path string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="banner.png"`)
	header.Set("Content-Type", "image/png")

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestRouter_UploadRoute(t *testing.T) {
	app := newTestApplication(t)
	token := seedAdminToken(t, app)
	router := app.setupRouter()

	t.Run("authenticated upload succeeds", func(t *testing.T) {
		req := newMultipartUpload(t, "/api/admin/upload", []byte{0x89, 0x50, 0x4e, 0x47})
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "data:image/png;base64,"))
	})

	t.Run("requires authentication", func(t *testing.T) {
		req := newMultipartUpload(t, "/api/admin/upload", []byte{0x01})
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("no route at the old path", func(t *testing.T) {
		req := newMultipartUpload(t, "/api/admin/upload-image", []byte{0x01})
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
