package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-that-is-at-least-32-characters-long"

func TestLoad_DefaultsWithSecret(t *testing.T) {
	t.Setenv("TRAVELAPI_AUTH_JWT_SECRET", testJWTSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "travel_db", cfg.Database.Name)
	assert.Equal(t, 24*60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 0, cfg.Auth.BcryptCost)
	assert.Equal(t, testJWTSecret, cfg.Auth.JWTSecret)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRAVELAPI_AUTH_JWT_SECRET", testJWTSecret)
	t.Setenv("TRAVELAPI_SERVER_PORT", "9090")
	t.Setenv("TRAVELAPI_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TRAVELAPI_DATABASE_URI", "mongodb://db.internal:27017")
	t.Setenv("TRAVELAPI_DATABASE_NAME", "offers_test")
	t.Setenv("TRAVELAPI_AUTH_TOKEN_LIFETIME_MINUTES", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Database.URI)
	assert.Equal(t, "offers_test", cfg.Database.Name)
	assert.Equal(t, 30, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing jwt secret",
			env:  map[string]string{},
		},
		{
			name: "jwt secret too short",
			env:  map[string]string{"TRAVELAPI_AUTH_JWT_SECRET": "short"},
		},
		{
			name: "invalid log level",
			env: map[string]string{
				"TRAVELAPI_AUTH_JWT_SECRET": testJWTSecret,
				"TRAVELAPI_SERVER_LOG_LEVEL": "verbose",
			},
		},
		{
			name: "port out of range",
			env: map[string]string{
				"TRAVELAPI_AUTH_JWT_SECRET": testJWTSecret,
				"TRAVELAPI_SERVER_PORT":     "99999",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
