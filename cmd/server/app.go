package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atolltravel/offers-api/internal/config"
	"github.com/atolltravel/offers-api/internal/metrics"
	"github.com/atolltravel/offers-api/internal/platform/mongodb"
	"github.com/atolltravel/offers-api/internal/service/auth"
	"github.com/atolltravel/offers-api/internal/store"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	client *mongo.Client

	// Stores (interfaces, so tests can substitute mocks)
	adminStore    store.AdminStore
	categoryStore store.CategoryStore
	offerStore    store.OfferStore
	adStore       store.AdvertisementStore

	// Services
	jwtService auth.JWTService
	hasher     auth.PasswordHasher

	// Observability
	registry  *prometheus.Registry
	collector *metrics.Collector
}

// newApplication creates an application instance with all dependencies
// initialized. Configuration, logging and the MongoDB connection must be
// established before calling it.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	client *mongo.Client,
	db *mongo.Database,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		client: client,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.hasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.adminStore = mongodb.NewAdminStore(db)
	app.categoryStore = mongodb.NewCategoryStore(db)
	app.offerStore = mongodb.NewOfferStore(db)
	app.adStore = mongodb.NewAdvertisementStore(db)

	app.registry = prometheus.NewRegistry()
	app.collector = metrics.NewCollector(app.registry)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.client.Disconnect(ctx); err != nil {
			app.logger.Error("Error closing MongoDB connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
