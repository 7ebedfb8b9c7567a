// Package main implements the entry point for the travel offers API
// server, which serves public travel offer and advertisement listings and
// a JWT-protected admin CRUD surface backed by MongoDB.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/atolltravel/offers-api/internal/config"
	"github.com/atolltravel/offers-api/internal/platform/logger"
	"github.com/atolltravel/offers-api/internal/platform/mongodb"
	"github.com/atolltravel/offers-api/internal/redact"
)

func main() {
	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		app.logger.Error("Server exited with error", "error", redact.Error(err))
		app.cleanup()
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, connects to MongoDB
// and wires the application dependencies.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	client, db, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	appLogger.Info("MongoDB connection established", "database", cfg.Database.Name)

	app, err := newApplication(cfg, appLogger, client, db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return app, nil
}
