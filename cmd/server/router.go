package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"

	"github.com/atolltravel/offers-api/internal/api"
	apiMiddleware "github.com/atolltravel/offers-api/internal/api/middleware"
	"github.com/atolltravel/offers-api/internal/api/shared"
	"github.com/atolltravel/offers-api/internal/metrics"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(app.collector.Middleware)

	authHandler := api.NewAuthHandler(app.adminStore, app.jwtService, app.hasher, app.logger)
	offerHandler := api.NewOfferHandler(app.offerStore, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryStore, app.offerStore, app.logger)
	adHandler := api.NewAdvertisementHandler(app.adStore, app.logger)
	uploadHandler := api.NewUploadHandler(app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.adminStore)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithJSON(w, r, http.StatusOK, api.MessageResponse{
				Message: "Travel Offers API",
			})
		})

		// Public read endpoints
		r.Get("/offers", offerHandler.ListOffers)
		r.Get("/offers/{id}", offerHandler.GetOffer)
		r.Get("/categories", offerHandler.ListCategoryNames)
		r.Get("/advertisements", adHandler.ListAdvertisements)
		r.Get("/advertisements/{id}", adHandler.GetAdvertisement)

		// Authentication and bootstrap (public)
		r.Post("/admin/login", authHandler.Login)
		r.Post("/admin/create-default-admin", authHandler.CreateDefaultAdmin)

		// Protected admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/offers", offerHandler.CreateOffer)
			r.Put("/offers/{id}", offerHandler.UpdateOffer)
			r.Delete("/offers/{id}", offerHandler.DeleteOffer)

			r.Get("/categories", categoryHandler.ListCategories)
			r.Post("/categories", categoryHandler.CreateCategory)
			r.Put("/categories/{id}", categoryHandler.UpdateCategory)
			r.Delete("/categories/{id}", categoryHandler.DeleteCategory)

			r.Post("/advertisements", adHandler.CreateAdvertisement)
			r.Put("/advertisements/{id}", adHandler.UpdateAdvertisement)
			r.Delete("/advertisements/{id}", adHandler.DeleteAdvertisement)

			r.Post("/upload", uploadHandler.UploadImage)
		})
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler(app.registry))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return handlers.CORS(
		handlers.AllowedOrigins(app.config.Server.AllowedOrigins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)(r)
}
