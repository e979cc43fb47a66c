package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shepstack/supportai/app"
	"github.com/shepstack/supportai/handlers"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "https://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/healthz", handlers.Health)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ai/complete", deps.AIHandler.HandleComplete)

		r.Route("/derive", func(r chi.Router) {
			r.Post("/sentiment", deps.SupportHandler.HandleSentiment)
			r.Post("/summary", deps.SupportHandler.HandleSummary)
		})

		r.Route("/rules", func(r chi.Router) {
			r.Post("/frustration", deps.SupportHandler.HandleFrustration)
			r.Post("/spam", deps.SupportHandler.HandleSpam)
		})

		r.Post("/flows/{step}", deps.SupportHandler.HandleFlowStep)
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"endpoint not found"}`))
	})

	return r
}
