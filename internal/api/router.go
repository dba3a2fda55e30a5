// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"fitlog-tracker/internal/api/handler"
	"fitlog-tracker/internal/metrics"
	"fitlog-tracker/internal/middleware"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(trackerHandler *handler.TrackerHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(handler.DefaultTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(middleware.HTTPMetrics)

	// Health check and metrics endpoints
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler())

	// Exercise tracker API routes
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", trackerHandler.CreateUser)
		r.Get("/", trackerHandler.ListUsers)
		r.Post("/{userID}/exercises", trackerHandler.AddExercise)
		r.Get("/{userID}/logs", trackerHandler.GetLog)
	})

	// Static assets, index page included
	r.Handle("/*", http.FileServer(http.Dir("public")))

	return r
}
