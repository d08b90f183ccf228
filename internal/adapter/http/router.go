package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/leaveflow/internal/adapter/http/handler"
	"github.com/iho/leaveflow/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	MessageHandler *handler.MessageHandler
	LeaveHandler   *handler.LeaveHandler
	HealthHandler  *handler.HealthHandler
	Logger         zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/messages", cfg.MessageHandler.Send)

		r.Route("/employees/{name}", func(r chi.Router) {
			r.Get("/balance", cfg.LeaveHandler.GetBalance)
			r.Get("/history", cfg.LeaveHandler.History)
			r.Get("/leaves", cfg.LeaveHandler.ListActive)
			r.Post("/leaves", cfg.LeaveHandler.CreateLeave)
			r.Post("/leaves/{selection}/cancel", cfg.LeaveHandler.Cancel)
		})
	})

	return r
}
