// Package http provides the inbound HTTP boundary for the service.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sales-call-insights-service/internal/config"
	"sales-call-insights-service/internal/observability"
	"sales-call-insights-service/internal/service/insights"
)

// NewRouter constructs the HTTP router for the service.
func NewRouter(cfg *config.Configuration, pipeline *insights.Pipeline) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(observability.RequestLogger())

	// The dashboard expects JSON error bodies on every non-2xx response.
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})

	// Health endpoints
	r.Get("/v1/liveness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/v1/readiness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	h := newAnalyzeHandler(cfg, pipeline)
	r.Post("/v1/analyze", h.handleAnalyze)

	return r
}
