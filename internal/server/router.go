// Package server wires the HTTP surface: routing, CORS, rate limiting,
// request logging and metrics. Analysis semantics live entirely in the
// domain packages; nothing here inspects statement content.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/spendscope/spendscope/internal/domain/analysis/handler"
	"github.com/spendscope/spendscope/pkg/config"
)

// New builds the application router.
func New(cfg *config.Config, h *handler.AnalyzeHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(Metrics)
	r.Use(RateLimit(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Server.ClientOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}).Handler)

	r.Get("/", h.Root)
	r.Get("/api/health", h.Health)
	r.Post("/api/analyze", h.Analyze)
	r.Get("/api/demo", h.Demo)

	if cfg.Observability.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}
