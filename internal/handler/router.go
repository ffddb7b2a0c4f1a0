package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passgen/internal/metrics"
	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/service"
	"github.com/vaultpass/passgen/internal/session"
)

// RouterConfig carries the dependencies of the HTTP API. Sessions and Metrics
// are optional; their routes are not registered when nil.
type RouterConfig struct {
	Generator      *service.GeneratorService
	Sessions       *session.Store
	Metrics        *metrics.Metrics
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires every route. ctx bounds background work such as rate limiter cleanup.
func NewRouter(ctx context.Context, cfg RouterConfig) http.Handler {
	genHandler := NewGeneratorHandler(cfg.Generator, cfg.Sessions)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		if cfg.RateLimitRPS > 0 {
			r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		}
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/strength", genHandler.HandleStrength)
	})

	// Without a session store there is nowhere to keep history or preferences.
	if cfg.Sessions != nil {
		sessionHandler := NewSessionHandler(cfg.Sessions)
		r.Get("/api/v1/history", sessionHandler.HandleListHistory)
		r.Delete("/api/v1/history", sessionHandler.HandleClearHistory)
		r.Delete("/api/v1/history/{id}", sessionHandler.HandleDeleteHistoryEntry)
		r.Get("/api/v1/preferences", sessionHandler.HandleGetPreferences)
		r.Post("/api/v1/preferences/theme", sessionHandler.HandleToggleTheme)
	}

	return r
}
