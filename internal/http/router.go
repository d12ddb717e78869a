// Package httpapi assembles the public HTTP surface: the middleware chain,
// operational endpoints, and every module's routes.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jansetu/internal/platform/metrics"
	"jansetu/internal/platform/middleware"
	"jansetu/pkg/platform/httputil"
)

const defaultTimeout = 30 * time.Second

// Registrar is implemented by every module handler.
type Registrar interface {
	Register(r chi.Router)
}

// Config carries everything the router needs. Audit is optional; when nil
// mutating requests are not recorded.
type Config struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Audit    middleware.Recorder
	Timeout  time.Duration
	Handlers []Registrar
}

// New builds the application router with the full middleware chain applied
// to API routes. Operational endpoints skip the chain so probes stay cheap.
func New(cfg Config) http.Handler {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	r := chi.NewRouter()
	r.Get("/health", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(api chi.Router) {
		api.Use(middleware.Recovery(cfg.Logger))
		api.Use(middleware.RequestID)
		api.Use(middleware.RequestTime)
		api.Use(middleware.Logger(cfg.Logger))
		api.Use(middleware.Timeout(timeout))
		api.Use(middleware.Latency(cfg.Metrics))
		if cfg.Audit != nil {
			api.Use(middleware.Audit(cfg.Audit))
		}
		for _, h := range cfg.Handlers {
			h.Register(api)
		}
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
