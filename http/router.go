package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	Applications *ApplicationHandler
	Eligibility  *EligibilityHandler
	RateLimiter  *RateLimiter
	// Gatherer backs /metrics; nil leaves the endpoint unmounted.
	Gatherer prometheus.Gatherer
	// RateLimited counts rejected requests; may be nil.
	RateLimited prometheus.Counter
}

// NewRouter mounts every endpoint behind panic recovery and, when a limiter
// is configured, per-client rate limiting. /healthz and /metrics are not
// rate limited.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(RateLimitMiddleware(cfg.RateLimiter, cfg.RateLimited))
		}
		if cfg.Applications != nil {
			cfg.Applications.Register(r)
		}
		if cfg.Eligibility != nil {
			cfg.Eligibility.Register(r)
		}
	})
	return r
}
