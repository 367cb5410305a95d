// Package httptransport assembles the HTTP surface: middleware chain, module
// routes and the operational endpoints.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"holocron/internal/platform/metrics"
	"holocron/internal/platform/middleware"
	"holocron/pkg/platform/httputil"
	"holocron/pkg/platform/middleware/metadata"
	"holocron/pkg/platform/middleware/requesttime"
	"holocron/pkg/requestcontext"
)

const (
	defaultRequestTimeout = 10 * time.Second
	healthTimeout         = 2 * time.Second
)

// Registrar mounts a module's routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthFunc adapts a function to HealthChecker.
type HealthFunc func(ctx context.Context) error

func (f HealthFunc) Health(ctx context.Context) error { return f(ctx) }

type Config struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	// RateLimit wraps the public API routes only; nil disables limiting.
	RateLimit func(http.Handler) http.Handler
	// Public routes (the catalog and favorites API).
	Public []Registrar
	// Admin routes carry their own token guard and skip rate limiting.
	Admin []Registrar
	// Health checks keyed by dependency name.
	Health         map[string]HealthChecker
	RequestTimeout time.Duration
	// CORSOrigins lists the origins browsers may call from; "*" allows any.
	// Empty disables CORS handling.
	CORSOrigins []string
}

// corsHandler answers preflights before routing, so OPTIONS never reaches
// the 405 handler.
func corsHandler(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.HeaderRequestID, "X-Admin-Token"},
		ExposedHeaders: []string{
			middleware.HeaderRequestID, "Retry-After",
			"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "X-RateLimit-Status",
		},
		MaxAge:               300,
		OptionsSuccessStatus: http.StatusNoContent,
	})
}

// NewRouter wires all endpoints.
func NewRouter(cfg Config) chi.Router {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID)
	if len(cfg.CORSOrigins) > 0 {
		r.Use(corsHandler(cfg.CORSOrigins))
	}
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.LatencyMiddleware(cfg.Metrics))
	r.Use(chimw.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteStatus(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteStatus(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(timeout))
		r.Use(middleware.ContentTypeJSON)
		if cfg.RateLimit != nil {
			r.Use(cfg.RateLimit)
		}
		for _, reg := range cfg.Public {
			reg.Register(r)
		}
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(timeout))
		r.Use(middleware.ContentTypeJSON)
		for _, reg := range cfg.Admin {
			reg.Register(r)
		}
	})

	r.Get("/healthz", healthHandler(cfg.Logger, cfg.Health))
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler())
	}
	r.Get("/", sitemapHandler(r))

	return r
}

// sitemapHandler lists every registered route as "METHOD /path".
func sitemapHandler(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var out []string
		err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			route = strings.Replace(route, "/*/", "/", -1)
			if len(route) > 1 {
				route = strings.TrimSuffix(route, "/")
			}
			out = append(out, method+" "+route)
			return nil
		})
		if err != nil {
			httputil.WriteStatus(w, http.StatusInternalServerError, "internal server error")
			return
		}
		sort.Strings(out)
		httputil.WriteJSON(w, http.StatusOK, out)
	}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func healthHandler(logger *slog.Logger, checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		status := http.StatusOK
		for name, check := range checks {
			if err := check.Health(ctx); err != nil {
				logger.WarnContext(ctx, "health check failed",
					"dependency", name,
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				resp.Checks[name] = "unavailable"
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}
		httputil.WriteJSON(w, status, resp)
	}
}
