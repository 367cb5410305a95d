// Package middleware enforces the request budget on the public API.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"holocron/internal/ratelimit/metrics"
	"holocron/internal/ratelimit/models"
	"holocron/pkg/platform/httputil"
	"holocron/pkg/requestcontext"
)

const (
	HeaderLimit     = "X-RateLimit-Limit"
	HeaderRemaining = "X-RateLimit-Remaining"
	HeaderReset     = "X-RateLimit-Reset"
	HeaderStatus    = "X-RateLimit-Status"

	// MsgTooManyRequests is the body message of a 429.
	MsgTooManyRequests = "too many requests"

	defaultFailureThreshold = 5
	defaultSuccessThreshold = 3
)

type RateLimiter interface {
	CheckIP(ctx context.Context, ip string) (*models.RateLimitResult, error)
}

type Middleware struct {
	limiter  RateLimiter
	fallback RateLimiter
	breaker  *breaker
	logger   *slog.Logger
	metrics  *metrics.Metrics
	disabled bool
}

type Option func(*Middleware)

// WithDisabled lets every request through untouched.
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

// WithFallback serves checks from fallback while the primary store is failing.
// Without one, requests are let through when the primary errors.
func WithFallback(fallback RateLimiter) Option {
	return func(m *Middleware) {
		m.fallback = fallback
	}
}

func WithMetrics(metrics *metrics.Metrics) Option {
	return func(m *Middleware) {
		m.metrics = metrics
	}
}

// WithBreakerThresholds overrides how many consecutive failures open the
// circuit and how many successes close it.
func WithBreakerThresholds(failures, successes int) Option {
	return func(m *Middleware) {
		m.breaker = newBreaker(failures, successes, m.circuitChanged)
	}
}

func New(limiter RateLimiter, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{
		limiter: limiter,
		logger:  logger,
	}
	m.breaker = newBreaker(defaultFailureThreshold, defaultSuccessThreshold, m.circuitChanged)
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled {
		logger.Info("rate limiting disabled")
	}
	return m
}

// RateLimit charges each request to its client IP (see metadata.ClientMetadata).
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		ip := requestcontext.ClientIP(ctx)

		result, degraded := m.check(ctx, ip)
		if result == nil {
			next.ServeHTTP(w, r)
			return
		}
		if degraded {
			w.Header().Set(HeaderStatus, "degraded")
		}
		addRateLimitHeaders(w, result)

		if !result.Allowed {
			writeRateLimitExceeded(w, result)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// check returns a nil result when no limiter could answer; the request is
// then let through.
func (m *Middleware) check(ctx context.Context, ip string) (*models.RateLimitResult, bool) {
	result, err := m.limiter.CheckIP(ctx, ip)
	if err == nil {
		m.breaker.Success()
		return result, false
	}

	open := m.breaker.Failure()
	m.logger.ErrorContext(ctx, "failed to check rate limit",
		"error", err,
		"circuit_open", open,
		"request_id", requestcontext.RequestID(ctx),
	)
	if !open || m.fallback == nil {
		return nil, false
	}

	m.metrics.IncrementFallbackChecks()
	result, err = m.fallback.CheckIP(ctx, ip)
	if err != nil {
		m.logger.ErrorContext(ctx, "fallback rate limiter failed", "error", err)
		return nil, true
	}
	return result, true
}

func (m *Middleware) circuitChanged(open bool) {
	m.metrics.SetCircuitOpen(open)
	if open {
		m.logger.Warn("rate limit store failing, serving from fallback")
		return
	}
	m.logger.Info("rate limit store recovered")
}

func addRateLimitHeaders(w http.ResponseWriter, result *models.RateLimitResult) {
	w.Header().Set(HeaderLimit, strconv.Itoa(result.Limit))
	w.Header().Set(HeaderRemaining, strconv.Itoa(result.Remaining))
	w.Header().Set(HeaderReset, strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeRateLimitExceeded(w http.ResponseWriter, result *models.RateLimitResult) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteStatus(w, http.StatusTooManyRequests, MsgTooManyRequests)
}
