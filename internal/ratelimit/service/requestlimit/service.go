// Package requestlimit applies the per-client-IP request budget.
package requestlimit

import (
	"context"
	"errors"
	"log/slog"

	"holocron/internal/ratelimit/metrics"
	"holocron/internal/ratelimit/models"
	"holocron/internal/ratelimit/ports"
	dErrors "holocron/pkg/domain-errors"
	"holocron/pkg/platform/audit"
	"holocron/pkg/requestcontext"
)

type (
	BucketStore    = ports.BucketStore
	AuditPublisher = ports.AuditPublisher
)

type Service struct {
	buckets        BucketStore
	limit          models.Limit
	auditPublisher AuditPublisher
	logger         *slog.Logger
	metrics        *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(buckets BucketStore, limit models.Limit, opts ...Option) (*Service, error) {
	if buckets == nil {
		return nil, errors.New("buckets store is required")
	}
	if limit.RequestsPerWindow <= 0 || limit.Window <= 0 {
		return nil, errors.New("rate limit must be positive")
	}

	svc := &Service{
		buckets: buckets,
		limit:   limit,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// CheckIP consumes one request from ip's budget.
func (s *Service) CheckIP(ctx context.Context, ip string) (*models.RateLimitResult, error) {
	key := models.NewRateLimitKey(models.KeyPrefixIP, ip)
	result, err := s.buckets.Allow(ctx, key, s.limit.RequestsPerWindow, s.limit.Window)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check rate limit")
	}

	if !result.Allowed {
		s.metrics.IncrementRejected()
		s.logger.WarnContext(ctx, "rate limit exceeded",
			"client_ip", ip,
			"limit", s.limit.RequestsPerWindow,
			"window_seconds", int(s.limit.Window.Seconds()),
			"request_id", requestcontext.RequestID(ctx),
		)
		s.emit(ctx, ip)
	}
	return result, nil
}

func (s *Service) emit(ctx context.Context, ip string) {
	if s.auditPublisher == nil {
		return
	}
	event := audit.Enrich(ctx, audit.Event{
		Action:      string(audit.EventRateLimitExceeded),
		SubjectType: "client_ip",
		ClientIP:    ip,
	})
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "action", event.Action, "error", err)
	}
}
