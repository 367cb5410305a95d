// Package admin manages user accounts out of band: through the token-guarded
// admin API and the holocron CLI. The public API never creates users.
package admin

import (
	"context"
	"errors"
	"log/slog"

	catalog "holocron/internal/catalog/models"
	"holocron/internal/platform/metrics"
	dErrors "holocron/pkg/domain-errors"
	"holocron/pkg/platform/audit"
	"holocron/pkg/platform/sentinel"
	"holocron/pkg/requestcontext"
)

type UserStore interface {
	ListUsers(ctx context.Context) ([]*catalog.User, error)
	InsertUser(ctx context.Context, in catalog.NewUser) (*catalog.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

type Service struct {
	users     UserStore
	hasher    PasswordHasher
	logger    *slog.Logger
	metrics   *metrics.Metrics
	publisher AuditPublisher
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) { s.publisher = p }
}

func NewService(users UserStore, hasher PasswordHasher, opts ...Option) *Service {
	s := &Service{users: users, hasher: hasher, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ListUsers(ctx context.Context) ([]*catalog.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list users")
	}
	return users, nil
}

// CreateUser validates the request, hashes the password and stores the user.
// A duplicate email is a CodeConflict.
func (s *Service) CreateUser(ctx context.Context, req *CreateUserRequest) (*catalog.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	user, err := s.users.InsertUser(ctx, catalog.NewUser{Email: req.Email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, sentinel.ErrConstraint) {
			return nil, dErrors.Wrap(err, dErrors.CodeConflict, "email already registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	s.metrics.IncrementUsersCreated()
	s.logger.InfoContext(ctx, "user created",
		"user_id", user.ID,
		"request_id", requestcontext.RequestID(ctx),
	)
	if s.publisher != nil {
		event := audit.Enrich(ctx, audit.Event{
			Action:      string(audit.EventUserCreated),
			UserID:      user.ID,
			SubjectType: "user",
			SubjectID:   int64(user.ID),
		})
		if err := s.publisher.Emit(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "failed to emit audit event", "action", event.Action, "error", err)
		}
	}
	return user, nil
}
