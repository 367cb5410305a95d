package admin

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	catalogstore "holocron/internal/catalog/store"
	"holocron/internal/platform/metrics"
	dErrors "holocron/pkg/domain-errors"
	"holocron/pkg/passwords"
	"holocron/pkg/platform/audit"
	"holocron/pkg/platform/audit/publisher"
	auditmemory "holocron/pkg/platform/audit/store/memory"
)

type ServiceSuite struct {
	suite.Suite
	store   *catalogstore.InMemory
	audit   *auditmemory.InMemoryStore
	metrics *metrics.Metrics
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = catalogstore.NewInMemory()
	s.audit = auditmemory.NewInMemoryStore()
	reg := prometheus.NewRegistry()
	s.metrics = metrics.NewWithRegistry(reg, reg)
	s.service = NewService(s.store, passwords.Hasher{Cost: bcrypt.MinCost},
		WithMetrics(s.metrics),
		WithAuditPublisher(publisher.NewPublisher(s.audit)),
	)
}

func (s *ServiceSuite) TestCreateUser() {
	ctx := context.Background()

	user, err := s.service.CreateUser(ctx, &CreateUserRequest{Email: "  han@falcon.io ", Password: "kessel-run-12"})
	s.Require().NoError(err)
	s.Equal("han@falcon.io", user.Email)
	s.NoError(passwords.Verify("kessel-run-12", user.PasswordHash))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.UsersCreated))

	events, err := s.audit.ListByUser(ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(string(audit.EventUserCreated), events[0].Action)
}

func (s *ServiceSuite) TestCreateUserDuplicateEmail() {
	ctx := context.Background()
	_, err := s.service.CreateUser(ctx, &CreateUserRequest{Email: "han@falcon.io", Password: "kessel-run-12"})
	s.Require().NoError(err)

	_, err = s.service.CreateUser(ctx, &CreateUserRequest{Email: "han@falcon.io", Password: "another-one-1"})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.UsersCreated))
}

func (s *ServiceSuite) TestCreateUserValidation() {
	cases := map[string]*CreateUserRequest{
		"missing email":  {Password: "kessel-run-12"},
		"bad email":      {Email: "not-an-address", Password: "kessel-run-12"},
		"named address":  {Email: "Han <han@falcon.io>", Password: "kessel-run-12"},
		"short password": {Email: "han@falcon.io", Password: "short"},
	}
	for name, req := range cases {
		s.Run(name, func() {
			_, err := s.service.CreateUser(context.Background(), req)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}

	users, err := s.service.ListUsers(context.Background())
	s.Require().NoError(err)
	s.Empty(users)
}
