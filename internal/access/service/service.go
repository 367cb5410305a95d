// Package service implements the public catalog and favorites operations on
// top of the catalog and favorite link stores.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	accessmetrics "holocron/internal/access/metrics"
	"holocron/internal/access/models"
	catalog "holocron/internal/catalog/models"
	favorites "holocron/internal/favorites/models"
	id "holocron/pkg/domain"
	dErrors "holocron/pkg/domain-errors"
	"holocron/pkg/platform/audit"
	"holocron/pkg/platform/sentinel"
)

// Client-facing messages.
const (
	MsgPersonMissing        = "PEOPLE DOESN'T EXIST"
	MsgPlanetMissing        = "PLANET DOESN'T EXIST"
	MsgUserMissing          = "USER DOESN'T EXIST"
	MsgFavoritePersonAbsent = "PEOPLE NOT FOUND"
	MsgFavoritePlanetAbsent = "PLANET NOT FOUND"
)

type CatalogStore interface {
	ListPeople(ctx context.Context) ([]*catalog.Person, error)
	ListPlanets(ctx context.Context) ([]*catalog.Planet, error)
	ListUsers(ctx context.Context) ([]*catalog.User, error)
	GetPerson(ctx context.Context, personID id.PersonID) (*catalog.Person, error)
	GetPlanet(ctx context.Context, planetID id.PlanetID) (*catalog.Planet, error)
	GetUser(ctx context.Context, userID id.UserID) (*catalog.User, error)
	InsertPerson(ctx context.Context, in catalog.NewPerson) (*catalog.Person, error)
	InsertPlanet(ctx context.Context, in catalog.NewPlanet) (*catalog.Planet, error)
}

type FavoriteStore interface {
	ListPeopleByUser(ctx context.Context, userID id.UserID) ([]*favorites.FavoritePerson, error)
	ListPlanetsByUser(ctx context.Context, userID id.UserID) ([]*favorites.FavoritePlanet, error)
	InsertFavoritePerson(ctx context.Context, userID id.UserID, personID id.PersonID) (*favorites.FavoritePerson, error)
	InsertFavoritePlanet(ctx context.Context, userID id.UserID, planetID id.PlanetID) (*favorites.FavoritePlanet, error)
	FindFavoritePerson(ctx context.Context, userID id.UserID, personID id.PersonID) (*favorites.FavoritePerson, error)
	FindFavoritePlanet(ctx context.Context, userID id.UserID, planetID id.PlanetID) (*favorites.FavoritePlanet, error)
	DeleteFavoritePerson(ctx context.Context, fav *favorites.FavoritePerson) error
	DeleteFavoritePlanet(ctx context.Context, fav *favorites.FavoritePlanet) error
}

// Transactor scopes a unit of work. Errors returned by fn must come back
// unchanged.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service is the only writer of catalog records and favorite links.
type Service struct {
	catalog        CatalogStore
	favorites      FavoriteStore
	tx             Transactor
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *accessmetrics.Metrics
	tracer         trace.Tracer
}

type Option func(s *Service)

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

func WithMetrics(m *accessmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service.
func New(catalogStore CatalogStore, favoriteStore FavoriteStore, tx Transactor, opts ...Option) *Service {
	s := &Service{
		catalog:   catalogStore,
		favorites: favoriteStore,
		tx:        tx,
		logger:    slog.Default(),
		tracer:    otel.Tracer("holocron/access"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ListPeople(ctx context.Context) ([]*catalog.Person, error) {
	ctx, span := s.tracer.Start(ctx, "access.ListPeople")
	defer span.End()

	start := time.Now()
	people, err := s.catalog.ListPeople(ctx)
	s.metrics.ObserveStore("list_people", start)
	if err != nil {
		return nil, s.readFailure(span, err, "failed to list people")
	}
	return people, nil
}

func (s *Service) ListPlanets(ctx context.Context) ([]*catalog.Planet, error) {
	ctx, span := s.tracer.Start(ctx, "access.ListPlanets")
	defer span.End()

	start := time.Now()
	planets, err := s.catalog.ListPlanets(ctx)
	s.metrics.ObserveStore("list_planets", start)
	if err != nil {
		return nil, s.readFailure(span, err, "failed to list planets")
	}
	return planets, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*catalog.User, error) {
	ctx, span := s.tracer.Start(ctx, "access.ListUsers")
	defer span.End()

	start := time.Now()
	users, err := s.catalog.ListUsers(ctx)
	s.metrics.ObserveStore("list_users", start)
	if err != nil {
		return nil, s.readFailure(span, err, "failed to list users")
	}
	return users, nil
}

func (s *Service) GetPerson(ctx context.Context, personID id.PersonID) (*catalog.Person, error) {
	ctx, span := s.tracer.Start(ctx, "access.GetPerson",
		trace.WithAttributes(attribute.Int64("person.id", int64(personID))))
	defer span.End()

	start := time.Now()
	person, err := s.catalog.GetPerson(ctx, personID)
	s.metrics.ObserveStore("get_person", start)
	if err != nil {
		return nil, s.lookupFailure(span, err, MsgPersonMissing, "failed to load person")
	}
	return person, nil
}

func (s *Service) GetPlanet(ctx context.Context, planetID id.PlanetID) (*catalog.Planet, error) {
	ctx, span := s.tracer.Start(ctx, "access.GetPlanet",
		trace.WithAttributes(attribute.Int64("planet.id", int64(planetID))))
	defer span.End()

	start := time.Now()
	planet, err := s.catalog.GetPlanet(ctx, planetID)
	s.metrics.ObserveStore("get_planet", start)
	if err != nil {
		return nil, s.lookupFailure(span, err, MsgPlanetMissing, "failed to load planet")
	}
	return planet, nil
}

// CreatePerson inserts a person. Missing required fields surface as a store
// write failure carrying the store's message.
func (s *Service) CreatePerson(ctx context.Context, in catalog.NewPerson) (*catalog.Person, error) {
	ctx, span := s.tracer.Start(ctx, "access.CreatePerson")
	defer span.End()

	var person *catalog.Person
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		start := time.Now()
		p, err := s.catalog.InsertPerson(txCtx, in)
		s.metrics.ObserveStore("insert_person", start)
		if err != nil {
			return err
		}
		person = p
		return nil
	})
	if err != nil {
		return nil, s.writeFailure(ctx, span, err, "create person")
	}

	span.SetAttributes(attribute.Int64("person.id", int64(person.ID)))
	s.metrics.IncrementPeopleCreated()
	s.emitAudit(ctx, audit.Event{
		Action:      string(audit.EventPersonCreated),
		SubjectType: "person",
		SubjectID:   int64(person.ID),
	})
	return person, nil
}

func (s *Service) CreatePlanet(ctx context.Context, in catalog.NewPlanet) (*catalog.Planet, error) {
	ctx, span := s.tracer.Start(ctx, "access.CreatePlanet")
	defer span.End()

	var planet *catalog.Planet
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		start := time.Now()
		p, err := s.catalog.InsertPlanet(txCtx, in)
		s.metrics.ObserveStore("insert_planet", start)
		if err != nil {
			return err
		}
		planet = p
		return nil
	})
	if err != nil {
		return nil, s.writeFailure(ctx, span, err, "create planet")
	}

	span.SetAttributes(attribute.Int64("planet.id", int64(planet.ID)))
	s.metrics.IncrementPlanetsCreated()
	s.emitAudit(ctx, audit.Event{
		Action:      string(audit.EventPlanetCreated),
		SubjectType: "planet",
		SubjectID:   int64(planet.ID),
	})
	return planet, nil
}

// ListFavorites fetches both link lists concurrently. The user is not
// checked for existence; an unknown user simply has no favorites.
func (s *Service) ListFavorites(ctx context.Context, userID id.UserID) (*models.Favorites, error) {
	ctx, span := s.tracer.Start(ctx, "access.ListFavorites",
		trace.WithAttributes(attribute.Int64("user.id", int64(userID))))
	defer span.End()

	result := &models.Favorites{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		people, err := s.favorites.ListPeopleByUser(gctx, userID)
		s.metrics.ObserveStore("list_favorite_people", start)
		result.People = people
		return err
	})
	g.Go(func() error {
		start := time.Now()
		planets, err := s.favorites.ListPlanetsByUser(gctx, userID)
		s.metrics.ObserveStore("list_favorite_planets", start)
		result.Planets = planets
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.readFailure(span, err, "failed to list favorites")
	}
	return result, nil
}

// AddFavoritePerson links a user to a person after checking that both exist.
// Duplicate links are allowed.
func (s *Service) AddFavoritePerson(ctx context.Context, userID id.UserID, personID id.PersonID) (*favorites.FavoritePerson, error) {
	ctx, span := s.tracer.Start(ctx, "access.AddFavoritePerson", trace.WithAttributes(
		attribute.Int64("user.id", int64(userID)),
		attribute.Int64("person.id", int64(personID)),
	))
	defer span.End()

	var fav *favorites.FavoritePerson
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, userID); err != nil {
			return err
		}
		if _, err := s.catalog.GetPerson(txCtx, personID); err != nil {
			return lookupError(err, MsgPersonMissing, "failed to load person")
		}
		start := time.Now()
		f, err := s.favorites.InsertFavoritePerson(txCtx, userID, personID)
		s.metrics.ObserveStore("insert_favorite_person", start)
		if err != nil {
			return err
		}
		fav = f
		return nil
	})
	if err != nil {
		return nil, s.writeFailure(ctx, span, err, "add favorite person")
	}

	s.metrics.IncrementFavoriteAdded(accessmetrics.KindPerson)
	s.emitAudit(ctx, audit.Event{
		Action:      string(audit.EventFavoritePersonAdded),
		UserID:      userID,
		SubjectType: "person",
		SubjectID:   int64(personID),
	})
	return fav, nil
}

// AddFavoritePlanet links a user to a planet after checking that both exist.
func (s *Service) AddFavoritePlanet(ctx context.Context, userID id.UserID, planetID id.PlanetID) (*favorites.FavoritePlanet, error) {
	ctx, span := s.tracer.Start(ctx, "access.AddFavoritePlanet", trace.WithAttributes(
		attribute.Int64("user.id", int64(userID)),
		attribute.Int64("planet.id", int64(planetID)),
	))
	defer span.End()

	var fav *favorites.FavoritePlanet
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, userID); err != nil {
			return err
		}
		if _, err := s.catalog.GetPlanet(txCtx, planetID); err != nil {
			return lookupError(err, MsgPlanetMissing, "failed to load planet")
		}
		start := time.Now()
		f, err := s.favorites.InsertFavoritePlanet(txCtx, userID, planetID)
		s.metrics.ObserveStore("insert_favorite_planet", start)
		if err != nil {
			return err
		}
		fav = f
		return nil
	})
	if err != nil {
		return nil, s.writeFailure(ctx, span, err, "add favorite planet")
	}

	s.metrics.IncrementFavoriteAdded(accessmetrics.KindPlanet)
	s.emitAudit(ctx, audit.Event{
		Action:      string(audit.EventFavoritePlanetAdded),
		UserID:      userID,
		SubjectType: "planet",
		SubjectID:   int64(planetID),
	})
	return fav, nil
}

// RemoveFavoritePerson deletes the earliest link between user and person.
func (s *Service) RemoveFavoritePerson(ctx context.Context, userID id.UserID, personID id.PersonID) error {
	ctx, span := s.tracer.Start(ctx, "access.RemoveFavoritePerson", trace.WithAttributes(
		attribute.Int64("user.id", int64(userID)),
		attribute.Int64("person.id", int64(personID)),
	))
	defer span.End()

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		fav, err := s.favorites.FindFavoritePerson(txCtx, userID, personID)
		if err != nil {
			return lookupError(err, MsgFavoritePersonAbsent, "failed to load favorite")
		}
		start := time.Now()
		err = s.favorites.DeleteFavoritePerson(txCtx, fav)
		s.metrics.ObserveStore("delete_favorite_person", start)
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeNotFound, MsgFavoritePersonAbsent)
		}
		return err
	})
	if err != nil {
		return s.writeFailure(ctx, span, err, "remove favorite person")
	}

	s.metrics.IncrementFavoriteRemoved(accessmetrics.KindPerson)
	s.emitAudit(ctx, audit.Event{
		Action:      string(audit.EventFavoritePersonRemoved),
		UserID:      userID,
		SubjectType: "person",
		SubjectID:   int64(personID),
	})
	return nil
}

// RemoveFavoritePlanet deletes the earliest link between user and planet.
func (s *Service) RemoveFavoritePlanet(ctx context.Context, userID id.UserID, planetID id.PlanetID) error {
	ctx, span := s.tracer.Start(ctx, "access.RemoveFavoritePlanet", trace.WithAttributes(
		attribute.Int64("user.id", int64(userID)),
		attribute.Int64("planet.id", int64(planetID)),
	))
	defer span.End()

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		fav, err := s.favorites.FindFavoritePlanet(txCtx, userID, planetID)
		if err != nil {
			return lookupError(err, MsgFavoritePlanetAbsent, "failed to load favorite")
		}
		start := time.Now()
		err = s.favorites.DeleteFavoritePlanet(txCtx, fav)
		s.metrics.ObserveStore("delete_favorite_planet", start)
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeNotFound, MsgFavoritePlanetAbsent)
		}
		return err
	})
	if err != nil {
		return s.writeFailure(ctx, span, err, "remove favorite planet")
	}

	s.metrics.IncrementFavoriteRemoved(accessmetrics.KindPlanet)
	s.emitAudit(ctx, audit.Event{
		Action:      string(audit.EventFavoritePlanetRemoved),
		UserID:      userID,
		SubjectType: "planet",
		SubjectID:   int64(planetID),
	})
	return nil
}

func (s *Service) requireUser(ctx context.Context, userID id.UserID) error {
	if _, err := s.catalog.GetUser(ctx, userID); err != nil {
		return lookupError(err, MsgUserMissing, "failed to load user")
	}
	return nil
}

// lookupError maps a store miss to NotFound with msg, anything else to an
// internal error.
func lookupError(err error, notFoundMsg, internalMsg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeNotFound, notFoundMsg)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, internalMsg)
}

func (s *Service) lookupFailure(span trace.Span, err error, notFoundMsg, internalMsg string) error {
	mapped := lookupError(err, notFoundMsg, internalMsg)
	if dErrors.HasCode(mapped, dErrors.CodeInternal) {
		span.RecordError(err)
		span.SetStatus(codes.Error, internalMsg)
	}
	return mapped
}

func (s *Service) readFailure(span trace.Span, err error, msg string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

// writeFailure passes coded errors through. Anything else is a store write
// failure whose message is the store's own text.
func (s *Service) writeFailure(ctx context.Context, span trace.Span, err error, op string) error {
	if de, ok := dErrors.From(err); ok {
		if de.Code == dErrors.CodeInternal || de.Code == dErrors.CodeTimeout {
			span.RecordError(err)
			span.SetStatus(codes.Error, op)
		}
		return err
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, op)
	s.logger.WarnContext(ctx, "store write failed",
		"operation", op,
		"error", err,
	)
	var violation *sentinel.ConstraintViolation
	if errors.As(err, &violation) {
		return dErrors.Verbatim(violation, dErrors.CodeStoreWrite)
	}
	return dErrors.Verbatim(err, dErrors.CodeStoreWrite)
}

// emitAudit never fails the caller.
func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.auditPublisher == nil {
		return
	}
	event = audit.Enrich(ctx, event)
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"action", event.Action,
			"request_id", event.RequestID,
			"error", err,
		)
	}
}
