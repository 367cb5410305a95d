package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"holocron/internal/catalog/models"
	"holocron/internal/platform/database"
	id "holocron/pkg/domain"
	"holocron/pkg/platform/sentinel"
)

type catalogStore interface {
	ListPeople(ctx context.Context) ([]*models.Person, error)
	ListPlanets(ctx context.Context) ([]*models.Planet, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetPerson(ctx context.Context, personID id.PersonID) (*models.Person, error)
	GetPlanet(ctx context.Context, planetID id.PlanetID) (*models.Planet, error)
	GetUser(ctx context.Context, userID id.UserID) (*models.User, error)
	InsertPerson(ctx context.Context, in models.NewPerson) (*models.Person, error)
	InsertPlanet(ctx context.Context, in models.NewPlanet) (*models.Planet, error)
	InsertUser(ctx context.Context, in models.NewUser) (*models.User, error)
}

// CatalogStoreSuite runs the same behaviour checks against every backend.
type CatalogStoreSuite struct {
	suite.Suite
	newStore func(t *testing.T) catalogStore
	store    catalogStore
	ctx      context.Context
}

func (s *CatalogStoreSuite) SetupTest() {
	s.store = s.newStore(s.T())
	s.ctx = context.Background()
}

func TestInMemoryCatalogStore(t *testing.T) {
	suite.Run(t, &CatalogStoreSuite{newStore: func(*testing.T) catalogStore { return NewInMemory() }})
}

func TestSQLiteCatalogStore(t *testing.T) {
	suite.Run(t, &CatalogStoreSuite{newStore: func(t *testing.T) catalogStore {
		db, err := database.Open(context.Background(), database.Target{
			Dialect: database.DialectSQLite,
			DSN:     filepath.Join(t.TempDir(), "catalog.db"),
		}, 0)
		if err != nil {
			t.Fatalf("open sqlite: %v", err)
		}
		t.Cleanup(func() { _ = db.Close() })
		if err := database.Migrate(context.Background(), db); err != nil {
			t.Fatalf("migrate: %v", err)
		}
		return NewSQL(db)
	}})
}

func ptr[T any](v T) *T { return &v }

func (s *CatalogStoreSuite) TestPeople() {
	s.Run("insert then get returns matching fields", func() {
		created, err := s.store.InsertPerson(s.ctx, models.NewPerson{
			Name: ptr("Luke"), Gender: ptr("male"), BirthYear: ptr("19BBY"),
		})
		s.Require().NoError(err)
		s.Positive(int64(created.ID))

		found, err := s.store.GetPerson(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Equal(created.ID, found.ID)
		s.Require().NotNil(found.Name)
		s.Equal("Luke", *found.Name)
		s.Equal("male", found.Gender)
		s.Equal("19BBY", found.BirthYear)
	})

	s.Run("name is optional", func() {
		created, err := s.store.InsertPerson(s.ctx, models.NewPerson{Gender: ptr("n/a"), BirthYear: ptr("unknown")})
		s.Require().NoError(err)

		found, err := s.store.GetPerson(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Nil(found.Name)
	})

	s.Run("missing required field is a constraint violation", func() {
		_, err := s.store.InsertPerson(s.ctx, models.NewPerson{Name: ptr("Leia"), BirthYear: ptr("19BBY")})
		s.Require().ErrorIs(err, sentinel.ErrConstraint)
		s.Contains(err.Error(), "gender")

		_, err = s.store.InsertPerson(s.ctx, models.NewPerson{Name: ptr("Leia"), Gender: ptr("female")})
		s.Require().ErrorIs(err, sentinel.ErrConstraint)
		s.Contains(err.Error(), "birth_year")
	})

	s.Run("unknown id is not found", func() {
		_, err := s.store.GetPerson(s.ctx, id.PersonID(9999))
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("list is ordered by id", func() {
		people, err := s.store.ListPeople(s.ctx)
		s.Require().NoError(err)
		s.Len(people, 2)
		s.Less(people[0].ID, people[1].ID)
	})
}

func (s *CatalogStoreSuite) TestPlanets() {
	s.Run("empty list", func() {
		planets, err := s.store.ListPlanets(s.ctx)
		s.Require().NoError(err)
		s.Empty(planets)
	})

	s.Run("insert then get", func() {
		created, err := s.store.InsertPlanet(s.ctx, models.NewPlanet{
			Name: ptr("Coruscant"), Population: ptr(int64(1000000000000)), Terrain: ptr("cityscape"),
		})
		s.Require().NoError(err)

		found, err := s.store.GetPlanet(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Equal(int64(1000000000000), found.Population)
		s.Equal("cityscape", found.Terrain)
	})

	s.Run("missing population is a constraint violation", func() {
		_, err := s.store.InsertPlanet(s.ctx, models.NewPlanet{Name: ptr("Yavin IV"), Terrain: ptr("jungle")})
		s.Require().ErrorIs(err, sentinel.ErrConstraint)
		s.Contains(err.Error(), "population")
	})

	s.Run("unknown id is not found", func() {
		_, err := s.store.GetPlanet(s.ctx, id.PlanetID(42))
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *CatalogStoreSuite) TestUsers() {
	created, err := s.store.InsertUser(s.ctx, models.NewUser{Email: "luke@rebellion.org", PasswordHash: "$2a$hash"})
	s.Require().NoError(err)

	s.Run("get by id", func() {
		found, err := s.store.GetUser(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Equal("luke@rebellion.org", found.Email)
	})

	s.Run("duplicate email is a constraint violation", func() {
		_, err := s.store.InsertUser(s.ctx, models.NewUser{Email: "luke@rebellion.org", PasswordHash: "$2a$other"})
		s.ErrorIs(err, sentinel.ErrConstraint)
	})

	s.Run("unknown id is not found", func() {
		_, err := s.store.GetUser(s.ctx, id.UserID(77))
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("list", func() {
		users, err := s.store.ListUsers(s.ctx)
		s.Require().NoError(err)
		s.Len(users, 1)
	})
}
