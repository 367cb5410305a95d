package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	catalog "holocron/internal/catalog/models"
	catalogstore "holocron/internal/catalog/store"
	"holocron/internal/favorites/models"
	"holocron/internal/platform/database"
	id "holocron/pkg/domain"
	"holocron/pkg/platform/sentinel"
)

type favoriteStore interface {
	ListPeopleByUser(ctx context.Context, userID id.UserID) ([]*models.FavoritePerson, error)
	ListPlanetsByUser(ctx context.Context, userID id.UserID) ([]*models.FavoritePlanet, error)
	InsertFavoritePerson(ctx context.Context, userID id.UserID, personID id.PersonID) (*models.FavoritePerson, error)
	InsertFavoritePlanet(ctx context.Context, userID id.UserID, planetID id.PlanetID) (*models.FavoritePlanet, error)
	FindFavoritePerson(ctx context.Context, userID id.UserID, personID id.PersonID) (*models.FavoritePerson, error)
	FindFavoritePlanet(ctx context.Context, userID id.UserID, planetID id.PlanetID) (*models.FavoritePlanet, error)
	DeleteFavoritePerson(ctx context.Context, fav *models.FavoritePerson) error
	DeleteFavoritePlanet(ctx context.Context, fav *models.FavoritePlanet) error
}

type catalogWriter interface {
	InsertPerson(ctx context.Context, in catalog.NewPerson) (*catalog.Person, error)
	InsertPlanet(ctx context.Context, in catalog.NewPlanet) (*catalog.Planet, error)
	InsertUser(ctx context.Context, in catalog.NewUser) (*catalog.User, error)
}

type FavoriteStoreSuite struct {
	suite.Suite
	setup   func(t *testing.T) (favoriteStore, catalogWriter)
	store   favoriteStore
	catalog catalogWriter
	ctx     context.Context

	user     id.UserID
	luke     id.PersonID
	tatooine id.PlanetID
}

func TestInMemoryFavoriteStore(t *testing.T) {
	suite.Run(t, &FavoriteStoreSuite{setup: func(*testing.T) (favoriteStore, catalogWriter) {
		cat := catalogstore.NewInMemory()
		return NewInMemory(cat), cat
	}})
}

func TestSQLiteFavoriteStore(t *testing.T) {
	suite.Run(t, &FavoriteStoreSuite{setup: func(t *testing.T) (favoriteStore, catalogWriter) {
		db, err := database.Open(context.Background(), database.Target{
			Dialect: database.DialectSQLite,
			DSN:     filepath.Join(t.TempDir(), "favorites.db"),
		}, 0)
		if err != nil {
			t.Fatalf("open sqlite: %v", err)
		}
		t.Cleanup(func() { _ = db.Close() })
		if err := database.Migrate(context.Background(), db); err != nil {
			t.Fatalf("migrate: %v", err)
		}
		return NewSQL(db), catalogstore.NewSQL(db)
	}})
}

func ptr[T any](v T) *T { return &v }

func (s *FavoriteStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store, s.catalog = s.setup(s.T())

	user, err := s.catalog.InsertUser(s.ctx, catalog.NewUser{Email: "luke@rebellion.org", PasswordHash: "hash"})
	s.Require().NoError(err)
	person, err := s.catalog.InsertPerson(s.ctx, catalog.NewPerson{Name: ptr("Luke"), Gender: ptr("male"), BirthYear: ptr("19BBY")})
	s.Require().NoError(err)
	planet, err := s.catalog.InsertPlanet(s.ctx, catalog.NewPlanet{Name: ptr("Tatooine"), Population: ptr(int64(200000)), Terrain: ptr("desert")})
	s.Require().NoError(err)

	s.user, s.luke, s.tatooine = user.ID, person.ID, planet.ID
}

func (s *FavoriteStoreSuite) TestListJoinsTargets() {
	_, err := s.store.InsertFavoritePerson(s.ctx, s.user, s.luke)
	s.Require().NoError(err)
	_, err = s.store.InsertFavoritePlanet(s.ctx, s.user, s.tatooine)
	s.Require().NoError(err)

	people, err := s.store.ListPeopleByUser(s.ctx, s.user)
	s.Require().NoError(err)
	s.Require().Len(people, 1)
	s.Require().NotNil(people[0].Person)
	s.Equal(s.luke, people[0].Person.ID)
	s.Equal("Luke", *people[0].Person.Name)
	s.Equal(s.user, people[0].UserID)

	planets, err := s.store.ListPlanetsByUser(s.ctx, s.user)
	s.Require().NoError(err)
	s.Require().Len(planets, 1)
	s.Require().NotNil(planets[0].Planet)
	s.Equal("desert", planets[0].Planet.Terrain)
}

func (s *FavoriteStoreSuite) TestListForUserWithoutFavorites() {
	people, err := s.store.ListPeopleByUser(s.ctx, s.user)
	s.Require().NoError(err)
	s.Empty(people)

	planets, err := s.store.ListPlanetsByUser(s.ctx, id.UserID(12345))
	s.Require().NoError(err)
	s.Empty(planets)
}

func (s *FavoriteStoreSuite) TestDuplicatesArePreserved() {
	first, err := s.store.InsertFavoritePerson(s.ctx, s.user, s.luke)
	s.Require().NoError(err)
	second, err := s.store.InsertFavoritePerson(s.ctx, s.user, s.luke)
	s.Require().NoError(err)
	s.NotEqual(first.ID, second.ID)

	people, err := s.store.ListPeopleByUser(s.ctx, s.user)
	s.Require().NoError(err)
	s.Len(people, 2)

	s.Run("find returns the earliest link", func() {
		found, err := s.store.FindFavoritePerson(s.ctx, s.user, s.luke)
		s.Require().NoError(err)
		s.Equal(first.ID, found.ID)
	})

	s.Run("delete removes exactly one link", func() {
		found, err := s.store.FindFavoritePerson(s.ctx, s.user, s.luke)
		s.Require().NoError(err)
		s.Require().NoError(s.store.DeleteFavoritePerson(s.ctx, found))

		remaining, err := s.store.ListPeopleByUser(s.ctx, s.user)
		s.Require().NoError(err)
		s.Require().Len(remaining, 1)
		s.Equal(second.ID, remaining[0].ID)
	})
}

func (s *FavoriteStoreSuite) TestFindAndDeletePlanet() {
	s.Run("missing link is not found", func() {
		_, err := s.store.FindFavoritePlanet(s.ctx, s.user, s.tatooine)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("insert, find, delete", func() {
		created, err := s.store.InsertFavoritePlanet(s.ctx, s.user, s.tatooine)
		s.Require().NoError(err)

		found, err := s.store.FindFavoritePlanet(s.ctx, s.user, s.tatooine)
		s.Require().NoError(err)
		s.Equal(created.ID, found.ID)

		s.Require().NoError(s.store.DeleteFavoritePlanet(s.ctx, found))
		_, err = s.store.FindFavoritePlanet(s.ctx, s.user, s.tatooine)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("deleting twice reports not found", func() {
		err := s.store.DeleteFavoritePlanet(s.ctx, &models.FavoritePlanet{ID: id.FavoriteID(999)})
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *FavoriteStoreSuite) TestFindMatchesBothKeys() {
	other, err := s.catalog.InsertUser(s.ctx, catalog.NewUser{Email: "leia@rebellion.org", PasswordHash: "hash"})
	s.Require().NoError(err)
	_, err = s.store.InsertFavoritePerson(s.ctx, other.ID, s.luke)
	s.Require().NoError(err)

	_, err = s.store.FindFavoritePerson(s.ctx, s.user, s.luke)
	s.ErrorIs(err, sentinel.ErrNotFound)
}
