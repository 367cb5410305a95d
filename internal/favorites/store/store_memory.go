package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	catalog "holocron/internal/catalog/models"
	"holocron/internal/favorites/models"
	id "holocron/pkg/domain"
	"holocron/pkg/platform/sentinel"
)

// CatalogReader resolves link targets for list queries.
type CatalogReader interface {
	GetPerson(ctx context.Context, personID id.PersonID) (*catalog.Person, error)
	GetPlanet(ctx context.Context, planetID id.PlanetID) (*catalog.Planet, error)
}

// InMemory keeps favorite links in process. Duplicate links are allowed.
type InMemory struct {
	mu      sync.RWMutex
	catalog CatalogReader

	people  map[id.FavoriteID]*models.FavoritePerson
	planets map[id.FavoriteID]*models.FavoritePlanet

	nextPerson int64
	nextPlanet int64
}

// NewInMemory joins list results against catalog.
func NewInMemory(catalog CatalogReader) *InMemory {
	return &InMemory{
		catalog: catalog,
		people:  make(map[id.FavoriteID]*models.FavoritePerson),
		planets: make(map[id.FavoriteID]*models.FavoritePlanet),
	}
}

func (s *InMemory) ListPeopleByUser(ctx context.Context, userID id.UserID) ([]*models.FavoritePerson, error) {
	s.mu.RLock()
	var links []models.FavoritePerson
	for _, f := range s.people {
		if f.UserID == userID {
			links = append(links, *f)
		}
	}
	s.mu.RUnlock()

	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	out := make([]*models.FavoritePerson, 0, len(links))
	for i := range links {
		person, err := s.catalog.GetPerson(ctx, links[i].PersonID)
		if err != nil {
			return nil, fmt.Errorf("resolve favorite %d: %w", links[i].ID, err)
		}
		links[i].Person = person
		out = append(out, &links[i])
	}
	return out, nil
}

func (s *InMemory) ListPlanetsByUser(ctx context.Context, userID id.UserID) ([]*models.FavoritePlanet, error) {
	s.mu.RLock()
	var links []models.FavoritePlanet
	for _, f := range s.planets {
		if f.UserID == userID {
			links = append(links, *f)
		}
	}
	s.mu.RUnlock()

	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	out := make([]*models.FavoritePlanet, 0, len(links))
	for i := range links {
		planet, err := s.catalog.GetPlanet(ctx, links[i].PlanetID)
		if err != nil {
			return nil, fmt.Errorf("resolve favorite %d: %w", links[i].ID, err)
		}
		links[i].Planet = planet
		out = append(out, &links[i])
	}
	return out, nil
}

func (s *InMemory) InsertFavoritePerson(_ context.Context, userID id.UserID, personID id.PersonID) (*models.FavoritePerson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPerson++
	f := &models.FavoritePerson{ID: id.FavoriteID(s.nextPerson), UserID: userID, PersonID: personID}
	s.people[f.ID] = f
	cp := *f
	return &cp, nil
}

func (s *InMemory) InsertFavoritePlanet(_ context.Context, userID id.UserID, planetID id.PlanetID) (*models.FavoritePlanet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPlanet++
	f := &models.FavoritePlanet{ID: id.FavoriteID(s.nextPlanet), UserID: userID, PlanetID: planetID}
	s.planets[f.ID] = f
	cp := *f
	return &cp, nil
}

// FindFavoritePerson returns the lowest-id link matching both keys.
func (s *InMemory) FindFavoritePerson(_ context.Context, userID id.UserID, personID id.PersonID) (*models.FavoritePerson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var match *models.FavoritePerson
	for _, f := range s.people {
		if f.UserID == userID && f.PersonID == personID && (match == nil || f.ID < match.ID) {
			match = f
		}
	}
	if match == nil {
		return nil, fmt.Errorf("favorite person %d for user %d: %w", personID, userID, sentinel.ErrNotFound)
	}
	cp := *match
	return &cp, nil
}

// FindFavoritePlanet returns the lowest-id link matching both keys.
func (s *InMemory) FindFavoritePlanet(_ context.Context, userID id.UserID, planetID id.PlanetID) (*models.FavoritePlanet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var match *models.FavoritePlanet
	for _, f := range s.planets {
		if f.UserID == userID && f.PlanetID == planetID && (match == nil || f.ID < match.ID) {
			match = f
		}
	}
	if match == nil {
		return nil, fmt.Errorf("favorite planet %d for user %d: %w", planetID, userID, sentinel.ErrNotFound)
	}
	cp := *match
	return &cp, nil
}

func (s *InMemory) DeleteFavoritePerson(_ context.Context, fav *models.FavoritePerson) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.people[fav.ID]; !ok {
		return fmt.Errorf("favorite person %d: %w", fav.ID, sentinel.ErrNotFound)
	}
	delete(s.people, fav.ID)
	return nil
}

func (s *InMemory) DeleteFavoritePlanet(_ context.Context, fav *models.FavoritePlanet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.planets[fav.ID]; !ok {
		return fmt.Errorf("favorite planet %d: %w", fav.ID, sentinel.ErrNotFound)
	}
	delete(s.planets, fav.ID)
	return nil
}
