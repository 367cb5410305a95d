package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"holocron/internal/catalog/models"
	id "holocron/pkg/domain"
	"holocron/pkg/platform/sentinel"
)

// InMemory is a process-local catalog. It reproduces the relational store's
// NOT NULL and UNIQUE failures so services behave the same on either.
type InMemory struct {
	mu sync.RWMutex

	users   map[id.UserID]*models.User
	people  map[id.PersonID]*models.Person
	planets map[id.PlanetID]*models.Planet

	nextUser   int64
	nextPerson int64
	nextPlanet int64
}

func NewInMemory() *InMemory {
	return &InMemory{
		users:   make(map[id.UserID]*models.User),
		people:  make(map[id.PersonID]*models.Person),
		planets: make(map[id.PlanetID]*models.Planet),
	}
}

func (s *InMemory) ListPeople(_ context.Context) ([]*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Person, 0, len(s.people))
	for _, p := range s.people {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemory) ListPlanets(_ context.Context) ([]*models.Planet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Planet, 0, len(s.planets))
	for _, p := range s.planets {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemory) ListUsers(_ context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemory) GetPerson(_ context.Context, personID id.PersonID) (*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.people[personID]
	if !ok {
		return nil, fmt.Errorf("person %d: %w", personID, sentinel.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (s *InMemory) GetPlanet(_ context.Context, planetID id.PlanetID) (*models.Planet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.planets[planetID]
	if !ok {
		return nil, fmt.Errorf("planet %d: %w", planetID, sentinel.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (s *InMemory) GetUser(_ context.Context, userID id.UserID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, sentinel.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (s *InMemory) InsertPerson(_ context.Context, in models.NewPerson) (*models.Person, error) {
	if in.Gender == nil {
		return nil, notNull("people.gender")
	}
	if in.BirthYear == nil {
		return nil, notNull("people.birth_year")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPerson++
	p := &models.Person{
		ID:        id.PersonID(s.nextPerson),
		Name:      cloneString(in.Name),
		Gender:    *in.Gender,
		BirthYear: *in.BirthYear,
	}
	s.people[p.ID] = p
	cp := *p
	return &cp, nil
}

func (s *InMemory) InsertPlanet(_ context.Context, in models.NewPlanet) (*models.Planet, error) {
	if in.Population == nil {
		return nil, notNull("planet.population")
	}
	if in.Terrain == nil {
		return nil, notNull("planet.terrain")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPlanet++
	p := &models.Planet{
		ID:         id.PlanetID(s.nextPlanet),
		Name:       cloneString(in.Name),
		Population: *in.Population,
		Terrain:    *in.Terrain,
	}
	s.planets[p.ID] = p
	cp := *p
	return &cp, nil
}

func (s *InMemory) InsertUser(_ context.Context, in models.NewUser) (*models.User, error) {
	if in.Email == "" {
		return nil, notNull("user.email")
	}
	if in.PasswordHash == "" {
		return nil, notNull("user.password")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == in.Email {
			return nil, sentinel.Constraint("UNIQUE constraint failed: user.email")
		}
	}
	s.nextUser++
	u := &models.User{
		ID:           id.UserID(s.nextUser),
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
	}
	s.users[u.ID] = u
	cp := *u
	return &cp, nil
}

func notNull(column string) error {
	return sentinel.Constraint("NOT NULL constraint failed: " + column)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
