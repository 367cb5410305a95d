// Package seed loads people and planets from a YAML fixture file and
// creates them through the access service, so seeded records go through the
// same checks and audit trail as API writes.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	catalog "holocron/internal/catalog/models"
)

// Fixtures is the YAML document:
//
//	people:
//	  - name: Luke Skywalker
//	    gender: male
//	    birth_year: 19BBY
//	planets:
//	  - name: Tatooine
//	    population: 200000
//	    terrain: desert
type Fixtures struct {
	People  []PersonFixture `yaml:"people"`
	Planets []PlanetFixture `yaml:"planets"`
}

type PersonFixture struct {
	Name      *string `yaml:"name"`
	Gender    *string `yaml:"gender"`
	BirthYear *string `yaml:"birth_year"`
}

type PlanetFixture struct {
	Name       *string `yaml:"name"`
	Population *int64  `yaml:"population"`
	Terrain    *string `yaml:"terrain"`
}

// Creator is the subset of the access service seeding needs.
type Creator interface {
	CreatePerson(ctx context.Context, in catalog.NewPerson) (*catalog.Person, error)
	CreatePlanet(ctx context.Context, in catalog.NewPlanet) (*catalog.Planet, error)
}

type Result struct {
	People  int
	Planets int
}

// Parse decodes fixtures. Unknown keys are rejected so a typo such as
// "birthyear" does not silently seed NULLs. An empty document is valid.
func Parse(r io.Reader) (*Fixtures, error) {
	var f Fixtures
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
	}
	return &f, nil
}

// Apply creates every person and then every planet, stopping at the first
// failure. Records created before the failure are kept.
func Apply(ctx context.Context, c Creator, f *Fixtures) (Result, error) {
	var res Result
	for i, p := range f.People {
		if _, err := c.CreatePerson(ctx, catalog.NewPerson{Name: p.Name, Gender: p.Gender, BirthYear: p.BirthYear}); err != nil {
			return res, fmt.Errorf("people[%d]: %w", i, err)
		}
		res.People++
	}
	for i, p := range f.Planets {
		if _, err := c.CreatePlanet(ctx, catalog.NewPlanet{Name: p.Name, Population: p.Population, Terrain: p.Terrain}); err != nil {
			return res, fmt.Errorf("planets[%d]: %w", i, err)
		}
		res.Planets++
	}
	return res, nil
}
