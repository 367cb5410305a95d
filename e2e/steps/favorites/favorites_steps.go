package favorites

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body any) error
	GET(path string, headers map[string]string) error
	DELETE(path string) error
	GetLastResponseBody() []byte
	ID(alias string) (int64, error)
}

// RegisterSteps registers favorites step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &favoritesSteps{tc: tc}

	ctx.Step(`^"([^"]*)" favorites the person "([^"]*)"$`, steps.addPerson)
	ctx.Step(`^"([^"]*)" favorites the planet "([^"]*)"$`, steps.addPlanet)
	ctx.Step(`^"([^"]*)" removes the person "([^"]*)" from favorites$`, steps.removePerson)
	ctx.Step(`^"([^"]*)" removes the planet "([^"]*)" from favorites$`, steps.removePlanet)
	ctx.Step(`^I list the favorites of "([^"]*)"$`, steps.list)
	ctx.Step(`^the favorites should contain (\d+) (?:person|people) and (\d+) planets?$`, steps.shouldContain)
}

type favoritesSteps struct {
	tc TestContext
}

func (s *favoritesSteps) path(user, kind, target string) (string, error) {
	userID, err := s.tc.ID(user)
	if err != nil {
		return "", err
	}
	targetID, err := s.tc.ID(target)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/user/%d/favorites/%s/%d", userID, kind, targetID), nil
}

func (s *favoritesSteps) addPerson(_ context.Context, user, person string) error {
	p, err := s.path(user, "people", person)
	if err != nil {
		return err
	}
	return s.tc.POST(p, nil)
}

func (s *favoritesSteps) addPlanet(_ context.Context, user, planet string) error {
	p, err := s.path(user, "planet", planet)
	if err != nil {
		return err
	}
	return s.tc.POST(p, nil)
}

func (s *favoritesSteps) removePerson(_ context.Context, user, person string) error {
	p, err := s.path(user, "people", person)
	if err != nil {
		return err
	}
	return s.tc.DELETE(p)
}

func (s *favoritesSteps) removePlanet(_ context.Context, user, planet string) error {
	p, err := s.path(user, "planet", planet)
	if err != nil {
		return err
	}
	return s.tc.DELETE(p)
}

func (s *favoritesSteps) list(_ context.Context, user string) error {
	userID, err := s.tc.ID(user)
	if err != nil {
		return err
	}
	return s.tc.GET(fmt.Sprintf("/user/%d/favorites", userID), nil)
}

// shouldContain counts favorites in either response shape: the flattened
// array whose last element holds the planets, or the grouped object.
func (s *favoritesSteps) shouldContain(_ context.Context, people, planets int) error {
	body := s.tc.GetLastResponseBody()

	var gotPeople, gotPlanets int
	var flat []json.RawMessage
	if err := json.Unmarshal(body, &flat); err == nil {
		if len(flat) == 0 {
			return fmt.Errorf("flattened favorites must end with the planet list: %s", body)
		}
		var planetList []json.RawMessage
		if err := json.Unmarshal(flat[len(flat)-1], &planetList); err != nil {
			return fmt.Errorf("last element is not the planet list: %s", body)
		}
		gotPeople, gotPlanets = len(flat)-1, len(planetList)
	} else {
		var grouped struct {
			People  []json.RawMessage `json:"people"`
			Planets []json.RawMessage `json:"planets"`
		}
		if err := json.Unmarshal(body, &grouped); err != nil {
			return fmt.Errorf("unexpected favorites body: %s", body)
		}
		gotPeople, gotPlanets = len(grouped.People), len(grouped.Planets)
	}

	if gotPeople != people || gotPlanets != planets {
		return fmt.Errorf("expected %d people and %d planets, got %d and %d: %s",
			people, planets, gotPeople, gotPlanets, body)
	}
	return nil
}
