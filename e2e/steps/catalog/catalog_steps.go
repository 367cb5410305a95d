package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body any) error
	GET(path string, headers map[string]string) error
	AdminPOST(path string, body any) error
	GetResponseField(field string) (any, error)
	GetLastResponseStatus() int
	GetLastResponseBody() []byte
	SaveID(alias string, value int64)
	ID(alias string) (int64, error)
}

// RegisterSteps registers people, planet and user step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &catalogSteps{tc: tc}

	ctx.Step(`^a registered user "([^"]*)"$`, steps.registeredUser)
	ctx.Step(`^I create a person "([^"]*)" with gender "([^"]*)" born "([^"]*)"$`, steps.createPerson)
	ctx.Step(`^I create a planet "([^"]*)" with population (\d+) and terrain "([^"]*)"$`, steps.createPlanet)
	ctx.Step(`^I GET the person "([^"]*)"$`, steps.getPerson)
	ctx.Step(`^I GET the planet "([^"]*)"$`, steps.getPlanet)
}

type catalogSteps struct {
	tc TestContext
}

type listed struct {
	ID   int64   `json:"id"`
	Name *string `json:"name"`
}

// registeredUser creates a user through the admin API with a unique email
// so scenarios can run against a shared database.
func (s *catalogSteps) registeredUser(_ context.Context, alias string) error {
	email := fmt.Sprintf("%s+%d@rebellion.org", alias, time.Now().UnixNano())
	if err := s.tc.AdminPOST("/admin/users", map[string]string{
		"email":    email,
		"password": "use-the-force",
	}); err != nil {
		return err
	}
	if status := s.tc.GetLastResponseStatus(); status != 201 {
		return fmt.Errorf("create user: status %d: %s", status, s.tc.GetLastResponseBody())
	}
	v, err := s.tc.GetResponseField("id")
	if err != nil {
		return err
	}
	f, ok := v.(float64)
	if !ok {
		return fmt.Errorf("user id is %T, not a number", v)
	}
	s.tc.SaveID(alias, int64(f))
	return nil
}

func (s *catalogSteps) createPerson(_ context.Context, name, gender, birthYear string) error {
	if err := s.tc.POST("/people", map[string]string{
		"name":       name,
		"gender":     gender,
		"birth_year": birthYear,
	}); err != nil {
		return err
	}
	return s.remember("/people", name)
}

func (s *catalogSteps) createPlanet(_ context.Context, name string, population int64, terrain string) error {
	if err := s.tc.POST("/planet", map[string]any{
		"name":       name,
		"population": population,
		"terrain":    terrain,
	}); err != nil {
		return err
	}
	return s.remember("/planet", name)
}

// remember resolves the id of the newest record named name. Create
// endpoints only answer with a message, so the id comes from the list.
func (s *catalogSteps) remember(listPath, name string) error {
	if status := s.tc.GetLastResponseStatus(); status != 200 {
		return fmt.Errorf("create %s: status %d: %s", name, status, s.tc.GetLastResponseBody())
	}
	if err := s.tc.GET(listPath, nil); err != nil {
		return err
	}
	var items []listed
	if err := json.Unmarshal(s.tc.GetLastResponseBody(), &items); err != nil {
		return fmt.Errorf("decode %s: %w", listPath, err)
	}
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Name != nil && *items[i].Name == name {
			s.tc.SaveID(name, items[i].ID)
			return nil
		}
	}
	return fmt.Errorf("%s not found in %s", name, listPath)
}

func (s *catalogSteps) getPerson(_ context.Context, alias string) error {
	personID, err := s.tc.ID(alias)
	if err != nil {
		return err
	}
	return s.tc.GET(fmt.Sprintf("/people/%d", personID), nil)
}

func (s *catalogSteps) getPlanet(_ context.Context, alias string) error {
	planetID, err := s.tc.ID(alias)
	if err != nil {
		return err
	}
	return s.tc.GET(fmt.Sprintf("/planet/%d", planetID), nil)
}
