package common

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
	GetResponseField(field string) (any, error)
	GetLastResponseStatus() int
	GetLastResponseBody() []byte
}

// RegisterSteps registers request and assertion steps shared by every feature
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	ctx.Step(`^the holocron server is running$`, steps.serverIsRunning)
	ctx.Step(`^I GET "([^"]*)"$`, steps.get)
	ctx.Step(`^I DELETE "([^"]*)"$`, steps.delete)
	ctx.Step(`^I POST to "([^"]*)" with body:$`, steps.postWithBody)

	ctx.Step(`^the response status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^the response message should be "([^"]*)"$`, steps.messageShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, steps.fieldShouldBe)
	ctx.Step(`^the response should be an empty favorites list$`, steps.emptyFavorites)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) serverIsRunning(ctx context.Context) error {
	if err := s.tc.GET("/healthz", nil); err != nil {
		return err
	}
	return s.statusShouldBe(ctx, 200)
}

func (s *commonSteps) get(_ context.Context, path string) error {
	return s.tc.GET(path, nil)
}

func (s *commonSteps) delete(_ context.Context, path string) error {
	return s.tc.DELETE(path)
}

func (s *commonSteps) postWithBody(_ context.Context, path string, body *godog.DocString) error {
	return s.tc.POST(path, body.Content)
}

func (s *commonSteps) statusShouldBe(_ context.Context, want int) error {
	if got := s.tc.GetLastResponseStatus(); got != want {
		return fmt.Errorf("expected status %d, got %d: %s", want, got, s.tc.GetLastResponseBody())
	}
	return nil
}

func (s *commonSteps) messageShouldBe(ctx context.Context, want string) error {
	return s.fieldShouldBe(ctx, "message", want)
}

func (s *commonSteps) fieldShouldBe(_ context.Context, field, want string) error {
	v, err := s.tc.GetResponseField(field)
	if err != nil {
		return err
	}
	if got := fmt.Sprint(v); got != want {
		return fmt.Errorf("expected %s %q, got %q", field, want, got)
	}
	return nil
}

// emptyFavorites accepts the flattened shape [[]] and the grouped shape.
func (s *commonSteps) emptyFavorites(_ context.Context) error {
	body := s.tc.GetLastResponseBody()

	var flat []json.RawMessage
	if err := json.Unmarshal(body, &flat); err == nil {
		if len(flat) == 1 && string(flat[0]) == "[]" {
			return nil
		}
		return fmt.Errorf("expected [[]], got %s", body)
	}

	var grouped struct {
		People  []json.RawMessage `json:"people"`
		Planets []json.RawMessage `json:"planets"`
	}
	if err := json.Unmarshal(body, &grouped); err != nil {
		return fmt.Errorf("unexpected favorites body: %s", body)
	}
	if len(grouped.People) != 0 || len(grouped.Planets) != 0 {
		return fmt.Errorf("expected no favorites, got %s", body)
	}
	return nil
}
