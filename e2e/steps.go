package e2e

import (
	"github.com/cucumber/godog"

	"holocron/e2e/steps/catalog"
	"holocron/e2e/steps/common"
	"holocron/e2e/steps/favorites"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Background, generic requests and assertions
	common.RegisterSteps(ctx, tc)

	// People, planets and users
	catalog.RegisterSteps(ctx, tc)

	// Favorites per user
	favorites.RegisterSteps(ctx, tc)
}
