//go:build integration

// Package integration runs the ledger API feature files against an in-memory
// sqlite database and a miniredis backed rate limiter.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/e-budget/backend/test/integration/steps"
)

func TestLedgerFeatures(t *testing.T) {
	format := os.Getenv("GODOG_FORMAT")
	if format == "" {
		format = "pretty"
	}

	opts := godog.Options{
		Format: format,
		Paths:  []string{"features"},
		Output: colors.Colored(os.Stdout),
		// Scenarios share one database, so they must not overlap.
		Concurrency: 1,
		Strict:      true,
		Tags:        os.Getenv("GODOG_TAGS"),
		TestingT:    t,
	}

	suite := godog.TestSuite{
		Name:                 "e-budget-api",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              &opts,
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
