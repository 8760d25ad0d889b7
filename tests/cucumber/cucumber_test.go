//go:build cucumber

package cucumber

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"
)

func TestCucumberFeatures(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "report_generation.feature")
	options := godog.Options{
		Format:    "progress",
		Paths:     []string{featurePath},
		Output:    io.Discard,
		Strict:    true,
		TestingT:  t,
		Randomize: 0,
	}

	suite := godog.TestSuite{
		Name:                "cukereport-features",
		ScenarioInitializer: InitializeScenario,
		Options:             &options,
	}

	if suite.Run() != 0 {
		t.Fatalf("cucumber features failed")
	}
}
