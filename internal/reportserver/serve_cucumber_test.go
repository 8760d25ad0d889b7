//go:build cucumber

package reportserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"cukereport/internal/testutil"
)

// TestServeReportScenarios runs the report server feature scenarios.
func TestServeReportScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "report_serve.feature")
	suite := godog.TestSuite{
		Name:                "report-serve",
		ScenarioInitializer: InitializeServeScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeServeScenario wires steps for report server feature scenarios.
func InitializeServeScenario(ctx *godog.ScenarioContext) {
	state := &serveScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		if state.resultsPath != "" {
			_ = os.Remove(state.resultsPath)
		}
		return ctx, nil
	})

	ctx.Step(`^a results file with 1 passing and 1 failing scenario$`, state.givenMixedResultsFile)
	ctx.Step(`^I start the report server$`, state.whenIStartTheReportServer)
	ctx.Step(`^I request "([^"]+)"$`, state.whenIRequest)
	ctx.Step(`^the response status is (\d+)$`, state.thenResponseStatus)
	ctx.Step(`^the response body contains "(.*)"$`, state.thenResponseBodyContains)
}

// serveScenarioState holds scenario state for report server feature tests.
type serveScenarioState struct {
	resultsPath string
	handler     http.Handler
	response    *httptest.ResponseRecorder
}

// reset clears scenario state.
func (s *serveScenarioState) reset() {
	s.resultsPath = ""
	s.handler = nil
	s.response = nil
}

// givenMixedResultsFile writes the cart results to a temporary file.
func (s *serveScenarioState) givenMixedResultsFile() error {
	file, err := os.CreateTemp("", "results-*.json")
	if err != nil {
		return err
	}
	defer file.Close()
	if _, err := file.WriteString(testutil.CartResultsJSON); err != nil {
		return err
	}
	s.resultsPath = file.Name()
	return nil
}

// whenIStartTheReportServer builds the report handler over the results file.
func (s *serveScenarioState) whenIStartTheReportServer() error {
	if s.resultsPath == "" {
		return fmt.Errorf("results path is not set")
	}
	handler, err := NewHandler(Config{Title: "Live Report", Source: FileSource(s.resultsPath)})
	if err != nil {
		return err
	}
	s.handler = handler
	return nil
}

// whenIRequest sends a request to the report handler.
func (s *serveScenarioState) whenIRequest(path string) error {
	if s.handler == nil {
		return fmt.Errorf("handler not initialized")
	}
	req := httptest.NewRequest(http.MethodGet, "http://example.com"+path, nil)
	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, req)
	s.response = recorder
	return nil
}

// thenResponseStatus asserts the HTTP response status code.
func (s *serveScenarioState) thenResponseStatus(expected int) error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	if s.response.Code != expected {
		return fmt.Errorf("expected status %d, got %d", expected, s.response.Code)
	}
	return nil
}

// thenResponseBodyContains asserts the response body includes the given substring.
func (s *serveScenarioState) thenResponseBodyContains(snippet string) error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	snippet = strings.ReplaceAll(snippet, `\"`, `"`)
	if !strings.Contains(s.response.Body.String(), snippet) {
		return fmt.Errorf("expected response to contain %q", snippet)
	}
	return nil
}
