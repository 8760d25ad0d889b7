//go:build cucumber

package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	workDir    string
	previousWD string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^an empty working directory$`, state.anEmptyWorkingDirectory)
	ctx.Step(`^a results file with 1 passing and 1 failing scenario$`, state.aMixedResultsFile)
	ctx.Step(`^a results file containing "(.*)"$`, state.aResultsFileContaining)
	ctx.Step(`^a config file with title "([^"]+)"$`, state.aConfigFileWithTitle)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the output contains "(.*)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "(.*)"$`, state.theErrorOutputContains)
	ctx.Step(`^the (HTML|Markdown) report exists$`, state.theReportExists)
	ctx.Step(`^the (HTML|Markdown) report contains "(.*)"$`, state.theReportContains)
	ctx.Step(`^no reports are written$`, state.noReportsAreWritten)
}

// reset clears buffers and resets state before each scenario.
func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.workDir = ""
	s.previousWD = ""
}

// cleanup restores the working directory and removes temporary files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

// anEmptyWorkingDirectory switches into a fresh temp dir so defaults apply.
func (s *featureState) anEmptyWorkingDirectory() error {
	dir, err := os.MkdirTemp("", "cukereport-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.workDir = dir
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	return nil
}
