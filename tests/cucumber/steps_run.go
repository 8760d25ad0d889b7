//go:build cucumber

package cucumber

import (
	"fmt"
	"os"
	"strings"

	"cukereport/internal/cli"
	"cukereport/internal/config"
	"cukereport/internal/testutil"
)

// iRunCommand executes a CLI command for the scenario.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "cukereport" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

// aMixedResultsFile writes the cart fixture to the default input path.
func (s *featureState) aMixedResultsFile() error {
	return writeFile(config.DefaultInput, testutil.CartResultsJSON)
}

// aResultsFileContaining writes raw contents to the default input path.
func (s *featureState) aResultsFileContaining(contents string) error {
	return writeFile(config.DefaultInput, unquote(contents))
}

// aConfigFileWithTitle writes a config file overriding the report title.
func (s *featureState) aConfigFileWithTitle(title string) error {
	return writeFile(config.ConfigFileName, fmt.Sprintf("title: %q\n", title))
}

func writeFile(path, contents string) error {
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// unquote resolves the escaped quotes gherkin leaves in step arguments.
func unquote(value string) string {
	return strings.ReplaceAll(value, `\"`, `"`)
}
