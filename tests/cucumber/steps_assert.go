//go:build cucumber

package cucumber

import (
	"fmt"
	"os"
	"strings"

	"cukereport/internal/config"
)

// theExitCodeIs asserts the CLI exit code.
func (s *featureState) theExitCodeIs(expected int) error {
	if s.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d (stderr: %s)", expected, s.exitCode, s.stderr.String())
	}
	return nil
}

// theOutputContains asserts stdout includes a snippet.
func (s *featureState) theOutputContains(snippet string) error {
	if !strings.Contains(s.stdout.String(), unquote(snippet)) {
		return fmt.Errorf("expected output to contain %q, got %q", snippet, s.stdout.String())
	}
	return nil
}

// theErrorOutputContains asserts stderr includes a snippet.
func (s *featureState) theErrorOutputContains(snippet string) error {
	if !strings.Contains(s.stderr.String(), unquote(snippet)) {
		return fmt.Errorf("expected error output to contain %q, got %q", snippet, s.stderr.String())
	}
	return nil
}

// theReportExists asserts a default report file was written.
func (s *featureState) theReportExists(kind string) error {
	if _, err := os.Stat(reportPath(kind)); err != nil {
		return fmt.Errorf("expected %s report: %w", kind, err)
	}
	return nil
}

// theReportContains asserts a report file includes a snippet.
func (s *featureState) theReportContains(kind, snippet string) error {
	data, err := os.ReadFile(reportPath(kind))
	if err != nil {
		return fmt.Errorf("read %s report: %w", kind, err)
	}
	if !strings.Contains(string(data), unquote(snippet)) {
		return fmt.Errorf("expected %s report to contain %q", kind, unquote(snippet))
	}
	return nil
}

// noReportsAreWritten asserts neither default report exists.
func (s *featureState) noReportsAreWritten() error {
	for _, kind := range []string{"HTML", "Markdown"} {
		if _, err := os.Stat(reportPath(kind)); err == nil {
			return fmt.Errorf("did not expect a %s report", kind)
		}
	}
	return nil
}

func reportPath(kind string) string {
	if kind == "HTML" {
		return config.DefaultHTMLOutput
	}
	return config.DefaultMarkdownOutput
}
