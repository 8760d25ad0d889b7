package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cukereport/internal/testutil"
)

// workspace is a temp directory holding a results file, an empty config
// and the report output paths.
type workspace struct {
	dir      string
	input    string
	config   string
	html     string
	markdown string
}

func newWorkspace(t *testing.T, results string) workspace {
	t.Helper()
	dir := t.TempDir()
	ws := workspace{
		dir:      dir,
		input:    filepath.Join(dir, "results.json"),
		config:   testutil.WriteFile(t, dir, ".cukereport.yml", ""),
		html:     filepath.Join(dir, "report.html"),
		markdown: filepath.Join(dir, "report.md"),
	}
	if results != "" {
		testutil.WriteFile(t, dir, "results.json", results)
	}
	return ws
}

// args returns flags pointing every path into the workspace.
func (ws workspace) args(extra ...string) []string {
	args := []string{
		"--config", ws.config,
		"--input", ws.input,
		"--html", ws.html,
		"--markdown", ws.markdown,
		"--no-color",
	}
	return append(args, extra...)
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// fixClock pins report timestamps for the duration of the test.
func fixClock(t *testing.T) time.Time {
	t.Helper()
	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	original := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = original })
	return fixed
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
