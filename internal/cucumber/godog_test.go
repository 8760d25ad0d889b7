package cucumber

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestExtractResultsJSON verifies notices and color codes around the
// document are dropped.
func TestExtractResultsJSON(t *testing.T) {
	doc := `[{"uri":"cart.feature","elements":[]}]`
	cases := map[string]struct {
		stdout string
		want   string
	}{
		"plain":           {doc + "\n", doc},
		"colored notice":  {"\x1b[33mUse of godog CLI is deprecated\x1b[0m\n" + doc, doc},
		"bracketed level": {"[WARN] flag --format is deprecated\n" + doc, doc},
		"indented":        {"notice\n   " + doc, doc},
		"colored json":    {"\x1b[1m" + doc + "\x1b[0m", doc},
		"no json":         {"  nothing ran  ", "nothing ran"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := string(ExtractResultsJSON([]byte(tc.stdout))); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

// TestParseGodogJSON verifies features decode after extraction.
func TestParseGodogJSON(t *testing.T) {
	stdout := "\x1b[33mSee https://example.test\x1b[0m\n" +
		`[{"uri":"cart.feature","name":"Add Item to Cart","elements":[]}]`
	features, err := ParseGodogJSON([]byte(stdout))
	if err != nil {
		t.Fatalf("parse godog json: %v", err)
	}
	if len(features) != 1 || features[0].URI != "cart.feature" {
		t.Fatalf("unexpected features %+v", features)
	}
	if features[0].DisplayName() != "Add Item to Cart" {
		t.Fatalf("unexpected name %q", features[0].DisplayName())
	}
	if _, err := ParseGodogJSON([]byte("no scenarios\n")); err == nil {
		t.Fatalf("expected error for output without JSON")
	}
}

// TestTagExpression verifies tags are prefixed and joined.
func TestTagExpression(t *testing.T) {
	got := tagExpression([]string{"smoke", " @cart ", "", "~@wip"})
	if got != "@smoke and @cart and ~@wip" {
		t.Fatalf("unexpected expression %q", got)
	}
	if tagExpression(nil) != "" {
		t.Fatalf("expected empty expression")
	}
}

// TestRunGodogJSONReturnsCleanedOutput runs a stand-in godog binary.
func TestRunGodogJSONReturnsCleanedOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in requires a POSIX shell")
	}
	dir := t.TempDir()
	script := filepath.Join(dir, "godog")
	body := "#!/bin/sh\n" +
		"echo \"$@\" > \"" + filepath.Join(dir, "args.txt") + "\"\n" +
		"printf 'deprecated\\n[{\"name\":\"Cart\",\"elements\":[]}]\\n'\n" +
		"exit 1\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	orig := GodogBinary
	GodogBinary = script
	t.Cleanup(func() { GodogBinary = orig })

	out, err := RunGodogJSON(context.Background(), dir, []string{"features"}, []string{"smoke"})
	if err != nil {
		t.Fatalf("run godog: %v", err)
	}
	if !strings.HasPrefix(string(out), "[") {
		t.Fatalf("expected cleaned JSON, got %q", out)
	}
	args, err := os.ReadFile(filepath.Join(dir, "args.txt"))
	if err != nil {
		t.Fatalf("read args: %v", err)
	}
	if strings.TrimSpace(string(args)) != "--format cucumber --tags @smoke features" {
		t.Fatalf("unexpected args %q", args)
	}
}

// TestRunGodogJSONRequiresPaths verifies feature paths are mandatory.
func TestRunGodogJSONRequiresPaths(t *testing.T) {
	if _, err := RunGodogJSON(context.Background(), t.TempDir(), nil, nil); err == nil {
		t.Fatalf("expected error without feature paths")
	}
}
