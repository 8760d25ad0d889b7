package cli

import (
	"io"
	"testing"
)

// TestColorEnabled verifies color decision logic.
func TestColorEnabled(t *testing.T) {
	cases := []struct {
		name    string
		noColor bool
		env     map[string]string
		isTTY   bool
		want    bool
	}{
		{name: "tty", isTTY: true, want: true},
		{name: "non-tty", isTTY: false, want: false},
		{name: "flag disables", noColor: true, isTTY: true, want: false},
		{name: "NO_COLOR disables", env: map[string]string{"NO_COLOR": "1"}, isTTY: true, want: false},
		{name: "dumb terminal", env: map[string]string{"TERM": "dumb"}, isTTY: true, want: false},
		{name: "xterm", env: map[string]string{"TERM": "xterm-256color"}, isTTY: true, want: true},
	}

	originalTTY, originalEnv := isTerminal, getenv
	t.Cleanup(func() {
		isTerminal = originalTTY
		getenv = originalEnv
	})

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isTerminal = func(_ io.Writer) bool { return tc.isTTY }
			getenv = func(key string) string { return tc.env[key] }
			if got := colorEnabled(nil, tc.noColor); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDefaultIsTerminalNonFile(t *testing.T) {
	if defaultIsTerminal(io.Discard) {
		t.Fatalf("io.Discard is not a terminal")
	}
	if defaultIsTerminal(nil) {
		t.Fatalf("nil writer is not a terminal")
	}
}
