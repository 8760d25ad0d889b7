package vcs

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"cukereport/internal/testutil"
)

// TestCurrentRevision verifies commit, branch and dirty state parsing.
func TestCurrentRevision(t *testing.T) {
	ctx := testutil.Context(t, 0)
	fake := &fakeGitRunner{responses: map[string]string{
		"rev-parse HEAD":              "commit-3",
		"rev-parse --abbrev-ref HEAD": "main",
		"status --porcelain":          "",
	}}
	client := NewClient(fake)

	rev, err := client.CurrentRevision(ctx, t.TempDir())
	if err != nil {
		t.Fatalf("current revision: %v", err)
	}
	if rev.Commit != "commit-3" || rev.Branch != "main" || rev.Dirty {
		t.Fatalf("unexpected revision %+v", rev)
	}

	fake.responses["status --porcelain"] = " M features/cart.feature"
	rev, err = client.CurrentRevision(ctx, "")
	if err != nil {
		t.Fatalf("current revision dirty: %v", err)
	}
	if !rev.Dirty {
		t.Fatalf("expected dirty tree")
	}
	if fake.lastDir == "" {
		t.Fatalf("expected working directory fallback")
	}
}

// TestCurrentRevisionOutsideRepo verifies git failures are returned.
func TestCurrentRevisionOutsideRepo(t *testing.T) {
	client := NewClient(&fakeGitRunner{responses: map[string]string{}})
	if _, err := client.CurrentRevision(testutil.Context(t, 0), t.TempDir()); err == nil {
		t.Fatalf("expected error outside a repository")
	}
}

// fakeGitRunner returns canned outputs for git commands in tests.
type fakeGitRunner struct {
	responses map[string]string
	lastDir   string
}

// Run satisfies gitRunner for test doubles.
func (f *fakeGitRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	f.lastDir = dir
	key := strings.Join(args, " ")
	if value, ok := f.responses[key]; ok {
		return value, nil
	}
	return "", fmt.Errorf("unexpected git args: %s", key)
}
