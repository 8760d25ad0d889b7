// Package vcs reads the git revision a report was generated from.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Revision identifies the working tree state of a repository.
type Revision struct {
	Commit string
	Branch string
	Dirty  bool
}

// gitRunner executes git commands.
type gitRunner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// execGitRunner invokes git via the system binary.
type execGitRunner struct{}

// Run executes a git command and returns trimmed stdout.
func (execGitRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "no stderr"
		}
		return "", fmt.Errorf("git %s: %w (%s)", strings.Join(args, " "), err, msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Client runs git through an injectable runner.
type Client struct {
	runner gitRunner
}

// NewClient constructs a git client with an optional runner override.
func NewClient(runner gitRunner) Client {
	if runner == nil {
		runner = execGitRunner{}
	}
	return Client{runner: runner}
}

var defaultClient = NewClient(nil)

// CurrentRevision reads HEAD of the repository containing dir.
func CurrentRevision(ctx context.Context, dir string) (Revision, error) {
	return defaultClient.CurrentRevision(ctx, dir)
}

// CurrentRevision reads HEAD of the repository containing dir, or the
// working directory when dir is empty.
func (c Client) CurrentRevision(ctx context.Context, dir string) (Revision, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Revision{}, fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	commit, err := c.runner.Run(ctx, dir, "rev-parse", "HEAD")
	if err != nil {
		return Revision{}, fmt.Errorf("resolve HEAD: %w", err)
	}
	branch, err := c.runner.Run(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return Revision{}, fmt.Errorf("resolve branch: %w", err)
	}
	status, err := c.runner.Run(ctx, dir, "status", "--porcelain")
	if err != nil {
		return Revision{}, fmt.Errorf("check dirty state: %w", err)
	}
	return Revision{
		Commit: commit,
		Branch: branch,
		Dirty:  strings.TrimSpace(status) != "",
	}, nil
}
