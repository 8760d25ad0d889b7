package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds Context when no timeout is given.
const DefaultTimeout = 5 * time.Second

// deadlineSlack keeps contexts ending before `go test -timeout` kills the run.
const deadlineSlack = time.Second

// Context derives from t.Context and expires after timeout, or earlier if
// the test binary's deadline comes first. It is cancelled at cleanup.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	deadline := time.Now().Add(timeout)
	if limit, ok := testDeadline(t); ok && limit.Before(deadline) {
		deadline = limit
	}
	ctx, cancel := context.WithDeadline(t.Context(), deadline)
	t.Cleanup(cancel)
	return ctx
}

func testDeadline(t testing.TB) (time.Time, bool) {
	withDeadline, ok := t.(interface{ Deadline() (time.Time, bool) })
	if !ok {
		return time.Time{}, false
	}
	deadline, ok := withDeadline.Deadline()
	if !ok {
		return time.Time{}, false
	}
	return deadline.Add(-deadlineSlack), true
}
