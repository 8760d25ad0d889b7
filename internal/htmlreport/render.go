// Package htmlreport renders the aggregated report as a self-contained HTML
// dashboard with inline styles and a client-side status filter.
package htmlreport

//go:generate templ generate

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"cukereport/internal/report"
)

// DefaultTitle is used when Options.Title is empty.
const DefaultTitle = "Test Coverage Report"

// ErrorLimit is the number of characters of a failure message shown before
// the truncation marker.
const ErrorLimit = 500

// TruncationMarker follows an error message cut at ErrorLimit.
const TruncationMarker = "...\n[Error message truncated]"

// Options control page chrome. GeneratedAt defaults to the current time.
type Options struct {
	Title       string
	GeneratedAt time.Time
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.Title) == "" {
		o.Title = DefaultTitle
	}
	if o.GeneratedAt.IsZero() {
		o.GeneratedAt = time.Now()
	}
	return o
}

// Render renders the report page into a string.
func Render(ctx context.Context, model report.Model, opts Options) (string, error) {
	var builder strings.Builder
	if err := Page(model, opts.withDefaults()).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// Write renders the report and overwrites path with it.
func Write(ctx context.Context, path string, model report.Model, opts Options) error {
	html, err := Render(ctx, model, opts)
	if err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write html report: %w", err)
	}
	return nil
}
