package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks that every path is set and that no two paths collide.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	paths := []struct {
		field string
		value string
	}{
		{"input", cfg.Input},
		{"html_output", cfg.HTMLOutput},
		{"markdown_output", cfg.MarkdownOutput},
		{"archive", cfg.Archive},
	}
	seen := make(map[string]string)
	for _, p := range paths {
		if p.value == "" {
			if p.field != "archive" {
				add(p.field, "is required")
			}
			continue
		}
		clean := filepath.Clean(p.value)
		if other, ok := seen[clean]; ok {
			add(p.field, fmt.Sprintf("must differ from %s (%s)", other, p.value))
			continue
		}
		seen[clean] = p.field
	}
	if strings.TrimSpace(cfg.Title) == "" {
		add("title", "is required")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
