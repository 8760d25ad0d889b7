// Package mdreport renders the aggregated report as a Markdown document.
package mdreport

import (
	"fmt"
	"os"
	"strings"
	"time"

	"cukereport/internal/report"
)

// DefaultTitle is used when Options.Title is empty.
const DefaultTitle = "Test Coverage Report"

// Character limits for error text.
const (
	PreviewLimit = 200
	DetailLimit  = 500
)

const (
	barWidth        = 50
	timestampLayout = "January 02, 2006 at 03:04 PM"
)

// Options control the document header. GeneratedAt defaults to now.
type Options struct {
	Title       string
	GeneratedAt time.Time
}

// Render builds the Markdown report.
func Render(model report.Model, opts Options) string {
	if strings.TrimSpace(opts.Title) == "" {
		opts.Title = DefaultTitle
	}
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}
	var b strings.Builder
	writeHeader(&b, model, opts)
	writeSummary(&b, model)
	writeScenarioLists(&b, model)
	writeDetails(&b, model)
	writeFeatures(&b, model)
	return b.String()
}

// Write renders the report and overwrites path with it.
func Write(path string, model report.Model, opts Options) error {
	if err := os.WriteFile(path, []byte(Render(model, opts)), 0o644); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}
	return nil
}

func writeHeader(b *strings.Builder, model report.Model, opts Options) {
	fmt.Fprintf(b, "# %s\n\n", opts.Title)
	fmt.Fprintf(b, "**Generated:** %s\n\n", opts.GeneratedAt.Format(timestampLayout))
	if model.Fingerprint != "" {
		fmt.Fprintf(b, "**Report ID:** `%s`\n\n", model.Fingerprint)
	}
	b.WriteString("---\n\n")
}

func writeSummary(b *strings.Builder, model report.Model) {
	rate := model.PassRate()
	failRate := 0.0
	if model.TotalScenarios > 0 {
		failRate = 100 - rate
	}
	b.WriteString("## Executive Summary\n\n")
	b.WriteString("| Metric | Count | Percentage |\n")
	b.WriteString("|--------|-------|------------|\n")
	fmt.Fprintf(b, "| **Total Scenarios** | %d | 100%% |\n", model.TotalScenarios)
	fmt.Fprintf(b, "| **✓ Passed Scenarios** | %d | %s%% |\n", model.PassedScenarios, report.FormatPercent(rate))
	fmt.Fprintf(b, "| **✗ Failed Scenarios** | %d | %s%% |\n", model.FailedScenarios, report.FormatPercent(failRate))
	fmt.Fprintf(b, "| **Total Steps Executed** | %d | - |\n", model.TotalSteps)
	fmt.Fprintf(b, "| **✓ Passed Steps** | %d | %s%% |\n", model.PassedSteps, report.FormatPercent(model.StepRate(model.PassedSteps)))
	fmt.Fprintf(b, "| **✗ Failed Steps** | %d | %s%% |\n", model.FailedSteps, report.FormatPercent(model.StepRate(model.FailedSteps)))
	fmt.Fprintf(b, "| **⊘ Skipped Steps** | %d | %s%% |\n\n", model.SkippedSteps, report.FormatPercent(model.StepRate(model.SkippedSteps)))

	fmt.Fprintf(b, "### Pass Rate: **%s%%**\n\n", report.FormatPercent(rate))
	fmt.Fprintf(b, "```\n%s %s%%\n```\n\n---\n\n", passRateBar(rate), report.FormatPercent(rate))
}

// passRateBar draws a fixed-width bar, one glyph per two percent.
func passRateBar(rate float64) string {
	filled := int(rate / 2)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func writeScenarioLists(b *strings.Builder, model report.Model) {
	b.WriteString("## Detailed Test Coverage\n")
	if passed := model.PassedList(); len(passed) > 0 {
		fmt.Fprintf(b, "\n### ✓ Passed Scenarios (%d)\n\n", len(passed))
		for i, scenario := range passed {
			fmt.Fprintf(b, "%d. **%s**\n", i+1, scenario.Name)
			fmt.Fprintf(b, "   - Feature: %s\n", scenario.Feature)
			fmt.Fprintf(b, "   - Steps: %d\n\n", len(scenario.Steps))
		}
	}
	if failed := model.FailedList(); len(failed) > 0 {
		fmt.Fprintf(b, "\n### ✗ Failed Scenarios (%d)\n\n", len(failed))
		for i, scenario := range failed {
			fmt.Fprintf(b, "%d. **%s** ❌\n", i+1, scenario.Name)
			fmt.Fprintf(b, "   - Feature: %s\n", scenario.Feature)
			fmt.Fprintf(b, "   - Failed Step: `%s`\n", scenario.FailedStep)
			if scenario.ErrorMessage != "" {
				fmt.Fprintf(b, "   - Error: `%s`\n", errorPreview(scenario.ErrorMessage))
			}
			fmt.Fprintf(b, "   - Steps Executed: %d\n\n", len(scenario.Steps))
		}
	}
}

// errorPreview caps a message at PreviewLimit characters, adding "...".
func errorPreview(message string) string {
	cut, truncated := report.Truncate(message, PreviewLimit)
	if truncated {
		return cut + "..."
	}
	return message
}

func writeDetails(b *strings.Builder, model report.Model) {
	b.WriteString("\n---\n\n## Complete Test Scenarios with Step-by-Step Details\n\n")
	for i, scenario := range model.Scenarios {
		fmt.Fprintf(b, "\n### %d. %s %s\n\n", i+1, scenario.Name, statusIcon(string(scenario.Status)))
		fmt.Fprintf(b, "**Status:** %s\n\n", strings.ToUpper(string(scenario.Status)))
		fmt.Fprintf(b, "**Feature:** %s\n\n", scenario.Feature)
		fmt.Fprintf(b, "**Line:** %d\n\n", scenario.Line)
		if len(scenario.Tags) > 0 {
			fmt.Fprintf(b, "**Tags:** %s\n\n", strings.Join(scenario.Tags, ", "))
		}
		if len(scenario.Steps) > 0 {
			fmt.Fprintf(b, "**Steps (%d):**\n\n", len(scenario.Steps))
			for j, step := range scenario.Steps {
				fmt.Fprintf(b, "%d. %s **%s** %s\n", j+1, statusIcon(string(step.Status)), step.Keyword, step.Name)
				fmt.Fprintf(b, "   - Status: `%s`\n", step.StatusLabel())
				fmt.Fprintf(b, "   - Duration: %.2fms\n\n", step.DurationMS)
			}
		}
		if scenario.Failed() && scenario.ErrorMessage != "" {
			detail, _ := report.Truncate(scenario.ErrorMessage, DetailLimit)
			fmt.Fprintf(b, "\n**Error Details:**\n```\n%s\n```\n", detail)
		}
		b.WriteString("\n---\n")
	}
}

func writeFeatures(b *strings.Builder, model report.Model) {
	b.WriteString("\n## Test Coverage Breakdown\n\n### Features Tested:\n\n")
	for _, feature := range model.Features() {
		fmt.Fprintf(b, "- **%s**\n", feature.Name)
		fmt.Fprintf(b, "  - Total: %d, Passed: %d, Failed: %d\n", feature.Total, feature.Passed, feature.Failed)
		fmt.Fprintf(b, "  - Pass Rate: %s%%\n\n", report.FormatPercent(feature.PassRate()))
	}
}

func statusIcon(status string) string {
	switch status {
	case string(report.StepPassed):
		return "✓"
	case string(report.StepFailed):
		return "✗"
	default:
		return "⊘"
	}
}
