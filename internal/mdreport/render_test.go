package mdreport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cukereport/internal/report"
)

var fixedTime = time.Date(2026, time.March, 4, 9, 5, 0, 0, time.UTC)

func sampleModel(errorMessage string) report.Model {
	return report.Model{
		TotalScenarios:  2,
		PassedScenarios: 1,
		FailedScenarios: 1,
		TotalSteps:      7,
		PassedSteps:     5,
		FailedSteps:     1,
		SkippedSteps:    1,
		Scenarios: []report.ScenarioRecord{
			{
				Feature: "Add Item to Cart",
				Name:    "Add a single item",
				Line:    7,
				Status:  report.ScenarioPassed,
				Steps: []report.StepRecord{
					{Keyword: "Given", Name: "I am on the product page", Status: report.StepPassed, DurationMS: 1.5},
					{Keyword: "When", Name: "I click add to cart", Status: report.StepPassed, DurationMS: 2},
					{Keyword: "Then", Name: "the cart shows 1 item", Status: report.StepPassed, DurationMS: 0.25},
				},
			},
			{
				Feature:      "Add Item to Cart",
				Name:         "Add an out of stock item",
				Line:         15,
				Tags:         []string{"@regression"},
				Status:       report.ScenarioFailed,
				HasFailure:   true,
				FailedStep:   "Thenthe add button is visible",
				ErrorMessage: errorMessage,
				Steps: []report.StepRecord{
					{Keyword: "Given", Name: "I am on the product page", Status: report.StepPassed},
					{Keyword: "When", Name: "I open an unavailable item", Status: report.StepPassed},
					{Keyword: "Then", Name: "the add button is visible", Status: report.StepFailed},
					{Keyword: "And", Name: "the cart is empty", Status: report.StepSkipped},
				},
			},
		},
	}
}

func render(model report.Model) string {
	return Render(model, Options{Title: "Cart Report", GeneratedAt: fixedTime})
}

// TestRenderSummary verifies the summary table and pass-rate bar.
func TestRenderSummary(t *testing.T) {
	md := render(sampleModel("Element not found"))
	for _, token := range []string{
		"# Cart Report",
		"**Generated:** March 04, 2026 at 09:05 AM",
		"| **Total Scenarios** | 2 | 100% |",
		"| **✓ Passed Scenarios** | 1 | 50.0% |",
		"| **✗ Failed Scenarios** | 1 | 50.0% |",
		"| **Total Steps Executed** | 7 | - |",
		"| **✓ Passed Steps** | 5 | 71.4% |",
		"| **✗ Failed Steps** | 1 | 14.3% |",
		"| **⊘ Skipped Steps** | 1 | 14.3% |",
		"### Pass Rate: **50.0%**",
		strings.Repeat("█", 25) + strings.Repeat("░", 25) + " 50.0%",
	} {
		if !strings.Contains(md, token) {
			t.Fatalf("expected markdown to include %q", token)
		}
	}
}

// TestRenderScenarioLists verifies passed and failed lists.
func TestRenderScenarioLists(t *testing.T) {
	md := render(sampleModel("Element not found"))
	passedIdx := strings.Index(md, "### ✓ Passed Scenarios (1)")
	failedIdx := strings.Index(md, "### ✗ Failed Scenarios (1)")
	if passedIdx < 0 || failedIdx < 0 || passedIdx > failedIdx {
		t.Fatalf("expected passed list before failed list")
	}
	failedSection := md[failedIdx:]
	for _, token := range []string{
		"1. **Add an out of stock item** ❌",
		"   - Failed Step: `Thenthe add button is visible`",
		"   - Error: `Element not found`",
		"   - Steps Executed: 4",
	} {
		if !strings.Contains(failedSection, token) {
			t.Fatalf("expected failed list to include %q", token)
		}
	}
	if !strings.Contains(md, "1. **Add a single item**\n   - Feature: Add Item to Cart\n   - Steps: 3") {
		t.Fatalf("expected passed entry")
	}
}

// TestRenderDetails verifies the per-scenario breakdown.
func TestRenderDetails(t *testing.T) {
	md := render(sampleModel("Element not found"))
	for _, token := range []string{
		"### 1. Add a single item ✓",
		"### 2. Add an out of stock item ✗",
		"**Status:** FAILED",
		"**Line:** 15",
		"**Tags:** @regression",
		"**Steps (4):**",
		"1. ✓ **Given** I am on the product page\n   - Status: `passed`\n   - Duration: 1.50ms",
		"4. ⊘ **And** the cart is empty\n   - Status: `skipped`",
		"**Error Details:**\n```\nElement not found\n```",
	} {
		if !strings.Contains(md, token) {
			t.Fatalf("expected details to include %q", token)
		}
	}
}

// TestRenderErrorLimits verifies the 200 and 500 character caps.
func TestRenderErrorLimits(t *testing.T) {
	message := strings.Repeat("e", 600)
	md := render(sampleModel(message))
	if !strings.Contains(md, "   - Error: `"+strings.Repeat("e", PreviewLimit)+"...`") {
		t.Fatalf("expected 200 character preview")
	}
	if !strings.Contains(md, "```\n"+strings.Repeat("e", DetailLimit)+"\n```") {
		t.Fatalf("expected 500 character detail")
	}
	if strings.Contains(md, strings.Repeat("e", DetailLimit+1)) {
		t.Fatalf("detail exceeds %d characters", DetailLimit)
	}
}

// TestRenderFeatureBreakdown verifies per-feature counts in first-seen order.
func TestRenderFeatureBreakdown(t *testing.T) {
	model := sampleModel("boom")
	model.Scenarios = append([]report.ScenarioRecord{{Feature: "Search", Name: "Find", Status: report.ScenarioPassed}}, model.Scenarios...)
	md := render(model)
	searchIdx := strings.Index(md, "- **Search**")
	cartIdx := strings.Index(md, "- **Add Item to Cart**\n  - Total: 2, Passed: 1, Failed: 1\n  - Pass Rate: 50.0%")
	if searchIdx < 0 || cartIdx < 0 || searchIdx > cartIdx {
		t.Fatalf("expected features in first-seen order")
	}
}

// TestRenderEmptyModel verifies an empty report renders without lists.
func TestRenderEmptyModel(t *testing.T) {
	md := render(report.Model{})
	if strings.Contains(md, "Passed Scenarios (") || strings.Contains(md, "Failed Scenarios (") {
		t.Fatalf("expected no scenario lists")
	}
	if !strings.Contains(md, "### Pass Rate: **0.0%**") {
		t.Fatalf("expected zero pass rate")
	}
	if !strings.Contains(md, strings.Repeat("░", 50)) {
		t.Fatalf("expected empty bar")
	}
}

// TestRenderDeterministic verifies identical input yields identical output.
func TestRenderDeterministic(t *testing.T) {
	model := sampleModel("boom")
	if render(model) != render(model) {
		t.Fatalf("render is not deterministic")
	}
}

// TestWriteOverwrites verifies Write replaces an existing file.
func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if err := Write(path, sampleModel("boom"), Options{GeneratedAt: fixedTime}); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "# "+DefaultTitle) {
		t.Fatalf("expected default title, got %q", string(data)[:40])
	}
}
