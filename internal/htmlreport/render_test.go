package htmlreport

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cukereport/internal/report"
)

var fixedTime = time.Date(2026, time.March, 4, 15, 30, 0, 0, time.UTC)

func sampleModel(errorMessage string) report.Model {
	return report.Model{
		TotalScenarios:  2,
		PassedScenarios: 1,
		FailedScenarios: 1,
		TotalSteps:      5,
		PassedSteps:     3,
		FailedSteps:     1,
		SkippedSteps:    1,
		Fingerprint:     "0f7c3a1e-8d2b-5c4f-9a6e-1b2c3d4e5f60",
		Scenarios: []report.ScenarioRecord{
			{
				Feature: "Add Item to Cart",
				Name:    "Add a single item",
				Line:    7,
				Tags:    []string{"@smoke"},
				Status:  report.ScenarioPassed,
				Steps: []report.StepRecord{
					{Keyword: "Given", Name: "I am on the product page", Status: report.StepPassed},
					{Keyword: "Then", Name: "the cart shows <1> item", Status: report.StepPassed},
				},
			},
			{
				Feature:      "Add Item to Cart",
				Name:         "Add an out of stock item",
				Line:         15,
				Status:       report.ScenarioFailed,
				HasFailure:   true,
				FailedStep:   "Thenthe add button is visible",
				ErrorMessage: errorMessage,
				Steps: []report.StepRecord{
					{Keyword: "Given", Name: "I am on the product page", Status: report.StepPassed},
					{Keyword: "Then", Name: "the add button is visible", Status: report.StepFailed,
						Screenshots: []report.Screenshot{{MimeType: "image/png", Data: "iVBORw0KGgo="}}},
					{Keyword: "And", Name: "the cart is empty", Status: report.StepSkipped},
				},
			},
		},
	}
}

func render(t *testing.T, model report.Model) string {
	t.Helper()
	html, err := Render(context.Background(), model, Options{Title: "Cart Report", GeneratedAt: fixedTime})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}

// TestRenderIncludesSummaryAndScenarios verifies the page content.
func TestRenderIncludesSummaryAndScenarios(t *testing.T) {
	html := render(t, sampleModel("Element not found"))
	for _, token := range []string{
		"<title>Cart Report</title>",
		"Pass Rate: 50.0%",
		`data-tier="warning"`,
		`data-status="passed"`,
		`data-status="failed"`,
		"filterScenarios('failed', this)",
		"Passed (1)",
		"Failed (1)",
		"Add a single item",
		"Feature: Add Item to Cart",
		"Line: 15",
		"Steps: 3",
		"@smoke",
		"Element not found",
		"data:image/png;base64,iVBORw0KGgo=",
		"March 04, 2026 at 03:30 PM",
		"0f7c3a1e-8d2b-5c4f-9a6e-1b2c3d4e5f60",
	} {
		if !strings.Contains(html, token) {
			t.Fatalf("expected report to include %q", token)
		}
	}
}

// TestRenderEscapesText verifies scenario text is HTML-escaped.
func TestRenderEscapesText(t *testing.T) {
	html := render(t, sampleModel("<script>alert(1)</script>"))
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatalf("error message was not escaped")
	}
	if !strings.Contains(html, "the cart shows &lt;1&gt; item") {
		t.Fatalf("step name was not escaped")
	}
}

// TestRenderEscapesEveryField verifies names, tags, features and screenshot
// data cannot break out of their elements or attributes.
func TestRenderEscapesEveryField(t *testing.T) {
	model := sampleModel("boom")
	model.Fingerprint = "<id>"
	model.Scenarios[0].Name = `Add "quoted" <item>`
	model.Scenarios[0].Feature = "Cart & <Checkout>"
	model.Scenarios[0].Tags = []string{"<b>wip</b>"}
	model.Scenarios[1].Steps[1].Screenshots = []report.Screenshot{{MimeType: "image/png", Data: `x"onerror="alert(1)`}}
	html, err := Render(context.Background(), model, Options{Title: "<Cart>", GeneratedAt: fixedTime})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, raw := range []string{"<Cart>", "<id>", `"quoted"`, "<item>", "<Checkout>", "<b>wip</b>", `x"onerror`} {
		if strings.Contains(html, raw) {
			t.Fatalf("found unescaped %q", raw)
		}
	}
	for _, escaped := range []string{
		"<title>&lt;Cart&gt;</title>",
		"Add &#34;quoted&#34; &lt;item&gt;",
		"Feature: Cart &amp; &lt;Checkout&gt;",
		`<span class="tag">&lt;b&gt;wip&lt;/b&gt;</span>`,
		"base64,x&#34;onerror=&#34;alert(1)",
	} {
		if !strings.Contains(html, escaped) {
			t.Fatalf("expected %q in output", escaped)
		}
	}
}

// TestRenderStatusAttributes verifies steps and stat cards carry the data
// attributes the stylesheet and filter script select on.
func TestRenderStatusAttributes(t *testing.T) {
	html := render(t, sampleModel("boom"))
	for _, token := range []string{
		`<li class="step" data-status="skipped">`,
		`<div class="stat-card" data-kind="failed">`,
		`%">50.0%</div>`,
		`<span class="step-keyword">Then</span>`,
		"✗ FAILED",
	} {
		if !strings.Contains(html, token) {
			t.Fatalf("expected %q in output", token)
		}
	}
}

// TestRenderTruncatesLongErrors verifies the 500 character cap and marker.
func TestRenderTruncatesLongErrors(t *testing.T) {
	message := strings.Repeat("x", 600)
	html := render(t, sampleModel(message))
	if !strings.Contains(html, strings.Repeat("x", ErrorLimit)+TruncationMarker) {
		t.Fatalf("expected truncated message followed by marker")
	}
	if strings.Contains(html, strings.Repeat("x", ErrorLimit+1)) {
		t.Fatalf("expected message to be cut at %d characters", ErrorLimit)
	}
}

// TestRenderShortErrorHasNoMarker verifies messages under the cap are untouched.
func TestRenderShortErrorHasNoMarker(t *testing.T) {
	html := render(t, sampleModel(strings.Repeat("y", ErrorLimit)))
	if strings.Contains(html, "[Error message truncated]") {
		t.Fatalf("unexpected truncation marker")
	}
}

// TestRenderTiers verifies the tier class follows the pass rate.
func TestRenderTiers(t *testing.T) {
	cases := []struct {
		passed, failed int
		tier           string
	}{
		{4, 1, "healthy"},
		{1, 1, "warning"},
		{1, 3, "critical"},
		{0, 0, "critical"},
	}
	for _, tc := range cases {
		model := report.Model{
			TotalScenarios:  tc.passed + tc.failed,
			PassedScenarios: tc.passed,
			FailedScenarios: tc.failed,
		}
		html := render(t, model)
		if !strings.Contains(html, `data-tier="`+tc.tier+`"`) {
			t.Fatalf("expected tier %s for %d/%d", tc.tier, tc.passed, tc.failed)
		}
	}
}

// TestRenderDeterministic verifies identical input yields identical output.
func TestRenderDeterministic(t *testing.T) {
	model := sampleModel("boom")
	if render(t, model) != render(t, model) {
		t.Fatalf("render is not deterministic")
	}
}

// TestWriteOverwrites verifies Write replaces an existing file.
func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if err := Write(context.Background(), path, sampleModel("boom"), Options{GeneratedAt: fixedTime}); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(data), "stale") || !strings.Contains(string(data), DefaultTitle) {
		t.Fatalf("expected fresh report with default title")
	}
}

// TestWriteFailsForMissingDirectory verifies write errors are returned.
func TestWriteFailsForMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.html")
	if err := Write(context.Background(), path, sampleModel("boom"), Options{}); err == nil {
		t.Fatalf("expected write error")
	}
}
