package htmlreport

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"cukereport/internal/report"
)

const timestampLayout = "January 02, 2006 at 03:04 PM"

type statCard struct {
	kind  string
	label string
	value int
}

func statCards(model report.Model) []statCard {
	return []statCard{
		{"total", "Total Scenarios", model.TotalScenarios},
		{"passed", "Passed Scenarios", model.PassedScenarios},
		{"failed", "Failed Scenarios", model.FailedScenarios},
		{"total", "Total Steps", model.TotalSteps},
		{"passed", "Passed Steps", model.PassedSteps},
		{"failed", "Failed Steps", model.FailedSteps},
		{"skipped", "Skipped Steps", model.SkippedSteps},
	}
}

func progressWidth(rate float64) templ.Attributes {
	return templ.Attributes{"style": "width: " + report.FormatPercent(rate) + "%"}
}

// screenshot writes its img tag by hand: templ replaces data: URLs in src
// attributes with about:invalid.
func screenshot(shot report.Screenshot) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<img class="screenshot" alt="Failure screenshot" src="data:`+
			templ.EscapeString(shot.MimeType)+";base64,"+templ.EscapeString(shot.Data)+`">`)
		return err
	})
}

// truncateError caps a message at ErrorLimit characters plus the marker.
func truncateError(message string) string {
	cut, truncated := report.Truncate(message, ErrorLimit)
	if truncated {
		return cut + TruncationMarker
	}
	return message
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
