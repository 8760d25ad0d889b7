package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"cukereport/internal/report"
)

var (
	green  = lipgloss.Color("76")
	red    = lipgloss.Color("204")
	yellow = lipgloss.Color("214")
	purple = lipgloss.Color("99")
	dim    = lipgloss.Color("243")
)

// palette styles terminal output. A palette built without color renders
// plain text.
type palette struct {
	successStyle lipgloss.Style
	failureStyle lipgloss.Style
	warnStyle    lipgloss.Style
	headingStyle lipgloss.Style
	mutedStyle   lipgloss.Style
}

func newPalette(w io.Writer, color bool) palette {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return palette{
		successStyle: r.NewStyle().Foreground(green),
		failureStyle: r.NewStyle().Foreground(red),
		warnStyle:    r.NewStyle().Foreground(yellow),
		headingStyle: r.NewStyle().Foreground(purple).Bold(true),
		mutedStyle:   r.NewStyle().Foreground(dim),
	}
}

func (p palette) success(s string) string { return p.successStyle.Render(s) }
func (p palette) failure(s string) string { return p.failureStyle.Render(s) }
func (p palette) warn(s string) string    { return p.warnStyle.Render(s) }
func (p palette) heading(s string) string { return p.headingStyle.Render(s) }
func (p palette) muted(s string) string   { return p.mutedStyle.Render(s) }

// tier colors a value by the health tier of rate.
func (p palette) tier(rate float64, s string) string {
	switch report.HealthTier(rate) {
	case report.TierHealthy:
		return p.success(s)
	case report.TierWarning:
		return p.warn(s)
	default:
		return p.failure(s)
	}
}

// printSummary writes the closing block of counters.
func printSummary(w io.Writer, model report.Model, pal palette) {
	rate := model.PassRate()
	fmt.Fprintln(w, rule())
	fmt.Fprintln(w, pal.heading("TEST SUMMARY"))
	fmt.Fprintln(w, rule())
	fmt.Fprintf(w, "Total Scenarios:    %d\n", model.TotalScenarios)
	fmt.Fprintf(w, "%s Passed:           %d\n", pal.success("✓"), model.PassedScenarios)
	fmt.Fprintf(w, "%s Failed:           %d\n", pal.failure("✗"), model.FailedScenarios)
	fmt.Fprintf(w, "Pass Rate:          %s\n", pal.tier(rate, report.FormatPercent(rate)+"%"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Steps:        %d\n", model.TotalSteps)
	fmt.Fprintf(w, "%s Passed Steps:     %d\n", pal.success("✓"), model.PassedSteps)
	fmt.Fprintf(w, "%s Failed Steps:     %d\n", pal.failure("✗"), model.FailedSteps)
	fmt.Fprintf(w, "%s Skipped Steps:    %d\n", pal.muted("⊘"), model.SkippedSteps)
	if unknown := model.UnknownSteps(); unknown > 0 {
		fmt.Fprintf(w, "%s Unknown Steps:    %d\n", pal.warn("?"), unknown)
	}
	fmt.Fprintln(w, rule())
}
