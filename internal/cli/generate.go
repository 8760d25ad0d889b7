package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cukereport/internal/config"
	"cukereport/internal/cucumber"
	"cukereport/internal/htmlreport"
	"cukereport/internal/mdreport"
	"cukereport/internal/report"
)

const ruleWidth = 80

func rule() string { return strings.Repeat("=", ruleWidth) }

func logConfig(cfg config.Config, path string) {
	slog.Debug("resolved config",
		"file", path,
		"input", cfg.Input,
		"html", cfg.HTMLOutput,
		"markdown", cfg.MarkdownOutput,
		"archive", cfg.Archive,
	)
}

// generateReports loads the results, writes both reports and prints the
// progress lines and summary. Nothing is written when the input fails to load.
func generateReports(ctx context.Context, cfg config.Config, stdout, stderr io.Writer, pal palette) (report.Model, error) {
	generatedAt := now()

	fmt.Fprintln(stdout, rule())
	fmt.Fprintln(stdout, pal.heading(strings.ToUpper(cfg.Title)+" GENERATOR"))
	fmt.Fprintln(stdout, rule())
	fmt.Fprintln(stdout)

	fmt.Fprintf(stdout, "Parsing test results from: %s\n", cfg.Input)
	features, err := cucumber.LoadResults(cfg.Input)
	if err != nil {
		return report.Model{}, fail(stderr, "Failed to load test results: %v", err)
	}
	slog.Debug("loaded results", "path", cfg.Input, "features", len(features))

	fmt.Fprintln(stdout, "Analyzing test results...")
	model := report.Aggregate(features)
	slog.Debug("aggregated results",
		"scenarios", model.TotalScenarios,
		"steps", model.TotalSteps,
		"fingerprint", model.Fingerprint,
	)

	fmt.Fprintln(stdout, "Generating HTML report...")
	htmlOpts := htmlreport.Options{Title: cfg.Title, GeneratedAt: generatedAt}
	if err := htmlreport.Write(ctx, cfg.HTMLOutput, model, htmlOpts); err != nil {
		return model, fail(stderr, "Failed to write HTML report: %v", err)
	}
	slog.Debug("wrote report", "format", "html", "path", cfg.HTMLOutput)

	fmt.Fprintln(stdout, "Generating Markdown report...")
	mdOpts := mdreport.Options{Title: cfg.Title, GeneratedAt: generatedAt}
	if err := mdreport.Write(cfg.MarkdownOutput, model, mdOpts); err != nil {
		return model, fail(stderr, "Failed to write Markdown report: %v", err)
	}
	slog.Debug("wrote report", "format", "markdown", "path", cfg.MarkdownOutput)

	if cfg.Archive != "" {
		runID, err := archiveRun(ctx, cfg, model, generatedAt)
		if err != nil {
			return model, fail(stderr, "Failed to archive run: %v", err)
		}
		fmt.Fprintf(stdout, "Archived run %s in %s\n", runID, cfg.Archive)
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, rule())
	fmt.Fprintln(stdout, pal.heading("REPORT GENERATION COMPLETE!"))
	fmt.Fprintln(stdout, rule())
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s HTML Report: %s\n", pal.success("✓"), cfg.HTMLOutput)
	fmt.Fprintf(stdout, "%s Markdown Report: %s\n", pal.success("✓"), cfg.MarkdownOutput)
	fmt.Fprintln(stdout)
	printSummary(stdout, model, pal)
	return model, nil
}

// loadModel reads and aggregates the configured input without writing files.
func loadModel(cfg config.Config, stderr io.Writer) (report.Model, error) {
	features, err := cucumber.LoadResults(cfg.Input)
	if err != nil {
		return report.Model{}, fail(stderr, "Failed to load test results: %v", err)
	}
	return report.Aggregate(features), nil
}
