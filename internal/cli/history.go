package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"cukereport/internal/archive"
	"cukereport/internal/config"
	"cukereport/internal/report"
	"cukereport/internal/vcs"
)

const historyTimeLayout = "2006-01-02 15:04"

// currentRevision is a test seam for reading git metadata.
var currentRevision = vcs.CurrentRevision

// archiveRun stores the model in the configured DuckDB archive, tagged with
// the git revision of the input when there is one.
func archiveRun(ctx context.Context, cfg config.Config, model report.Model, generatedAt time.Time) (string, error) {
	meta := archive.RunMeta{Source: cfg.Input, GeneratedAt: generatedAt}
	rev, err := currentRevision(ctx, filepath.Dir(cfg.Input))
	if err != nil {
		slog.Debug("no git revision for run", "err", err)
	} else {
		meta.Commit, meta.Branch, meta.Dirty = rev.Commit, rev.Branch, rev.Dirty
	}

	db, err := archive.Open(ctx, cfg.Archive)
	if err != nil {
		return "", err
	}
	defer db.Close()
	return archive.SaveRun(ctx, db, model, meta)
}

func newHistoryCommand(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List report runs stored in the DuckDB archive",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolveConfig(stderr)
			if err != nil {
				return err
			}
			if cfg.Archive == "" {
				return usageError{err: fmt.Errorf("missing --db (or archive in %s)", config.ConfigFileName)}
			}
			if limit < 0 {
				return usageError{err: fmt.Errorf("--limit must not be negative")}
			}

			db, err := archive.Open(cmd.Context(), cfg.Archive)
			if err != nil {
				return fail(stderr, "Failed to open archive: %v", err)
			}
			defer db.Close()
			runs, err := archive.ListRuns(cmd.Context(), db, limit)
			if err != nil {
				return fail(stderr, "Failed to list runs: %v", err)
			}

			pal := opts.palette(stdout)
			if len(runs) == 0 {
				fmt.Fprintln(stdout, pal.muted("no runs archived"))
				return nil
			}
			fmt.Fprintln(stdout, historyTable(runs, pal))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list (0 for all)")
	return cmd
}

// historyTable renders runs newest first with rounded borders.
func historyTable(runs []archive.Run, pal palette) string {
	rows := make([][]string, len(runs))
	for i, run := range runs {
		rows[i] = []string{
			run.GeneratedAt.Local().Format(historyTimeLayout),
			strconv.Itoa(run.TotalScenarios),
			strconv.Itoa(run.PassedScenarios),
			strconv.Itoa(run.FailedScenarios),
			pal.tier(run.PassRate, report.FormatPercent(run.PassRate)+"%"),
			revisionLabel(run),
			shortID(run.Fingerprint),
			run.Source,
		}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(pal.mutedStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return pal.headingStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Generated", "Scenarios", "Passed", "Failed", "Pass Rate", "Commit", "Report ID", "Source").
		Rows(rows...).
		String()
}

func revisionLabel(run archive.Run) string {
	if run.Commit == "" {
		return "-"
	}
	label := shortID(run.Commit)
	if run.Branch != "" {
		label += " (" + run.Branch + ")"
	}
	if run.Dirty {
		label += "*"
	}
	return label
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
