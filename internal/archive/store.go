package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cukereport/internal/report"
)

// Run is one archived report run.
type Run struct {
	ID              string
	Fingerprint     string
	Source          string
	GeneratedAt     time.Time
	Commit          string
	Branch          string
	Dirty           bool
	TotalScenarios  int
	PassedScenarios int
	FailedScenarios int
	TotalSteps      int
	PassRate        float64
}

// RunMeta describes where and when a report was generated. Commit is empty
// when the source is not inside a git repository.
type RunMeta struct {
	Source      string
	GeneratedAt time.Time
	Commit      string
	Branch      string
	Dirty       bool
}

// SaveRun stores the model with its scenarios and steps in one transaction
// and returns the new run id.
func SaveRun(ctx context.Context, db *sql.DB, model report.Model, meta RunMeta) (string, error) {
	if ctx == nil {
		return "", errors.New("archive: context is nil")
	}
	if db == nil {
		return "", errors.New("archive: db is nil")
	}
	runID := uuid.NewString()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("archive: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO runs (run_id, fingerprint, source, generated_at,
		   git_commit, git_branch, git_dirty,
		   total_scenarios, passed_scenarios, failed_scenarios,
		   total_steps, passed_steps, failed_steps, skipped_steps, pass_rate)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		model.Fingerprint,
		meta.Source,
		meta.GeneratedAt.UTC(),
		nullableString(meta.Commit != "", meta.Commit),
		nullableString(meta.Commit != "", meta.Branch),
		nullableBool(meta.Commit != "", meta.Dirty),
		model.TotalScenarios,
		model.PassedScenarios,
		model.FailedScenarios,
		model.TotalSteps,
		model.PassedSteps,
		model.FailedSteps,
		model.SkippedSteps,
		model.PassRate(),
	); err != nil {
		return "", fmt.Errorf("archive: insert run: %w", err)
	}

	for i, scenario := range model.Scenarios {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO scenarios (run_id, scenario_index, feature, name, line, status, failed_step, error_message)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID,
			i,
			scenario.Feature,
			scenario.Name,
			scenario.Line,
			string(scenario.Status),
			nullableString(scenario.HasFailure, scenario.FailedStep),
			nullableString(scenario.HasFailure, scenario.ErrorMessage),
		); err != nil {
			return "", fmt.Errorf("archive: insert scenario %d: %w", i, err)
		}
		for j, step := range scenario.Steps {
			if _, err := tx.ExecContext(
				ctx,
				`INSERT INTO steps (run_id, scenario_index, step_index, keyword, name, status, duration_ms)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				runID,
				i,
				j,
				step.Keyword,
				step.Name,
				step.StatusLabel(),
				step.DurationMS,
			); err != nil {
				return "", fmt.Errorf("archive: insert step %d/%d: %w", i, j, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("archive: commit: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs first. A limit <= 0 returns all runs.
func ListRuns(ctx context.Context, db *sql.DB, limit int) ([]Run, error) {
	if db == nil {
		return nil, errors.New("archive: db is nil")
	}
	query := `SELECT run_id, fingerprint, source, generated_at,
	            COALESCE(git_commit, ''), COALESCE(git_branch, ''), COALESCE(git_dirty, false),
	            total_scenarios, passed_scenarios, failed_scenarios, total_steps, pass_rate
	          FROM runs ORDER BY generated_at DESC, run_id`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("archive: list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0)
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.ID,
			&run.Fingerprint,
			&run.Source,
			&run.GeneratedAt,
			&run.Commit,
			&run.Branch,
			&run.Dirty,
			&run.TotalScenarios,
			&run.PassedScenarios,
			&run.FailedScenarios,
			&run.TotalSteps,
			&run.PassRate,
		); err != nil {
			return nil, fmt.Errorf("archive: scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: list runs: %w", err)
	}
	return runs, nil
}

func nullableString(set bool, value string) any {
	if !set {
		return nil
	}
	return value
}

func nullableBool(set bool, value bool) any {
	if !set {
		return nil
	}
	return value
}
