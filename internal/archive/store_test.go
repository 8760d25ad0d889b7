package archive

import (
	"path/filepath"
	"testing"
	"time"

	"cukereport/internal/report"
	"cukereport/internal/testutil"
)

func sampleModel() report.Model {
	return report.Model{
		TotalScenarios:  2,
		PassedScenarios: 1,
		FailedScenarios: 1,
		TotalSteps:      3,
		PassedSteps:     2,
		FailedSteps:     1,
		Fingerprint:     "fp-1",
		Scenarios: []report.ScenarioRecord{
			{Feature: "Cart", Name: "Add", Line: 3, Status: report.ScenarioPassed, Steps: []report.StepRecord{
				{Keyword: "Given", Name: "a product", Status: report.StepPassed, DurationMS: 1.25},
			}},
			{Feature: "Cart", Name: "Remove", Line: 9, Status: report.ScenarioFailed, HasFailure: true,
				FailedStep: "Then it is gone", ErrorMessage: "still there",
				Steps: []report.StepRecord{
					{Keyword: "Given", Name: "a cart", Status: report.StepPassed},
					{Keyword: "Then", Name: "it is gone", Status: report.StepFailed},
				}},
		},
	}
}

// TestSaveRunAndListRuns verifies runs round-trip through DuckDB.
func TestSaveRunAndListRuns(t *testing.T) {
	ctx := testutil.Context(t, 10*time.Second)
	db, err := Open(ctx, filepath.Join(t.TempDir(), "history.duckdb"))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	older := time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	firstID, err := SaveRun(ctx, db, sampleModel(), RunMeta{
		Source:      "test_results.json",
		GeneratedAt: older,
		Commit:      "0123456789abcdef",
		Branch:      "main",
		Dirty:       true,
	})
	if err != nil {
		t.Fatalf("save first run: %v", err)
	}
	secondID, err := SaveRun(ctx, db, report.Model{Fingerprint: "fp-2"}, RunMeta{Source: "test_results.json", GeneratedAt: newer})
	if err != nil {
		t.Fatalf("save second run: %v", err)
	}

	runs, err := ListRuns(ctx, db, 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != secondID || runs[1].ID != firstID {
		t.Fatalf("expected newest run first, got %s then %s", runs[0].ID, runs[1].ID)
	}
	if runs[1].PassRate != 50 || runs[1].TotalScenarios != 2 || runs[1].Fingerprint != "fp-1" {
		t.Fatalf("unexpected run %+v", runs[1])
	}
	if runs[1].Commit != "0123456789abcdef" || runs[1].Branch != "main" || !runs[1].Dirty {
		t.Fatalf("expected git metadata on first run, got %+v", runs[1])
	}
	if runs[0].Commit != "" || runs[0].Dirty {
		t.Fatalf("expected no git metadata on second run, got %+v", runs[0])
	}
	if !runs[0].GeneratedAt.Equal(newer) {
		t.Fatalf("expected generated_at %v, got %v", newer, runs[0].GeneratedAt)
	}

	var steps int
	if err := db.QueryRowContext(ctx, "SELECT count(*) FROM steps WHERE run_id = ?", firstID).Scan(&steps); err != nil {
		t.Fatalf("count steps: %v", err)
	}
	if steps != 3 {
		t.Fatalf("expected 3 archived steps, got %d", steps)
	}
	var errorMessage *string
	if err := db.QueryRowContext(ctx,
		"SELECT error_message FROM scenarios WHERE run_id = ? AND scenario_index = 0", firstID,
	).Scan(&errorMessage); err != nil {
		t.Fatalf("read scenario: %v", err)
	}
	if errorMessage != nil {
		t.Fatalf("expected NULL error message for passed scenario")
	}

	limited, err := ListRuns(ctx, db, 1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 run, got %d", len(limited))
	}
}

// TestOpenRequiresPath verifies an empty path is rejected.
func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(testutil.Context(t, 0), ""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
