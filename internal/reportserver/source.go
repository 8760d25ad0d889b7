package reportserver

import (
	"cukereport/internal/cucumber"
	"cukereport/internal/report"
)

// FileSource reloads and aggregates the results file at path on each call.
func FileSource(path string) Source {
	return func() (report.Model, error) {
		features, err := cucumber.LoadResults(path)
		if err != nil {
			return report.Model{}, err
		}
		return report.Aggregate(features), nil
	}
}
