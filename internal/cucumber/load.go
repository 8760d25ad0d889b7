package cucumber

import (
	"encoding/json"
	"fmt"
	"os"
)

// DataFormatError reports a results file that is missing, unreadable or
// not a JSON array of features.
type DataFormatError struct {
	Path string
	Err  error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("invalid test results %s: %v", e.Path, e.Err)
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}

// LoadResults reads a cucumber JSON results file. The features are returned
// as parsed; missing fields are resolved later through the accessor methods.
func LoadResults(path string) ([]CukeFeatureJSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataFormatError{Path: path, Err: err}
	}
	var features []CukeFeatureJSON
	if err := json.Unmarshal(data, &features); err != nil {
		return nil, &DataFormatError{Path: path, Err: fmt.Errorf("parse json: %w", err)}
	}
	return features, nil
}
