package cucumber

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ExtractResultsJSON returns the results document from godog stdout. Color
// codes are dropped, along with any notices godog prints before the JSON.
func ExtractResultsJSON(stdout []byte) []byte {
	text := strings.TrimSpace(ansi.Strip(string(stdout)))
	for offset := 0; offset < len(text); {
		line := text[offset:]
		if line[0] == '[' || line[0] == '{' {
			if json.Valid([]byte(line)) {
				return []byte(line)
			}
		}
		next := strings.IndexByte(line, '\n')
		if next < 0 {
			break
		}
		offset += next + 1
		for offset < len(text) && (text[offset] == ' ' || text[offset] == '\t') {
			offset++
		}
	}
	return []byte(text)
}

// ParseGodogJSON decodes the features in godog stdout.
func ParseGodogJSON(stdout []byte) ([]CukeFeatureJSON, error) {
	var features []CukeFeatureJSON
	if err := json.Unmarshal(ExtractResultsJSON(stdout), &features); err != nil {
		return nil, fmt.Errorf("decode godog output: %w", err)
	}
	return features, nil
}
