package cucumber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// GodogBinary is the executable used by RunGodogJSON.
var GodogBinary = "godog"

// RunGodogJSON executes godog with the cucumber formatter and returns the
// cleaned JSON document. A failing suite still yields its JSON output.
func RunGodogJSON(ctx context.Context, dir string, featurePaths []string, tags []string) ([]byte, error) {
	if len(featurePaths) == 0 {
		return nil, fmt.Errorf("no feature paths provided")
	}
	args := []string{"--format", "cucumber"}
	if tagExpr := tagExpression(tags); tagExpr != "" {
		args = append(args, "--tags", tagExpr)
	}
	args = append(args, featurePaths...)

	cmd := exec.CommandContext(ctx, GodogBinary, args...)
	cmd.Dir = dir
	cmd.Env = withoutEnv(os.Environ(), "GOTOOLDIR")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	output := stdout.Bytes()
	if len(output) == 0 && err != nil {
		return nil, fmt.Errorf("godog failed: %w (%s)", err, strings.TrimSpace(stderr.String()))
	}

	results := ExtractResultsJSON(output)
	var features []CukeFeatureJSON
	if parseErr := json.Unmarshal(results, &features); parseErr != nil {
		return nil, fmt.Errorf("parse godog output: %w (%s)", parseErr, strings.TrimSpace(stderr.String()))
	}
	return results, nil
}
