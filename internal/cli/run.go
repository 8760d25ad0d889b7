package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cukereport/internal/cucumber"
)

// defaultFeaturePath is used when run receives no paths.
const defaultFeaturePath = "features"

// runGodog is a test seam for executing the behavioral suite.
var runGodog = cucumber.RunGodogJSON

func newRunCommand(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	var (
		tags []string
		dir  string
	)
	cmd := &cobra.Command{
		Use:   "run [feature paths...]",
		Short: "Run the feature suite with godog, save its results and generate the reports",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolveConfig(stderr)
			if err != nil {
				return err
			}
			paths := args
			if len(paths) == 0 {
				paths = []string{defaultFeaturePath}
			}

			fmt.Fprintf(stdout, "Running features: %s\n", strings.Join(paths, " "))
			output, err := runGodog(cmd.Context(), dir, paths, tags)
			if err != nil {
				return fail(stderr, "Failed to run features: %v", err)
			}
			if err := os.WriteFile(cfg.Input, output, 0o644); err != nil {
				return fail(stderr, "Failed to save test results: %v", err)
			}
			slog.Debug("saved results", "path", cfg.Input, "bytes", len(output))
			fmt.Fprintf(stdout, "Saved test results to: %s\n\n", cfg.Input)

			model, err := generateReports(cmd.Context(), cfg, stdout, stderr, opts.palette(stdout))
			if err != nil {
				return err
			}
			if model.FailedScenarios > 0 {
				return exitError{code: ExitError}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Only run scenarios with these tags (joined with \"and\")")
	cmd.Flags().StringVar(&dir, "dir", "", "Working directory for godog")
	return cmd
}
