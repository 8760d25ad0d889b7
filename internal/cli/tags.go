package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cukereport/internal/cucumber"
	"cukereport/internal/report"
)

func newTagsCommand(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	var (
		priorities []string
		strict     bool
	)
	cmd := &cobra.Command{
		Use:   "tags [feature paths...]",
		Short: "Audit priority tags across feature files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := args
			if len(entries) == 0 {
				entries = []string{defaultFeaturePath}
			}
			paths, err := cucumber.ExpandFeaturePaths("", entries)
			if err != nil {
				return fail(stderr, "Failed to find feature files: %v", err)
			}
			if len(paths) == 0 {
				return fail(stderr, "No feature files found in %s", strings.Join(entries, " "))
			}
			scenarios, err := cucumber.ParseFeatureFiles(paths)
			if err != nil {
				return fail(stderr, "Failed to parse feature files: %v", err)
			}

			audit := report.AuditPriorities(scenarios, priorities)
			printAudit(stdout, audit, opts.palette(stdout))
			if strict && audit.UntaggedCount() > 0 {
				return exitError{code: ExitError}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&priorities, "priority", report.DefaultPriorityTags, "Priority tags, highest first")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when a scenario has no priority tag")
	return cmd
}

// printAudit writes per-feature priority counts and the untagged scenarios.
func printAudit(w io.Writer, audit report.PriorityAudit, pal palette) {
	fmt.Fprintln(w, rule())
	fmt.Fprintln(w, pal.heading("PRIORITY TAG ANALYSIS"))
	fmt.Fprintln(w, rule())
	for _, feature := range audit.Features {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s (%s)\n", pal.heading(feature.Name), feature.Path)
		fmt.Fprintf(w, "   Total Scenarios: %d\n", feature.Total)
		counts := make([]string, 0, len(audit.Priorities)+1)
		for _, priority := range audit.Priorities {
			counts = append(counts, fmt.Sprintf("%s: %d", priority, feature.Counts[priority]))
		}
		untagged := fmt.Sprintf("Untagged: %d", len(feature.Untagged))
		if len(feature.Untagged) > 0 {
			untagged = pal.warn(untagged)
		}
		counts = append(counts, untagged)
		fmt.Fprintf(w, "   %s\n", strings.Join(counts, " | "))
		for _, scenario := range feature.Untagged {
			tags := strings.Join(scenario.Tags, " ")
			if tags == "" {
				tags = "NONE"
			}
			fmt.Fprintf(w, "     %s Line %d: %s (tags: %s)\n", pal.warn("!"), scenario.Line, scenario.Name, tags)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule())
	summary := fmt.Sprintf("Scenarios: %d, untagged: %d", audit.Total(), audit.UntaggedCount())
	if audit.UntaggedCount() == 0 {
		fmt.Fprintln(w, pal.success(summary))
	} else {
		fmt.Fprintln(w, pal.warn(summary))
	}
	fmt.Fprintln(w, rule())
}
