package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"cukereport/internal/config"
	"cukereport/internal/logging"
)

// now is a test seam for report timestamps.
var now = time.Now

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	configPath string
	overrides  config.Config
	debug      bool
	noColor    bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "cukereport",
		Short: "Generate HTML and Markdown reports from cucumber JSON results",
		Long: "cukereport reads cucumber JSON results and writes a self-contained HTML\n" +
			"dashboard and a Markdown summary. Without a subcommand it generates both reports.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := logging.LevelWarn
			if opts.debug {
				level = logging.LevelDebug
			}
			return logging.Configure(stderr, level)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolveConfig(stderr)
			if err != nil {
				return err
			}
			_, err = generateReports(cmd.Context(), cfg, stdout, stderr, opts.palette(stdout))
			return err
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: search for "+config.ConfigFileName+")")
	flags.StringVar(&opts.overrides.Input, "input", "", "Cucumber JSON results file")
	flags.StringVar(&opts.overrides.HTMLOutput, "html", "", "HTML report output path")
	flags.StringVar(&opts.overrides.MarkdownOutput, "markdown", "", "Markdown report output path")
	flags.StringVar(&opts.overrides.Title, "title", "", "Report title")
	flags.StringVar(&opts.overrides.Archive, "db", "", "DuckDB archive for report runs")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newShowCommand(opts, stdout, stderr))
	root.AddCommand(newServeCommand(opts, stdout, stderr))
	root.AddCommand(newRunCommand(opts, stdout, stderr))
	root.AddCommand(newHistoryCommand(opts, stdout, stderr))
	root.AddCommand(newTagsCommand(opts, stdout, stderr))
	return root
}

// noArgs rejects positional arguments, reporting unknown commands as usage errors.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if cmd.HasSubCommands() {
		return usageError{err: fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())}
	}
	return usageError{err: fmt.Errorf("%q accepts no arguments", cmd.CommandPath())}
}

// resolveConfig merges the config file with flag overrides.
func (o *rootOptions) resolveConfig(stderr io.Writer) (config.Config, error) {
	cfg, path, err := config.Resolve(o.configPath, "")
	if err != nil {
		return config.Config{}, fail(stderr, "Failed to load config: %v", err)
	}
	config.Merge(&cfg, o.overrides)
	config.Normalize(&cfg)
	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, fail(stderr, "Invalid configuration:\n%v", err)
	}
	logConfig(cfg, path)
	return cfg, nil
}

func (o *rootOptions) palette(w io.Writer) palette {
	return newPalette(w, colorEnabled(w, o.noColor))
}
