package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"cukereport/internal/mdreport"
)

const terminalWidth = 80

// renderMarkdownTerminal is a test seam for terminal Markdown rendering.
var renderMarkdownTerminal = func(markdown string, styled bool) (string, error) {
	style := glamour.WithStandardStyle("notty")
	if styled {
		style = glamour.WithAutoStyle()
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(terminalWidth))
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}

func newShowCommand(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Render the Markdown report in the terminal without writing files",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolveConfig(stderr)
			if err != nil {
				return err
			}
			model, err := loadModel(cfg, stderr)
			if err != nil {
				return err
			}
			markdown := mdreport.Render(model, mdreport.Options{Title: cfg.Title, GeneratedAt: now()})
			rendered, err := renderMarkdownTerminal(markdown, colorEnabled(stdout, opts.noColor))
			if err != nil {
				return fail(stderr, "Failed to render Markdown report: %v", err)
			}
			fmt.Fprint(stdout, rendered)
			return nil
		},
	}
}
