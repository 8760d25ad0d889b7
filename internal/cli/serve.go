package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cukereport/internal/config"
	"cukereport/internal/reportserver"
)

// serveReport is a test seam for running the report server.
var serveReport = reportserver.Serve

func newServeCommand(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live dashboard rebuilt from the results file on each request",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolveConfig(stderr)
			if err != nil {
				return err
			}
			if _, err := os.Stat(cfg.Input); err != nil {
				return fail(stderr, "Failed to load test results: %v", err)
			}

			serverCfg := reportserver.Config{
				Addr:   cfg.ServeAddr,
				Title:  cfg.Title,
				Source: reportserver.FileSource(cfg.Input),
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(stdout, "Serving report at http://%s\n", serverCfg.Addr)
			if err := serveReport(ctx, serverCfg); err != nil {
				return fail(stderr, "Server error: %v", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.overrides.ServeAddr, "addr", "", "Address to listen on (default "+config.DefaultServeAddr+")")
	return cmd
}
