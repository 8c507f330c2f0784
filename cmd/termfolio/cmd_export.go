package main

import (
	"fmt"

	"termfolio/internal/export"
	"termfolio/internal/logger"

	"github.com/spf13/cobra"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var width, workers int

	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "Write every command response as static files",
		Long: `Export runs each content command in a fresh session and writes the
result to <dir>/<name>.txt, plus a site.json that a static frontend can
replay.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signalContext(cmd)
			defer stop()
			written, err := export.Write(ctx, args[0], export.Options{
				Content: a.doc,
				Prompt:  a.prompt(),
				Width:   width,
				Workers: workers,
				Logger:  logger.Named("export"),
			})
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for text pages (0 disables wrapping)")
	cmd.Flags().IntVar(&workers, "workers", 4, "Number of pages rendered concurrently")
	return cmd
}
