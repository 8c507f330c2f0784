package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"termfolio/internal/logger"
	"termfolio/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	var addr, static string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Long: `Serve starts a stateless HTTP preview. Every request to /api/submit runs
in a brand-new session, so the server keeps no state between requests.
With --static, unmatched paths are served from an export directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}
			defer a.Close()
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			if static == "" {
				static = a.cfg.Server.Static
			}

			log := logger.Named("server")
			gin.SetMode(gin.ReleaseMode)
			srv := server.New(addr, server.Options{
				Content: a.doc,
				Prompt:  a.prompt(),
				Static:  static,
				Suggest: a.cfg.Reveal.Suggest,
				Logger:  log,
			})

			ctx, stop := signalContext(cmd)
			defer stop()
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", addr)
				log.WithField("addr", addr).Info("server started")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			log.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8080)")
	cmd.Flags().StringVar(&static, "static", "", "Directory of exported files to serve")
	return cmd
}
