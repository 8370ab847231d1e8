package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/loomui/loom/internal/registry"
	"github.com/loomui/loom/internal/serve"
)

var serveAddr string

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the component registry over HTTP",
		Long: `Run a registry endpoint backed by the embedded catalog.

Endpoints:
  GET /registry.json              component manifest
  GET /components/{name}/{file}   component source
  GET /metrics                    Prometheus metrics
  GET /healthz                    liveness probe

Point another project's [registry] url at this server to share one
catalog across a team.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	cmd.Flags().StringVar(&serveAddr, "addr", ":7420", "Listen address")

	return cmd
}

func runServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := serve.New(registry.Default(), serve.WithAddr(serveAddr))

	info("registry listening on %s", serveAddr)
	return srv.ListenAndServe(ctx)
}
