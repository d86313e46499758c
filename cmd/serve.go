package main

import (
	"casino/internal/app"
	"casino/internal/config"
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Starts API server and background workers",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// app logs the failure and leaves the FAILED state behind
			return app.New(cfg).Run(ctx) //nolint: wrapcheck
		},
	}

	return cmd
}
