// SPDX-License-Identifier: MIT

package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/decolab/internal/server"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve the HTTP API:

  POST /api/v1/loading              calculate a JSON dive setup
  GET  /api/v1/compartments?variant  coefficient table
  GET  /healthz                      liveness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			h := server.NewHandler(a.logger, server.Settings{
				StepSeconds:   a.cfg.Model.StepSeconds,
				StopIncrement: a.cfg.Model.StopIncrement,
				GFLow:         a.cfg.Model.GFLow,
				GFHigh:        a.cfg.Model.GFHigh,
				MaxBodyBytes:  a.cfg.Server.MaxBodyBytes,
			})
			return server.Run(ctx, a.cfg.Server.Addr, server.NewRouter(h, a.logger), a.logger)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default \":8080\")")
	_ = a.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	return cmd
}
