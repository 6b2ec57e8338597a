package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/giantgraph/metrics"
	"github.com/katalvlaran/giantgraph/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a simulation over HTTP",
		Long: `Serve one simulation session over HTTP with a JSON API and Prometheus
metrics at /metrics. Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrideInt(cmd, "nodes", &a.cfg.Nodes)
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			collector := metrics.NewCollector("giantgraph")
			sim, err := a.newSimulation(collector)
			if err != nil {
				return err
			}
			srv := server.New(sim,
				server.WithLogger(a.logger),
				server.WithCollector(collector),
				server.WithStepInterval(a.cfg.Server.StepInterval),
				server.WithMaxSteps(a.cfg.AutoRun.MaxSteps),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			a.logger.Info("serving simulation",
				zap.String("session", sim.ID().String()),
				zap.Int("nodes", a.cfg.Nodes),
			)

			return srv.ListenAndServe(ctx, a.cfg.Server.Addr)
		},
	}

	cmd.Flags().Int("nodes", 0, "number of nodes (overrides config)")
	cmd.Flags().String("addr", "", "listen address (overrides config)")

	return cmd
}
