package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/giantgraph/config"
	"github.com/katalvlaran/giantgraph/metrics"
	"github.com/katalvlaran/giantgraph/simulation"
)

// app is the state shared by every subcommand once the root pre-run has
// loaded the configuration.
type app struct {
	configPath string
	logLevel   string
	trace      bool

	cfg      config.Config
	logger   *zap.Logger
	shutdown func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "giantgraph",
		Short: "Watch a giant component emerge in a random graph",
		Long: `giantgraph grows an undirected graph on N nodes one edge at a time and
reports its connected components, their cyclic structure and the statistics of
the Erdős–Rényi phase transition.

Examples:
  giantgraph simulate --nodes 100 --seed 7
  giantgraph simulate --generate --p 0.02 --output json
  giantgraph cycles --nodes 12 --p 0.2
  giantgraph serve --addr 127.0.0.1:8080`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.trace, "trace", false, "export spans to stderr")

	root.AddCommand(newSimulateCmd(a), newCyclesCmd(a), newServeCmd(a))

	return root
}

// setup loads the configuration, builds the logger and installs tracing.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	a.logger = logger

	if a.trace {
		shutdown, err := installTracing(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		a.shutdown = shutdown
	}

	return nil
}

// teardown flushes spans and the logger.
func (a *app) teardown(ctx context.Context) error {
	var errs []error
	if a.shutdown != nil {
		if ctx == nil {
			ctx = context.Background()
		}
		errs = append(errs, a.shutdown(ctx))
	}
	if a.logger != nil {
		// stderr sync fails on some platforms; ignore it.
		_ = a.logger.Sync()
	}

	return errors.Join(errs...)
}

// newSimulation maps the configuration onto a simulation session.
func (a *app) newSimulation(collector *metrics.Collector) (*simulation.Simulation, error) {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim, err := simulation.New(
		simulation.Config{
			Nodes:         a.cfg.Nodes,
			CycleLimit:    a.cfg.CycleLimit,
			TopComponents: a.cfg.Report.TopComponents,
		},
		simulation.WithSeed(seed),
		simulation.WithLogger(a.logger),
		simulation.WithCollector(collector),
	)
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	a.logger.Debug("simulation created",
		zap.String("session", sim.ID().String()),
		zap.Int("nodes", a.cfg.Nodes),
		zap.Int64("seed", seed),
	)

	return sim, nil
}

// overrideInt copies a flag value over the configuration when it was set.
func overrideInt(cmd *cobra.Command, name string, dst *int) {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetInt(name)
		*dst = v
	}
}
