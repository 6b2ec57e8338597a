package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		generate  bool
		highlight bool
		output    string
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Grow a graph and print its report",
		Long: `Grow a graph until the giant-component threshold is crossed (or
--max-steps random connections were tried) and print the report.

With --generate the graph is sampled in one shot from G(N, p) instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrideInt(cmd, "nodes", &a.cfg.Nodes)
			overrideInt(cmd, "max-steps", &a.cfg.AutoRun.MaxSteps)
			overrideInt(cmd, "top", &a.cfg.Report.TopComponents)
			if cmd.Flags().Changed("seed") {
				a.cfg.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if cmd.Flags().Changed("p") {
				a.cfg.Probability, _ = cmd.Flags().GetFloat64("p")
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			sim, err := a.newSimulation(nil)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if generate {
				if err := sim.GenerateRandomGraph(ctx, a.cfg.Probability); err != nil {
					return err
				}
			} else if a.cfg.Nodes > 1 {
				steps, err := sim.AutoRun(ctx, a.cfg.AutoRun.MaxSteps)
				if err != nil {
					return err
				}
				a.logger.Debug("simulation finished", zap.Int("steps", steps))
			}
			if highlight {
				sim.HighlightCycle(ctx)
			}

			return writeEncoded(cmd.OutOrStdout(), output, sim.Report())
		},
	}

	cmd.Flags().Int("nodes", 0, "number of nodes (overrides config)")
	cmd.Flags().Int64("seed", 0, "random seed; 0 seeds from the clock (overrides config)")
	cmd.Flags().Float64("p", 0, "edge probability for --generate (overrides config)")
	cmd.Flags().Int("max-steps", 0, "maximum random connections (overrides config)")
	cmd.Flags().Int("top", 0, "largest components to list (overrides config)")
	cmd.Flags().BoolVar(&generate, "generate", false, "sample G(N, p) instead of stepping")
	cmd.Flags().BoolVar(&highlight, "highlight", false, "highlight the cycle of a random unicyclic component")
	cmd.Flags().StringVarP(&output, "output", "o", formatYAML, fmt.Sprintf("output format (%s, %s)", formatYAML, formatJSON))

	return cmd
}
