package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/colorgraph/pkg/config"
	"github.com/matzehuels/colorgraph/pkg/graph"
)

// benchCommand creates the bench command.
func (c *CLI) benchCommand() *cobra.Command {
	var flags overrides

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the algorithms over many generated graphs",
		Long: `Color times_to_run freshly generated graphs with every algorithm and print
the total and mean color count and time per algorithm.

Run i uses seed+i for both the graph and the algorithms, so a benchmark is
reproducible for a given seed.`,
		Example: `  colorgraph bench --times 100 --seed 7`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			flags.apply(cmd, &cfg)
			return c.runBench(cmd.Context(), cfg)
		},
	}

	flags.register(cmd)
	return cmd
}

func (c *CLI) runBench(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)
	runner := newRunner(ctx, cfg)
	runner.PauseGC = true

	prog := newProgress(logger)
	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Coloring %d graphs...", cfg.TimesToRun))
	spinner.Start()

	stats, err := runner.Many(ctx, cfg.TimesToRun, func(rng *rand.Rand) (graph.Graph[string], error) {
		return cfg.NewGraph(rng)
	})
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Benchmarked %d algorithms on %d graphs", len(stats), cfg.TimesToRun))

	c.println(renderStatsTable(stats))
	c.printDetail("%d vertices per graph, seed %d", cfg.GraphSize, cfg.Seed)
	return nil
}
