package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/colorgraph/pkg/coloring"
	"github.com/matzehuels/colorgraph/pkg/config"
	"github.com/matzehuels/colorgraph/pkg/graph"
	"github.com/matzehuels/colorgraph/pkg/harness"
)

// overrides holds flags shared by run and bench that take precedence over
// the configuration file.
type overrides struct {
	seed         uint64
	times        int
	sortByDegree bool
}

func (o *overrides) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&o.seed, "seed", coloring.DefaultSeed, "seed for graph generation and randomized algorithms")
	cmd.Flags().IntVar(&o.times, "times", 1, "number of graphs to generate and color")
	cmd.Flags().BoolVar(&o.sortByDegree, "ig-sort-by-degree", false, "make the Iterated Greedy degree strategies sort groups by total degree")
}

// apply copies the flags the user set onto cfg.
func (o *overrides) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("seed") {
		cfg.Seed = o.seed
	}
	if cmd.Flags().Changed("times") {
		cfg.TimesToRun = o.times
	}
	if cmd.Flags().Changed("ig-sort-by-degree") {
		cfg.IteratedGreedy.SortByDegree = o.sortByDegree
	}
}

// runCommand creates the run command.
func (c *CLI) runCommand() *cobra.Command {
	var (
		flags     overrides
		graphPath string
		pick      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Color a graph with every algorithm and compare the results",
		Long: `Color a graph with random greedy, degree greedy, DSatur and Iterated Greedy.

The graph is generated from the configuration unless --graph names a JSON
graph file. Each algorithm's order, coloring, time and color count is
printed, followed by the color groups of the coloring named by
coloring_to_show. With times_to_run above 1 and no --graph the command
behaves like bench.`,
		Example: `  # Color one generated graph
  colorgraph run

  # Color an existing graph and choose the coloring to inspect
  colorgraph run --graph graph.json --pick`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			flags.apply(cmd, &cfg)

			if cfg.TimesToRun > 1 && graphPath == "" {
				return c.runBench(cmd.Context(), cfg)
			}
			return c.runOnce(cmd.Context(), cfg, graphPath, pick)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "color this JSON graph file instead of generating one")
	cmd.Flags().BoolVar(&pick, "pick", false, "choose the coloring to show interactively")

	return cmd
}

func (c *CLI) runOnce(ctx context.Context, cfg config.Config, graphPath string, pick bool) error {
	logger := loggerFromContext(ctx)

	g, err := c.loadOrGenerate(cfg, graphPath)
	if err != nil {
		return err
	}
	logger.Debug("graph ready", "vertices", g.Len(), "edges", g.EdgeCount())

	c.printGraph(g, cfg.ShowLabels)
	c.printNewline()

	report, err := newRunner(ctx, cfg).Once(ctx, g)
	if err != nil {
		return err
	}
	for _, res := range report.Results {
		c.printResult(res)
		c.printNewline()
	}

	if pick {
		chosen, err := c.pickResult(report.Results, cfg.ColoringToShow)
		if err != nil {
			return fmt.Errorf("picker: %w", err)
		}
		if chosen != nil {
			c.printGroups(*chosen, cfg.ShowLabels)
		}
		return nil
	}

	if cfg.ColoringToShow == "" {
		return nil
	}
	res, ok := report.Find(cfg.ColoringToShow)
	if !ok {
		keys := make([]string, len(report.Results))
		for i, r := range report.Results {
			keys[i] = r.Key
		}
		c.printWarning("coloring_to_show %q is not one of %s", cfg.ColoringToShow, strings.Join(keys, ", "))
		return nil
	}
	c.printGroups(res, cfg.ShowLabels)
	return nil
}

// loadOrGenerate reads path, or generates a graph from cfg when path is
// empty.
func (c *CLI) loadOrGenerate(cfg config.Config, path string) (*graph.Undirected[string], error) {
	if path != "" {
		return graph.ReadGraphFile(path)
	}
	return cfg.NewGraph(harness.GraphRand(cfg.Seed))
}

// printGraph prints the vertex and edge lists, or only their sizes when
// labels are off.
func (c *CLI) printGraph(g *graph.Undirected[string], labels bool) {
	c.println(StyleTitle.Render("Graph"))
	c.printGraphStats(g.Len(), g.EdgeCount())
	if !labels {
		return
	}
	c.printKeyValue("vertices", "["+strings.Join(g.Vertices(), " ")+"]")
	edges := make([]string, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		edges = append(edges, fmt.Sprintf("(%s,%s)", e.U, e.V))
	}
	c.printKeyValue("edges", "["+strings.Join(edges, " ")+"]")
}
