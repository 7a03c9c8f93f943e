package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/colorgraph/pkg/coloring"
	"github.com/matzehuels/colorgraph/pkg/config"
	cerrors "github.com/matzehuels/colorgraph/pkg/errors"
	"github.com/matzehuels/colorgraph/pkg/graph"
	"github.com/matzehuels/colorgraph/pkg/harness"
)

// Graph model names accepted by --model.
const (
	modelErdosRenyi  = "erdos-renyi"
	modelRandomEdges = "random-edges"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output string
		model  string
		size   int
		edges  int
		p      float64
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random graph as JSON",
		Long: `Generate a random graph and write it as JSON.

The erdos-renyi model joins each pair of vertices with probability --p. The
random-edges model gives each vertex --edges attempts to join a random other
vertex. Unset flags fall back to the configuration file.`,
		Example: `  colorgraph generate --size 50 --p 0.2 -o graph.json
  colorgraph generate --model random-edges --edges 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("size") {
				cfg.GraphSize = size
			}
			if f.Changed("edges") {
				cfg.RandomGraphEdgeNumber = edges
			}
			if f.Changed("p") {
				cfg.ErdosRenyiP = p
			}
			if f.Changed("seed") {
				cfg.Seed = seed
			}
			if f.Changed("model") {
				switch model {
				case modelErdosRenyi:
					cfg.UseErdosRenyi = true
				case modelRandomEdges:
					cfg.UseErdosRenyi = false
				default:
					return cerrors.New(cerrors.ErrCodeInvalidInput, "unknown model %q (want %s or %s)", model, modelErdosRenyi, modelRandomEdges)
				}
			}
			return c.runGenerate(cmd.Context(), cfg, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "graph.json", "output file")
	cmd.Flags().StringVar(&model, "model", modelErdosRenyi, "graph model: erdos-renyi or random-edges")
	cmd.Flags().IntVar(&size, "size", 0, "number of vertices")
	cmd.Flags().IntVar(&edges, "edges", 0, "edge attempts per vertex (random-edges)")
	cmd.Flags().Float64Var(&p, "p", 0, "edge probability (erdos-renyi)")
	cmd.Flags().Uint64Var(&seed, "seed", coloring.DefaultSeed, "seed for graph generation")
	_ = cmd.RegisterFlagCompletionFunc("model", cobra.FixedCompletions([]string{modelErdosRenyi, modelRandomEdges}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, cfg config.Config, output string) error {
	logger := loggerFromContext(ctx)

	g, err := cfg.NewGraph(harness.GraphRand(cfg.Seed))
	if err != nil {
		return err
	}
	logger.Debug("generated graph", "erdos_renyi", cfg.UseErdosRenyi, "vertices", g.Len(), "edges", g.EdgeCount())

	if err := graph.WriteGraphFile(g, output); err != nil {
		return err
	}

	c.printSuccess("Generated graph")
	c.printGraphStats(g.Len(), g.EdgeCount())
	c.printFile(output)
	c.printNewline()
	c.printNextStep("Color it", appName+" color "+output)
	return nil
}
