// Package cli implements the colorgraph command-line interface.
//
// The CLI generates random graphs, colors them with every algorithm of the
// harness and compares the results. It is built with cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - run: color one generated (or loaded) graph with every algorithm
//   - bench: aggregate colors and time over many generated graphs
//   - color: color a graph file with one algorithm and write JSON
//   - generate: write a random graph as JSON
//   - serve: start the HTTP API
//   - config: print the effective configuration as TOML
//
// # Configuration
//
// Settings come from colorgraph.toml in the working directory, or the file
// named by --config. Invalid keys are logged as warnings and keep their
// defaults. Command flags override the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes one line per Iterated Greedy iteration.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/colorgraph/pkg/buildinfo"
	"github.com/matzehuels/colorgraph/pkg/coloring"
	"github.com/matzehuels/colorgraph/pkg/config"
	"github.com/matzehuels/colorgraph/pkg/harness"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "colorgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output. Logs go to the logger's writer.
	Out io.Writer

	// ConfigPath is the TOML file read by every command.
	ConfigPath string
}

// New creates a CLI that logs to w and prints to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:     newLogger(w, level),
		Out:        os.Stdout,
		ConfigPath: config.DefaultFile,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Colorgraph compares graph coloring heuristics",
		Long:         `Colorgraph colors random graphs with greedy, DSatur and Iterated Greedy heuristics and compares how many colors each one needs and how long it takes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", c.ConfigPath, "configuration file")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.colorCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// loadConfig reads ConfigPath. Warnings are logged and leave the affected
// keys at their defaults.
func (c *CLI) loadConfig(ctx context.Context) (config.Config, error) {
	logger := loggerFromContext(ctx)
	cfg, warnings, err := config.Load(c.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	for _, w := range warnings {
		logger.Warn(w.Error())
	}
	return cfg, nil
}

// algorithms builds the harness table from cfg. Iterated Greedy iterations
// are logged at debug level.
func algorithms(ctx context.Context, cfg config.Config) []harness.Algorithm {
	logger := loggerFromContext(ctx)
	opts := cfg.IGOptions()
	opts.OnIteration = func(it coloring.Iteration) {
		logger.Debug("iterated greedy",
			"iteration", it.Index,
			"strategy", it.Strategy,
			"colors", it.Colors,
			"stale", it.Stale)
	}
	return harness.DefaultAlgorithms(opts)
}

// newRunner returns a harness runner for cfg.
func newRunner(ctx context.Context, cfg config.Config) *harness.Runner {
	return harness.NewRunner(algorithms(ctx, cfg), cfg.Seed, loggerFromContext(ctx))
}
