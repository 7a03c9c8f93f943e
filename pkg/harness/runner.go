package harness

import (
	"context"
	"math/rand/v2"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/colorgraph/pkg/coloring"
	cerrors "github.com/matzehuels/colorgraph/pkg/errors"
	"github.com/matzehuels/colorgraph/pkg/graph"
	"github.com/matzehuels/colorgraph/pkg/observability"
)

// Result is the outcome of a single timed run.
type Result struct {
	Name      string
	Key       string
	UsesOrder bool
	Coloring  *coloring.Coloring[string]
	Order     []string // nil unless UsesOrder
	Colors    int
	Duration  time.Duration
}

// Report collects one Result per algorithm for a single graph.
type Report struct {
	Vertices int
	Edges    int
	Results  []Result
}

// Find returns the result for key.
func (r *Report) Find(key string) (Result, bool) {
	for _, res := range r.Results {
		if res.Key == key {
			return res, true
		}
	}
	return Result{}, false
}

// Stats aggregates repeated runs of one algorithm.
type Stats struct {
	Name        string
	Key         string
	UsesOrder   bool
	Runs        int
	TotalColors int
	TotalTime   time.Duration
}

// MeanColors returns the average color count per run.
func (s Stats) MeanColors() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.TotalColors) / float64(s.Runs)
}

// MeanTime returns the average duration per run.
func (s Stats) MeanTime() time.Duration {
	if s.Runs == 0 {
		return 0
	}
	return s.TotalTime / time.Duration(s.Runs)
}

// GraphFunc builds the graph for one run of [Runner.Many] from the run's
// random source.
type GraphFunc func(rng *rand.Rand) (graph.Graph[string], error)

// Run colors g with alg and times it. The timing covers building the order
// for algorithms that use one. The returned coloring is validated against g;
// an invalid coloring is reported as an INTERNAL_ERROR.
func Run(ctx context.Context, alg Algorithm, g graph.Graph[string], rng *rand.Rand) (Result, error) {
	hooks := observability.Coloring()
	hooks.OnRunStart(ctx, alg.Key, g.Len())

	start := time.Now()
	c, order, err := alg.Color(ctx, g, rng)
	elapsed := time.Since(start)

	if err == nil {
		if verr := c.Validate(g); verr != nil {
			err = cerrors.Wrap(cerrors.ErrCodeInternal, verr, "%s produced an invalid coloring", alg.Name)
		}
	}
	colors := 0
	if err == nil {
		colors = c.NumColors()
	}
	hooks.OnRunComplete(ctx, alg.Key, colors, elapsed, err)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Name:      alg.Name,
		Key:       alg.Key,
		UsesOrder: alg.UsesOrder,
		Coloring:  c,
		Order:     order,
		Colors:    colors,
		Duration:  elapsed,
	}, nil
}

// Runner runs an algorithm table against one or many graphs.
//
// Every run draws from its own generator seeded from Seed, so results do not
// depend on which algorithms ran before. A Runner holds no results and may be
// shared between goroutines.
type Runner struct {
	Algorithms []Algorithm
	Seed       uint64
	Logger     *log.Logger

	// PauseGC disables the garbage collector while Many is timing runs.
	PauseGC bool
}

// NewRunner creates a runner for algs.
// If algs is empty, DefaultAlgorithms(DefaultIGOptions()) is used.
// If logger is nil, log.Default() is used.
func NewRunner(algs []Algorithm, seed uint64, logger *log.Logger) *Runner {
	if len(algs) == 0 {
		algs = DefaultAlgorithms(DefaultIGOptions())
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Algorithms: algs,
		Seed:       seed,
		Logger:     logger,
	}
}

// Random streams derived from one seed. Algorithms color with stream 0, the
// same generator [coloring.NewRand] returns.
const (
	colorStream = 0
	graphStream = 1
)

// GraphRand returns the generator used to build the graph for seed. It is
// independent of the one the algorithms draw from, so a random order never
// replays the choices that produced the edges.
func GraphRand(seed uint64) *rand.Rand {
	return coloring.NewStream(seed, graphStream)
}

func colorRand(seed uint64) *rand.Rand {
	return coloring.NewStream(seed, colorStream)
}

// Once runs every algorithm on g and reports each result.
func (r *Runner) Once(ctx context.Context, g *graph.Undirected[string]) (*Report, error) {
	report := &Report{
		Vertices: g.Len(),
		Edges:    g.EdgeCount(),
		Results:  make([]Result, 0, len(r.Algorithms)),
	}
	for _, alg := range r.Algorithms {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := Run(ctx, alg, g, colorRand(r.Seed))
		if err != nil {
			return nil, err
		}
		r.Logger.Debug("colored graph",
			"algorithm", alg.Key,
			"colors", res.Colors,
			"duration", res.Duration)
		report.Results = append(report.Results, res)
	}
	return report, nil
}

// Many runs every algorithm on times fresh graphs and aggregates color
// counts and durations per algorithm. Run i builds its graph from
// GraphRand(Seed+i) and colors it from an independent stream of that seed. Cancellation is checked between runs.
func (r *Runner) Many(ctx context.Context, times int, newGraph GraphFunc) ([]Stats, error) {
	if err := cerrors.ValidatePositive("times_to_run", times); err != nil {
		return nil, err
	}
	if r.PauseGC {
		defer debug.SetGCPercent(debug.SetGCPercent(-1))
	}

	stats := make([]Stats, len(r.Algorithms))
	for i, alg := range r.Algorithms {
		stats[i] = Stats{Name: alg.Name, Key: alg.Key, UsesOrder: alg.UsesOrder}
	}

	for run := range times {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		seed := r.Seed + uint64(run)
		g, err := newGraph(GraphRand(seed))
		if err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeInvalidGraph, err, "build graph for run %d", run)
		}
		for i, alg := range r.Algorithms {
			res, err := Run(ctx, alg, g, colorRand(seed))
			if err != nil {
				return nil, err
			}
			stats[i].Runs++
			stats[i].TotalColors += res.Colors
			stats[i].TotalTime += res.Duration
		}
		r.Logger.Debug("finished run", "run", run+1, "of", times, "vertices", g.Len())
	}
	return stats, nil
}
