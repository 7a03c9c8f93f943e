package coloring

import (
	"cmp"
	"math/rand/v2"
	"slices"

	cerrors "github.com/matzehuels/colorgraph/pkg/errors"
	"github.com/matzehuels/colorgraph/pkg/graph"
)

// Strategy is one of the group reordering rules used by [IteratedGreedy].
type Strategy int

// Strategies in sampling order. The order fixes how cumulative weights in
// [Ratios] map to strategies.
const (
	StrategyReverse Strategy = iota
	StrategyRandom
	StrategyLargestFirst
	StrategySmallestFirst
	StrategyIncreasingDegree
	StrategyDecreasingDegree

	numStrategies
)

var strategyNames = [numStrategies]string{
	"reverse",
	"random",
	"largest-first",
	"smallest-first",
	"increasing-degree",
	"decreasing-degree",
}

// String returns the strategy name, e.g. "largest-first".
func (s Strategy) String() string {
	if s < 0 || s >= numStrategies {
		return "unknown"
	}
	return strategyNames[s]
}

// Ratios are the relative weights of the six reordering strategies.
// Each weight must be non-negative and at least one must be positive.
type Ratios struct {
	Reverse          int `toml:"reverse" json:"reverse"`
	Random           int `toml:"random" json:"random"`
	LargestFirst     int `toml:"largest" json:"largest"`
	SmallestFirst    int `toml:"smallest" json:"smallest"`
	IncreasingDegree int `toml:"increasing" json:"increasing"`
	DecreasingDegree int `toml:"decreasing" json:"decreasing"`
}

// DefaultRatios returns the stock weights: reverse 50, random 30,
// largest-first 50, the rest 0. Each call returns a fresh value.
func DefaultRatios() Ratios {
	return Ratios{Reverse: 50, Random: 30, LargestFirst: 50}
}

func (r Ratios) weights() [numStrategies]int {
	return [numStrategies]int{
		r.Reverse, r.Random, r.LargestFirst,
		r.SmallestFirst, r.IncreasingDegree, r.DecreasingDegree,
	}
}

// Validate returns an INVALID_RATIOS error if any weight is negative or all
// weights are zero.
func (r Ratios) Validate() error {
	sum := 0
	for s, w := range r.weights() {
		if w < 0 {
			return cerrors.New(cerrors.ErrCodeInvalidRatios, "%s weight is negative (%d)", Strategy(s), w)
		}
		sum += w
	}
	if sum <= 0 {
		return cerrors.New(cerrors.ErrCodeInvalidRatios, "weights must sum to a positive value")
	}
	return nil
}

// Sample draws a strategy with probability proportional to its weight.
// A uniform integer in [0, sum) is mapped to the first strategy whose
// cumulative weight exceeds it. Sample panics with the INVALID_RATIOS error
// if r does not pass [Ratios.Validate].
func (r Ratios) Sample(rng *rand.Rand) Strategy {
	if err := r.Validate(); err != nil {
		panic(err)
	}
	weights := r.weights()
	total := 0
	for _, w := range weights {
		total += w
	}
	draw := rng.IntN(total)
	cumulative := 0
	for s, w := range weights {
		cumulative += w
		if draw < cumulative {
			return Strategy(s)
		}
	}
	return numStrategies - 1
}

// Iteration describes one completed Iterated Greedy step.
type Iteration struct {
	Index    int      // zero-based iteration number
	Strategy Strategy // reordering rule that was applied
	Colors   int      // colors used by the new coloring
	Stale    int      // consecutive iterations without a change in colors
}

// IGOptions configures [IteratedGreedy].
type IGOptions struct {
	// Limit stops the search after this many consecutive iterations leave
	// the color count unchanged. Must be positive.
	Limit int

	// Goal stops the search once the color count is at or below it.
	// Must be positive. The first iteration always runs.
	Goal int

	// Ratios weights the reordering strategies.
	Ratios Ratios

	// SortByDegree makes the increasing/decreasing total degree strategies
	// actually sort groups by the sum of their members' degrees. When false
	// those strategies keep the current group order.
	SortByDegree bool

	// Rand drives strategy sampling and group shuffling. Nil means
	// NewRand(DefaultSeed).
	Rand *rand.Rand

	// OnIteration, if set, is called after every iteration.
	OnIteration func(Iteration)
}

func (o IGOptions) validate() error {
	if o.Limit <= 0 {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "limit must be positive, got %d", o.Limit)
	}
	if o.Goal <= 0 {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "goal must be positive, got %d", o.Goal)
	}
	return o.Ratios.Validate()
}

// IteratedGreedy improves initial by repeatedly regrouping its vertices by
// color, reordering the groups with a randomly drawn strategy and recoloring
// the flattened order with [Greedy].
//
// Every iteration adopts the new coloring. The loop ends once opts.Limit
// consecutive iterations keep the same color count, or the count reaches
// opts.Goal after at least one iteration. Goal is a target, not a promise.
//
// Since each group is an independent set placed contiguously in the order,
// a greedy pass never needs more colors than there are groups; the result
// uses at most as many colors as initial.
//
// initial must color exactly the vertices of g (INCOMPLETE_COLORING
// otherwise). initial itself is never modified.
func IteratedGreedy[V cmp.Ordered](g graph.Graph[V], initial *Coloring[V], opts IGOptions) (*Coloring[V], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := initial.covers(g); err != nil {
		return nil, err
	}
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(DefaultSeed)
	}

	reorder := reorderTable(g, rng, opts.SortByDegree)

	current := initial
	k := initial.NumColors()
	stale := 0
	for i := 0; stale < opts.Limit && (k > opts.Goal || i == 0); i++ {
		groups := current.Groups()
		strategy := opts.Ratios.Sample(rng)
		order := slices.Concat(reorder[strategy](groups)...)

		next, err := Greedy(g, order)
		if err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeInternal, err, "recolor at iteration %d", i)
		}

		kNext := next.NumColors()
		if kNext == k {
			stale++
		} else {
			stale = 0
		}
		k = kNext
		current = next

		if opts.OnIteration != nil {
			opts.OnIteration(Iteration{Index: i, Strategy: strategy, Colors: k, Stale: stale})
		}
	}
	return current, nil
}

// reorderTable returns one group reordering function per strategy. Each
// function may reorder the slice it is given but never the groups inside.
func reorderTable[V cmp.Ordered](g graph.Graph[V], rng *rand.Rand, sortByDegree bool) [numStrategies]func([][]V) [][]V {
	byDegree := func(ascending bool) func([][]V) [][]V {
		if !sortByDegree {
			return keepOrder[V]
		}
		return func(groups [][]V) [][]V {
			slices.SortStableFunc(groups, func(a, b []V) int {
				if ascending {
					return cmp.Compare(totalDegree(g, a), totalDegree(g, b))
				}
				return cmp.Compare(totalDegree(g, b), totalDegree(g, a))
			})
			return groups
		}
	}

	return [numStrategies]func([][]V) [][]V{
		StrategyReverse: reverseGroups[V],
		StrategyRandom: func(groups [][]V) [][]V {
			rng.Shuffle(len(groups), func(i, j int) {
				groups[i], groups[j] = groups[j], groups[i]
			})
			return groups
		},
		StrategyLargestFirst: func(groups [][]V) [][]V {
			slices.SortStableFunc(groups, func(a, b []V) int { return cmp.Compare(len(a), len(b)) })
			return groups
		},
		StrategySmallestFirst: func(groups [][]V) [][]V {
			slices.SortStableFunc(groups, func(a, b []V) int { return cmp.Compare(len(b), len(a)) })
			return groups
		},
		StrategyIncreasingDegree: byDegree(true),
		StrategyDecreasingDegree: byDegree(false),
	}
}

func reverseGroups[V cmp.Ordered](groups [][]V) [][]V {
	slices.Reverse(groups)
	return groups
}

func keepOrder[V cmp.Ordered](groups [][]V) [][]V { return groups }

func totalDegree[V cmp.Ordered](g graph.Graph[V], group []V) int {
	total := 0
	for _, v := range group {
		total += g.Degree(v)
	}
	return total
}
