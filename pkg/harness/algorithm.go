package harness

import (
	"context"
	"math/rand/v2"

	"github.com/matzehuels/colorgraph/pkg/coloring"
	cerrors "github.com/matzehuels/colorgraph/pkg/errors"
	"github.com/matzehuels/colorgraph/pkg/graph"
	"github.com/matzehuels/colorgraph/pkg/observability"
)

// Algorithm keys. They match the values accepted by the coloring_to_show
// configuration key.
const (
	KeyRandomGreedy   = "randomGreedy"
	KeyDegreeGreedy   = "degreeGreedy"
	KeyDSatur         = "DSatur"
	KeyIteratedGreedy = "iteratedGreedy"
)

// ColorFunc colors g and returns the coloring together with the vertex order
// it was built from. Algorithms that do not take an order return a nil order.
type ColorFunc func(ctx context.Context, g graph.Graph[string], rng *rand.Rand) (*coloring.Coloring[string], []string, error)

// Algorithm is one entry of the harness table.
type Algorithm struct {
	Name      string // display name, e.g. "Random greedy"
	Key       string // stable identifier, e.g. "randomGreedy"
	UsesOrder bool   // timing includes building a vertex order
	Color     ColorFunc
}

// DefaultIGOptions returns the stock Iterated Greedy settings: limit 100,
// goal 1 and [coloring.DefaultRatios].
func DefaultIGOptions() coloring.IGOptions {
	return coloring.IGOptions{
		Limit:  100,
		Goal:   1,
		Ratios: coloring.DefaultRatios(),
	}
}

// DefaultAlgorithms returns the algorithm table in display order: random
// greedy, degree greedy, DSatur and Iterated Greedy seeded from DSatur.
//
// ig configures the Iterated Greedy entry. Its Rand is replaced by the rng of
// each run; OnIteration, if set, is called after the iteration hook fires.
// The returned slice is owned by the caller.
func DefaultAlgorithms(ig coloring.IGOptions) []Algorithm {
	return []Algorithm{
		{
			Name:      "Random greedy",
			Key:       KeyRandomGreedy,
			UsesOrder: true,
			Color: func(_ context.Context, g graph.Graph[string], rng *rand.Rand) (*coloring.Coloring[string], []string, error) {
				order := coloring.RandomOrder(g, rng)
				c, err := coloring.Greedy(g, order)
				return c, order, err
			},
		},
		{
			Name:      "Degree greedy",
			Key:       KeyDegreeGreedy,
			UsesOrder: true,
			Color: func(_ context.Context, g graph.Graph[string], _ *rand.Rand) (*coloring.Coloring[string], []string, error) {
				order := coloring.DegreeOrder(g)
				c, err := coloring.Greedy(g, order)
				return c, order, err
			},
		},
		{
			Name: "DSatur",
			Key:  KeyDSatur,
			Color: func(_ context.Context, g graph.Graph[string], _ *rand.Rand) (*coloring.Coloring[string], []string, error) {
				return coloring.DSatur(g), nil, nil
			},
		},
		{
			Name:  "Iterated greedy",
			Key:   KeyIteratedGreedy,
			Color: iteratedGreedy(ig),
		},
	}
}

func iteratedGreedy(base coloring.IGOptions) ColorFunc {
	return func(ctx context.Context, g graph.Graph[string], rng *rand.Rand) (*coloring.Coloring[string], []string, error) {
		opts := base
		opts.Rand = rng
		opts.OnIteration = func(it coloring.Iteration) {
			observability.Coloring().OnIteration(ctx, it.Strategy.String(), it.Index, it.Colors, it.Stale)
			if base.OnIteration != nil {
				base.OnIteration(it)
			}
		}
		c, err := coloring.IteratedGreedy(g, coloring.DSatur(g), opts)
		return c, nil, err
	}
}

// Find returns the algorithm whose key is key. It returns a NOT_FOUND error
// when no entry matches.
func Find(algs []Algorithm, key string) (Algorithm, error) {
	for _, a := range algs {
		if a.Key == key {
			return a, nil
		}
	}
	return Algorithm{}, cerrors.New(cerrors.ErrCodeNotFound, "unknown algorithm %q", key)
}

// Keys returns the keys of algs in table order.
func Keys(algs []Algorithm) []string {
	keys := make([]string, len(algs))
	for i, a := range algs {
		keys[i] = a.Key
	}
	return keys
}
