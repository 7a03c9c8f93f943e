package coloring

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/colorgraph/pkg/graph"
)

// DegreeOrder returns the vertices of g sorted by descending degree. Ties
// are broken by ascending vertex identity, so the order is fully
// deterministic.
func DegreeOrder[V cmp.Ordered](g graph.Graph[V]) []V {
	order := g.Vertices()
	slices.SortFunc(order, func(a, b V) int {
		if c := cmp.Compare(g.Degree(b), g.Degree(a)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return order
}

// RandomOrder returns a uniformly random permutation of the vertices of g
// drawn from rng. The vertices are sorted before shuffling so the result
// depends only on the state of rng.
func RandomOrder[V cmp.Ordered](g graph.Graph[V], rng *rand.Rand) []V {
	order := g.Vertices()
	slices.Sort(order)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}
