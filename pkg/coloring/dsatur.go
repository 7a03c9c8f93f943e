package coloring

import (
	"cmp"

	"github.com/matzehuels/colorgraph/pkg/graph"
)

// DSatur colors g with the degree-of-saturation heuristic.
//
// At each step the uncolored vertex with the most distinct colors among its
// colored neighbors is chosen. Ties go to the higher degree, then to the
// smaller vertex: candidates are scanned in [DegreeOrder] and the first
// maximum wins. The chosen vertex gets the smallest available color.
//
// Saturation sets are updated incrementally; each step still scans all
// uncolored vertices, so a run costs O(V²+E).
func DSatur[V cmp.Ordered](g graph.Graph[V]) *Coloring[V] {
	candidates := DegreeOrder(g)
	c := newColoring[V](len(candidates))
	saturation := make(map[V]map[int]struct{}, len(candidates))

	for range candidates {
		var (
			best    V
			bestSat = -1
		)
		for _, v := range candidates {
			if _, done := c.colors[v]; done {
				continue
			}
			if s := len(saturation[v]); s > bestSat {
				best, bestSat = v, s
			}
		}

		color := smallestAvailable(saturation[best])
		c.assign(best, color)

		for _, u := range g.Neighbors(best) {
			if _, done := c.colors[u]; done {
				continue
			}
			if saturation[u] == nil {
				saturation[u] = make(map[int]struct{})
			}
			saturation[u][color] = struct{}{}
		}
	}
	return c
}
