package coloring

import (
	"cmp"

	cerrors "github.com/matzehuels/colorgraph/pkg/errors"
	"github.com/matzehuels/colorgraph/pkg/graph"
)

// Greedy colors g by visiting vertices in order and giving each the
// smallest color not used by a neighbor visited before it.
//
// order must be a permutation of the vertex set of g. A missing, repeated or
// unknown vertex yields an INVALID_ORDER error and no coloring.
func Greedy[V cmp.Ordered](g graph.Graph[V], order []V) (*Coloring[V], error) {
	if err := checkPermutation(g, order); err != nil {
		return nil, err
	}

	c := newColoring[V](len(order))
	for _, v := range order {
		c.assign(v, smallestAvailable(neighborColors(g, v, c)))
	}
	return c, nil
}

func checkPermutation[V cmp.Ordered](g graph.Graph[V], order []V) error {
	pending := make(map[V]bool, g.Len())
	for _, v := range g.Vertices() {
		pending[v] = true
	}
	for _, v := range order {
		left, known := pending[v]
		switch {
		case !known:
			return cerrors.New(cerrors.ErrCodeInvalidOrder, "vertex %v is not in the graph", v)
		case !left:
			return cerrors.New(cerrors.ErrCodeInvalidOrder, "vertex %v appears more than once", v)
		}
		pending[v] = false
	}
	if len(order) != g.Len() {
		return cerrors.New(cerrors.ErrCodeInvalidOrder,
			"order has %d vertices, graph has %d", len(order), g.Len())
	}
	return nil
}
