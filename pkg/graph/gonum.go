package graph

import (
	"fmt"

	gonum "gonum.org/v1/gonum/graph"
)

// FromGonum copies a gonum undirected graph into an [Undirected] keyed by
// gonum node IDs. Self loops in the source are rejected with ErrSelfLoop.
//
// The copy is independent of src; later changes to src are not reflected.
func FromGonum(src gonum.Undirected) (*Undirected[int64], error) {
	g := New[int64]()

	nodes := src.Nodes()
	for nodes.Next() {
		if err := g.AddVertex(nodes.Node().ID()); err != nil {
			return nil, fmt.Errorf("node %d: %w", nodes.Node().ID(), err)
		}
	}

	for _, u := range g.Vertices() {
		to := src.From(u)
		for to.Next() {
			v := to.Node().ID()
			if u > v {
				continue
			}
			if err := g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("edge %d-%d: %w", u, v, err)
			}
		}
	}

	return g, nil
}
