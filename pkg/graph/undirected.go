package graph

import (
	"cmp"
	"errors"
	"maps"
	"slices"
)

var (
	// ErrDuplicateVertex is returned by [Undirected.AddVertex] when the vertex
	// is already present. Vertex identifiers must be unique.
	ErrDuplicateVertex = errors.New("duplicate vertex")

	// ErrUnknownVertex is returned by [Undirected.AddEdge] when either
	// endpoint has not been added to the graph.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrSelfLoop is returned by [Undirected.AddEdge] when both endpoints are
	// the same vertex. Colorings are only defined for loop-free graphs.
	ErrSelfLoop = errors.New("self loop")
)

// Graph is the read-only adjacency view consumed by the coloring algorithms.
// Implementations must be loop-free and symmetric: if v is in Neighbors(u)
// then u is in Neighbors(v).
//
// Vertex identifiers are totally ordered because several tie-break rules
// (degree ordering, DSatur selection) fall back to identity order.
type Graph[V cmp.Ordered] interface {
	// Vertices returns every vertex. The order carries no meaning.
	Vertices() []V
	// Neighbors returns the vertices adjacent to v.
	Neighbors(v V) []V
	// Degree returns the number of neighbors of v.
	Degree(v V) int
	// Adjacent reports whether u and v share an edge.
	Adjacent(u, v V) bool
	// Len returns the number of vertices.
	Len() int
}

// Edge is an undirected edge. Edges returned by [Undirected.Edges] always
// have U < V.
type Edge[V cmp.Ordered] struct {
	U V
	V V
}

// Undirected is a simple undirected graph backed by adjacency sets.
// Vertices keep their insertion order; neighbor lookups are O(1).
//
// The zero value is not usable - use New to create a graph.
// Undirected is not safe for concurrent mutation; concurrent reads of a
// graph that is no longer being modified are safe.
type Undirected[V cmp.Ordered] struct {
	vertices []V
	adj      map[V]map[V]struct{}
	edges    int
}

// New creates an empty undirected graph.
func New[V cmp.Ordered]() *Undirected[V] {
	return &Undirected[V]{adj: make(map[V]map[V]struct{})}
}

// AddVertex adds v to the graph.
// Returns ErrDuplicateVertex if v is already present.
func (g *Undirected[V]) AddVertex(v V) error {
	if _, ok := g.adj[v]; ok {
		return ErrDuplicateVertex
	}
	g.adj[v] = make(map[V]struct{})
	g.vertices = append(g.vertices, v)
	return nil
}

// AddEdge connects u and v. Adding an edge that already exists is a no-op.
// Returns ErrSelfLoop if u == v and ErrUnknownVertex if either endpoint is
// missing.
func (g *Undirected[V]) AddEdge(u, v V) error {
	if u == v {
		return ErrSelfLoop
	}
	nu, ok := g.adj[u]
	if !ok {
		return ErrUnknownVertex
	}
	nv, ok := g.adj[v]
	if !ok {
		return ErrUnknownVertex
	}
	if _, exists := nu[v]; exists {
		return nil
	}
	nu[v] = struct{}{}
	nv[u] = struct{}{}
	g.edges++
	return nil
}

// HasVertex reports whether v is in the graph.
func (g *Undirected[V]) HasVertex(v V) bool {
	_, ok := g.adj[v]
	return ok
}

// Vertices returns a copy of the vertices in insertion order.
func (g *Undirected[V]) Vertices() []V { return slices.Clone(g.vertices) }

// Neighbors returns the neighbors of v in ascending order.
// Returns nil if v has no neighbors or is not in the graph.
func (g *Undirected[V]) Neighbors(v V) []V {
	n := g.adj[v]
	if len(n) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(n))
}

// Degree returns the number of neighbors of v, or 0 if v is unknown.
func (g *Undirected[V]) Degree(v V) int { return len(g.adj[v]) }

// Adjacent reports whether u and v are connected.
func (g *Undirected[V]) Adjacent(u, v V) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Len returns the number of vertices.
func (g *Undirected[V]) Len() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *Undirected[V]) EdgeCount() int { return g.edges }

// Edges returns every edge once with U < V, sorted by (U, V).
func (g *Undirected[V]) Edges() []Edge[V] {
	out := make([]Edge[V], 0, g.edges)
	for _, u := range g.vertices {
		for v := range g.adj[u] {
			if u < v {
				out = append(out, Edge[V]{U: u, V: v})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge[V]) int {
		if c := cmp.Compare(a.U, b.U); c != 0 {
			return c
		}
		return cmp.Compare(a.V, b.V)
	})
	return out
}

var _ Graph[string] = (*Undirected[string])(nil)
