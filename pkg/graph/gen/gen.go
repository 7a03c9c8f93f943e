// Package gen generates random undirected graphs for benchmarking the
// coloring algorithms.
//
// Two models are provided:
//
//   - [RandomEdges]: every vertex draws a fixed number of random partners;
//     draws that would create a loop or a duplicate edge are discarded
//     without redrawing, so vertices end up with at most that many new edges.
//   - [ErdosRenyi]: the G(n, p) model, each unordered pair is an edge with
//     probability p.
//
// Vertices are named with [Letters] ("A", "B", ..., "Z", "AA", ...) in
// creation order. Both generators draw from the caller's *rand.Rand, so a
// seeded source reproduces the same graph.
package gen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/colorgraph/pkg/graph"
)

var (
	// ErrTooFewVertices is returned when n < 1.
	ErrTooFewVertices = errors.New("gen: need at least one vertex")

	// ErrInvalidEdgeCount is returned when the per-vertex edge count is negative.
	ErrInvalidEdgeCount = errors.New("gen: edge count must not be negative")

	// ErrInvalidProbability is returned when p is outside [0, 1].
	ErrInvalidProbability = errors.New("gen: probability out of range")

	// ErrNeedRandSource is returned when rng is nil.
	ErrNeedRandSource = errors.New("gen: rng is required")
)

// Letters returns the spreadsheet-column name for idx: 0→"A", 25→"Z",
// 26→"AA". Panics if idx < 0.
func Letters(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("gen.Letters: idx must be >= 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+i%26))
	}
	slices.Reverse(runes)
	return string(runes)
}

// Empty returns a graph with n isolated vertices named by [Letters].
func Empty(n int) (*graph.Undirected[string], error) {
	if n < 1 {
		return nil, fmt.Errorf("Empty: n=%d: %w", n, ErrTooFewVertices)
	}
	g := graph.New[string]()
	for i := range n {
		if err := g.AddVertex(Letters(i)); err != nil {
			return nil, fmt.Errorf("Empty: AddVertex(%s): %w", Letters(i), err)
		}
	}
	return g, nil
}

// RandomEdges returns a graph on n vertices where each vertex, in creation
// order, draws edgesPerVertex partners uniformly at random. A draw that
// hits the vertex itself or an existing neighbor is dropped.
func RandomEdges(n, edgesPerVertex int, rng *rand.Rand) (*graph.Undirected[string], error) {
	if edgesPerVertex < 0 {
		return nil, fmt.Errorf("RandomEdges: edges=%d: %w", edgesPerVertex, ErrInvalidEdgeCount)
	}
	if rng == nil {
		return nil, fmt.Errorf("RandomEdges: %w", ErrNeedRandSource)
	}
	g, err := Empty(n)
	if err != nil {
		return nil, fmt.Errorf("RandomEdges: %w", err)
	}

	vertices := g.Vertices()
	for _, v := range vertices {
		for range edgesPerVertex {
			choice := vertices[rng.IntN(len(vertices))]
			if choice == v || g.Adjacent(v, choice) {
				continue
			}
			if err := g.AddEdge(v, choice); err != nil {
				return nil, fmt.Errorf("RandomEdges: AddEdge(%s, %s): %w", v, choice, err)
			}
		}
	}
	return g, nil
}

// ErdosRenyi returns a G(n, p) graph. Pairs (i, j) with i < j are visited
// in ascending order and each is kept when p >= rng.Float64().
func ErdosRenyi(n int, p float64, rng *rand.Rand) (*graph.Undirected[string], error) {
	if !(p >= 0 && p <= 1) {
		return nil, fmt.Errorf("ErdosRenyi: p=%g: %w", p, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, fmt.Errorf("ErdosRenyi: %w", ErrNeedRandSource)
	}
	g, err := Empty(n)
	if err != nil {
		return nil, fmt.Errorf("ErdosRenyi: %w", err)
	}

	vertices := g.Vertices()
	for i := range vertices {
		for j := i + 1; j < len(vertices); j++ {
			if p >= rng.Float64() {
				if err := g.AddEdge(vertices[i], vertices[j]); err != nil {
					return nil, fmt.Errorf("ErdosRenyi: AddEdge(%s, %s): %w", vertices[i], vertices[j], err)
				}
			}
		}
	}
	return g, nil
}
