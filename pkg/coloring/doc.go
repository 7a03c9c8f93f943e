// Package coloring computes proper vertex colorings of undirected graphs.
//
// A proper coloring assigns every vertex a non-negative integer so that no
// edge joins two vertices of the same color. The package provides:
//
//   - [Greedy]: colors vertices in a caller-supplied order, each getting the
//     smallest color unused by its already-colored neighbors
//   - [DegreeOrder], [RandomOrder]: vertex orders for Greedy
//   - [DSatur]: always colors the most saturated vertex next
//   - [IteratedGreedy]: local search that regroups a coloring by color,
//     reorders the groups and recolors, trying to use fewer colors
//
// # Determinism
//
// Greedy, DegreeOrder and DSatur are pure functions of their inputs.
// RandomOrder and IteratedGreedy draw only from the *rand.Rand they are
// given; [NewRand] with a fixed seed reproduces a whole run.
//
// # Degree Strategies
//
// By default the increasing and decreasing total degree strategies of
// IteratedGreedy leave the group order unchanged, so they only use up their
// share of the draws. Setting [IGOptions].SortByDegree makes them sort the
// groups by the sum of their members' degrees.
//
// # Example
//
//	g := graph.New[string]()
//	// ... add vertices and edges ...
//	initial := coloring.DSatur(g)
//	better, err := coloring.IteratedGreedy(g, initial, coloring.IGOptions{
//	    Limit:  100,
//	    Goal:   3,
//	    Ratios: coloring.DefaultRatios(),
//	    Rand:   coloring.NewRand(42),
//	})
package coloring
