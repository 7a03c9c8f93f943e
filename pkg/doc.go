// Package pkg holds the colorgraph libraries for coloring undirected graphs
// and comparing the heuristics that do it.
//
// # Overview
//
// A coloring gives every vertex a color such that adjacent vertices never
// share one. Finding the fewest colors is NP-hard, so colorgraph ships three
// heuristics and a harness that runs them side by side:
//
//  1. [coloring] - Greedy, DSatur and Iterated Greedy, plus vertex orders
//  2. [graph] - Undirected graph model, JSON format and gonum adapter
//  3. [graph/gen] - Seeded random graph generators
//  4. [harness] - Algorithm registry, single runs and benchmarks
//  5. [config] - TOML settings with per-key fallback to defaults
//
// Supporting packages:
//
//   - [errors] - Coded errors shared by the CLI and the API
//   - [cache] - In-process memo of API responses
//   - [ratelimit] - Fixed-window request limits, in memory or in Redis
//   - [observability] - Hooks for runs, iterations and HTTP requests
//   - [buildinfo] - Version stamped at link time
//
// # Architecture
//
// The typical data flow:
//
//	colorgraph.toml / graph.json
//	         ↓
//	    [config] or [graph] (settings, graph)
//	         ↓
//	    [harness] (run every registered algorithm)
//	         ↓
//	    [coloring] (Greedy, DSatur, Iterated Greedy)
//	         ↓
//	    CLI output, JSON file or HTTP response
//
// # Quick Start
//
//	rng := coloring.NewRand(42)
//	g, _ := gen.ErdosRenyi(12, 0.3, rng)
//
//	c := coloring.DSatur(g)
//	fmt.Println(c.NumColors(), c.Validate(g))
//
//	better, _ := coloring.IteratedGreedy(g, c, coloring.IGOptions{
//	    Limit:  100,
//	    Goal:   1,
//	    Ratios: coloring.DefaultRatios(),
//	    Rand:   rng,
//	})
//	fmt.Println(better.NumColors())
//
// The cmd/colorgraph binary wraps these packages in a CLI and an HTTP API.
package pkg
