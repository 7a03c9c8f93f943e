// Package graph provides the undirected graph model consumed by the coloring
// algorithms, plus its serialization format.
//
// # Architecture
//
//   - [Graph]: read-only adjacency contract every algorithm accepts
//   - [Undirected]: set-backed implementation with O(1) adjacency checks
//   - [Document], [Node], [Link]: JSON wire format
//   - [FromGonum]: adapter for gonum.org/v1/gonum/graph.Undirected values
//
// Vertices may be any cmp.Ordered type. Generated graphs use string IDs
// ("A", "B", ...); graphs copied from gonum use int64 node IDs.
//
// # Graph Serialization
//
// Graphs use a simple node-link JSON format. Each edge is listed once:
//
//	{
//	  "nodes": [{"id": "A"}, {"id": "B"}],
//	  "edges": [{"from": "A", "to": "B"}]
//	}
//
// Common operations:
//
//	g, _ := graph.ReadGraphFile("graph.json")   // File → Undirected
//	graph.WriteGraphFile(g, "output.json")      // Undirected → File
//	data, _ := graph.MarshalGraph(g)            // Undirected → []byte
//	doc, _ := graph.UnmarshalGraph(data)        // []byte → Document
//
// # Concurrency
//
// An [Undirected] is safe for concurrent reads once construction is
// finished. The coloring algorithms never mutate a graph.
package graph
