package graph

import (
	"encoding/json"
	"fmt"

	cerrors "github.com/matzehuels/colorgraph/pkg/errors"
)

// =============================================================================
// Document - Graph Serialization
// =============================================================================

// Document is the canonical serialization format for undirected graphs.
// Used for graph files, API requests and cross-tool compatibility.
//
// Each edge is listed once; the direction of From/To carries no meaning.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Link `json:"edges"`
}

// Node is a serialized vertex.
type Node struct {
	ID string `json:"id"`
}

// Link is a serialized undirected edge.
type Link struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// =============================================================================
// Undirected ↔ Document Conversion
// =============================================================================

// FromUndirected converts a graph to its serialization format.
// Nodes keep the graph's insertion order; edges are sorted.
func FromUndirected(g *Undirected[string]) Document {
	vertices := g.Vertices()
	edges := g.Edges()

	out := Document{
		Nodes: make([]Node, len(vertices)),
		Edges: make([]Link, len(edges)),
	}
	for i, v := range vertices {
		out.Nodes[i] = Node{ID: v}
	}
	for i, e := range edges {
		out.Edges[i] = Link{From: e.U, To: e.V}
	}
	return out
}

// ToUndirected converts a Document to a graph.
// Returns an INVALID_GRAPH error for empty or malformed IDs, duplicate
// vertices, self loops and edges referencing unknown vertices.
func ToUndirected(doc Document) (*Undirected[string], error) {
	g := New[string]()

	for _, n := range doc.Nodes {
		if err := cerrors.ValidateVertexID(n.ID); err != nil {
			return nil, err
		}
		if err := g.AddVertex(n.ID); err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeInvalidGraph, err, "add vertex %s", n.ID)
		}
	}

	for _, e := range doc.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeInvalidGraph, err, "add edge %s-%s", e.From, e.To)
		}
	}

	return g, nil
}

// UnmarshalGraph deserializes JSON bytes to a Document.
func UnmarshalGraph(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}
