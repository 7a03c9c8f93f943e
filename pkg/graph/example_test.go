package graph_test

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/colorgraph/pkg/graph"
)

func ExampleWriteGraph() {
	g := graph.New[string]()
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")
	_ = g.AddEdge("B", "A")

	var buf bytes.Buffer
	if err := graph.WriteGraph(g, &buf); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(buf.String())
	// Output:
	// {
	//   "nodes": [
	//     {
	//       "id": "A"
	//     },
	//     {
	//       "id": "B"
	//     }
	//   ],
	//   "edges": [
	//     {
	//       "from": "A",
	//       "to": "B"
	//     }
	//   ]
	// }
}

func ExampleReadGraph() {
	jsonData := `{
		"nodes": [{"id": "A"}, {"id": "B"}, {"id": "C"}],
		"edges": [{"from": "A", "to": "B"}, {"from": "C", "to": "A"}]
	}`

	g, err := graph.ReadGraph(bytes.NewReader([]byte(jsonData)))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Vertices:", g.Len())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Neighbors of A:", g.Neighbors("A"))
	// Output:
	// Vertices: 3
	// Edges: 2
	// Neighbors of A: [B C]
}
