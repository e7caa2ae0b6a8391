package graph_test

import (
	"fmt"

	"github.com/leetpulse/dskit/pkg/geom"
	"github.com/leetpulse/dskit/pkg/graph"
)

func ExampleLayout() {
	adj := graph.Adjacency{{1, 3}, {0, 2}, {1, 3}, {2, 0}}
	res := graph.Layout(adj, geom.Sz(320, 200), 30, graph.WithEdgeIDs(graph.SequentialIDs()))

	for _, n := range res.Nodes {
		fmt.Printf("%d (%.1f, %.1f)\n", n.Index, n.Position.X, n.Position.Y)
	}
	for _, e := range res.Edges {
		fmt.Printf("%s: %d-%d directed=%v\n", e.ID, e.FromIndex, e.ToIndex, e.Directed)
	}
	// Output:
	// 0 (160.0, 30.0)
	// 1 (230.0, 100.0)
	// 2 (160.0, 170.0)
	// 3 (90.0, 100.0)
	// e0: 0-1 directed=false
	// e1: 0-3 directed=false
	// e2: 1-2 directed=false
	// e3: 2-3 directed=false
}

func ExampleValidate() {
	for _, d := range graph.Validate(graph.Adjacency{{1, 4}, {0}}) {
		fmt.Println(d)
	}
	// Output:
	// node 0: neighbor 4 is out of range
}
