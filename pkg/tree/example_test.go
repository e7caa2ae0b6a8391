package tree_test

import (
	"fmt"

	"github.com/leetpulse/dskit/pkg/geom"
	"github.com/leetpulse/dskit/pkg/tree"
)

func ExampleLayout() {
	t := tree.Tree{
		Root: "4",
		Nodes: []tree.Node{
			{ID: "4", Label: "4", Left: "2", Right: "6"},
			{ID: "2", Label: "2"},
			{ID: "6", Label: "6"},
		},
	}
	res := tree.Layout(t, geom.Sz(300, 0), tree.DefaultNodeSize, tree.DefaultLevelSpacing)
	for _, n := range res.Nodes {
		fmt.Printf("%s depth=%d (%.0f, %.0f)\n", n.Label, n.Depth, n.Position.X, n.Position.Y)
	}
	fmt.Println("height:", res.Height)
	// Output:
	// 4 depth=0 (150, 15)
	// 2 depth=1 (100, 65)
	// 6 depth=1 (200, 65)
	// height: 130
}
