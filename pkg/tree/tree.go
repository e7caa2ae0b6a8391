package tree

import (
	"math"

	"github.com/leetpulse/dskit/pkg/geom"
)

// Layout defaults.
const (
	DefaultNodeSize     = 30.0
	DefaultLevelSpacing = 50.0
)

// Node is one binary tree node. Left and Right hold child ids; empty means
// no child.
type Node struct {
	ID    string `json:"id" bson:"id" yaml:"id"`
	Label string `json:"label" bson:"label" yaml:"label"`
	Left  string `json:"left,omitempty" bson:"left,omitempty" yaml:"left,omitempty"`
	Right string `json:"right,omitempty" bson:"right,omitempty" yaml:"right,omitempty"`
}

// Tree is a set of nodes plus the id of the root. An empty Root means the
// tree is empty.
type Tree struct {
	Nodes []Node `json:"nodes" bson:"nodes" yaml:"nodes"`
	Root  string `json:"root,omitempty" bson:"root,omitempty" yaml:"root,omitempty"`
}

// index maps ids to nodes. Later duplicates win.
func (t Tree) index() map[string]Node {
	m := make(map[string]Node, len(t.Nodes))
	for _, n := range t.Nodes {
		m[n.ID] = n
	}
	return m
}

// PlacedNode is a laid-out tree node.
type PlacedNode struct {
	ID       string     `json:"id" bson:"id"`
	Label    string     `json:"label" bson:"label"`
	Depth    int        `json:"depth" bson:"depth"`
	Position geom.Point `json:"position" bson:"position"`
}

// Edge connects the bottom of a parent to the top of a child.
type Edge struct {
	ParentID string     `json:"parent" bson:"parent"`
	ChildID  string     `json:"child" bson:"child"`
	From     geom.Point `json:"from" bson:"from"`
	To       geom.Point `json:"to" bson:"to"`
}

// Result is the output of [Layout]. Nodes are in BFS order.
type Result struct {
	Nodes  []PlacedNode `json:"nodes" bson:"nodes"`
	Edges  []Edge       `json:"edges" bson:"edges"`
	Width  float64      `json:"width" bson:"width"`
	Height float64      `json:"height" bson:"height"`

	pos map[string]geom.Point
}

// Position returns the position of the node with the given id.
func (r Result) Position(id string) (geom.Point, bool) {
	if r.pos != nil {
		p, ok := r.pos[id]
		return p, ok
	}
	for _, n := range r.Nodes {
		if n.ID == id {
			return n.Position, true
		}
	}
	return geom.Point{}, false
}

// MaxDepth returns the deepest laid-out level, or -1 for an empty layout.
func (r Result) MaxDepth() int {
	d := -1
	for _, n := range r.Nodes {
		d = max(d, n.Depth)
	}
	return d
}

type entry struct {
	id    string
	depth int
	// slot is the heap index minus 2^depth, kept as float64 so deep
	// chains do not overflow.
	slot float64
}

// Layout places the nodes of t reachable from t.Root.
func Layout(t Tree, size geom.Size, nodeSize, levelSpacing float64) Result {
	res := Result{Width: size.Width, Height: nodeSize, pos: map[string]geom.Point{}}
	if t.Root == "" {
		return res
	}

	nodes := t.index()
	visited := make(map[string]bool, len(nodes))
	queue := []entry{{id: t.Root}}
	maxDepth := 0

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		n, ok := nodes[e.id]
		if !ok || visited[e.id] {
			continue
		}
		visited[e.id] = true
		maxDepth = max(maxDepth, e.depth)

		count := math.Ldexp(1, e.depth)
		p := geom.Pt(
			(e.slot+1)*size.Width/(count+1),
			float64(e.depth)*levelSpacing+nodeSize/2,
		)
		res.Nodes = append(res.Nodes, PlacedNode{ID: n.ID, Label: n.Label, Depth: e.depth, Position: p})
		res.pos[n.ID] = p

		if n.Left != "" {
			queue = append(queue, entry{id: n.Left, depth: e.depth + 1, slot: e.slot * 2})
		}
		if n.Right != "" {
			queue = append(queue, entry{id: n.Right, depth: e.depth + 1, slot: e.slot*2 + 1})
		}
	}

	half := nodeSize / 2
	for _, n := range t.Nodes {
		parent, ok := res.pos[n.ID]
		if !ok {
			continue
		}
		for _, child := range [2]string{n.Left, n.Right} {
			if child == "" {
				continue
			}
			if c, ok := res.pos[child]; ok {
				res.Edges = append(res.Edges, Edge{
					ParentID: n.ID,
					ChildID:  child,
					From:     geom.Pt(parent.X, parent.Y+half),
					To:       geom.Pt(c.X, c.Y-half),
				})
			}
		}
	}

	res.Height = float64(maxDepth+1)*levelSpacing + nodeSize
	return res
}
