package tree

import (
	"math"
	"strconv"
	"testing"

	"github.com/leetpulse/dskit/pkg/geom"
	"github.com/leetpulse/dskit/pkg/pointer"
)

const eps = 1e-9

func nearPt(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

// complete returns a complete tree with nodes "1".."n" in heap order.
func complete(n int) Tree {
	t := Tree{Root: "1"}
	for i := 1; i <= n; i++ {
		node := Node{ID: strconv.Itoa(i), Label: strconv.Itoa(i)}
		if 2*i <= n {
			node.Left = strconv.Itoa(2 * i)
		}
		if 2*i+1 <= n {
			node.Right = strconv.Itoa(2*i + 1)
		}
		t.Nodes = append(t.Nodes, node)
	}
	return t
}

func TestLayoutTwoNodes(t *testing.T) {
	tr := Tree{Root: "a", Nodes: []Node{{ID: "a", Label: "A", Left: "b"}, {ID: "b", Label: "B"}}}
	res := Layout(tr, geom.Sz(300, 0), 30, 50)

	if len(res.Nodes) != 2 || len(res.Edges) != 1 {
		t.Fatalf("got %d nodes %d edges, want 2 and 1", len(res.Nodes), len(res.Edges))
	}
	a, _ := res.Position("a")
	b, _ := res.Position("b")
	if !nearPt(a, geom.Pt(150, 15)) {
		t.Errorf("a = %v, want (150, 15)", a)
	}
	if !nearPt(b, geom.Pt(100, 65)) {
		t.Errorf("b = %v, want (100, 65)", b)
	}
	e := res.Edges[0]
	if e.ParentID != "a" || e.ChildID != "b" {
		t.Errorf("edge = %s→%s", e.ParentID, e.ChildID)
	}
	if !nearPt(e.From, geom.Pt(150, 30)) || !nearPt(e.To, geom.Pt(100, 50)) {
		t.Errorf("edge geometry = %v → %v", e.From, e.To)
	}
	if res.Height != 130 {
		t.Errorf("Height = %v, want 130", res.Height)
	}
}

func TestLayoutHeapPositions(t *testing.T) {
	res := Layout(complete(7), geom.Sz(800, 0), 30, 50)
	if len(res.Nodes) != 7 {
		t.Fatalf("got %d nodes", len(res.Nodes))
	}
	for i, n := range res.Nodes {
		heap := i + 1
		depth := int(math.Floor(math.Log2(float64(heap))))
		count := 1 << depth
		wantX := float64(heap-count+1) * 800 / float64(count+1)
		wantY := float64(depth)*50 + 15
		if n.ID != strconv.Itoa(heap) {
			t.Errorf("BFS order: position %d holds %s", i, n.ID)
		}
		if n.Depth != depth || !nearPt(n.Position, geom.Pt(wantX, wantY)) {
			t.Errorf("node %s at depth %d %v, want depth %d (%v, %v)", n.ID, n.Depth, n.Position, depth, wantX, wantY)
		}
	}
	if len(res.Edges) != 6 {
		t.Errorf("got %d edges, want 6", len(res.Edges))
	}
	if res.MaxDepth() != 2 {
		t.Errorf("MaxDepth = %d", res.MaxDepth())
	}
}

func TestLayoutRightOnlyChild(t *testing.T) {
	tr := Tree{Root: "r", Nodes: []Node{{ID: "r", Right: "c"}, {ID: "c"}}}
	res := Layout(tr, geom.Sz(300, 0), 30, 50)
	c, _ := res.Position("c")
	if !nearPt(c, geom.Pt(200, 65)) {
		t.Errorf("right child = %v, want (200, 65)", c)
	}
}

func TestLayoutEmptyRoot(t *testing.T) {
	res := Layout(Tree{Nodes: []Node{{ID: "a"}}}, geom.Sz(300, 300), 30, 50)
	if len(res.Nodes) != 0 || len(res.Edges) != 0 {
		t.Fatal("tree without root should produce nothing")
	}
	if res.Height != 30 {
		t.Errorf("Height = %v, want nodeSize", res.Height)
	}
	if res.MaxDepth() != -1 {
		t.Errorf("MaxDepth = %d, want -1", res.MaxDepth())
	}
}

func TestLayoutTolerance(t *testing.T) {
	tests := []struct {
		name      string
		tree      Tree
		wantNodes int
		wantEdges int
	}{
		{"unknown root", Tree{Root: "x", Nodes: []Node{{ID: "a"}}}, 0, 0},
		{"unresolved child", Tree{Root: "a", Nodes: []Node{{ID: "a", Left: "ghost", Right: "b"}, {ID: "b"}}}, 2, 1},
		{"unreachable", Tree{Root: "a", Nodes: []Node{{ID: "a"}, {ID: "island"}}}, 1, 0},
		{"cycle", Tree{Root: "a", Nodes: []Node{{ID: "a", Left: "b"}, {ID: "b", Left: "a"}}}, 2, 2},
		{"shared child", Tree{Root: "a", Nodes: []Node{{ID: "a", Left: "b", Right: "b"}, {ID: "b"}}}, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Layout(tt.tree, geom.Sz(300, 0), 30, 50)
			if len(res.Nodes) != tt.wantNodes || len(res.Edges) != tt.wantEdges {
				t.Errorf("got %d nodes %d edges, want %d and %d", len(res.Nodes), len(res.Edges), tt.wantNodes, tt.wantEdges)
			}
		})
	}
}

func TestLayoutSharedChildFirstVisitWins(t *testing.T) {
	tr := Tree{Root: "a", Nodes: []Node{{ID: "a", Left: "b", Right: "b"}, {ID: "b"}}}
	res := Layout(tr, geom.Sz(300, 0), 30, 50)
	b, _ := res.Position("b")
	if !nearPt(b, geom.Pt(100, 65)) {
		t.Errorf("b = %v, want left slot (100, 65)", b)
	}
}

func TestLayoutDeepChain(t *testing.T) {
	var tr Tree
	tr.Root = "0"
	const depth = 80
	for i := 0; i <= depth; i++ {
		n := Node{ID: strconv.Itoa(i)}
		if i < depth {
			n.Left = strconv.Itoa(i + 1)
		}
		tr.Nodes = append(tr.Nodes, n)
	}
	res := Layout(tr, geom.Sz(400, 0), 20, 40)
	last, ok := res.Position(strconv.Itoa(depth))
	if !ok {
		t.Fatal("deepest node not placed")
	}
	if math.IsNaN(last.X) || last.X <= 0 || last.X >= 400 {
		t.Errorf("deep node x = %v, want inside (0, 400)", last.X)
	}
}

func TestNewFrame(t *testing.T) {
	res := Layout(complete(3), geom.Sz(300, 0), 30, 50)
	tests := []struct {
		motions     int
		top, bottom float64
	}{{0, 0, 0}, {2, 24, 0}, {3, 24, 18}}
	for _, tt := range tests {
		f := NewFrame(res, tt.motions, 30)
		if math.Abs(f.Top-tt.top) > eps || math.Abs(f.Bottom-tt.bottom) > eps {
			t.Errorf("motions=%d: padding %v/%v, want %v/%v", tt.motions, f.Top, f.Bottom, tt.top, tt.bottom)
		}
		if math.Abs(f.Height-(res.Height+tt.top+tt.bottom)) > eps {
			t.Errorf("motions=%d: height %v", tt.motions, f.Height)
		}
		if got := f.Offset(geom.Pt(1, 2)); math.Abs(got.Y-(2+tt.top)) > eps {
			t.Errorf("Offset = %v", got)
		}
	}
}

func TestResultMotions(t *testing.T) {
	res := Layout(complete(3), geom.Sz(300, 0), 30, 50)
	routed := res.Motions([]pointer.TreeMotion{
		{Name: "cur", FromID: "1", ToID: "2"},
		{Name: "ghost", FromID: "1", ToID: "9"},
		{Name: "same", FromID: "3", ToID: "3"},
	}, 30)
	if len(routed) != 1 || routed[0].Motion.Name != "cur" {
		t.Fatalf("routed = %+v", routed)
	}
	from, _ := res.Position("1")
	if routed[0].Path.Curve.Start.X >= from.X {
		t.Errorf("motion toward the left should leave from the left side of the node")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		tree Tree
		want []Diagnostic
	}{
		{"clean", complete(5), nil},
		{"empty", Tree{}, nil},
		{"missing root", Tree{Root: "x", Nodes: []Node{{ID: "a"}}}, []Diagnostic{{NodeID: "x", Problem: ProblemMissingRoot}}},
		{
			"unresolved and unreachable",
			Tree{Root: "a", Nodes: []Node{{ID: "a", Left: "zz"}, {ID: "b"}}},
			[]Diagnostic{
				{NodeID: "a", ChildID: "zz", Problem: ProblemUnresolved},
				{NodeID: "b", Problem: ProblemUnreachable},
			},
		},
		{"duplicate", Tree{Root: "a", Nodes: []Node{{ID: "a"}, {ID: "a"}}}, []Diagnostic{{NodeID: "a", Problem: ProblemDuplicateID}}},
		{
			"cycle",
			Tree{Root: "a", Nodes: []Node{{ID: "a", Left: "b"}, {ID: "b", Right: "a"}}},
			[]Diagnostic{{NodeID: "b", ChildID: "a", Problem: ProblemRevisited}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.tree)
			if len(got) != len(tt.want) {
				t.Fatalf("Validate = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("diag %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
