package graph

import (
	"context"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/leetpulse/dskit/pkg/geom"
)

const (
	// DefaultIterations is the number of force simulation steps.
	DefaultIterations = 50

	// DefaultCircularThreshold is the largest node count laid out on a circle.
	DefaultCircularThreshold = 6

	// DefaultNodeSize is the standard node diameter.
	DefaultNodeSize = 30.0

	// EdgeHeadLength and EdgeHeadWidth size the arrowheads of directed edges.
	EdgeHeadLength = 8.0
	EdgeHeadWidth  = 6.0

	minCanvasNodes = 4
	minRadius      = 10.0
)

// Adjacency lists, for each node, the indices of its neighbors.
type Adjacency [][]int

// Len returns the number of nodes.
func (a Adjacency) Len() int { return len(a) }

// inRange reports whether j is a valid node index.
func (a Adjacency) inRange(j int) bool { return j >= 0 && j < len(a) }

// Node is a positioned graph node.
type Node struct {
	Index    int        `json:"index" bson:"index"`
	Position geom.Point `json:"position" bson:"position"`
}

// Edge is a line between two positioned nodes.
type Edge struct {
	ID        string     `json:"id" bson:"id"`
	FromIndex int        `json:"from_index" bson:"from_index"`
	ToIndex   int        `json:"to_index" bson:"to_index"`
	From      geom.Point `json:"from" bson:"from"`
	To        geom.Point `json:"to" bson:"to"`
	Directed  bool       `json:"directed" bson:"directed"`
}

// ArrowHead returns the arrowhead triangle at the target end of the edge.
// The tip sits on the target node's center.
func (e Edge) ArrowHead(length, width float64) geom.Triangle {
	return geom.ArrowHead(e.From, e.To, length, width)
}

// Result is the output of [Layout].
type Result struct {
	Nodes      []Node  `json:"nodes" bson:"nodes"`
	Edges      []Edge  `json:"edges" bson:"edges"`
	Width      float64 `json:"width" bson:"width"`
	Height     float64 `json:"height" bson:"height"`
	Undirected bool    `json:"undirected" bson:"undirected"`
}

// Position returns the position of node i.
func (r Result) Position(i int) (geom.Point, bool) {
	if i < 0 || i >= len(r.Nodes) {
		return geom.Point{}, false
	}
	return r.Nodes[i].Position, true
}

// Positions returns the node positions in index order.
func (r Result) Positions() []geom.Point {
	out := make([]geom.Point, len(r.Nodes))
	for i, n := range r.Nodes {
		out[i] = n.Position
	}
	return out
}

// Option configures [Layout].
type Option func(*options)

type options struct {
	ctx               context.Context
	iterations        int
	circularThreshold int
	newID             func() string
}

// WithIterations sets the number of force simulation steps. Values below
// zero are treated as zero.
func WithIterations(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.iterations = n
	}
}

// WithContext stops the force simulation early once ctx is done. The
// result then holds the positions reached so far; callers check ctx.Err.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithCircularThreshold sets the largest node count that uses the circular
// layout.
func WithCircularThreshold(n int) Option {
	return func(o *options) { o.circularThreshold = n }
}

// WithEdgeIDs replaces the edge ID generator. The default generates random
// UUIDs; tests and caches use a deterministic generator.
func WithEdgeIDs(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// SequentialIDs returns a generator producing "e0", "e1", ...
func SequentialIDs() func() string {
	n := 0
	return func() string {
		id := "e" + strconv.Itoa(n)
		n++
		return id
	}
}

// Layout positions the nodes of adj on a canvas of the given size.
func Layout(adj Adjacency, size geom.Size, nodeSize float64, opts ...Option) Result {
	o := options{
		ctx:               context.Background(),
		iterations:        DefaultIterations,
		circularThreshold: DefaultCircularThreshold,
		newID:             uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}

	safe := size.AtLeast(nodeSize * minCanvasNodes)
	n := adj.Len()

	var positions []geom.Point
	if n <= o.circularThreshold {
		positions = Circular(n, safe.Center(), math.Max(minRadius, safe.Min()*0.5-nodeSize))
	} else {
		positions = forceDirected(o.ctx, adj, safe, nodeSize, o.iterations)
	}

	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node{Index: i, Position: positions[i]}
	}

	undirected := IsUndirected(adj)
	return Result{
		Nodes:      nodes,
		Edges:      buildEdges(adj, positions, undirected, o.newID),
		Width:      safe.Width,
		Height:     safe.Height,
		Undirected: undirected,
	}
}

// Circular places count points evenly on a circle, the first at the top.
func Circular(count int, center geom.Point, radius float64) []geom.Point {
	out := make([]geom.Point, count)
	div := float64(max(count, 1))
	for i := range out {
		angle := float64(i)/div*2*math.Pi - math.Pi/2
		out[i] = geom.Pt(center.X+math.Cos(angle)*radius, center.Y+math.Sin(angle)*radius)
	}
	return out
}

// PreferredHeight is the canvas height suggested for a graph of n nodes when
// the caller has no height of its own: 14 points per node, between 180 and 260.
func PreferredHeight(n int) float64 {
	return geom.Clamp(float64(n)*14, 180, 260)
}
