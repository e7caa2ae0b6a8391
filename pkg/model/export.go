package model

import (
	"slices"
	"strconv"

	"github.com/leetpulse/dskit/pkg/geom"
	"github.com/leetpulse/dskit/pkg/graph"
	"github.com/leetpulse/dskit/pkg/pointer"
	"github.com/leetpulse/dskit/pkg/tree"
)

// Params controls how engine results are flattened into a [Layout].
type Params struct {
	NodeSize float64
	Badge    pointer.BadgeMetrics
	Palette  pointer.Palette
}

// DefaultParams returns the standard node size, badge metrics and palette.
func DefaultParams() Params {
	return Params{
		NodeSize: graph.DefaultNodeSize,
		Badge:    pointer.DefaultBadgeMetrics(),
		Palette:  pointer.DefaultPalette,
	}
}

// ExportGraph flattens a graph layout and the document's annotations.
func ExportGraph(doc GraphDocument, r graph.Result, p Params) Layout {
	routed := r.Motions(doc.Motions, p.NodeSize)
	// Lanes follow input order, so padding counts skipped motions too.
	top, bottom := pointer.Padding(len(doc.Motions), p.NodeSize)
	shift := func(pt geom.Point) geom.Point { return geom.Pt(pt.X, pt.Y+top) }

	l := Layout{
		VizType:    KindGraph,
		Width:      r.Width,
		Height:     r.Height + top + bottom,
		PadTop:     top,
		PadBottom:  bottom,
		NodeSize:   p.NodeSize,
		Nodes:      make([]Node, 0, len(r.Nodes)),
		Edges:      make([]Edge, 0, len(r.Edges)),
		Undirected: r.Undirected,
	}
	for _, n := range r.Nodes {
		l.Nodes = append(l.Nodes, Node{
			ID:       strconv.Itoa(n.Index),
			Label:    doc.Label(n.Index),
			Position: shift(n.Position),
		})
	}
	for _, e := range r.Edges {
		out := Edge{
			ID:       e.ID,
			From:     strconv.Itoa(e.FromIndex),
			To:       strconv.Itoa(e.ToIndex),
			Start:    shift(e.From),
			End:      shift(e.To),
			Directed: e.Directed,
		}
		if e.Directed {
			h := geom.ArrowHead(out.Start, out.End, graph.EdgeHeadLength, graph.EdgeHeadWidth)
			out.Head = &h
		}
		l.Edges = append(l.Edges, out)
	}

	groups := pointer.GroupByIndex(doc.Pointers)
	for _, n := range r.Nodes {
		l.Pointers = append(l.Pointers, stack(groups[n.Index], strconv.Itoa(n.Index), shift(n.Position), p)...)
	}
	for _, m := range routed {
		l.Motions = append(l.Motions, Motion{
			ID:     m.Motion.ID(),
			Name:   m.Motion.Name,
			From:   strconv.Itoa(m.Motion.FromIndex),
			To:     strconv.Itoa(m.Motion.ToIndex),
			Color:  m.Motion.ResolvedColor(p.Palette),
			Curve:  shiftCurve(m.Path.Curve, top),
			Head:   shiftTriangle(m.Path.Head, top),
			Lane:   m.Path.Lane,
			Bottom: m.Path.Bottom,
		})
	}
	return l
}

// ExportTree flattens a tree layout and the document's annotations.
func ExportTree(doc TreeDocument, r tree.Result, p Params) Layout {
	routed := r.Motions(doc.Motions, p.NodeSize)
	frame := tree.NewFrame(r, len(doc.Motions), p.NodeSize)

	l := Layout{
		VizType:   KindTree,
		Width:     frame.Width,
		Height:    frame.Height,
		PadTop:    frame.Top,
		PadBottom: frame.Bottom,
		NodeSize:  p.NodeSize,
		Nodes:     make([]Node, 0, len(r.Nodes)),
		Edges:     make([]Edge, 0, len(r.Edges)),
	}
	for _, n := range r.Nodes {
		l.Nodes = append(l.Nodes, Node{
			ID:          n.ID,
			Label:       n.Label,
			Position:    frame.Offset(n.Position),
			Depth:       n.Depth,
			Highlighted: slices.Contains(doc.Highlighted, n.ID),
		})
	}
	for _, e := range r.Edges {
		l.Edges = append(l.Edges, Edge{
			ID:    e.ParentID + "->" + e.ChildID,
			From:  e.ParentID,
			To:    e.ChildID,
			Start: frame.Offset(e.From),
			End:   frame.Offset(e.To),
		})
	}

	groups := pointer.GroupByNode(doc.Pointers)
	for _, n := range r.Nodes {
		l.Pointers = append(l.Pointers, stack(groups[n.ID], n.ID, frame.Offset(n.Position), p)...)
	}
	for _, m := range routed {
		l.Motions = append(l.Motions, Motion{
			ID:     m.Motion.ID(),
			Name:   m.Motion.Name,
			From:   m.Motion.FromID,
			To:     m.Motion.ToID,
			Color:  m.Motion.ResolvedColor(p.Palette),
			Curve:  shiftCurve(m.Path.Curve, frame.Top),
			Head:   shiftTriangle(m.Path.Head, frame.Top),
			Lane:   m.Path.Lane,
			Bottom: m.Path.Bottom,
		})
	}
	return l
}

// stack places a node's pointer badges top-down in input order, the last
// badge resting on the node's top edge.
func stack(markers []pointer.Marker, target string, center geom.Point, p Params) []Pointer {
	if len(markers) == 0 {
		return nil
	}
	h := p.Badge.Height()
	y := center.Y + p.Badge.StackOffset(len(markers), p.NodeSize)
	out := make([]Pointer, 0, len(markers))
	for _, m := range markers {
		out = append(out, Pointer{
			ID:       m.ID(),
			Name:     m.Name,
			Target:   target,
			Color:    m.ResolvedColor(p.Palette),
			Position: geom.Pt(center.X, y+h/2),
			Width:    p.Badge.Width(len([]rune(m.Name))),
			Height:   h,
			FontSize: p.Badge.FontSize,
		})
		y += h + p.Badge.Spacing
	}
	return out
}

func shiftCurve(c geom.QuadCurve, dy float64) geom.QuadCurve {
	d := geom.Pt(0, dy)
	return geom.QuadCurve{Start: c.Start.Add(d), Control: c.Control.Add(d), End: c.End.Add(d)}
}

func shiftTriangle(t geom.Triangle, dy float64) geom.Triangle {
	d := geom.Pt(0, dy)
	return geom.Triangle{Tip: t.Tip.Add(d), Left: t.Left.Add(d), Right: t.Right.Add(d)}
}
