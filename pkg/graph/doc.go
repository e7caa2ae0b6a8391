// Package graph lays out general graphs given as adjacency lists.
//
// # Overview
//
// [Layout] takes an adjacency list, a canvas size and a node diameter and
// returns one position per node plus the edges to draw between them. Layout
// is a pure function: it never fails, never logs and never mutates its input.
//
//	res := graph.Layout(graph.Adjacency{{1, 2}, {0}, {0}}, geom.Sz(320, 200), 30)
//	for _, n := range res.Nodes {
//	    fmt.Println(n.Index, n.Position)
//	}
//
// # Algorithms
//
// Small graphs (at most [DefaultCircularThreshold] nodes) are placed evenly on
// a circle centered on the canvas, starting at 12 o'clock and proceeding
// clockwise. Larger graphs use a Fruchterman-Reingold force simulation seeded
// from a circular arrangement, so the result is deterministic for a given
// input.
//
// The canvas is never smaller than four node diameters in either dimension;
// the reported height is the height actually used.
//
// # Edges
//
// A graph is treated as undirected when its adjacency is symmetric (ignoring
// out-of-range entries). Undirected graphs emit each connection once;
// directed graphs emit every in-range entry as its own arrow. Directed edges
// expose an arrowhead via [Edge.ArrowHead].
//
// # Validation
//
// Out-of-range neighbor indices are silently ignored by [Layout]. Callers that
// want to reject such input run [Validate] first and inspect the returned
// diagnostics.
package graph
