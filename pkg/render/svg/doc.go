// Package svg renders a [model.Layout] as a standalone SVG document.
//
// The renderer draws, in order: edges (with arrowheads for directed graphs),
// nodes with their labels, pointer motion curves, and finally the pointer
// badge stacks so that badges are never hidden behind other shapes.
//
//	l := model.ExportGraph(doc, graph.Layout(doc.Adjacency, size, 30), model.DefaultParams())
//	out := svg.RenderSVG(l, svg.WithTheme(svg.DarkTheme()))
//
// Appearance is controlled by a [Theme]. Element ids are stable
// (node-<id>, edge-<id>, pointer-<id>, motion-<id>) so that callers can
// style or animate them with CSS.
package svg
