// Package dot converts a [model.Layout] to Graphviz DOT source and renders
// it through Graphviz.
//
// Positions computed by the layout engines are pinned in the DOT output
// (pos="x,y!" with inputscale=72), so the neato engine reproduces the
// layout instead of computing its own:
//
//	src := dot.ToDOT(l, dot.Options{})
//	svg, err := dot.RenderSVG(ctx, src)
//
// The Graphviz y axis points up, so y coordinates are flipped against the
// layout height. Pointer badges become small plaintext nodes next to their
// targets; pointer motions become dashed edges between the moved nodes.
package dot
