// Package geom provides the small set of 2D primitives shared by the layout
// engines and render sinks.
//
// Coordinates follow screen conventions: the origin is the top-left corner of
// the canvas, x grows to the right and y grows downward. All values are
// float64 points.
//
// # Types
//
//   - [Point]: a position or displacement vector
//   - [Size]: canvas dimensions
//   - [Triangle]: an arrowhead (tip plus two base corners)
//   - [QuadCurve]: a quadratic Bezier curve used for pointer motions
//
// # Arrow Geometry
//
// [ArrowHead] and [ControlPoint] compute the triangle at the end of a
// directed edge and the control point of a curved connector:
//
//	head := geom.ArrowHead(from, to, 6, 4)
//	ctrl := geom.ControlPoint(start, end, -24)
package geom
