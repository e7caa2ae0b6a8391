package geom

import (
	"fmt"
	"math"
)

// MinDirectionLength is the smallest segment length used when normalizing a
// direction vector. Shorter segments are treated as having this length so
// degenerate input never divides by zero.
const MinDirectionLength = 0.001

// Point is a 2D position or vector.
type Point struct {
	X float64 `json:"x" bson:"x" yaml:"x"`
	Y float64 `json:"y" bson:"y" yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p multiplied by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Len returns the Euclidean length of p.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float64 { return q.Sub(p).Len() }

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point { return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2} }

// Perp returns p rotated by 90 degrees counter-clockwise in screen space.
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

// Eq reports whether p and q are the same point.
func (p Point) Eq(q Point) bool { return p.X == q.X && p.Y == q.Y }

// String formats the point with two decimals.
func (p Point) String() string { return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y) }

// Size holds canvas dimensions.
type Size struct {
	Width  float64 `json:"width" bson:"width" yaml:"width"`
	Height float64 `json:"height" bson:"height" yaml:"height"`
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size { return Size{Width: w, Height: h} }

// Center returns the center point of a canvas of this size.
func (s Size) Center() Point { return Point{s.Width / 2, s.Height / 2} }

// Min returns the smaller of the two dimensions.
func (s Size) Min() float64 { return math.Min(s.Width, s.Height) }

// AtLeast returns s with each dimension raised to at least m.
func (s Size) AtLeast(m float64) Size {
	return Size{math.Max(s.Width, m), math.Max(s.Height, m)}
}

// Clamp limits v to [lo, hi]. When lo > hi the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
