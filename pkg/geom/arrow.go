package geom

// Triangle is an arrowhead: the tip sits on the target and the two base
// corners sit behind it.
type Triangle struct {
	Tip   Point `json:"tip" bson:"tip"`
	Left  Point `json:"left" bson:"left"`
	Right Point `json:"right" bson:"right"`
}

// Points returns the corners in drawing order: tip, left, right.
func (t Triangle) Points() [3]Point { return [3]Point{t.Tip, t.Left, t.Right} }

// ArrowHead returns the triangle of an arrow pointing from 'from' to 'to'.
//
// The base is centered length units behind the tip, and the two corners are
// offset width/2 to either side, perpendicular to the direction of travel.
// A zero-length segment uses [MinDirectionLength] and yields a collapsed but
// finite triangle.
func ArrowHead(from, to Point, length, width float64) Triangle {
	d := to.Sub(from)
	l := d.Len()
	if l < MinDirectionLength {
		l = MinDirectionLength
	}
	u := d.Scale(1 / l)
	base := to.Sub(u.Scale(length))
	perp := u.Perp().Scale(width / 2)
	return Triangle{
		Tip:   to,
		Left:  base.Add(perp),
		Right: base.Sub(perp),
	}
}

// ControlPoint returns the control point of a curve between start and end,
// displaced offset units from the midpoint along the segment's normal.
func ControlPoint(start, end Point, offset float64) Point {
	d := end.Sub(start)
	l := d.Len()
	if l < MinDirectionLength {
		l = MinDirectionLength
	}
	n := d.Scale(1 / l).Perp()
	return start.Mid(end).Add(n.Scale(offset))
}

// QuadCurve is a quadratic Bezier curve.
type QuadCurve struct {
	Start   Point `json:"start" bson:"start"`
	Control Point `json:"control" bson:"control"`
	End     Point `json:"end" bson:"end"`
}

// At evaluates the curve at t in [0, 1].
func (c QuadCurve) At(t float64) Point {
	mt := 1 - t
	a := c.Start.Scale(mt * mt)
	b := c.Control.Scale(2 * mt * t)
	e := c.End.Scale(t * t)
	return a.Add(b).Add(e)
}
