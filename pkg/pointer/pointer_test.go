package pointer

import (
	"math"
	"testing"

	"github.com/leetpulse/dskit/pkg/geom"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func nearPt(a, b geom.Point) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

func TestSlotFor(t *testing.T) {
	tests := []struct {
		name string
		want Slot
	}{
		{"i", SlotSuccess},
		{"j", SlotSecondary},
		{"left", SlotSuccess},
		{"right", SlotWarning},
		{"slow", SlotDanger},
		{"fast", SlotWarning},
		{"mid", SlotSecondary},
		{"", SlotPrimary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SlotFor(tt.name); got != tt.want {
				t.Errorf("SlotFor(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestSlotForCaseInsensitive(t *testing.T) {
	if SlotFor("Left") != SlotFor("left") || SlotFor("LEFT") != SlotFor("left") {
		t.Error("slot assignment should ignore case")
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve(DefaultPalette, "i", "#123456"); got != "#123456" {
		t.Errorf("explicit color ignored: %s", got)
	}
	if got := Resolve(DefaultPalette, "i", ""); got != DefaultPalette[SlotSuccess] {
		t.Errorf("Resolve(i) = %s, want %s", got, DefaultPalette[SlotSuccess])
	}
}

func TestPaletteWith(t *testing.T) {
	p := DefaultPalette.With(map[string]string{"Danger": "#000000", "bogus": "#FFFFFF", "accent": ""})
	if p[SlotDanger] != "#000000" {
		t.Errorf("danger override not applied: %s", p[SlotDanger])
	}
	if p[SlotAccent] != DefaultPalette[SlotAccent] {
		t.Errorf("empty override should be ignored")
	}
	if DefaultPalette[SlotDanger] == "#000000" {
		t.Error("With mutated the receiver")
	}
}

func TestMarkerID(t *testing.T) {
	tests := []struct {
		name   string
		marker Marker
		want   string
	}{
		{"index", AtIndex("i", 3), "i-3-none"},
		{"node", AtNode("slow", "n1"), "slow--1-n1"},
		{"neither", Marker{Name: "p"}, "p--1-none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.marker.ID(); got != tt.want {
				t.Errorf("ID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGroupByIndexKeepsOrder(t *testing.T) {
	markers := []Marker{AtIndex("i", 0), AtNode("x", "a"), AtIndex("j", 0), AtIndex("k", 2)}
	g := GroupByIndex(markers)
	if len(g) != 2 {
		t.Fatalf("got %d groups, want 2", len(g))
	}
	if g[0][0].Name != "i" || g[0][1].Name != "j" {
		t.Errorf("group 0 order = %v", g[0])
	}
	n := GroupByNode(markers)
	if len(n) != 1 || n["a"][0].Name != "x" {
		t.Errorf("GroupByNode = %v", n)
	}
}

func TestBadgeMetrics(t *testing.T) {
	b := DefaultBadgeMetrics()
	if b.Height() != 16 {
		t.Errorf("Height() = %v, want 16", b.Height())
	}
	if got := b.StackHeight(3); got != 52 {
		t.Errorf("StackHeight(3) = %v, want 52", got)
	}
	if got := b.StackOffset(1, 30); got != -31 {
		t.Errorf("StackOffset(1, 30) = %v, want -31", got)
	}
	if got := StackOffset(2, 8, 2, 2, 30); got != -(15 + 34) {
		t.Errorf("StackOffset = %v", got)
	}
	if b.StackHeight(0) != 0 {
		t.Error("empty stack should have zero height")
	}
}

func TestRouteTopLane(t *testing.T) {
	p, ok := Route(geom.Pt(0, 100), geom.Pt(200, 100), 0, 30)
	if !ok {
		t.Fatal("Route returned false")
	}
	if p.Bottom || p.Lane != 0 {
		t.Errorf("lane = %d bottom = %v", p.Lane, p.Bottom)
	}
	if !nearPt(p.Curve.Start, geom.Pt(10.5, 86.5)) || !nearPt(p.Curve.End, geom.Pt(189.5, 86.5)) {
		t.Errorf("ends = %v %v", p.Curve.Start, p.Curve.End)
	}
	// span 179 * 0.25 = 44.75 within [16, 56]
	if !nearPt(p.Curve.Control, geom.Pt(100, 86.5-44.75)) {
		t.Errorf("control = %v", p.Curve.Control)
	}
	if p.Head.Tip != p.Curve.End {
		t.Errorf("head tip %v != curve end %v", p.Head.Tip, p.Curve.End)
	}
}

func TestRouteBottomLaneAndDirection(t *testing.T) {
	p, ok := Route(geom.Pt(100, 50), geom.Pt(90, 50), 3, 20)
	if !ok {
		t.Fatal("Route returned false")
	}
	if !p.Bottom || p.Lane != 1 {
		t.Errorf("lane = %d bottom = %v, want 1 true", p.Lane, p.Bottom)
	}
	if !near(p.Curve.Start.X, 93) || !near(p.Curve.End.X, 97) {
		t.Errorf("x ends = %v %v", p.Curve.Start.X, p.Curve.End.X)
	}
	// span 4 → lift floor 16, plus 12 for lane 1.
	if !near(p.Curve.Control.Y, 59+28) {
		t.Errorf("control y = %v, want 87", p.Curve.Control.Y)
	}
}

func TestRouteLiftCap(t *testing.T) {
	p, _ := Route(geom.Pt(0, 0), geom.Pt(1000, 0), 1, 10)
	if got := p.Curve.Start.Y - p.Curve.Control.Y; !near(got, 56+12) {
		t.Errorf("lift = %v, want 68", got)
	}
}

func TestRouteCoincident(t *testing.T) {
	if _, ok := Route(geom.Pt(5, 5), geom.Pt(5, 5), 0, 30); ok {
		t.Error("coincident ends should not route")
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		count       int
		top, bottom float64
	}{
		{0, 0, 0},
		{1, 24, 0},
		{2, 24, 0},
		{3, 24, 18},
	}
	for _, tt := range tests {
		top, bottom := Padding(tt.count, 30)
		if !near(top, tt.top) || !near(bottom, tt.bottom) {
			t.Errorf("Padding(%d) = %v, %v; want %v, %v", tt.count, top, bottom, tt.top, tt.bottom)
		}
	}
}
