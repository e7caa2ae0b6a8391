package term

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/leetpulse/dskit/pkg/geom"
	"github.com/leetpulse/dskit/pkg/model"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestRender(t *testing.T) {
	l := model.Layout{
		VizType: model.KindGraph, Width: 100, Height: 20, NodeSize: 10,
		Nodes: []model.Node{
			{ID: "0", Label: "left", Position: geom.Pt(10, 10)},
			{ID: "1", Label: "R", Position: geom.Pt(90, 10)},
		},
		Edges: []model.Edge{{ID: "e0", From: "0", To: "1", Start: geom.Pt(10, 10), End: geom.Pt(90, 10)}},
		Motions: []model.Motion{
			{ID: "i-0-1", Name: "i", From: "0", To: "1", Color: "#17A34A"},
		},
	}

	got := Render(l, Options{Columns: 21, Rows: 3})
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), got)
	}
	// Row 1 holds both nodes and the edge between them.
	if want := " lef--------------R"; lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
	if lines[2] != "i left → R" {
		t.Errorf("legend = %q, want %q", lines[2], "i left → R")
	}

	noLegend := Render(l, Options{Columns: 21, Rows: 3, NoLegend: true})
	if strings.Contains(noLegend, "→") {
		t.Error("legend rendered with NoLegend")
	}
}

func TestSlopeGlyph(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{5, 0, '-'},
		{0, 5, '|'},
		{3, 3, '\\'},
		{-3, -3, '\\'},
		{3, -3, '/'},
		{10, 1, '-'},
		{1, 10, '|'},
	}
	for _, tt := range tests {
		if got := slopeGlyph(tt.dx, tt.dy); got != tt.want {
			t.Errorf("slopeGlyph(%d, %d) = %q, want %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(model.Layout{}, Options{}); got != "" {
		t.Errorf("Render(empty) = %q, want empty", got)
	}
}
