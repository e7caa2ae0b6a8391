package dot

import (
	"strings"
	"testing"

	"github.com/leetpulse/dskit/pkg/geom"
	"github.com/leetpulse/dskit/pkg/model"
)

func graphLayout(undirected bool) model.Layout {
	return model.Layout{
		VizType:    model.KindGraph,
		Width:      100,
		Height:     80,
		NodeSize:   36,
		Undirected: undirected,
		Nodes: []model.Node{
			{ID: "0", Label: "a", Position: geom.Pt(20, 20)},
			{ID: "1", Label: "b", Position: geom.Pt(80, 60), Highlighted: true},
		},
		Edges: []model.Edge{{ID: "e0", From: "0", To: "1"}},
		Pointers: []model.Pointer{
			{ID: "i-0-none", Name: "i", Target: "0", Color: "#17A34A", Position: geom.Pt(20, 45), FontSize: 8},
		},
		Motions: []model.Motion{{ID: "i-0-1", Name: "i", From: "0", To: "1", Color: "#17A34A"}},
	}
}

func TestToDOT(t *testing.T) {
	tests := []struct {
		name    string
		layout  model.Layout
		opts    Options
		present []string
		absent  []string
	}{
		{
			name:    "directed pinned",
			layout:  graphLayout(false),
			present: []string{"digraph G {", `"n0" -> "n1" [id="e0"]`, `pos="20.00,60.00!"`, `pos="80.00,20.00!"`, "width=0.500", "#FDE68A"},
			absent:  []string{`"pi-0-none"`, "motion-"},
		},
		{
			name:    "undirected",
			layout:  graphLayout(true),
			present: []string{"graph G {", `"n0" -- "n1"`},
			absent:  []string{"digraph"},
		},
		{
			name:    "unpinned",
			layout:  graphLayout(false),
			opts:    Options{Unpinned: true},
			absent:  []string{"pos=", "layout=neato"},
			present: []string{`label="a"`},
		},
		{
			name:    "annotations",
			layout:  graphLayout(false),
			opts:    Options{Annotations: true},
			present: []string{`"pi-0-none"`, `"pi-0-none" -> "n0"`, `id="motion-i-0-1"`, `pos="20.00,35.00!"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDOT(tt.layout, tt.opts)
			for _, s := range tt.present {
				if !strings.Contains(got, s) {
					t.Errorf("DOT missing %q:\n%s", s, got)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(got, s) {
					t.Errorf("DOT contains %q:\n%s", s, got)
				}
			}
		})
	}
}

func TestToDOTTreeIsDirected(t *testing.T) {
	l := model.Layout{
		VizType: model.KindTree, Width: 50, Height: 50, NodeSize: 30, Undirected: true,
		Nodes: []model.Node{{ID: "A", Label: "A"}, {ID: "B", Label: "B"}},
		Edges: []model.Edge{{ID: "A->B", From: "A", To: "B"}},
	}
	got := ToDOT(l, Options{})
	if !strings.HasPrefix(got, "digraph") {
		t.Errorf("tree DOT should be a digraph:\n%s", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?><svg width="120pt" height="80pt" viewBox="0.00 0.00 120.00 80.00" xmlns="x"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 120.00 80.00" width="120" height="80">`
	if !strings.Contains(got, want) {
		t.Errorf("normalizeViewBox() = %s", got)
	}
	if strings.Contains(got, "pt\"") {
		t.Errorf("pt dimensions not replaced: %s", got)
	}

	noBox := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(noBox)) != string(noBox) {
		t.Error("svg without viewBox should be unchanged")
	}
}
