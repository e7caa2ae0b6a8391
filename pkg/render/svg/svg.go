package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/leetpulse/dskit/pkg/geom"
	"github.com/leetpulse/dskit/pkg/model"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme     Theme
	labels    bool
	pointers  bool
	motions   bool
	padding   float64
	labelSize float64
}

// WithTheme sets the color theme.
func WithTheme(t Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// WithoutLabels omits node labels.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.labels = false } }

// WithoutPointers omits pointer badges and motions.
func WithoutPointers() SVGOption {
	return func(r *svgRenderer) { r.pointers, r.motions = false, false }
}

// WithPadding adds a uniform margin around the layout frame.
func WithPadding(p float64) SVGOption { return func(r *svgRenderer) { r.padding = max(0, p) } }

// WithLabelSize sets the node label font size. Zero derives it from the node size.
func WithLabelSize(s float64) SVGOption { return func(r *svgRenderer) { r.labelSize = s } }

// RenderSVG renders the layout as an SVG document.
func RenderSVG(l model.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	w, h := l.Width+2*r.padding, l.Height+2*r.padding

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	if r.theme.Background != "" && r.theme.Background != "none" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(r.theme.Background))
	}
	fmt.Fprintf(&buf, `  <g transform="translate(%.1f %.1f)" font-family="%s">`+"\n",
		r.padding, r.padding, escapeXML(r.theme.FontFamily))

	for _, e := range l.Edges {
		r.renderEdge(&buf, e)
	}
	for _, n := range l.Nodes {
		r.renderNode(&buf, n, l.NodeSize)
	}
	if r.motions {
		for _, m := range l.Motions {
			r.renderMotion(&buf, m)
		}
	}
	if r.pointers {
		for _, p := range l.Pointers {
			r.renderPointer(&buf, p)
		}
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{theme: LightTheme(), labels: true, pointers: true, motions: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *svgRenderer) renderEdge(buf *bytes.Buffer, e model.Edge) {
	fmt.Fprintf(buf, `    <line id="edge-%s" class="edge" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f"/>`+"\n",
		escapeXML(e.ID), e.Start.X, e.Start.Y, e.End.X, e.End.Y, r.theme.EdgeColor, r.theme.EdgeWidth)
	if e.Head != nil {
		writeTriangle(buf, *e.Head, r.theme.EdgeColor)
	}
}

func (r *svgRenderer) renderNode(buf *bytes.Buffer, n model.Node, size float64) {
	fill := r.theme.NodeFill
	if n.Highlighted {
		fill = r.theme.HighlightFill
	}
	fmt.Fprintf(buf, `    <circle id="node-%s" class="node" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
		escapeXML(n.ID), n.Position.X, n.Position.Y, size/2, fill, r.theme.NodeStroke, r.theme.NodeWidth)
	if !r.labels || n.Label == "" {
		return
	}
	fs := r.labelSize
	if fs <= 0 {
		fs = fitLabel(n.Label, size)
	}
	fmt.Fprintf(buf, `    <text class="label" x="%.2f" y="%.2f" font-size="%.1f" text-anchor="middle" dominant-baseline="central" fill="%s">%s</text>`+"\n",
		n.Position.X, n.Position.Y, fs, r.theme.LabelColor, escapeXML(n.Label))
}

func (r *svgRenderer) renderMotion(buf *bytes.Buffer, m model.Motion) {
	c := m.Curve
	fmt.Fprintf(buf, `    <path id="motion-%s" class="motion" d="M %.2f %.2f Q %.2f %.2f %.2f %.2f" fill="none" stroke="%s" stroke-width="%.1f" stroke-dasharray="4 3"/>`+"\n",
		escapeXML(m.ID), c.Start.X, c.Start.Y, c.Control.X, c.Control.Y, c.End.X, c.End.Y,
		escapeXML(m.Color), r.theme.MotionWidth)
	writeTriangle(buf, m.Head, m.Color)
}

func (r *svgRenderer) renderPointer(buf *bytes.Buffer, p model.Pointer) {
	x, y := p.Position.X-p.Width/2, p.Position.Y-p.Height/2
	fmt.Fprintf(buf, `    <g id="pointer-%s" class="pointer">`+"\n", escapeXML(p.ID))
	fmt.Fprintf(buf, `      <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" fill="%s"/>`+"\n",
		x, y, p.Width, p.Height, p.Height/2, escapeXML(p.Color))
	fmt.Fprintf(buf, `      <text x="%.2f" y="%.2f" font-size="%.1f" text-anchor="middle" dominant-baseline="central" fill="%s">%s</text>`+"\n",
		p.Position.X, p.Position.Y, p.FontSize, r.theme.BadgeText, escapeXML(p.Name))
	buf.WriteString("    </g>\n")
}

func writeTriangle(buf *bytes.Buffer, t geom.Triangle, fill string) {
	fmt.Fprintf(buf, `    <polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s"/>`+"\n",
		t.Tip.X, t.Tip.Y, t.Left.X, t.Left.Y, t.Right.X, t.Right.Y, escapeXML(fill))
}

const (
	labelSizeMin  = 6.0
	labelSizeMax  = 14.0
	labelCharRate = 0.6
)

// fitLabel picks a font size that keeps the label inside the node circle.
func fitLabel(label string, nodeSize float64) float64 {
	n := max(1, len([]rune(label)))
	byWidth := nodeSize * 0.8 / (float64(n) * labelCharRate)
	return geom.Clamp(min(byWidth, nodeSize*0.5), labelSizeMin, labelSizeMax)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
