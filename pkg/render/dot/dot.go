package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/leetpulse/dskit/pkg/model"
)

// pointsPerInch converts layout points to Graphviz inches.
const pointsPerInch = 72.0

// Options configures DOT generation.
type Options struct {
	// Unpinned leaves positions out so Graphviz computes its own layout.
	Unpinned bool
	// Annotations adds pointer badges and motions.
	Annotations bool
}

// ToDOT converts a layout to Graphviz DOT format. Trees and directed graphs
// become digraphs; undirected graphs become graphs.
func ToDOT(l model.Layout, opts Options) string {
	kind, arrow := "digraph", "->"
	if l.IsGraph() && l.Undirected {
		kind, arrow = "graph", "--"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if !opts.Unpinned {
		buf.WriteString("  layout=neato;\n")
		fmt.Fprintf(&buf, "  inputscale=%.0f;\n", pointsPerInch)
		buf.WriteString("  notranslate=true;\n")
	}
	size := l.NodeSize / pointsPerInch
	fmt.Fprintf(&buf, "  node [shape=circle, fixedsize=true, width=%.3f, style=filled, fillcolor=white, fontsize=10];\n", size)
	buf.WriteString("  edge [arrowsize=0.6];\n\n")

	for _, n := range l.Nodes {
		attrs := []string{fmt.Sprintf("label=%q", n.Label)}
		if !opts.Unpinned {
			attrs = append(attrs, fmtPos(n.Position.X, l.Height-n.Position.Y))
		}
		if n.Highlighted {
			attrs = append(attrs, "fillcolor=\"#FDE68A\"")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", "n"+n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range l.Edges {
		fmt.Fprintf(&buf, "  %q %s %q [id=%q];\n", "n"+e.From, arrow, "n"+e.To, e.ID)
	}

	if opts.Annotations {
		writeAnnotations(&buf, l, arrow, opts.Unpinned)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeAnnotations(buf *bytes.Buffer, l model.Layout, arrow string, unpinned bool) {
	if len(l.Pointers) > 0 {
		buf.WriteString("\n")
	}
	for _, p := range l.Pointers {
		attrs := []string{
			"shape=box", "style=\"rounded,filled\"", "fixedsize=false", "width=0", "height=0",
			fmt.Sprintf("label=%q", p.Name),
			fmt.Sprintf("fillcolor=%q", p.Color),
			"fontcolor=white",
			fmt.Sprintf("fontsize=%.0f", p.FontSize),
		}
		if !unpinned {
			attrs = append(attrs, fmtPos(p.Position.X, l.Height-p.Position.Y))
		}
		fmt.Fprintf(buf, "  %q [%s];\n", "p"+p.ID, strings.Join(attrs, ", "))
		fmt.Fprintf(buf, "  %q %s %q [style=dotted, color=%q, arrowhead=none];\n", "p"+p.ID, arrow, "n"+p.Target, p.Color)
	}
	if len(l.Motions) > 0 {
		buf.WriteString("\n")
	}
	for _, m := range l.Motions {
		fmt.Fprintf(buf, "  %q %s %q [id=%q, style=dashed, color=%q, constraint=false];\n",
			"n"+m.From, arrow, "n"+m.To, "motion-"+m.ID, m.Color)
	}
}

func fmtPos(x, y float64) string {
	return fmt.Sprintf("pos=\"%s,%s!\"", strconv.FormatFloat(x, 'f', 2, 64), strconv.FormatFloat(y, 'f', 2, 64))
}

// RenderSVG renders DOT source to SVG using Graphviz. Pinned sources are
// laid out with neato, others with dot.
func RenderSVG(ctx context.Context, src string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	if strings.Contains(src, "layout=neato") {
		gv.SetLayout(graphviz.NEATO)
	}

	g, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the drawing scales with its
// container instead of using Graphviz's fixed pt dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
