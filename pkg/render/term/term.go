// Package term draws a [model.Layout] on a character grid for terminal
// previews. Nodes are drawn as their (truncated) labels, edges as line
// characters, and pointer badges in their palette colors. Pointer motions
// are listed in a legend below the grid.
package term

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/leetpulse/dskit/pkg/geom"
	"github.com/leetpulse/dskit/pkg/model"
)

// Default grid dimensions in cells.
const (
	DefaultColumns = 64
	DefaultRows    = 20
	maxLabel       = 3
)

var (
	styleNode      = lipgloss.NewStyle().Bold(true)
	styleHighlight = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	styleEdge      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleLegend    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Options configures the preview.
type Options struct {
	Columns int
	Rows    int
	// NoLegend omits the motion legend.
	NoLegend bool
}

type cell struct {
	r     rune
	style *lipgloss.Style
}

type canvas struct {
	cells      [][]cell
	cols, rows int
	sx, sy     float64
}

// Render returns the layout drawn on a character grid.
func Render(l model.Layout, opts Options) string {
	cols, rows := opts.Columns, opts.Rows
	if cols <= 0 {
		cols = DefaultColumns
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	c := newCanvas(l, cols, rows)

	for _, e := range l.Edges {
		c.line(e.Start, e.End, &styleEdge)
	}
	for _, p := range l.Pointers {
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color))
		c.text(p.Position, p.Name, &s)
	}
	for _, n := range l.Nodes {
		style := &styleNode
		if n.Highlighted {
			style = &styleHighlight
		}
		c.text(n.Position, truncate(n.Label), style)
	}

	out := c.String()
	if opts.NoLegend || len(l.Motions) == 0 {
		return out
	}
	var b strings.Builder
	b.WriteString(out)
	for _, m := range l.Motions {
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(m.Color))
		fmt.Fprintf(&b, "\n%s %s", s.Render(m.Name), styleLegend.Render(fmt.Sprintf("%s → %s", label(l, m.From), label(l, m.To))))
	}
	return b.String()
}

func label(l model.Layout, id string) string {
	if n, ok := l.Node(id); ok && n.Label != "" {
		return n.Label
	}
	return id
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxLabel {
		return string(r[:maxLabel])
	}
	return s
}

func newCanvas(l model.Layout, cols, rows int) *canvas {
	cells := make([][]cell, rows)
	for i := range cells {
		cells[i] = make([]cell, cols)
		for j := range cells[i] {
			cells[i][j] = cell{r: ' '}
		}
	}
	c := &canvas{cells: cells, cols: cols, rows: rows}
	if l.Width > 0 {
		c.sx = float64(cols-1) / l.Width
	}
	if l.Height > 0 {
		c.sy = float64(rows-1) / l.Height
	}
	return c
}

func (c *canvas) cellAt(p geom.Point) (int, int) {
	return int(math.Round(p.X * c.sx)), int(math.Round(p.Y * c.sy))
}

func (c *canvas) set(x, y int, r rune, style *lipgloss.Style) {
	if y < 0 || y >= c.rows || x < 0 || x >= c.cols {
		return
	}
	c.cells[y][x] = cell{r: r, style: style}
}

// text writes s centered on p.
func (c *canvas) text(p geom.Point, s string, style *lipgloss.Style) {
	x, y := c.cellAt(p)
	runes := []rune(s)
	x -= len(runes) / 2
	for i, r := range runes {
		c.set(x+i, y, r, style)
	}
}

// line draws a segment with Bresenham's algorithm, choosing one glyph for
// its overall slope.
func (c *canvas) line(from, to geom.Point, style *lipgloss.Style) {
	x0, y0 := c.cellAt(from)
	x1, y1 := c.cellAt(to)
	glyph := slopeGlyph(x1-x0, y1-y0)

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	for {
		c.set(x0, y0, glyph, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func slopeGlyph(dx, dy int) rune {
	switch {
	case dy == 0 || abs(dx) > 2*abs(dy):
		return '-'
	case dx == 0 || abs(dy) > 2*abs(dx):
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// String renders the grid, grouping runs of equally styled cells.
func (c *canvas) String() string {
	lines := make([]string, 0, c.rows)
	for _, row := range c.cells {
		var b strings.Builder
		var run []rune
		var cur *lipgloss.Style
		flush := func() {
			if len(run) == 0 {
				return
			}
			if cur == nil {
				b.WriteString(string(run))
			} else {
				b.WriteString(cur.Render(string(run)))
			}
			run = run[:0]
		}
		for _, cl := range row {
			if cl.style != cur {
				flush()
				cur = cl.style
			}
			run = append(run, cl.r)
		}
		flush()
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
