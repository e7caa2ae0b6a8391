package svg

// Theme holds the colors and stroke widths used by the renderer.
type Theme struct {
	Background    string
	NodeFill      string
	NodeStroke    string
	HighlightFill string
	LabelColor    string
	EdgeColor     string
	BadgeText     string
	FontFamily    string
	EdgeWidth     float64
	NodeWidth     float64
	MotionWidth   float64
}

// LightTheme is the default theme: dark strokes on a transparent background.
func LightTheme() Theme {
	return Theme{
		Background:    "none",
		NodeFill:      "#FFFFFF",
		NodeStroke:    "#1F2933",
		HighlightFill: "#FDE68A",
		LabelColor:    "#1F2933",
		EdgeColor:     "#52606D",
		BadgeText:     "#FFFFFF",
		FontFamily:    "ui-monospace, SFMono-Regular, Menlo, monospace",
		EdgeWidth:     1.5,
		NodeWidth:     1.5,
		MotionWidth:   1.5,
	}
}

// DarkTheme renders light strokes on a dark background.
func DarkTheme() Theme {
	t := LightTheme()
	t.Background = "#111827"
	t.NodeFill = "#1F2937"
	t.NodeStroke = "#E5E7EB"
	t.HighlightFill = "#B45309"
	t.LabelColor = "#F9FAFB"
	t.EdgeColor = "#9CA3AF"
	return t
}
