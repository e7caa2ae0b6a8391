package pointer

// Badge defaults.
const (
	DefaultFontSize          = 8.0
	DefaultHorizontalPadding = 6.0
	DefaultVerticalPadding   = 2.0
	DefaultSpacing           = 2.0
)

// BadgeMetrics describes the size of pointer badges and the gap between
// stacked badges.
type BadgeMetrics struct {
	FontSize          float64 `json:"font_size" toml:"font_size"`
	HorizontalPadding float64 `json:"horizontal_padding" toml:"horizontal_padding"`
	VerticalPadding   float64 `json:"vertical_padding" toml:"vertical_padding"`
	Spacing           float64 `json:"spacing" toml:"spacing"`
}

// DefaultBadgeMetrics returns the standard badge metrics.
func DefaultBadgeMetrics() BadgeMetrics {
	return BadgeMetrics{
		FontSize:          DefaultFontSize,
		HorizontalPadding: DefaultHorizontalPadding,
		VerticalPadding:   DefaultVerticalPadding,
		Spacing:           DefaultSpacing,
	}
}

// Height is the height of a single badge.
func (b BadgeMetrics) Height() float64 { return b.FontSize + 2*b.VerticalPadding + 4 }

// StackHeight is the height of count badges stacked with Spacing between them.
func (b BadgeMetrics) StackHeight(count int) float64 {
	if count <= 0 {
		return 0
	}
	return float64(count)*b.Height() + float64(count-1)*b.Spacing
}

// StackOffset is the vertical offset of the top of a badge stack relative to
// the node center. The stack sits directly on top of the node.
func (b BadgeMetrics) StackOffset(count int, nodeSize float64) float64 {
	return -(nodeSize/2 + b.StackHeight(count))
}

// Width estimates a badge's width for text of n characters. Glyph width is
// approximated as 0.6 em.
func (b BadgeMetrics) Width(n int) float64 {
	return float64(n)*b.FontSize*0.6 + 2*b.HorizontalPadding
}

// StackOffset gives the vertical offset of a stack of count badges.
func StackOffset(count int, fontSize, vPad, spacing, nodeSize float64) float64 {
	return BadgeMetrics{FontSize: fontSize, VerticalPadding: vPad, Spacing: spacing}.StackOffset(count, nodeSize)
}
