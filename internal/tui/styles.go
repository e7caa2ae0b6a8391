package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorAmber = lipgloss.Color("220")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleKey      = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleValue    = lipgloss.NewStyle().Foreground(colorWhite)
	styleOn       = lipgloss.NewStyle().Foreground(colorGreen)
	styleOff      = lipgloss.NewStyle().Foreground(colorDim)
	styleWarn     = lipgloss.NewStyle().Foreground(colorAmber)
	styleError    = lipgloss.NewStyle().Foreground(colorRed)
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	styleWidget = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 2)
	stylePanel = lipgloss.NewStyle().MarginTop(1)
)

// fields renders name/value pairs as aligned rows.
func fields(pairs ...any) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(styleKey.Render(fmt.Sprint(pairs[i])))
		b.WriteString(" ")
		b.WriteString(flag(pairs[i+1]))
	}
	return b.String()
}

func flag(v any) string {
	if on, ok := v.(bool); ok {
		if on {
			return styleOn.Render("true")
		}
		return styleOff.Render("false")
	}
	return styleValue.Render(fmt.Sprint(v))
}
