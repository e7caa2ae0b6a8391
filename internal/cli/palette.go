package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/leetpulse/dskit/pkg/pointer"
)

// paletteCommand creates the palette command.
func (c *CLI) paletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palette [name...]",
		Short: "Show the palette color assigned to annotation names",
		Long: `Show the palette slot and color that pointer and motion names map to.

Names hash (FNV-1a, case-insensitive) onto six semantic slots. Without
arguments the slots and their configured colors are listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			palette := c.config().Palette()
			if len(args) == 0 {
				fmt.Fprintln(c.Out, slotTable(palette))
				return nil
			}
			fmt.Fprintln(c.Out, nameTable(palette, args))
			return nil
		},
	}
}

func swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTitle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

func slotTable(p pointer.Palette) string {
	t := newTable("SLOT", "COLOR", "")
	for s := pointer.Slot(0); s < pointer.NumSlots; s++ {
		t.Row(s.String(), p.Color(s), swatch(p.Color(s)))
	}
	return t.String()
}

func nameTable(p pointer.Palette, names []string) string {
	t := newTable("NAME", "SLOT", "COLOR", "")
	for _, name := range names {
		slot := pointer.SlotFor(name)
		t.Row(name, slot.String(), p.Color(slot), swatch(p.Color(slot)))
	}
	return t.String()
}
