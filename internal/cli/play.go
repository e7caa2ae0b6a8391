package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/leetpulse/dskit/internal/tui"
)

// playCommand creates the play command for the component playground.
func (c *CLI) playCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "play <component>",
		Short: "Drive a component's state store from the keyboard",
		Long: `Open an interactive playground for one component.

Each key sends an event to the component's store; the view shows the state
the reducer produced and the events sent so far.

Components: ` + strings.Join(tui.Names(), ", "),
		ValidArgs: tui.Names(),
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list || len(args) == 0 {
				for _, name := range tui.Names() {
					comp, _ := tui.Lookup(name)
					c.printKeyValue(name, comp.Description)
				}
				return nil
			}
			err := tui.Run(args[0], tea.WithContext(cmd.Context()))
			if err != nil && cmd.Context().Err() != nil {
				return cmd.Context().Err()
			}
			if err != nil {
				return fmt.Errorf("playground: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list the available components")
	return cmd
}
