package cli

import (
	"github.com/spf13/cobra"

	"github.com/leetpulse/dskit/pkg/errors"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input>...",
		Short: "Check documents strictly",
		Long: `Check graph and tree documents strictly.

Layout is lenient: out-of-range indices are skipped, unresolved children are
dropped and unreachable nodes are ignored. validate reports each of these,
plus pointers and motions that reference missing nodes, and exits non-zero
when any document has problems.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, input := range args {
				if !c.validateOne(cmd, input) {
					failed++
				}
			}
			if failed > 0 {
				return errors.New(errors.ErrCodeInvalidInput, "%d of %d documents have problems", failed, len(args))
			}
			if len(args) > 1 {
				c.printInfo("%d documents checked", len(args))
			}
			return nil
		},
	}
}

func (c *CLI) validateOne(cmd *cobra.Command, input string) bool {
	doc, err := readDocument(cmd, input)
	if err != nil {
		c.printError("%s: %s", input, errors.UserMessage(err))
		return false
	}
	if err := doc.Check(); err != nil {
		c.printError("%s: %s", input, errors.UserMessage(err))
		for _, d := range errors.Details(err) {
			c.printDetail("%s", d)
		}
		return false
	}
	c.printSuccess("%s is a valid %s document", input, doc.Kind)
	return true
}
