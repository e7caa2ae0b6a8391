package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leetpulse/dskit/pkg/errors"
	"github.com/leetpulse/dskit/pkg/model"
)

// layoutCommand creates the layout command and its graph and tree
// subcommands.
func (c *CLI) layoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute a graph or tree layout",
		Long: `Compute the layout of a graph or binary tree document.

The output is a layout JSON file (the same as 'render -f json') holding node
positions, edges, pointer badges and motion curves. Render it later with
'visualize'.

Results are cached, keyed by the document and every layout option.`,
	}
	cmd.AddCommand(c.layoutKindCommand(model.KindGraph))
	cmd.AddCommand(c.layoutKindCommand(model.KindTree))
	return cmd
}

func (c *CLI) layoutKindCommand(kind string) *cobra.Command {
	var (
		output string
		flags  layoutFlags
	)

	cmd := &cobra.Command{
		Use:   kind + " <input>",
		Short: fmt.Sprintf("Compute a %s layout (input '-' reads stdin)", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, kind, args[0], output, &flags)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, '-' for stdout (default: <input>.layout.json)")
	flags.register(cmd)
	return cmd
}

// runLayout loads the document, computes the layout, and writes output.
func (c *CLI) runLayout(cmd *cobra.Command, kind, input, output string, flags *layoutFlags) error {
	ctx := cmd.Context()

	doc, err := readDocument(cmd, input)
	if err != nil {
		return err
	}
	if doc.Kind != kind {
		return errors.New(errors.ErrCodeInvalidInput, "%s holds a %s document; use 'dskit layout %s'", input, doc.Kind, doc.Kind)
	}

	opts := c.config().PipelineOptions()
	if err := flags.apply(cmd, &opts); err != nil {
		return err
	}
	opts.Logger = c.Logger

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, fmt.Sprintf("Computing %s layout...", kind))
	spinner.Start()
	l, cacheHit, err := runner.LayoutWithCacheInfo(ctx, doc, opts)
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	if ctx.Err() != nil {
		return context.Cause(ctx)
	}

	data, err := model.MarshalLayout(l)
	if err != nil {
		return err
	}

	outputPath := output
	if outputPath == "" {
		outputPath = basePath("", input) + outputExt("json")
	}
	if err := writeOutput(cmd, outputPath, data); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	if outputPath == stdio {
		return nil
	}

	c.printSuccess("Layout complete")
	c.printFile(outputPath)
	c.printStats(len(l.Nodes), len(l.Edges), cacheHit)
	c.printNewline()
	c.printNextStep("Render", "dskit visualize "+outputPath)
	return nil
}
