package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leetpulse/dskit/pkg/errors"
)

// renderCommand creates the render command: layout plus render in one step.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		layout layoutFlags
		render renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Lay out a document and render it",
		Long: `Lay out a graph or tree document and render it to one or more formats.

Formats:
  svg       standalone SVG with pointer badges and motion curves
  dot       Graphviz DOT with pinned node positions
  graphviz  SVG produced by Graphviz from the DOT output
  json      the layout itself
  txt       terminal preview

With several formats each file is written next to the base path, e.g.
'render list.yaml -f svg,dot' writes list.svg and list.dot. Use '-o -' with a
single format to write to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], output, &layout, &render)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	layout.register(cmd)
	render.register(cmd)
	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input, output string, lf *layoutFlags, rf *renderFlags) error {
	ctx := cmd.Context()
	prog := newProgress(c.Logger)

	doc, err := readDocument(cmd, input)
	if err != nil {
		return err
	}

	opts := c.config().PipelineOptions()
	if err := lf.apply(cmd, &opts); err != nil {
		return err
	}
	rf.apply(cmd, &opts)
	opts.Logger = c.Logger
	if err := opts.Validate(); err != nil {
		return err
	}
	if output == stdio && len(opts.Formats) != 1 {
		return errors.New(errors.ErrCodeInvalidInput, "'-o -' needs exactly one format, got %d", len(opts.Formats))
	}

	runner, err := c.newRunner(ctx, lf.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Rendering...")
	spinner.Start()
	result, err := runner.Execute(ctx, doc, opts)
	spinner.Stop()
	if err != nil {
		return err
	}

	paths, err := c.writeArtifacts(cmd, result.Artifacts, opts.Formats, output, basePath(output, input))
	if err != nil {
		return err
	}
	if output == stdio {
		return nil
	}

	prog.done(fmt.Sprintf("Rendered %d format(s)", len(opts.Formats)))
	c.printSuccess("Render complete")
	for _, p := range paths {
		c.printFile(p)
	}
	c.printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	return nil
}

// writeArtifacts writes each format to base plus the format's extension
// and returns the paths in format order. A single format with an explicit
// output uses it verbatim.
func (c *CLI) writeArtifacts(cmd *cobra.Command, artifacts map[string][]byte, formats []string, output, base string) ([]string, error) {
	if len(formats) == 1 && output != "" {
		if err := writeOutput(cmd, output, artifacts[formats[0]]); err != nil {
			return nil, fmt.Errorf("write %s: %w", output, err)
		}
		return []string{output}, nil
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + outputExt(format)
		if err := writeOutput(cmd, path, artifacts[format]); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		c.Logger.Debug("wrote artifact", "format", format, "path", path, "bytes", len(artifacts[format]))
		paths = append(paths, path)
	}
	return paths, nil
}
