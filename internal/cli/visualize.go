package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leetpulse/dskit/pkg/errors"
	"github.com/leetpulse/dskit/pkg/model"
	"github.com/leetpulse/dskit/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering from a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		render  renderFlags
	)

	cmd := &cobra.Command{
		Use:   "visualize <layout.json>",
		Short: "Render a computed layout",
		Long: `Render a layout JSON file (produced by 'layout') without recomputing it.

The layout holds every position, so this step only draws. Use 'render' to go
directly from a document to visual output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVisualize(cmd, args[0], output, noCache, &render)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	render.register(cmd)
	return cmd
}

// layoutBase strips ".layout.json" or, failing that, the last extension.
func layoutBase(path string) string {
	if base, ok := strings.CutSuffix(path, outputExt(pipeline.FormatJSON)); ok {
		return base
	}
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func (c *CLI) runVisualize(cmd *cobra.Command, input, output string, noCache bool, rf *renderFlags) error {
	ctx := cmd.Context()

	l, err := model.ReadLayoutFile(input)
	if err != nil {
		return err
	}

	opts := c.config().PipelineOptions()
	rf.apply(cmd, &opts)
	opts.Logger = c.Logger
	if err := opts.ValidateForRender(); err != nil {
		return err
	}
	if output == stdio && len(opts.Formats) != 1 {
		return errors.New(errors.ErrCodeInvalidInput, "'-o -' needs exactly one format, got %d", len(opts.Formats))
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	base := basePath(output, input)
	if output == "" {
		base = layoutBase(input)
	}
	paths, err := c.writeArtifacts(cmd, artifacts, opts.Formats, output, base)
	if err != nil {
		return err
	}
	if output == stdio {
		return nil
	}

	c.printSuccess("Visualize complete")
	for _, p := range paths {
		c.printFile(p)
	}
	c.printStats(len(l.Nodes), len(l.Edges), cacheHit)
	return nil
}
