package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leetpulse/dskit/pkg/errors"
	"github.com/leetpulse/dskit/pkg/model"
	"github.com/leetpulse/dskit/pkg/pipeline"
)

// stdio is the path that means stdin for inputs and stdout for outputs.
const stdio = "-"

// layoutFlags binds the layout flags. Flags the user did not set keep the
// configured value.
type layoutFlags struct {
	width         float64
	height        float64
	nodeSize      float64
	levelSpacing  float64
	iterations    int
	strict        bool
	sequentialIDs bool
	noCache       bool
	refresh       bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64Var(&f.width, "width", 0, "frame width")
	fs.Float64Var(&f.height, "height", 0, "frame height (default: sized from content)")
	fs.Float64Var(&f.nodeSize, "node-size", 0, "node diameter")
	fs.Float64Var(&f.levelSpacing, "level-spacing", 0, "vertical distance between tree levels")
	fs.IntVar(&f.iterations, "iterations", 0, "force-directed iterations for graphs")
	fs.BoolVar(&f.strict, "strict", false, "reject out-of-range indices, unresolved children and unreachable nodes")
	fs.BoolVar(&f.sequentialIDs, "sequential-ids", false, "number graph edges e0, e1, ... instead of random ids")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable caching")
	fs.BoolVar(&f.refresh, "refresh", false, "recompute even when cached")
}

// apply overlays the flags the user set. Zero selects the default inside
// pipeline.Options, so an explicit zero is rejected rather than replaced;
// --height 0 keeps its meaning of sizing from content.
func (f *layoutFlags) apply(cmd *cobra.Command, opts *pipeline.Options) error {
	fs := cmd.Flags()
	dims := []struct {
		flag string
		v    float64
		dst  *float64
	}{
		{"width", f.width, &opts.Width},
		{"height", f.height, &opts.Height},
		{"node-size", f.nodeSize, &opts.NodeSize},
		{"level-spacing", f.levelSpacing, &opts.LevelSpacing},
	}
	for _, d := range dims {
		if !fs.Changed(d.flag) {
			continue
		}
		if d.flag != "height" || d.v != 0 {
			if err := errors.ValidateDimension(d.flag, d.v); err != nil {
				return err
			}
		}
		*d.dst = d.v
	}
	if fs.Changed("iterations") {
		if f.iterations < 1 {
			return errors.New(errors.ErrCodeInvalidInput, "--iterations must be at least 1, got %d", f.iterations)
		}
		opts.Iterations = f.iterations
	}
	if fs.Changed("strict") {
		opts.Strict = f.strict
	}
	opts.SequentialIDs = f.sequentialIDs
	opts.Refresh = f.refresh
	return nil
}

// renderFlags binds the render flags.
type renderFlags struct {
	formats  string
	theme    string
	noLabels bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.formats, "format", "f", "", "output format(s): "+strings.Join(pipeline.Formats, ", ")+" (comma-separated)")
	fs.StringVar(&f.theme, "theme", "", "SVG theme: light, dark")
	fs.BoolVar(&f.noLabels, "no-labels", false, "omit node labels")
}

func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	if formats := parseFormats(f.formats); len(formats) > 0 {
		opts.Formats = formats
	}
	if cmd.Flags().Changed("theme") {
		opts.Theme = f.theme
	}
	opts.NoLabels = f.noLabels
}

// readDocument reads the document at path, or stdin for "-".
func readDocument(cmd *cobra.Command, path string) (model.Document, error) {
	if path == stdio {
		return model.ReadDocument(cmd.InOrStdin())
	}
	return model.ReadDocumentFile(path)
}

// basePath derives the output base path. Without an explicit output the
// input's extension is stripped; a known output extension is stripped too.
func basePath(output, input string) string {
	if output == "" {
		if input == stdio {
			return "out"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	longest := ""
	for _, f := range pipeline.Formats {
		if ext := outputExt(f); strings.HasSuffix(output, ext) && len(ext) > len(longest) {
			longest = ext
		}
	}
	return strings.TrimSuffix(output, longest)
}

// outputExt is the file extension for a format. JSON layouts get a double
// extension so they never overwrite a JSON input document.
func outputExt(format string) string {
	if format == pipeline.FormatJSON {
		return ".layout.json"
	}
	return pipeline.Extension(format)
}

// writeOutput writes data to path, or to the command's stdout for "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == stdio {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
