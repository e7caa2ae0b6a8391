// Package pipeline runs the layout → render pipeline shared by the CLI and
// the HTTP service.
//
// The pipeline has two stages:
//
//  1. Layout: run the graph or tree engine on a [model.Document] and flatten
//     the result, with pointer annotations, into a [model.Layout]
//  2. Render: turn the layout into one or more output formats
//
// Both stages are pure functions ([ComputeLayout], [Render]); a [Runner]
// adds caching, logging and observability hooks around them:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{Formats: []string{"svg"}})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/leetpulse/dskit/pkg/cache"
	"github.com/leetpulse/dskit/pkg/errors"
	"github.com/leetpulse/dskit/pkg/graph"
	"github.com/leetpulse/dskit/pkg/model"
	"github.com/leetpulse/dskit/pkg/pointer"
	"github.com/leetpulse/dskit/pkg/tree"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default frame width in points.
	DefaultWidth = 320.0

	// DefaultTheme is the default SVG theme.
	DefaultTheme = "light"
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"
	FormatDOT      = "dot"
	FormatJSON     = "json"
	FormatText     = "txt"
	FormatGraphviz = "graphviz"
)

// Formats lists the supported output formats.
var Formats = []string{FormatSVG, FormatDOT, FormatJSON, FormatText, FormatGraphviz}

// Themes lists the supported SVG themes.
var Themes = []string{"light", "dark"}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG, FormatGraphviz:
		return "image/svg+xml"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	case FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extension returns the file extension for a format, including the dot.
func Extension(format string) string {
	switch format {
	case FormatGraphviz:
		return ".gv.svg"
	case FormatDOT:
		return ".dot"
	default:
		return "." + format
	}
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline. Zero values take
// defaults. The struct is JSON-serializable for API requests.
type Options struct {
	// Layout options
	Width             float64              `json:"width,omitempty"`
	Height            float64              `json:"height,omitempty"`
	NodeSize          float64              `json:"node_size,omitempty"`
	LevelSpacing      float64              `json:"level_spacing,omitempty"`
	Iterations        int                  `json:"iterations,omitempty"`
	CircularThreshold int                  `json:"circular_threshold,omitempty"`
	Badge             pointer.BadgeMetrics `json:"badge,omitzero"`
	Palette           map[string]string    `json:"palette,omitempty"`
	// Strict rejects documents with out-of-range indices, unresolved
	// children or unreachable nodes instead of laying them out leniently.
	Strict bool `json:"strict,omitempty"`
	// SequentialIDs numbers graph edges e0, e1, ... instead of using UUIDs.
	SequentialIDs bool `json:"sequential_ids,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Theme    string   `json:"theme,omitempty"`
	NoLabels bool     `json:"no_labels,omitempty"`

	// Refresh bypasses cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// InputHash is the content hash of the input document.
	InputHash string

	Layout    model.Layout
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each stage.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool // all artifacts came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// SetLayoutDefaults fills zero layout options. Height stays zero when
// unset: graphs then size themselves from the node count and trees from
// their depth.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.NodeSize == 0 {
		o.NodeSize = graph.DefaultNodeSize
	}
	if o.LevelSpacing == 0 {
		o.LevelSpacing = tree.DefaultLevelSpacing
	}
	if o.Iterations == 0 {
		o.Iterations = graph.DefaultIterations
	}
	if o.CircularThreshold == 0 {
		o.CircularThreshold = graph.DefaultCircularThreshold
	}
	if o.Badge == (pointer.BadgeMetrics{}) {
		o.Badge = pointer.DefaultBadgeMetrics()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout applies layout defaults and validates them.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := errors.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	if o.Height != 0 {
		if err := errors.ValidateDimension("height", o.Height); err != nil {
			return err
		}
	}
	if err := errors.ValidateNodeSize(o.NodeSize); err != nil {
		return err
	}
	if err := errors.ValidateDimension("level spacing", o.LevelSpacing); err != nil {
		return err
	}
	if err := errors.ValidateIterations(o.Iterations); err != nil {
		return err
	}
	if o.CircularThreshold < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "circular threshold must not be negative, got %d", o.CircularThreshold)
	}
	if o.Badge.FontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "badge font size must be positive, got %g", o.Badge.FontSize)
	}
	for name, color := range o.Palette {
		if _, ok := pointer.ParseSlot(name); !ok {
			return errors.New(errors.ErrCodeInvalidInput, "unknown palette slot %q", name)
		}
		if color == "" {
			return errors.New(errors.ErrCodeInvalidInput, "palette slot %q has no color", name)
		}
	}
	return nil
}

// SetRenderDefaults fills zero render options.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender applies render defaults and normalizes format names.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	seen := make(map[string]bool, len(o.Formats))
	formats := o.Formats[:0:0]
	for _, f := range o.Formats {
		norm, err := errors.ValidateFormat(f, Formats)
		if err != nil {
			return err
		}
		if !seen[norm] {
			seen[norm] = true
			formats = append(formats, norm)
		}
	}
	o.Formats = formats
	if _, err := errors.ValidateFormat(o.Theme, Themes); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "unknown theme %q", o.Theme)
	}
	return nil
}

// Validate applies all defaults and validates the options.
func (o *Options) Validate() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// Params returns the export parameters for [model.ExportGraph] and
// [model.ExportTree].
func (o *Options) Params() model.Params {
	return model.Params{
		NodeSize: o.NodeSize,
		Badge:    o.Badge,
		Palette:  pointer.DefaultPalette.With(o.Palette),
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts(kind string) cache.LayoutKeyOpts {
	p := o.Params().Palette
	return cache.LayoutKeyOpts{
		Kind:              kind,
		Width:             o.Width,
		Height:            o.Height,
		NodeSize:          o.NodeSize,
		LevelSpacing:      o.LevelSpacing,
		Iterations:        o.Iterations,
		CircularThreshold: o.CircularThreshold,
		Badge:             [4]float64{o.Badge.FontSize, o.Badge.HorizontalPadding, o.Badge.VerticalPadding, o.Badge.Spacing},
		Palette:           p[:],
		SequentialIDs:     o.SequentialIDs,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Theme:  o.Theme,
		Labels: !o.NoLabels,
	}
}
