package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/leetpulse/dskit/pkg/model"
	"github.com/leetpulse/dskit/pkg/render/dot"
	"github.com/leetpulse/dskit/pkg/render/svg"
	"github.com/leetpulse/dskit/pkg/render/term"
)

// Render generates every requested format concurrently.
func Render(ctx context.Context, l model.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	artifacts := make(map[string][]byte, len(opts.Formats))

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			data, err := RenderFormat(ctx, l, format, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

// RenderFormat renders a single format. The format must already be
// normalized (see [Options.ValidateForRender]).
func RenderFormat(ctx context.Context, l model.Layout, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return svg.RenderSVG(l, svgOptions(opts)...), nil
	case FormatDOT:
		return []byte(dot.ToDOT(l, dot.Options{Annotations: true})), nil
	case FormatGraphviz:
		return dot.RenderSVG(ctx, dot.ToDOT(l, dot.Options{}))
	case FormatJSON:
		return model.MarshalLayout(l)
	case FormatText:
		return []byte(term.Render(l, term.Options{}) + "\n"), nil
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

func svgOptions(opts Options) []svg.SVGOption {
	var out []svg.SVGOption
	if opts.Theme == "dark" {
		out = append(out, svg.WithTheme(svg.DarkTheme()))
	}
	if opts.NoLabels {
		out = append(out, svg.WithoutLabels())
	}
	return out
}
