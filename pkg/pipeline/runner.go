package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/leetpulse/dskit/pkg/cache"
	"github.com/leetpulse/dskit/pkg/model"
	"github.com/leetpulse/dskit/pkg/observability"
)

// Runner wraps the pipeline stages with caching, logging and hooks.
//
// A Runner holds no per-run state; one Runner can serve concurrent
// requests with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	// TTL is the lifetime of cached layouts and artifacts.
	TTL time.Duration
}

// NewRunner creates a runner. A nil cache disables caching; a nil keyer
// uses [cache.DefaultKeyer].
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger, TTL: cache.TTLLayout}
}

// Execute runs layout then render.
func (r *Runner) Execute(ctx context.Context, doc model.Document, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{}

	layoutStart := time.Now()
	l, hash, hit, err := r.layout(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.InputHash = hash
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.NodeCount = len(l.Nodes)
	result.Stats.EdgeCount = len(l.Edges)
	result.CacheInfo.LayoutHit = hit

	r.Logger.Info("computed layout",
		"kind", l.VizType,
		"nodes", len(l.Nodes),
		"edges", len(l.Edges),
		"cached", hit,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo computes a layout, consulting the cache first, and
// reports whether the cache was hit.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, doc model.Document, opts Options) (model.Layout, bool, error) {
	r.applyLogger(&opts)
	l, _, hit, err := r.layout(ctx, doc, opts)
	return l, hit, err
}

// Layout computes a layout with caching.
func (r *Runner) Layout(ctx context.Context, doc model.Document, opts Options) (model.Layout, error) {
	l, _, err := r.LayoutWithCacheInfo(ctx, doc, opts)
	return l, err
}

func (r *Runner) layout(ctx context.Context, doc model.Document, opts Options) (model.Layout, string, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return model.Layout{}, "", false, err
	}
	if err := checkSize(doc, opts); err != nil {
		return model.Layout{}, "", false, err
	}
	// Strictness is not part of the cache key, so check before any lookup.
	if opts.Strict {
		if err := doc.Check(); err != nil {
			return model.Layout{}, "", false, err
		}
	}
	input, err := model.MarshalDocument(doc)
	if err != nil {
		return model.Layout{}, "", false, err
	}
	hash := cache.Hash(input)
	key := r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts(doc.Kind))

	if !opts.Refresh {
		if data, ok := r.get(ctx, key, "layout"); ok {
			if cached, err := model.UnmarshalLayout(data); err == nil {
				return cached, hash, true, nil
			}
			r.Logger.Debug("discarding unreadable cached layout", "key", key)
		}
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, doc.Kind, nodeCount(doc))
	start := time.Now()
	l, err := ComputeLayoutContext(ctx, doc, opts)
	hooks.OnLayoutComplete(ctx, doc.Kind, time.Since(start), err)
	if err != nil {
		return model.Layout{}, hash, false, err
	}

	if data, err := model.MarshalLayout(l); err == nil {
		r.set(ctx, key, "layout", data)
	}
	return l, hash, false, nil
}

// RenderWithCacheInfo renders the layout, returning cached artifacts when
// every requested format is cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l model.Layout, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	layoutData, err := model.MarshalLayout(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, ok := r.get(ctx, r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format)), "artifact")
			if !ok {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(ctx, l, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		r.set(ctx, r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format)), "artifact", data)
	}
	return rendered, false, nil
}

// Render renders the layout with caching.
func (r *Runner) Render(ctx context.Context, l model.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// get reads from the cache. Backend errors are logged and treated as
// misses so that a flaky cache never fails a request.
func (r *Runner) get(ctx context.Context, key, keyType string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) set(ctx context.Context, key, keyType string, data []byte) {
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func nodeCount(doc model.Document) int {
	switch {
	case doc.Graph != nil:
		return doc.Graph.Adjacency.Len()
	case doc.Tree != nil:
		return len(doc.Tree.Nodes)
	}
	return 0
}
