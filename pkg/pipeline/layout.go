package pipeline

import (
	"context"

	"github.com/leetpulse/dskit/pkg/errors"
	"github.com/leetpulse/dskit/pkg/geom"
	"github.com/leetpulse/dskit/pkg/graph"
	"github.com/leetpulse/dskit/pkg/model"
	"github.com/leetpulse/dskit/pkg/tree"
)

// ComputeLayout runs the engine matching the document's kind and flattens
// the result into a render-ready layout. In strict mode the document is
// checked first; otherwise malformed input is laid out leniently.
func ComputeLayout(doc model.Document, opts Options) (model.Layout, error) {
	return ComputeLayoutContext(context.Background(), doc, opts)
}

// ComputeLayoutContext is [ComputeLayout] with a force simulation that
// stops once ctx is done, in which case ctx's error is returned.
func ComputeLayoutContext(ctx context.Context, doc model.Document, opts Options) (model.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return model.Layout{}, err
	}
	if err := checkSize(doc, opts); err != nil {
		return model.Layout{}, err
	}
	if opts.Strict {
		if err := doc.Check(); err != nil {
			return model.Layout{}, err
		}
	}

	var l model.Layout
	switch {
	case doc.Graph != nil:
		l = layoutGraph(ctx, *doc.Graph, opts)
	case doc.Tree != nil:
		l = layoutTree(*doc.Tree, opts)
	default:
		return model.Layout{}, errors.New(errors.ErrCodeInvalidInput, "document has no content")
	}
	if err := ctx.Err(); err != nil {
		return model.Layout{}, err
	}
	return l, nil
}

// checkSize bounds the work a document can ask for. Graphs above the
// circular threshold run the quadratic force simulation.
func checkSize(doc model.Document, opts Options) error {
	n := nodeCount(doc)
	if err := errors.ValidateNodeCount(n); err != nil {
		return err
	}
	if doc.Graph != nil && n > opts.CircularThreshold {
		return errors.ValidateForceWork(n, opts.Iterations)
	}
	return nil
}

func layoutGraph(ctx context.Context, doc model.GraphDocument, opts Options) model.Layout {
	height := opts.Height
	if height == 0 {
		height = graph.PreferredHeight(doc.Adjacency.Len())
	}
	gopts := []graph.Option{
		graph.WithContext(ctx),
		graph.WithIterations(opts.Iterations),
		graph.WithCircularThreshold(opts.CircularThreshold),
	}
	if opts.SequentialIDs {
		gopts = append(gopts, graph.WithEdgeIDs(graph.SequentialIDs()))
	}

	r := graph.Layout(doc.Adjacency, geom.Sz(opts.Width, height), opts.NodeSize, gopts...)
	opts.Logger.Debug("graph layout",
		"nodes", len(r.Nodes),
		"edges", len(r.Edges),
		"undirected", r.Undirected)
	return model.ExportGraph(doc, r, opts.Params())
}

func layoutTree(doc model.TreeDocument, opts Options) model.Layout {
	r := tree.Layout(doc.Tree(), geom.Sz(opts.Width, opts.Height), opts.NodeSize, opts.LevelSpacing)
	opts.Logger.Debug("tree layout",
		"nodes", len(r.Nodes),
		"depth", r.MaxDepth())
	return model.ExportTree(doc, r, opts.Params())
}
