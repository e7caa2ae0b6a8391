// Package pkg provides the core libraries for dskit data-structure
// visualization.
//
// # Overview
//
// dskit turns small data-structure snapshots (adjacency lists, binary
// trees, the pointers into them and the moves between them) into
// positioned, annotated diagrams. The pkg directory is organized into
// four areas:
//
//  1. Engines: [graph] and [tree] compute node positions
//  2. Annotations: [pointer] places badges, routes motions and assigns colors
//  3. Components: [state] and [component] model UI widgets as reducers
//  4. Orchestration: [model], [pipeline], [render] and [cache]
//
// # Architecture
//
// The typical data flow:
//
//	JSON / YAML document
//	         ↓
//	    [model] package (parse, check)
//	         ↓
//	    [graph] or [tree] package (positions, edges, frame)
//	         ↓
//	    [pointer] package (badges, motion curves, palette)
//	         ↓
//	    [render] packages (SVG, DOT, terminal) or JSON
//
// [pipeline.Runner] wraps the flow with a [cache] in front of both the
// layout and the render step.
//
// # Quick Start
//
//	doc, _ := model.ParseDocument([]byte(`{"adjacency": [[1], [2], []], "labels": ["a", "b", "c"]}`))
//
//	opts := pipeline.Options{Formats: []string{"svg"}}
//	l, _ := pipeline.ComputeLayout(doc, opts)
//	out, _ := pipeline.Render(ctx, l, opts)
//	os.WriteFile("list.svg", out["svg"], 0o644)
//
// # Main Packages
//
// [geom] - Points, sizes, rectangles and the arrow-head math shared by the
// engines and renderers.
//
// [graph] - Circular layout for small graphs and a force-directed layout
// for larger ones, plus edge identity and undirected detection.
//
// [tree] - Binary tree layout by in-order slots and depth levels.
//
// [pointer] - Pointer badges stacked above nodes, motion curves between
// nodes, and the FNV-1a name to palette slot mapping.
//
// [state] - A generic reducer store with subscribers.
//
// [component] - Reducers for button, toggle, selection, text field,
// progress, bubble, validation and alert widgets.
//
// [errors] - Coded errors shared by every layer and mapped to exit codes
// and HTTP statuses at the edges.
//
// [cache] - File, Redis and MongoDB cache backends behind one interface.
//
// [observability] - Hooks for pipeline, cache and server events with a
// Prometheus implementation.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/graph/...    # Specific package
//	go test -run Example       # Examples only
//
// [geom]: https://pkg.go.dev/github.com/leetpulse/dskit/pkg/geom
// [graph]: https://pkg.go.dev/github.com/leetpulse/dskit/pkg/graph
// [tree]: https://pkg.go.dev/github.com/leetpulse/dskit/pkg/tree
// [pointer]: https://pkg.go.dev/github.com/leetpulse/dskit/pkg/pointer
// [state]: https://pkg.go.dev/github.com/leetpulse/dskit/pkg/state
// [component]: https://pkg.go.dev/github.com/leetpulse/dskit/pkg/component
// [errors]: https://pkg.go.dev/github.com/leetpulse/dskit/pkg/errors
// [model]: https://pkg.go.dev/github.com/leetpulse/dskit/pkg/model
// [pipeline]: https://pkg.go.dev/github.com/leetpulse/dskit/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/leetpulse/dskit/pkg/pipeline#Runner
// [render]: https://pkg.go.dev/github.com/leetpulse/dskit/pkg/render
// [cache]: https://pkg.go.dev/github.com/leetpulse/dskit/pkg/cache
// [observability]: https://pkg.go.dev/github.com/leetpulse/dskit/pkg/observability
package pkg
