// Package render groups the output sinks for computed layouts.
//
// Every sink consumes a [model.Layout], the flattened, render-ready result
// of the graph and tree engines:
//
//   - [svg]: standalone SVG with nodes, edges, pointer badges and motions
//   - [dot]: Graphviz DOT with pinned positions, and SVG via Graphviz
//   - [term]: a character-grid preview for terminals
//
// JSON output is [model.MarshalLayout] itself.
//
// [model.Layout]: github.com/leetpulse/dskit/pkg/model#Layout
// [model.MarshalLayout]: github.com/leetpulse/dskit/pkg/model#MarshalLayout
// [svg]: github.com/leetpulse/dskit/pkg/render/svg
// [dot]: github.com/leetpulse/dskit/pkg/render/dot
// [term]: github.com/leetpulse/dskit/pkg/render/term
package render
