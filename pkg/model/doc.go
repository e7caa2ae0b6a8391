// Package model provides the wire format for dskit inputs and layouts.
//
// This package defines the canonical serialization types used for input
// files, API requests and responses, cache entries and render sinks. It sits
// at the boundary between the pure layout engines (pkg/graph, pkg/tree) and
// everything that moves data in or out of the process.
//
// # Input Documents
//
// A [Document] is either a graph or a tree:
//
//	{
//	  "kind": "graph",
//	  "adjacency": [[1, 2], [0], [0]],
//	  "labels": ["a", "b", "c"],
//	  "pointers": [{"name": "i", "index": 0}],
//	  "motions": [{"name": "i", "from": 0, "to": 1}]
//	}
//
//	{
//	  "kind": "tree",
//	  "root": "4",
//	  "nodes": [{"id": "4", "label": "4", "left": "2"}, {"id": "2", "label": "2"}],
//	  "pointers": [{"name": "cur", "node_id": "2"}]
//	}
//
// The kind may be omitted: documents with an adjacency list are graphs and
// documents with nodes are trees. JSON and YAML are both accepted.
//
// # Layouts
//
// [Layout] is the flattened, render-ready result of a layout pass: every
// node, edge, pointer badge and pointer motion with absolute coordinates in
// a single frame. [ExportGraph] and [ExportTree] build it from engine
// results; sinks in pkg/render consume it.
//
// # Strict Validation
//
// Layout engines accept malformed input silently. [GraphDocument.Check] and
// [TreeDocument.Check] turn the engines' diagnostics into coded errors for
// callers that want to reject such input.
package model
