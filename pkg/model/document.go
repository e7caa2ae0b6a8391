package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/leetpulse/dskit/pkg/errors"
	"github.com/leetpulse/dskit/pkg/graph"
	"github.com/leetpulse/dskit/pkg/pointer"
	"github.com/leetpulse/dskit/pkg/tree"
)

// =============================================================================
// Constants
// =============================================================================

// Document kinds, also used as Layout.VizType.
const (
	KindGraph = "graph"
	KindTree  = "tree"
)

// =============================================================================
// Documents
// =============================================================================

// GraphDocument is the input for a graph layout.
type GraphDocument struct {
	Adjacency graph.Adjacency  `json:"adjacency" yaml:"adjacency" bson:"adjacency"`
	Labels    []string         `json:"labels,omitempty" yaml:"labels,omitempty" bson:"labels,omitempty"`
	Pointers  []pointer.Marker `json:"pointers,omitempty" yaml:"pointers,omitempty" bson:"pointers,omitempty"`
	Motions   []pointer.Motion `json:"motions,omitempty" yaml:"motions,omitempty" bson:"motions,omitempty"`
}

// Label returns the display label of node i: the supplied label when
// present, otherwise the index.
func (d GraphDocument) Label(i int) string {
	if i >= 0 && i < len(d.Labels) {
		return d.Labels[i]
	}
	return strconv.Itoa(i)
}

// TreeDocument is the input for a tree layout.
type TreeDocument struct {
	Root        string               `json:"root,omitempty" yaml:"root,omitempty" bson:"root,omitempty"`
	Nodes       []tree.Node          `json:"nodes" yaml:"nodes" bson:"nodes"`
	Pointers    []pointer.Marker     `json:"pointers,omitempty" yaml:"pointers,omitempty" bson:"pointers,omitempty"`
	Motions     []pointer.TreeMotion `json:"motions,omitempty" yaml:"motions,omitempty" bson:"motions,omitempty"`
	Highlighted []string             `json:"highlighted,omitempty" yaml:"highlighted,omitempty" bson:"highlighted,omitempty"`
}

// Tree returns the document's tree.
func (d TreeDocument) Tree() tree.Tree { return tree.Tree{Nodes: d.Nodes, Root: d.Root} }

// Document is a parsed input of either kind. Exactly one of Graph and Tree
// is set.
type Document struct {
	Kind  string
	Graph *GraphDocument
	Tree  *TreeDocument
}

// IsGraph returns true if this is a graph document.
func (d Document) IsGraph() bool { return d.Kind == KindGraph }

// IsTree returns true if this is a tree document.
func (d Document) IsTree() bool { return d.Kind == KindTree }

// envelope is the on-disk shape of both document kinds.
type envelope struct {
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	Adjacency graph.Adjacency `json:"adjacency,omitempty" yaml:"adjacency,omitempty"`
	Labels    []string        `json:"labels,omitempty" yaml:"labels,omitempty"`

	Root        string      `json:"root,omitempty" yaml:"root,omitempty"`
	Nodes       []tree.Node `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Highlighted []string    `json:"highlighted,omitempty" yaml:"highlighted,omitempty"`

	Pointers []pointer.Marker `json:"pointers,omitempty" yaml:"pointers,omitempty"`
	// Motions differ by kind and are decoded in a second pass.
	Motions rawMotions `json:"motions,omitempty" yaml:"motions,omitempty"`
}

// =============================================================================
// Parsing API
// =============================================================================

// ParseDocument decodes a JSON or YAML document.
func ParseDocument(data []byte) (Document, error) {
	var env envelope
	if isJSON(data) {
		if err := json.Unmarshal(data, &env); err != nil {
			return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode JSON document")
		}
	} else {
		if err := yaml.Unmarshal(data, &env); err != nil {
			return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode YAML document")
		}
	}
	return env.document()
}

// ReadDocument decodes a document from r.
func ReadDocument(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}
	return ParseDocument(data)
}

// ReadDocumentFile decodes the document stored at path.
func ReadDocumentFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s not found", path)
		}
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseDocument(data)
}

// MarshalDocument encodes a document as indented JSON with its kind set.
func MarshalDocument(d Document) ([]byte, error) {
	var v any
	switch {
	case d.Graph != nil:
		v = struct {
			Kind string `json:"kind"`
			GraphDocument
		}{KindGraph, *d.Graph}
	case d.Tree != nil:
		v = struct {
			Kind string `json:"kind"`
			TreeDocument
		}{KindTree, *d.Tree}
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "document has no content")
	}
	return json.MarshalIndent(v, "", "  ")
}

// =============================================================================
// Internal Implementation
// =============================================================================

func isJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

func (e envelope) document() (Document, error) {
	kind := e.Kind
	if kind == "" {
		switch {
		case e.Adjacency != nil:
			kind = KindGraph
		case e.Nodes != nil || e.Root != "":
			kind = KindTree
		default:
			return Document{}, errors.New(errors.ErrCodeInvalidInput, "document has neither adjacency nor nodes")
		}
	}

	switch kind {
	case KindGraph:
		motions, err := e.Motions.graph()
		if err != nil {
			return Document{}, err
		}
		return Document{Kind: KindGraph, Graph: &GraphDocument{
			Adjacency: e.Adjacency,
			Labels:    e.Labels,
			Pointers:  e.Pointers,
			Motions:   motions,
		}}, nil
	case KindTree:
		motions, err := e.Motions.tree()
		if err != nil {
			return Document{}, err
		}
		return Document{Kind: KindTree, Tree: &TreeDocument{
			Root:        e.Root,
			Nodes:       e.Nodes,
			Pointers:    e.Pointers,
			Motions:     motions,
			Highlighted: e.Highlighted,
		}}, nil
	}
	return Document{}, errors.New(errors.ErrCodeInvalidInput, "unknown document kind %q (valid: graph, tree)", kind)
}

// rawMotion holds a motion before its kind is known. Endpoints are kept as
// scalars so graph indices and tree ids both decode.
type rawMotion struct {
	Name  string `json:"name" yaml:"name"`
	From  scalar `json:"from" yaml:"from"`
	To    scalar `json:"to" yaml:"to"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

type rawMotions []rawMotion

func (ms rawMotions) graph() ([]pointer.Motion, error) {
	if ms == nil {
		return nil, nil
	}
	out := make([]pointer.Motion, len(ms))
	for i, m := range ms {
		from, err := strconv.Atoi(string(m.From))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "motion %d: from must be a node index, got %q", i, m.From)
		}
		to, err := strconv.Atoi(string(m.To))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "motion %d: to must be a node index, got %q", i, m.To)
		}
		out[i] = pointer.Motion{Name: m.Name, FromIndex: from, ToIndex: to, Color: m.Color}
	}
	return out, nil
}

func (ms rawMotions) tree() ([]pointer.TreeMotion, error) {
	if ms == nil {
		return nil, nil
	}
	out := make([]pointer.TreeMotion, len(ms))
	for i, m := range ms {
		out[i] = pointer.TreeMotion{Name: m.Name, FromID: string(m.From), ToID: string(m.To), Color: m.Color}
	}
	return out, nil
}

// scalar accepts a JSON/YAML string or number and keeps its text.
type scalar string

func (s *scalar) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = scalar(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*s = scalar(num.String())
	return nil
}

func (s *scalar) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected string or number", n.Line)
	}
	*s = scalar(n.Value)
	return nil
}
