// File: decode.go
// Role: YAML graph documents: Decode/Encode and file helpers.
//
//	vertices: 4
//	undirected: true
//	loops: false
//	multi_edges: false
//	edges:
//	  - {from: 0, to: 1, weight: 4}
//	  - {from: 0, to: 2, weight: 1}
//
// undirected=true inserts every listed edge in both directions.

package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadDocument indicates a graph document that could not be turned into a Graph.
var ErrBadDocument = errors.New("core: invalid graph document")

// Document is the serialized form of a Graph.
type Document struct {
	Vertices   int    `yaml:"vertices"`
	Undirected bool   `yaml:"undirected,omitempty"`
	Loops      bool   `yaml:"loops,omitempty"`
	MultiEdges bool   `yaml:"multi_edges,omitempty"`
	Edges      []Edge `yaml:"edges"`
}

// Build turns the document into a Graph, validating every edge through
// the same path as AddEdge.
func (d Document) Build() (*Graph, error) {
	var opts []GraphOption
	if d.Loops {
		opts = append(opts, WithLoops())
	}
	if d.MultiEdges {
		opts = append(opts, WithMultiEdges())
	}
	g, err := NewGraph(d.Vertices, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	for i, e := range d.Edges {
		if d.Undirected {
			err = g.AddUndirectedEdge(e.From, e.To, e.Weight)
		} else {
			err = g.AddEdge(e.From, e.To, e.Weight)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: edge #%d: %w", ErrBadDocument, i, err)
		}
	}

	return g, nil
}

// Decode reads a YAML graph document from r and builds the Graph.
func Decode(r io.Reader) (*Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}

	return doc.Build()
}

// Encode writes g to w as a directed YAML document.
func Encode(w io.Writer, g *Graph) error {
	g.mu.RLock()
	doc := Document{
		Vertices:   len(g.adjacency),
		Loops:      g.allowLoops,
		MultiEdges: g.allowMulti,
		Edges:      make([]Edge, 0, g.edgeCount),
	}
	for _, adj := range g.adjacency {
		doc.Edges = append(doc.Edges, adj...)
	}
	g.mu.RUnlock()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}

	return enc.Close()
}

// LoadFile opens path and decodes it with Decode.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}
