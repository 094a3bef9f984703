// SPDX-License-Identifier: MIT

package adjlist

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Document is the YAML shape of a graph fixture:
//
//	directed: true
//	vertices: [E]
//	edges:
//	  - {from: A, to: B, weight: 4}
//	  - {from: A, to: C, weight: 2}
//
// With directed=false every edge is mirrored. Vertices lists extra vertices
// (typically isolated ones); endpoints of edges never need to be listed.
type Document struct {
	Directed bool           `yaml:"directed"`
	Vertices []string       `yaml:"vertices,omitempty"`
	Edges    []DocumentEdge `yaml:"edges"`
}

// DocumentEdge is one edge entry of a Document.
type DocumentEdge struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Decode reads a YAML Document from r and builds the corresponding graph.
// Every invalid entry is reported in a single aggregated error; no graph is
// returned in that case.
//
// Errors:
//   - ErrMalformedDocument: r does not hold a YAML document of the expected shape.
//   - ErrEmptyVertexID:     an edge or vertex entry has an empty ID.
//   - ErrNegativeWeight:    an edge has a negative or NaN weight.
func Decode(r io.Reader) (Graph[string, float64], error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return doc.Graph()
}

// Graph validates d and converts it to an adjacency list.
func (d Document) Graph() (Graph[string, float64], error) {
	var result *multierror.Error
	for i, v := range d.Vertices {
		if v == "" {
			result = multierror.Append(result, fmt.Errorf("%w: vertices[%d]", ErrEmptyVertexID, i))
		}
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			result = multierror.Append(result, fmt.Errorf("%w: edges[%d] %q→%q", ErrEmptyVertexID, i, e.From, e.To))
		}
		if IsInvalidWeight(e.Weight) {
			result = multierror.Append(result, fmt.Errorf("%w: edges[%d] %s→%s weight=%v", ErrNegativeWeight, i, e.From, e.To, e.Weight))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	g := New[string, float64]()
	for _, v := range d.Vertices {
		g.AddVertex(v)
	}
	for _, e := range d.Edges {
		if d.Directed {
			g.AddArc(e.From, e.To, e.Weight)
		} else {
			g.AddEdge(e.From, e.To, e.Weight)
		}
	}

	return g, nil
}

// Encode writes g to w as a directed Document. Vertices without outgoing
// arcs are listed under vertices, arcs are emitted in sorted vertex order
// so the output is stable.
func Encode(w io.Writer, g Graph[string, float64]) error {
	doc := Document{Directed: true}
	for _, v := range SortedVertices(g) {
		arcs := g[v]
		if len(arcs) == 0 {
			doc.Vertices = append(doc.Vertices, v)
			continue
		}
		for _, a := range arcs {
			doc.Edges = append(doc.Edges, DocumentEdge{From: v, To: a.To, Weight: a.Weight})
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("adjlist: encode: %w", err)
	}

	return enc.Close()
}
