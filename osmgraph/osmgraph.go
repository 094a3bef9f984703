// SPDX-License-Identifier: MIT

// Package osmgraph turns an OpenStreetMap XML extract into a road graph
// keyed by OSM node ID, weighted by segment length in metres.
//
// Every way accepted by the highway filter contributes one arc per pair of
// consecutive node references:
//
//	oneway=yes|true|1   forward arcs only
//	oneway=-1|reverse   reverse arcs only
//	anything else       both directions
//
// Segment lengths are haversine distances (github.com/paulmach/orb/geo).
// Nodes are only added to the graph when a kept way references them.
package osmgraph

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"

	"github.com/katalvlaran/lvlpath/adjlist"
)

// ErrMissingNode indicates that a kept way references a node absent from
// the extract.
var ErrMissingNode = errors.New("osmgraph: way references unknown node")

// Graph is the road graph produced by Build.
type Graph = adjlist.Graph[osm.NodeID, float64]

// direction of travel allowed on a way.
type direction int

const (
	bothWays direction = iota
	forward
	reverse
)

// Options configures Build.
type Options struct {
	// Keep reports whether a way is part of the road network.
	Keep func(tags osm.Tags) bool
}

// Option is a functional option for Build.
type Option func(*Options)

// WithHighwayFilter replaces the default filter (any way with a highway
// tag). A nil fn is ignored.
func WithHighwayFilter(fn func(tags osm.Tags) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Keep = fn
		}
	}
}

// IsHighway is the default filter: the way carries a non-empty highway tag.
func IsHighway(tags osm.Tags) bool {
	return tags.Find("highway") != ""
}

// Build scans r as OSM XML and returns the road graph. All missing node
// references are reported together; no graph is returned in that case.
func Build(ctx context.Context, r io.Reader, opts ...Option) (Graph, error) {
	o := Options{Keep: IsHighway}
	for _, opt := range opts {
		opt(&o)
	}

	points := make(map[osm.NodeID]orb.Point)
	var ways []*osm.Way

	scanner := osmxml.New(ctx, r)
	defer scanner.Close()
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			points[obj.ID] = orb.Point{obj.Lon, obj.Lat}
		case *osm.Way:
			if o.Keep(obj.Tags) {
				ways = append(ways, obj)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("osmgraph: scan: %w", err)
	}

	g := adjlist.New[osm.NodeID, float64]()
	var result *multierror.Error
	for _, w := range ways {
		if err := addWay(g, points, w); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return g, nil
}

// addWay adds the arcs of w. Nothing is added when a node is missing.
func addWay(g Graph, points map[osm.NodeID]orb.Point, w *osm.Way) error {
	ids := make([]osm.NodeID, 0, len(w.Nodes))
	for _, wn := range w.Nodes {
		if _, ok := points[wn.ID]; !ok {
			return fmt.Errorf("%w: way %d node %d", ErrMissingNode, w.ID, wn.ID)
		}
		ids = append(ids, wn.ID)
	}

	dir := wayDirection(w.Tags)
	for _, id := range ids {
		g.AddVertex(id)
	}
	for i := 1; i < len(ids); i++ {
		a, b := ids[i-1], ids[i]
		if a == b {
			continue
		}
		length := geo.Distance(points[a], points[b])
		switch dir {
		case forward:
			g.AddArc(a, b, length)
		case reverse:
			g.AddArc(b, a, length)
		default:
			g.AddEdge(a, b, length)
		}
	}

	return nil
}

func wayDirection(tags osm.Tags) direction {
	switch tags.Find("oneway") {
	case "yes", "true", "1":
		return forward
	case "-1", "reverse":
		return reverse
	default:
		return bothWays
	}
}
