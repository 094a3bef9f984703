// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/lvlpath/adjlist"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownVertex indicates that the source vertex is not a key of the graph.
	ErrUnknownVertex = errors.New("dijkstra: unknown source vertex")

	// ErrInvalidWeight indicates a negative or NaN arc weight met during relaxation.
	ErrInvalidWeight = errors.New("dijkstra: invalid edge weight")

	// ErrDistanceOverflow indicates that a vertex is reachable only along
	// paths whose integer length exceeds the range of the weight type.
	ErrDistanceOverflow = errors.New("dijkstra: distance overflow")

	// ErrNoPath indicates that the requested vertex is not reachable.
	ErrNoPath = errors.New("dijkstra: no path to vertex")

	// ErrPathsNotRecorded indicates PathTo was called on a Result computed
	// without WithReturnPath.
	ErrPathsNotRecorded = errors.New("dijkstra: predecessors not recorded")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a
	// negative value.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a single run.
//
// ReturnPath       – record predecessor links in Result.Prev.
// MaxDistance      – when HasMaxDistance, vertices farther than this are not finalised.
// InfEdgeThreshold – when HasInfThreshold, arcs with weight ≥ this are skipped.
// OnVisit          – called once per finalised vertex, in finalisation order.
// Logger           – receives debug records; discarded by default.
type Options[V comparable, W adjlist.Weight] struct {
	ReturnPath       bool
	MaxDistance      W
	HasMaxDistance   bool
	InfEdgeThreshold W
	HasInfThreshold  bool
	OnVisit          func(v V, d W)
	Logger           *slog.Logger
}

// Option represents a functional option for configuring a run.
type Option[V comparable, W adjlist.Weight] func(*Options[V, W])

// DefaultOptions returns the configuration used when no Option is given:
// no predecessors, no distance cap, no impassable arcs, no hook, no logging.
func DefaultOptions[V comparable, W adjlist.Weight]() Options[V, W] {
	return Options[V, W]{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithReturnPath enables predecessor recording for Result.PathTo.
func WithReturnPath[V comparable, W adjlist.Weight]() Option[V, W] {
	return func(o *Options[V, W]) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration: a vertex whose shortest distance exceeds
// max is left out of the result. Panics if max is negative.
func WithMaxDistance[V comparable, W adjlist.Weight](max W) Option[V, W] {
	if max < 0 || max != max {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options[V, W]) {
		o.MaxDistance = max
		o.HasMaxDistance = true
	}
}

// WithInfEdgeThreshold treats every arc with weight ≥ threshold as
// impassable. Panics if threshold is not positive.
func WithInfEdgeThreshold[V comparable, W adjlist.Weight](threshold W) Option[V, W] {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options[V, W]) {
		o.InfEdgeThreshold = threshold
		o.HasInfThreshold = true
	}
}

// WithOnVisit registers fn to be called once per finalised vertex with its
// final distance. A nil fn is ignored.
func WithOnVisit[V comparable, W adjlist.Weight](fn func(v V, d W)) Option[V, W] {
	return func(o *Options[V, W]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger routes debug records of the search to l. A nil l is ignored.
func WithLogger[V comparable, W adjlist.Weight](l *slog.Logger) Option[V, W] {
	return func(o *Options[V, W]) {
		if l != nil {
			o.Logger = l
		}
	}
}
