// SPDX-License-Identifier: MIT

package adjlist

import (
	"cmp"
	"sort"

	"golang.org/x/exp/maps"
)

// AddVertex ensures v is a key of g. Existing arcs are left untouched.
// Complexity: O(1) amortized.
func (g Graph[V, W]) AddVertex(v V) {
	if _, ok := g[v]; !ok {
		g[v] = nil
	}
}

// AddArc appends the directed arc from→to with weight w and ensures both
// endpoints are keys of g. Parallel arcs are kept.
// Complexity: O(1) amortized.
func (g Graph[V, W]) AddArc(from, to V, w W) {
	g.AddVertex(to)
	g[from] = append(g[from], Arc[V, W]{To: to, Weight: w})
}

// AddEdge adds the undirected edge a-b as two mirrored arcs.
// A self-loop (a == b) is stored once.
// Complexity: O(1) amortized.
func (g Graph[V, W]) AddEdge(a, b V, w W) {
	g.AddArc(a, b, w)
	if a != b {
		g.AddArc(b, a, w)
	}
}

// HasVertex reports whether v is a key of g.
func (g Graph[V, W]) HasVertex(v V) bool {
	_, ok := g[v]

	return ok
}

// Arcs returns the outgoing arcs of v. The returned slice aliases g;
// treat it as read-only.
func (g Graph[V, W]) Arcs(v V) []Arc[V, W] {
	return g[v]
}

// Order returns the number of vertex keys in g.
func (g Graph[V, W]) Order() int {
	return len(g)
}

// Size returns the total number of arcs in g. An undirected edge added with
// AddEdge counts twice, a self-loop once.
func (g Graph[V, W]) Size() int {
	n := 0
	for _, arcs := range g {
		n += len(arcs)
	}

	return n
}

// Clone returns a deep copy of g: a new map and fresh arc slices.
// Complexity: O(V + E).
func (g Graph[V, W]) Clone() Graph[V, W] {
	if g == nil {
		return nil
	}
	out := make(Graph[V, W], len(g))
	for v, arcs := range g {
		if arcs == nil {
			out[v] = nil
			continue
		}
		cp := make([]Arc[V, W], len(arcs))
		copy(cp, arcs)
		out[v] = cp
	}

	return out
}

// SortedVertices returns every vertex key of g in ascending order.
// Neighbors that are not keys are not included.
func SortedVertices[V cmp.Ordered, W Weight](g Graph[V, W]) []V {
	vs := maps.Keys(g)
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })

	return vs
}
