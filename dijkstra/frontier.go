// SPDX-License-Identifier: MIT

package dijkstra

import "github.com/katalvlaran/lvlpath/adjlist"

// entry is a tentative (vertex, distance) pair awaiting processing.
type entry[V comparable, W adjlist.Weight] struct {
	id   V
	dist W
}

// frontier is a container/heap min-heap of entries ordered by dist.
// Superseded entries are never removed; the runner drops them when popped.
type frontier[V comparable, W adjlist.Weight] []entry[V, W]

func (pq frontier[V, W]) Len() int           { return len(pq) }
func (pq frontier[V, W]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq frontier[V, W]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be an entry.
func (pq *frontier[V, W]) Push(x any) { *pq = append(*pq, x.(entry[V, W])) }

// Pop is called by heap.Pop and removes the last element.
func (pq *frontier[V, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
