// SPDX-License-Identifier: MIT

package kdtree

import (
	"container/heap"

	"github.com/katalvlaran/proxima/vivaldi"
)

// Match is a k-nearest result that keeps the whole entry, so callers can use
// the matched coordinate without looking it up again.
type Match struct {
	Entry
	Distance float64
}

// KNearest returns the k entries closest to q in ascending distance order.
// Equal distances are ordered by ascending ID, so the result does not depend
// on how the tree was built. k <= 0 or an empty tree yields an empty slice;
// k >= Len() yields every entry.
//
// Complexity: O(n log k) time, O(k) extra memory.
func (t *Tree) KNearest(q vivaldi.Coordinate, k int) []Neighbor {
	matches := t.KNearestEntries(q, k)
	out := make([]Neighbor, len(matches))
	for i, m := range matches {
		out[i] = Neighbor{ID: m.ID, Distance: m.Distance}
	}
	return out
}

// KNearestEntries is KNearest returning the matched entries, in the same order.
func (t *Tree) KNearestEntries(q vivaldi.Coordinate, k int) []Match {
	if k <= 0 || t.IsEmpty() {
		return make([]Match, 0)
	}
	if k > len(t.nodes) {
		k = len(t.nodes)
	}

	h := make(farthestFirst, 0, k)
	for i := range t.nodes {
		e := t.nodes[i].entry
		c := Match{Entry: e, Distance: vivaldi.Distance(q, e.Coord)}
		if len(h) < k {
			heap.Push(&h, c)
			continue
		}
		if precedes(c, h[0]) {
			h[0] = c
			heap.Fix(&h, 0)
		}
	}

	out := make([]Match, len(h))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(Match)
	}

	return out
}

// precedes reports whether a ranks before b: closer, or equally close with
// a smaller ID.
func precedes(a, b Match) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.ID < b.ID
}

// farthestFirst is a max-heap of candidates; the worst one sits at index 0.
type farthestFirst []Match

func (h farthestFirst) Len() int           { return len(h) }
func (h farthestFirst) Less(i, j int) bool { return precedes(h[j], h[i]) }
func (h farthestFirst) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *farthestFirst) Push(x any) { *h = append(*h, x.(Match)) }

func (h *farthestFirst) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
