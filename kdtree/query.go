// SPDX-License-Identifier: MIT

package kdtree

import (
	"math"

	"github.com/katalvlaran/proxima/vivaldi"
)

// split returns the signed axis gap from node n to q together with the child
// on q's side (near) and the opposite child (far). diff < 0 puts left first.
func (t *Tree) split(n *node, q vivaldi.Coordinate) (diff float64, near, far int32) {
	diff = n.axis.of(q) - n.axis.of(n.entry.Coord)
	if diff < 0 {
		return diff, n.left, n.right
	}
	return diff, n.right, n.left
}

// Nearest returns the entry closest to q by vivaldi.Distance.
// It returns (Neighbor{}, false) when the tree is empty.
//
// Ties keep the first entry found in traversal order.
func (t *Tree) Nearest(q vivaldi.Coordinate) (Neighbor, bool) {
	if t.IsEmpty() {
		return Neighbor{}, false
	}

	root := &t.nodes[t.root]
	best := Neighbor{ID: root.entry.ID, Distance: vivaldi.Distance(q, root.entry.Coord)}
	t.nearest(t.root, q, &best)

	return best, true
}

func (t *Tree) nearest(idx int32, q vivaldi.Coordinate, best *Neighbor) {
	if idx == none {
		return
	}
	n := &t.nodes[idx]

	if d := vivaldi.Distance(q, n.entry.Coord); d < best.Distance {
		best.ID, best.Distance = n.entry.ID, d
	}

	diff, near, far := t.split(n, q)
	t.nearest(near, q, best)
	if math.Abs(diff) < best.Distance {
		t.nearest(far, q, best)
	}
}

// RangeQuery returns every entry whose distance to q is at most radius, in
// traversal order. radius = +Inf returns all entries; a NaN or negative
// radius matches nothing. The result is never nil.
func (t *Tree) RangeQuery(q vivaldi.Coordinate, radius float64) []Neighbor {
	out := make([]Neighbor, 0)
	if t.IsEmpty() || !(radius >= 0) {
		return out
	}

	t.rangeQuery(t.root, q, radius, &out)

	return out
}

func (t *Tree) rangeQuery(idx int32, q vivaldi.Coordinate, radius float64, out *[]Neighbor) {
	if idx == none {
		return
	}
	n := &t.nodes[idx]

	if d := vivaldi.Distance(q, n.entry.Coord); d <= radius {
		*out = append(*out, Neighbor{ID: n.entry.ID, Distance: d})
	}

	diff, near, far := t.split(n, q)
	t.rangeQuery(near, q, radius, out)
	if math.Abs(diff) <= radius {
		t.rangeQuery(far, q, radius, out)
	}
}
