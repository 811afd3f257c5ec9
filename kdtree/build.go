// SPDX-License-Identifier: MIT

package kdtree

import "sort"

// Build constructs a Tree from a snapshot of entries. The input slice is
// copied and never retained or reordered.
//
// Algorithm:
//  1. Copy entries into a scratch slice.
//  2. build(lo, hi, depth): sort scratch[lo:hi] on axisAt(depth), take
//     mid = lo + (hi−lo)/2 as this node, recurse on [lo, mid) and (mid, hi).
//  3. Nodes are appended to the arena in pre-order; the root is slot 0.
//
// Ties on the split axis keep whatever order the sort leaves; queries do not
// depend on it.
//
// Complexity: O(n log² n) time, O(n) memory.
func Build(entries []Entry) *Tree {
	t := &Tree{root: none}
	if len(entries) == 0 {
		return t
	}

	scratch := make([]Entry, len(entries))
	copy(scratch, entries)
	t.nodes = make([]node, 0, len(entries))
	t.root = t.build(scratch, 0, len(scratch), 0)

	return t
}

// build partitions scratch[lo:hi] and returns the arena index of its root.
func (t *Tree) build(scratch []Entry, lo, hi, depth int) int32 {
	if lo >= hi {
		return none
	}
	if depth+1 > t.depth {
		t.depth = depth + 1
	}

	axis := axisAt(depth)
	part := scratch[lo:hi]
	sort.Slice(part, func(i, j int) bool {
		return axis.of(part[i].Coord) < axis.of(part[j].Coord)
	})

	mid := lo + (hi-lo)/2
	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{entry: scratch[mid], axis: axis, left: none, right: none})

	left := t.build(scratch, lo, mid, depth+1)
	right := t.build(scratch, mid+1, hi, depth+1)
	t.nodes[idx].left = left
	t.nodes[idx].right = right

	return idx
}

// Len returns the number of entries in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// IsEmpty reports whether the tree holds no entries.
func (t *Tree) IsEmpty() bool {
	return t.Len() == 0
}

// Depth returns the number of levels (0 for an empty tree).
// A tree built by Build has depth ⌊log₂ n⌋ + 1.
func (t *Tree) Depth() int {
	if t == nil {
		return 0
	}
	return t.depth
}

// Entries returns a copy of the stored entries in arena (pre-order) order.
func (t *Tree) Entries() []Entry {
	out := make([]Entry, t.Len())
	for i := range out {
		out[i] = t.nodes[i].entry
	}
	return out
}
