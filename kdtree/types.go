// SPDX-License-Identifier: MIT

package kdtree

import "github.com/katalvlaran/proxima/vivaldi"

// Axis is the split dimension of a node.
type Axis uint8

const (
	// AxisX splits on the first planar component (even depths).
	AxisX Axis = iota

	// AxisY splits on the second planar component (odd depths).
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// of returns c's component along a. Height never participates.
func (a Axis) of(c vivaldi.Coordinate) float64 {
	if a == AxisX {
		return c.X()
	}
	return c.Y()
}

// axisAt returns the split axis for a depth.
func axisAt(depth int) Axis {
	return Axis(depth % 2)
}

// Entry pairs an opaque party identifier with its coordinate.
// IDs are not required to be unique; duplicates are kept as separate entries.
type Entry struct {
	ID    uint32
	Coord vivaldi.Coordinate
}

// Neighbor is a query result: an entry ID and its distance to the query.
type Neighbor struct {
	ID       uint32
	Distance float64
}

// none marks an absent child.
const none int32 = -1

// node is one arena slot. left/right index Tree.nodes or hold none.
type node struct {
	entry Entry
	axis  Axis
	left  int32
	right int32
}

// Tree is an immutable KD-tree. The zero value and a nil *Tree behave as an
// empty tree.
type Tree struct {
	nodes []node
	root  int32
	depth int
}
