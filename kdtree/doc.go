// SPDX-License-Identifier: MIT

// Package kdtree is an immutable 2-D KD-tree over Vivaldi coordinates that
// answers nearest, range and k-nearest queries.
//
// 🚀 Structure:
//
//	The tree is built once from a snapshot of (ID, Coordinate) entries and is
//	read-only afterwards. Nodes live in a flat slice (an arena) and refer to
//	their children by index, so there is no pointer graph to own or free.
//	Each node stores its entry and the axis it splits on: X at even depth,
//	Y at odd depth. The split element is the median (len/2) of the current
//	sub-range after sorting it on that axis.
//
//	            (5,5) X
//	           /       \
//	      (1,0) Y     (10,0) Y
//
// ✨ Queries (distances are vivaldi.Distance, heights included):
//   - Nearest(q)       — closest entry; (Neighbor{}, false) on an empty tree.
//   - RangeQuery(q, r) — every entry with distance ≤ r, in traversal order.
//   - KNearest(q, k)   — the k closest entries, ascending; ties by ascending ID.
//   - KNearestEntries  — KNearest that returns the matched entries with distances.
//
// Pruning:
//
//	The far child of a node is skipped when the one-axis gap |q.axis − node.axis|
//	already exceeds the bound (the best distance so far, or the radius).
//	The gap never exceeds the planar separation, and heights only add to the
//	distance, so the bound is sound even though Vivaldi distance is not a
//	metric.
//
// Concurrency:
//
//	A built Tree is never mutated. Any number of goroutines may query it
//	without locking; NearestAll and RangeAll fan a batch of queries out over
//	a bounded worker group. A membership change means building a new Tree.
//
// Complexity:
//
//   - Build:      O(n log² n) time (a sort per level), O(n) memory.
//   - Nearest:    O(log n) expected, O(n) worst case.
//   - RangeQuery: O(√n + m) expected for m results.
//   - KNearest:   O(n log k) time, O(k) extra memory.
package kdtree
