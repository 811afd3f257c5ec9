// SPDX-License-Identifier: MIT

package kdtree_test

import (
	"fmt"

	"github.com/katalvlaran/proxima/kdtree"
	"github.com/katalvlaran/proxima/vivaldi"
)

// ExampleTree_Nearest finds the closest party to a query point.
func ExampleTree_Nearest() {
	tree := kdtree.Build([]kdtree.Entry{
		{ID: 1, Coord: vivaldi.MustNew(0, 0)},
		{ID: 2, Coord: vivaldi.MustNew(10, 0)},
		{ID: 3, Coord: vivaldi.MustNew(5, 5)},
	})

	n, ok := tree.Nearest(vivaldi.MustNew(1, 0))
	fmt.Println(ok, n.ID, n.Distance)
	// Output: true 1 1
}

// ExampleTree_KNearest lists the two closest parties; ties resolve by ID.
func ExampleTree_KNearest() {
	tree := kdtree.Build([]kdtree.Entry{
		{ID: 8, Coord: vivaldi.MustNew(0, 3)},
		{ID: 4, Coord: vivaldi.MustNew(3, 0)},
		{ID: 2, Coord: vivaldi.MustNew(30, 40)},
	})

	for _, n := range tree.KNearest(vivaldi.MustNew(0, 0), 2) {
		fmt.Printf("id=%d d=%.1f\n", n.ID, n.Distance)
	}
	// Output:
	// id=4 d=3.0
	// id=8 d=3.0
}
