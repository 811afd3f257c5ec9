// SPDX-License-Identifier: MIT

package kdtree_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/proxima/kdtree"
	"github.com/katalvlaran/proxima/vivaldi"
)

func TestNearestAll_MatchesSequential(t *testing.T) {
	r := rand.New(rand.NewSource(20))
	tree := kdtree.Build(randomEntries(r, 250))
	queries := make([]vivaldi.Coordinate, 97)
	for i := range queries {
		queries[i] = randomQuery(r)
	}

	for _, workers := range []int{0, 1, 3, 500} {
		got, found, err := kdtree.NearestAll(context.Background(), tree, queries, workers)
		require.NoError(t, err, "workers=%d", workers)
		require.Len(t, got, len(queries))
		require.Len(t, found, len(queries))
		for i, q := range queries {
			want, ok := tree.Nearest(q)
			assert.Equal(t, ok, found[i])
			assert.Equal(t, want, got[i], "workers=%d query %d", workers, i)
		}
	}
}

func TestRangeAll_MatchesSequential(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	tree := kdtree.Build(randomEntries(r, 250))
	queries := make([]vivaldi.Coordinate, 40)
	for i := range queries {
		queries[i] = randomQuery(r)
	}

	got, err := kdtree.RangeAll(context.Background(), tree, queries, 25, 4)
	require.NoError(t, err)
	require.Len(t, got, len(queries))
	for i, q := range queries {
		assert.Equal(t, tree.RangeQuery(q, 25), got[i], "query %d", i)
	}
}

func TestBatch_EmptyTree(t *testing.T) {
	tree := kdtree.Build(nil)
	queries := []vivaldi.Coordinate{vivaldi.MustNew(0, 0), vivaldi.MustNew(1, 1)}

	got, found, err := kdtree.NearestAll(context.Background(), tree, queries, 2)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false}, found)
	assert.Equal(t, []kdtree.Neighbor{{}, {}}, got)

	ranges, err := kdtree.RangeAll(context.Background(), tree, queries, 10, 2)
	require.NoError(t, err)
	for _, rq := range ranges {
		assert.Empty(t, rq)
	}
}

func TestBatch_NoQueries(t *testing.T) {
	tree := kdtree.Build([]kdtree.Entry{{ID: 1, Coord: vivaldi.MustNew(0, 0)}})

	got, found, err := kdtree.NearestAll(context.Background(), tree, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, found)
}

func TestBatch_Cancelled(t *testing.T) {
	tree := kdtree.Build([]kdtree.Entry{{ID: 1, Coord: vivaldi.MustNew(0, 0)}})
	queries := []vivaldi.Coordinate{vivaldi.MustNew(0, 0)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, found, err := kdtree.NearestAll(ctx, tree, queries, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
	assert.Nil(t, found)

	ranges, err := kdtree.RangeAll(ctx, tree, queries, 1, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, ranges)
}
