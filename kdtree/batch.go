// SPDX-License-Identifier: MIT

package kdtree

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/proxima/vivaldi"
)

// NearestAll runs Nearest for every query on up to workers goroutines.
// Results are aligned with queries: out[i] is valid when found[i] is true.
// workers <= 0 means runtime.GOMAXPROCS(0). A cancelled ctx aborts the batch
// and returns ctx.Err().
func NearestAll(ctx context.Context, t *Tree, queries []vivaldi.Coordinate, workers int) ([]Neighbor, []bool, error) {
	out := make([]Neighbor, len(queries))
	found := make([]bool, len(queries))

	err := fanOut(ctx, len(queries), workers, func(i int) {
		out[i], found[i] = t.Nearest(queries[i])
	})
	if err != nil {
		return nil, nil, err
	}

	return out, found, nil
}

// RangeAll runs RangeQuery with a shared radius for every query on up to
// workers goroutines. out[i] answers queries[i].
func RangeAll(ctx context.Context, t *Tree, queries []vivaldi.Coordinate, radius float64, workers int) ([][]Neighbor, error) {
	out := make([][]Neighbor, len(queries))

	err := fanOut(ctx, len(queries), workers, func(i int) {
		out[i] = t.RangeQuery(queries[i], radius)
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// fanOut calls fn(i) for i in [0, n) striped over the workers. Each i is
// handled by exactly one goroutine, so fn may write slot i without locking.
func fanOut(ctx context.Context, n, workers int, fn func(i int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w
		g.Go(func() error {
			for i := start; i < n; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				fn(i)
			}
			return nil
		})
	}

	return g.Wait()
}
