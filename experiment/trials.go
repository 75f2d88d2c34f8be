// SPDX-License-Identifier: MIT
package experiment

import (
	"context"
	"math/rand"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gainsearch/search"
)

// TrialFunc runs trial i with its private rng.
type TrialFunc[T any] func(ctx context.Context, i int, rng *rand.Rand) (T, error)

// RunTrials runs n trials on at most workers goroutines and returns their
// results in trial order. The first failure cancels the remaining trials
// and is returned wrapped with the trial index and seed.
func RunTrials[T any](ctx context.Context, n, workers int, seed int64, fn TrialFunc[T]) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "RunTrials: n=%d", n)
	}
	if workers < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "RunTrials: workers=%d", workers)
	}
	if fn == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "RunTrials: nil trial func")
	}
	if seed == 0 {
		seed = search.DefaultSeed
	}

	out := make([]T, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s := search.DeriveSeed(seed, uint64(i))
			r, err := fn(gctx, i, rand.New(rand.NewSource(s)))
			if err != nil {
				return errors.Wrapf(err, "trial %d (seed=%d)", i, s)
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
