// SPDX-License-Identifier: MIT
package bisection_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gainsearch/bisection"
)

func TestInstance_Validation(t *testing.T) {
	_, err := bisection.NewInstance([][]int64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}})
	require.ErrorIs(t, err, bisection.ErrOddVertexCount)

	_, err = bisection.NewInstance([][]int64{{0, 1}, {2, 0}})
	require.ErrorIs(t, err, bisection.ErrBadWeights)

	_, err = bisection.NewInstance([][]int64{{1, 1}, {1, 0}})
	require.ErrorIs(t, err, bisection.ErrBadWeights)

	_, err = bisection.NewInstance([][]int64{{0, 1}, {1}})
	require.ErrorIs(t, err, bisection.ErrBadWeights)

	_, err = bisection.RandomInstance(7, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, bisection.ErrOddVertexCount)

	_, err = bisection.Solve(context.Background(), bisection.Instance{})
	require.ErrorIs(t, err, bisection.ErrOddVertexCount)
}

// TestSolve_TwoClusters: two heavy triangles joined by light edges must be
// separated whatever the initial split.
func TestSolve_TwoClusters(t *testing.T) {
	const heavy, light = 50, 1
	w := make([][]int64, 6)
	for i := range w {
		w[i] = make([]int64, 6)
		for j := range w[i] {
			switch {
			case i == j:
			case (i < 3) == (j < 3):
				w[i][j] = heavy
			default:
				w[i][j] = light
			}
		}
	}
	in, err := bisection.NewInstance(w)
	require.NoError(t, err)

	for seed := int64(1); seed <= 10; seed++ {
		res, err := bisection.Solve(context.Background(), in, bisection.WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, int64(9), res.Cut, "seed=%d", seed)
		if res.Left[0] == 0 {
			assert.Equal(t, []int{0, 1, 2}, res.Left)
		} else {
			assert.Equal(t, []int{3, 4, 5}, res.Left)
		}
	}
}

// TestSolve_LocalOptimum checks the final state against a brute-force scan of
// every swap, the reported cut and the monotone history.
func TestSolve_LocalOptimum(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		in, err := bisection.RandomInstance(20, rng)
		require.NoError(t, err)
		res, err := bisection.Solve(context.Background(), in, bisection.WithRand(rng))
		require.NoError(t, err)

		require.Len(t, res.Left, 10)
		require.Len(t, res.Right, 10)
		assert.Equal(t, in.Cut(res.Left, res.Right), res.Cut)
		for i := 1; i < len(res.History); i++ {
			assert.Less(t, res.History[i], res.History[i-1])
		}
		assert.Equal(t, res.Cut, res.History[len(res.History)-1])
		assert.Len(t, res.History, len(res.Run.Log)+1)

		for ia, a := range res.Left {
			for ib, b := range res.Right {
				l := append([]int(nil), res.Left...)
				r := append([]int(nil), res.Right...)
				l[ia], r[ib] = b, a
				assert.GreaterOrEqual(t, in.Cut(l, r), res.Cut, "seed=%d swap %d↔%d improves", seed, a, b)
			}
		}
	}
}

func TestSolve_Reproducible(t *testing.T) {
	in, err := bisection.RandomInstance(30, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	a, err := bisection.Solve(context.Background(), in, bisection.WithSeed(4))
	require.NoError(t, err)
	b, err := bisection.Solve(context.Background(), in, bisection.WithSeed(4))
	require.NoError(t, err)
	assert.Equal(t, a.Left, b.Left)
	assert.Equal(t, a.History, b.History)
}

func TestPartition_BadSwap(t *testing.T) {
	in, err := bisection.RandomInstance(4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	p, err := bisection.NewPartition(in, bisection.WithSeed(1))
	require.NoError(t, err)
	left, right := p.Halves()
	require.ErrorIs(t, p.Commit(bisection.Swap{A: right[0], B: left[0]}), bisection.ErrBadSwap)
	require.ErrorIs(t, p.Commit(bisection.Swap{A: 9, B: right[0]}), bisection.ErrBadSwap)
	assert.Panics(t, func() { bisection.WithRand(nil) })
}
