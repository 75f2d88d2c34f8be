// SPDX-License-Identifier: MIT
package domset_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gainsearch/bfs"
	"github.com/katalvlaran/gainsearch/bounds"
	"github.com/katalvlaran/gainsearch/builder"
	"github.com/katalvlaran/gainsearch/core"
	"github.com/katalvlaran/gainsearch/domset"
	"github.com/katalvlaran/gainsearch/search"
)

func pathGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		_, err = g.AddEdge(i, i+1)
		require.NoError(t, err)
	}
	return g
}

func TestSolve_Path(t *testing.T) {
	g := pathGraph(t, 3)
	for _, v := range []domset.Variant{domset.VariantRecompute, domset.VariantIncremental} {
		t.Run(v.String(), func(t *testing.T) {
			res, err := domset.Solve(context.Background(), g, v)
			require.NoError(t, err)
			assert.Equal(t, []int{1}, res.Set)
			assert.Equal(t, search.StatusConverged, res.Run.Status)
		})
	}
}

func TestSolve_NoEdges(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	res, err := domset.Solve(context.Background(), g, domset.VariantIncremental)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Sorted())
}

func TestSolve_Errors(t *testing.T) {
	_, err := domset.Solve(context.Background(), nil, domset.VariantRecompute)
	require.ErrorIs(t, err, domset.ErrNilGraph)

	g := pathGraph(t, 2)
	_, err = domset.Solve(context.Background(), g, domset.Variant(9))
	require.ErrorIs(t, err, domset.ErrUnknownVariant)

	p, err := domset.NewIncremental(g)
	require.NoError(t, err)
	require.NoError(t, p.Commit(0))
	require.ErrorIs(t, p.Commit(0), domset.ErrAlreadyChosen)
	require.ErrorIs(t, p.Commit(5), core.ErrVertexNotFound)
}

// TestSolve_RandomStructures checks the dominating predicate, the greedy
// bound, Incremental ≤ Recompute in total and seed reproducibility.
func TestSolve_RandomStructures(t *testing.T) {
	ctx := context.Background()
	var totalA, totalB int
	for seed := int64(1); seed <= 40; seed++ {
		rng := rand.New(rand.NewSource(seed))
		n := 10 + rng.Intn(60)
		delta := 1 + rng.Intn(6)
		g, err := builder.RandomStructure(n, delta, 0.02, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		limit := bounds.DominatingSetBound(n, g.MinDegree())

		a, err := domset.Solve(ctx, g, domset.VariantRecompute)
		require.NoError(t, err)
		b, err := domset.Solve(ctx, g, domset.VariantIncremental)
		require.NoError(t, err)

		require.NoError(t, domset.Verify(g, a.Set), "seed=%d", seed)
		require.NoError(t, domset.Verify(g, b.Set), "seed=%d", seed)
		assert.LessOrEqual(t, a.Size(), limit, "seed=%d n=%d δ=%d", seed, n, delta)
		assert.LessOrEqual(t, b.Size(), limit, "seed=%d n=%d δ=%d", seed, n, delta)
		totalA += a.Size()
		totalB += b.Size()

		again, err := builder.RandomStructure(n, delta, 0.02, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		b2, err := domset.Solve(ctx, again, domset.VariantIncremental)
		require.NoError(t, err)
		assert.Equal(t, b.Set, b2.Set, "seed=%d", seed)
	}
	assert.Less(t, totalB, totalA, "Incremental should need fewer vertices overall")
}

func solveBoth(t *testing.T, n int, edges []builder.Pair) (a, b []int) {
	t.Helper()
	g, err := builder.BuildGraph(n, nil, builder.FromEdges(edges))
	require.NoError(t, err)
	ra, err := domset.Solve(context.Background(), g, domset.VariantRecompute)
	require.NoError(t, err)
	rb, err := domset.Solve(context.Background(), g, domset.VariantIncremental)
	require.NoError(t, err)
	require.NoError(t, domset.Verify(g, ra.Set))
	require.NoError(t, domset.Verify(g, rb.Set))
	return ra.Set, rb.Set
}

// TestVariants_Diverge pins structures on which the two policies differ.
func TestVariants_Diverge(t *testing.T) {
	t.Run("covered hub", func(t *testing.T) {
		// After 0 is picked, hub 1 is covered: Recompute may not pick it.
		a, b := solveBoth(t, 8, []builder.Pair{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 1, V: 5}, {U: 1, V: 6}, {U: 1, V: 7}})
		assert.Equal(t, []int{0, 5, 6, 7}, a)
		assert.Equal(t, []int{0, 1}, b)
	})
	t.Run("recompute wins", func(t *testing.T) {
		a, b := solveBoth(t, 8, []builder.Pair{{U: 0, V: 1}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 1, V: 6}, {U: 1, V: 7}, {U: 2, V: 7}, {U: 5, V: 6}})
		assert.Equal(t, []int{0, 2, 5}, a)
		assert.Equal(t, []int{0, 1, 2, 5}, b)
	})
}

func TestRecompute_CandidatesAreUncovered(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, builder.FromEdges([]builder.Pair{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}))
	require.NoError(t, err)
	p, err := domset.NewRecompute(g)
	require.NoError(t, err)

	d, ok := p.Degree(2)
	require.True(t, ok)
	assert.Equal(t, 2, d)

	v, gain, ok := p.Select()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, int64(3), gain)
	require.NoError(t, p.Commit(v))

	_, ok = p.Degree(2)
	assert.False(t, ok, "covered vertex has no remaining degree")
	d, ok = p.Degree(3)
	require.True(t, ok)
	assert.Equal(t, 1, d)

	require.ErrorIs(t, p.Commit(1), domset.ErrAlreadyChosen)
	require.ErrorIs(t, p.Commit(0), domset.ErrCovered)
	require.ErrorIs(t, p.Commit(9), core.ErrVertexNotFound)
}

// TestIncremental_GainsStayExact compares every cached gain with a direct
// count of |N[v] ∩ uncovered| after each commit.
func TestIncremental_GainsStayExact(t *testing.T) {
	g, err := builder.RandomStructure(40, 3, 0.05, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	p, err := domset.NewIncremental(g)
	require.NoError(t, err)

	n := g.VertexCount()
	covered := make([]bool, n)
	chosen := make([]bool, n)
	for !p.Done() {
		v, _, ok := p.Select()
		require.True(t, ok)
		require.NoError(t, p.Commit(v))
		chosen[v] = true
		covered[v] = true
		nb, err := g.Neighbors(v)
		require.NoError(t, err)
		for _, u := range nb {
			covered[u] = true
		}

		for w := 0; w < n; w++ {
			cached, tracked := p.Gain(w)
			if chosen[w] {
				assert.False(t, tracked, "chosen %d still tracked", w)
				continue
			}
			want := int64(0)
			if !covered[w] {
				want++
			}
			nw, err := g.Neighbors(w)
			require.NoError(t, err)
			for _, u := range nw {
				if !covered[u] {
					want++
				}
			}
			require.True(t, tracked)
			require.Equal(t, want, cached, "vertex %d after committing %d", w, v)
		}
	}
}

func TestSolve_RandomTies(t *testing.T) {
	g, err := builder.RandomStructure(30, 2, 0.05, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	res, err := domset.Solve(context.Background(), g, domset.VariantIncremental,
		domset.WithRandomTies(rand.New(rand.NewSource(3))))
	require.NoError(t, err)
	require.NoError(t, domset.Verify(g, res.Set))
	assert.Panics(t, func() { domset.WithRandomTies(nil) })
}

func TestSolve_Ceiling(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	res, err := domset.Solve(context.Background(), g, domset.VariantRecompute,
		domset.WithSearch(search.WithMaxIterations(2)))
	require.ErrorIs(t, err, search.ErrNonConvergence)
	assert.Len(t, res.Set, 2)
	require.ErrorIs(t, domset.Verify(g, res.Set), domset.ErrNotDominating)
}

func TestVerify(t *testing.T) {
	g := pathGraph(t, 5)
	require.NoError(t, domset.Verify(g, []int{1, 4, 1}))
	require.ErrorIs(t, domset.Verify(g, []int{1}), domset.ErrNotDominating)
	require.ErrorIs(t, domset.Verify(g, []int{9}), bfs.ErrStartVertexNotFound)
	require.ErrorIs(t, domset.Verify(nil, nil), domset.ErrNilGraph)
}
