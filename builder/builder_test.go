// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gainsearch/builder"
	"github.com/katalvlaran/gainsearch/core"
)

func edgeList(g *core.Graph) [][2]int {
	out := make([][2]int, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, [2]int{e.From, e.To})
	}
	return out
}

func TestBuildGraph_Validation(t *testing.T) {
	_, err := builder.BuildGraph(0, nil)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(3, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomMinDegree_Errors(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		delta int
		p     float64
		opts  []builder.BuilderOption
		want  error
	}{
		{"negative delta", 5, -1, 0.1, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"p below zero", 5, 1, -0.1, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"p above one", 5, 1, 1.5, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"delta too large", 5, 5, 0.1, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInfeasibleDegree},
		{"missing rng", 5, 2, 0.1, nil, builder.ErrNeedRandSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.n, tc.opts, builder.RandomMinDegree(tc.delta, tc.p))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomMinDegree_MinDegreeHolds(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		n := 5 + int(seed%20)
		delta := int(seed % 4)
		g, err := builder.RandomStructure(n, delta, 0.05, rand.New(rand.NewSource(seed)))
		require.NoError(t, err, "seed=%d", seed)
		assert.GreaterOrEqual(t, g.MinDegree(), delta, "seed=%d n=%d", seed, n)
		assert.Equal(t, n, g.VertexCount())
	}
}

func TestRandomMinDegree_DeterministicBySeed(t *testing.T) {
	a, err := builder.BuildGraph(30, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomMinDegree(3, 0.1))
	require.NoError(t, err)
	b, err := builder.BuildGraph(30, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomMinDegree(3, 0.1))
	require.NoError(t, err)
	assert.Equal(t, edgeList(a), edgeList(b))
}

func TestRandomMinDegree_Shortcuts(t *testing.T) {
	// p == 1 is the complete graph and needs no RNG.
	g, err := builder.BuildGraph(6, nil, builder.RandomMinDegree(0, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount())

	// delta == n-1 forces the complete graph too.
	g, err = builder.BuildGraph(5, nil, builder.RandomMinDegree(4, 0))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())

	// p == 0, delta == 0 is the empty graph.
	g, err = builder.BuildGraph(5, nil, builder.RandomMinDegree(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(10, nil, builder.Complete())
	require.NoError(t, err)
	assert.Equal(t, 45, g.EdgeCount())
	assert.Equal(t, 9, g.MinDegree())
}

func TestFromEdges(t *testing.T) {
	g, err := builder.BuildGraph(4, nil, builder.FromEdges([]builder.Pair{{0, 1}, {3, 2}}))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {2, 3}}, edgeList(g))

	_, err = builder.BuildGraph(4, nil, builder.FromEdges([]builder.Pair{{0, 1}, {1, 0}}))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = builder.BuildGraph(4, nil, builder.FromEdges([]builder.Pair{{2, 2}}))
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestWithRand_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}
