// SPDX-License-Identifier: MIT
package k4color_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gainsearch/bounds"
	"github.com/katalvlaran/gainsearch/builder"
	"github.com/katalvlaran/gainsearch/core"
	"github.com/katalvlaran/gainsearch/k4color"
)

func complete(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, nil, builder.Complete())
	require.NoError(t, err)
	return g
}

func colors(g *core.Graph) []core.Color {
	out := make([]core.Color, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, e.Color)
	}
	return out
}

func TestFindCliques_AllNotOnlyMaximal(t *testing.T) {
	g := complete(t, 5)
	ks, err := k4color.FindCliques(g)
	require.NoError(t, err)
	require.Len(t, ks, 5, "K5 has one maximal clique but five K4")
	assert.Equal(t, [4]int{0, 1, 2, 3}, ks[0].Vertices)
	assert.Equal(t, [4]int{1, 2, 3, 4}, ks[4].Vertices)
	for i, k := range ks {
		assert.Equal(t, i, k.ID)
	}

	ks, err = k4color.FindCliques(complete(t, 10))
	require.NoError(t, err)
	assert.Len(t, ks, int(bounds.Binomial(10, 4)))

	_, err = k4color.FindCliques(nil)
	require.ErrorIs(t, err, k4color.ErrNilGraph)
}

func TestAttach_PerEdgeLists(t *testing.T) {
	g := complete(t, 5)
	ks, err := k4color.FindCliques(g)
	require.NoError(t, err)
	require.NoError(t, k4color.Attach(g, ks))
	for _, e := range g.Edges() {
		assert.Len(t, e.RelatedCliques, 3, "edge %d-%d", e.From, e.To) // C(3,2)
	}
}

func TestSolve_SingleK4(t *testing.T) {
	g := complete(t, 4)
	res, err := k4color.Solve(context.Background(), g)
	require.NoError(t, err)
	require.NoError(t, k4color.Verify(g))
	assert.Equal(t, 1, res.Cliques)
	assert.Equal(t, 0, res.Monochromatic)
	assert.InDelta(t, 1.0/32, res.Expected, 1e-12)

	first, err := g.EdgeByID(0)
	require.NoError(t, err)
	assert.Equal(t, core.ColorBlack, first.Color, "ties go to black")
	second, err := g.EdgeByID(1)
	require.NoError(t, err)
	assert.Equal(t, core.ColorWhite, second.Color)
}

// TestSolve_K10 checks the K10 coloring: every edge colored, count within
// [0, C(10,4)] and at most ⌊210/32⌋, reproducible across runs.
func TestSolve_K10(t *testing.T) {
	g := complete(t, 10)
	res, err := k4color.Solve(context.Background(), g)
	require.NoError(t, err)
	require.NoError(t, k4color.Verify(g))
	assert.Equal(t, 210, res.Cliques)
	assert.GreaterOrEqual(t, res.Monochromatic, 0)
	assert.LessOrEqual(t, res.Monochromatic, 210)
	assert.LessOrEqual(t, res.Monochromatic, 210/32)
	assert.Len(t, res.Run.Log, 45)
	first := colors(g)

	again := complete(t, 10)
	res2, err := k4color.Solve(context.Background(), again)
	require.NoError(t, err)
	assert.Equal(t, res.Monochromatic, res2.Monochromatic)
	assert.Equal(t, first, colors(again))

	// Solving the same structure again resets and reproduces.
	res3, err := k4color.Solve(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, res.Monochromatic, res3.Monochromatic)
	assert.Equal(t, first, colors(g))
}

func TestSolve_ShuffledOrder(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := complete(t, 10)
		res, err := k4color.Solve(context.Background(), g,
			k4color.WithShuffledOrder(rand.New(rand.NewSource(seed))))
		require.NoError(t, err)
		require.NoError(t, k4color.Verify(g))
		assert.LessOrEqual(t, res.Monochromatic, 210/32, "seed=%d", seed)
	}
	assert.Panics(t, func() { k4color.WithShuffledOrder(nil) })
}

// TestColoring_ExpectationNeverRises steps the problem by hand.
func TestColoring_ExpectationNeverRises(t *testing.T) {
	g, err := builder.RandomStructure(14, 8, 0.6, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	ks, err := k4color.FindCliques(g)
	require.NoError(t, err)
	require.NoError(t, k4color.Attach(g, ks))
	p, err := k4color.NewColoring(g, ks)
	require.NoError(t, err)

	prev := p.InitialExpected()
	assert.InDelta(t, bounds.ExpectedMonochromaticFromCliques(len(ks)), prev, 1e-9)
	for !p.Done() {
		m, _, ok := p.Select()
		require.True(t, ok)
		require.NoError(t, p.Commit(m))
		assert.LessOrEqual(t, p.Expected(), prev+1e-12)
		prev = p.Expected()
	}
	mono, err := k4color.CountMonochromatic(g, ks)
	require.NoError(t, err)
	assert.InDelta(t, float64(mono), p.Expected(), 1e-9, "final expectation is the exact count")
}

func TestColoring_CommitErrors(t *testing.T) {
	g := complete(t, 4)
	p, err := k4color.NewColoring(g, nil)
	require.NoError(t, err)
	require.ErrorIs(t, p.Commit(k4color.Move{Edge: 0, Color: core.ColorNone}), k4color.ErrBadMove)
	require.ErrorIs(t, p.Commit(k4color.Move{Edge: 99, Color: core.ColorBlack}), k4color.ErrBadMove)
	require.NoError(t, p.Commit(k4color.Move{Edge: 0, Color: core.ColorBlack}))
	require.ErrorIs(t, p.Commit(k4color.Move{Edge: 0, Color: core.ColorWhite}), k4color.ErrAlreadyColored)

	require.ErrorIs(t, k4color.Verify(g), k4color.ErrUncoloredEdge)
	_, err = k4color.Solve(context.Background(), nil)
	require.ErrorIs(t, err, k4color.ErrNilGraph)
}
