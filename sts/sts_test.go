// SPDX-License-Identifier: MIT
package sts_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gainsearch/bounds"
	"github.com/katalvlaran/gainsearch/search"
	"github.com/katalvlaran/gainsearch/sts"
)

func TestValidOrder(t *testing.T) {
	for _, v := range []int{1, 3, 7, 9, 13, 15, 19, 21} {
		assert.True(t, sts.ValidOrder(v), "v=%d", v)
	}
	for _, v := range []int{-1, 0, 2, 4, 5, 6, 8, 10, 11, 12} {
		assert.False(t, sts.ValidOrder(v), "v=%d", v)
		_, err := sts.Solve(context.Background(), v)
		require.ErrorIs(t, err, sts.ErrInvalidOrder, "v=%d", v)
	}
}

// TestSolve_Fano builds STS(7): exactly seven blocks and no switch.
func TestSolve_Fano(t *testing.T) {
	res, err := sts.Solve(context.Background(), 7)
	require.NoError(t, err)
	require.NoError(t, sts.Verify(7, res.Blocks))
	assert.Len(t, res.Blocks, 7)
	assert.Zero(t, res.Switches)
	assert.Equal(t, []sts.Block{
		{0, 1, 2}, {0, 3, 4}, {0, 5, 6}, {1, 3, 5}, {1, 4, 6}, {2, 3, 6}, {2, 4, 5},
	}, res.Blocks)
	assert.Equal(t, 7, res.Run.Iterations)
}

func TestSolve_LargerOrders(t *testing.T) {
	for _, v := range []int{3, 9, 13, 15, 19, 21} {
		for seed := int64(1); seed <= 3; seed++ {
			res, err := sts.Solve(context.Background(), v, sts.WithSeed(seed))
			require.NoError(t, err, "v=%d seed=%d", v, seed)
			require.NoError(t, sts.Verify(v, res.Blocks), "v=%d seed=%d", v, seed)
			assert.Len(t, res.Blocks, bounds.STSBlockCount(v))
		}
	}
}

func TestSolve_RandomBlocks(t *testing.T) {
	for _, v := range []int{7, 9, 13, 15} {
		res, err := sts.Solve(context.Background(), v, sts.WithRandomBlocks(),
			sts.WithRand(rand.New(rand.NewSource(int64(v)))))
		require.NoError(t, err, "v=%d", v)
		require.NoError(t, sts.Verify(v, res.Blocks), "v=%d", v)
		assert.Equal(t, res.Run.Iterations, len(res.Blocks)+res.Switches)
	}
}

func TestSolve_Reproducible(t *testing.T) {
	a, err := sts.Solve(context.Background(), 15, sts.WithRandomBlocks(), sts.WithSeed(8))
	require.NoError(t, err)
	b, err := sts.Solve(context.Background(), 15, sts.WithRandomBlocks(), sts.WithSeed(8))
	require.NoError(t, err)
	assert.Equal(t, a.Blocks, b.Blocks)
	assert.Equal(t, a.Switches, b.Switches)
}

func TestSolve_CeilingReportsPartial(t *testing.T) {
	res, err := sts.Solve(context.Background(), 15, sts.WithSearch(search.WithMaxIterations(5)))
	require.ErrorIs(t, err, search.ErrNonConvergence)
	assert.Equal(t, search.StatusNonConverged, res.Run.Status)
	assert.Len(t, res.Blocks, 5)
	require.ErrorIs(t, sts.Verify(15, res.Blocks), sts.ErrNotSteiner)
}

func TestVerify_Errors(t *testing.T) {
	require.ErrorIs(t, sts.Verify(4, nil), sts.ErrInvalidOrder)
	require.ErrorIs(t, sts.Verify(3, []sts.Block{{0, 0, 1}}), sts.ErrBadBlock)
	require.ErrorIs(t, sts.Verify(3, []sts.Block{{0, 1, 3}}), sts.ErrBadBlock)
	require.ErrorIs(t, sts.Verify(3, nil), sts.ErrNotSteiner)
	require.NoError(t, sts.Verify(3, []sts.Block{{0, 1, 2}}))
}

// SystemSuite exercises the move primitives on a fresh STS(9) system.
type SystemSuite struct {
	suite.Suite
	sys    *sts.System
	events []sts.Event
}

func (s *SystemSuite) SetupTest() {
	s.events = nil
	sys, err := sts.NewSystem(9, sts.WithSeed(3), sts.WithObserver(func(e sts.Event) {
		s.events = append(s.events, e)
	}))
	s.Require().NoError(err)
	s.sys = sys
}

func (s *SystemSuite) TestCommitValidation() {
	s.Require().NoError(s.sys.Commit(sts.NewBlock(2, 0, 1)))
	s.Equal([]sts.Block{{0, 1, 2}}, s.sys.Blocks())
	s.Equal(36-3, s.sys.LivePairs())

	s.ErrorIs(s.sys.Commit(sts.NewBlock(0, 1, 5)), sts.ErrPairCovered)
	s.ErrorIs(s.sys.Commit(sts.Block{3, 3, 4}), sts.ErrBadBlock)
	s.ErrorIs(s.sys.Commit(sts.Block{3, 4, 9}), sts.ErrBadBlock)
	s.Require().Len(s.events, 1)
	s.Equal(sts.EventAdd, s.events[0].Kind)
}

func (s *SystemSuite) TestSwitchKeepsBlockCount() {
	// Fill greedily until stuck or done, then force switches.
	for !s.sys.Done() {
		b, _, ok := s.sys.Select()
		if !ok {
			break
		}
		s.Require().NoError(s.sys.Commit(b))
	}
	before := len(s.sys.Blocks())
	if s.sys.Done() {
		ok, err := s.sys.Switch()
		s.Require().NoError(err)
		s.False(ok, "complete system has no live pair")
		return
	}
	ok, err := s.sys.Switch()
	s.Require().NoError(err)
	s.True(ok)
	s.Len(s.sys.Blocks(), before)
	last := s.events[len(s.events)-1]
	s.Equal(sts.EventSwitch, last.Kind)
	s.NotEqual(last.Block, last.Replaced)
}

func (s *SystemSuite) TestOptionsPanic() {
	s.Panics(func() { sts.WithRand(nil) })
	s.Panics(func() { sts.WithObserver(nil) })
}

func TestSystemSuite(t *testing.T) {
	suite.Run(t, new(SystemSuite))
}
