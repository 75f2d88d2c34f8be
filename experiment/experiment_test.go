// SPDX-License-Identifier: MIT
package experiment_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gainsearch/experiment"
	"github.com/katalvlaran/gainsearch/search"
)

func TestRunTrials_OrderAndSeeds(t *testing.T) {
	draw := func(_ context.Context, i int, rng *rand.Rand) ([2]int64, error) {
		return [2]int64{int64(i), rng.Int63()}, nil
	}
	one, err := experiment.RunTrials(context.Background(), 20, 1, 7, draw)
	require.NoError(t, err)
	many, err := experiment.RunTrials(context.Background(), 20, 8, 7, draw)
	require.NoError(t, err)

	require.Len(t, one, 20)
	assert.Equal(t, one, many, "results must not depend on worker count")
	for i, r := range one {
		assert.Equal(t, int64(i), r[0])
		want := rand.New(rand.NewSource(search.DeriveSeed(7, uint64(i)))).Int63()
		assert.Equal(t, want, r[1])
	}
}

func TestRunTrials_Errors(t *testing.T) {
	boom := errors.New("boom")
	_, err := experiment.RunTrials(context.Background(), 10, 2, 1,
		func(_ context.Context, i int, _ *rand.Rand) (int, error) {
			if i == 3 {
				return 0, boom
			}
			return i, nil
		})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "trial 3")

	_, err = experiment.RunTrials[int](context.Background(), 1, 0, 1, nil)
	require.ErrorIs(t, err, experiment.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = experiment.RunTrials(ctx, 3, 1, 1,
		func(context.Context, int, *rand.Rand) (int, error) { return 0, nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, experiment.DefaultConfig().Validate())

	tests := []struct {
		name string
		mod  func(*experiment.Config)
	}{
		{"no trials", func(c *experiment.Config) { c.Trials = 0 }},
		{"inverted n", func(c *experiment.Config) { c.MaxN = c.MinN - 1 }},
		{"delta too big", func(c *experiment.Config) { c.MaxDelta = c.MinN }},
		{"negative delta", func(c *experiment.Config) { c.MinDelta = -1 }},
		{"bad p", func(c *experiment.Config) { c.P = 2 }},
		{"negative workers", func(c *experiment.Config) { c.Workers = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := experiment.DefaultConfig()
			tc.mod(&cfg)
			require.ErrorIs(t, cfg.Validate(), experiment.ErrInvalidConfig)
			_, err := experiment.Sweep(context.Background(), cfg)
			require.ErrorIs(t, err, experiment.ErrInvalidConfig)
		})
	}
}

func TestSweep_BoundsAndDeterminism(t *testing.T) {
	cfg := experiment.Config{Trials: 24, MinN: 10, MaxN: 60, MinDelta: 1, MaxDelta: 6, P: 0.03, Seed: 11, Workers: 4}
	m := &search.BasicMetricsCollector{}
	sum, err := experiment.Sweep(context.Background(), cfg, experiment.WithSearch(search.WithMetrics(m)))
	require.NoError(t, err)
	require.Len(t, sum.Trials, 24)
	assert.Zero(t, sum.Violations)
	assert.Greater(t, sum.Improved, sum.Worse, "incremental should beat recompute more often than not")
	assert.Greater(t, sum.MeanRatio, 0.0)
	assert.Equal(t, int64(48), m.Runs.Load())
	assert.Equal(t, int64(48), m.Converged.Load())

	for i, tr := range sum.Trials {
		assert.Equal(t, i, tr.Index)
		assert.GreaterOrEqual(t, tr.MinDegree, tr.Delta)
		assert.True(t, tr.WithinBound(), "trial %d: %+v", i, tr)
	}

	cfg.Workers = 1
	again, err := experiment.Sweep(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, sum.Trials, again.Trials)
	assert.Len(t, sum.Lines(), 5)
}
