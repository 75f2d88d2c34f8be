// SPDX-License-Identifier: MIT
package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/katalvlaran/gainsearch/bounds"
	"github.com/katalvlaran/gainsearch/builder"
	"github.com/katalvlaran/gainsearch/domset"
	"github.com/katalvlaran/gainsearch/search"
)

// Trial is one random structure and the sizes both variants reached on it.
type Trial struct {
	Index       int
	N           int
	Delta       int // requested minimum degree
	MinDegree   int // realized minimum degree
	Edges       int
	Bound       int // greedy bound at the realized minimum degree
	Recompute   int
	Incremental int
}

// WithinBound reports whether both variants met the greedy bound.
func (t Trial) WithinBound() bool {
	return t.Recompute <= t.Bound && t.Incremental <= t.Bound
}

// Summary aggregates a sweep.
type Summary struct {
	Trials     []Trial
	Violations int     // trials where some variant exceeded the bound
	Improved   int     // trials where Incremental < Recompute
	Worse      int     // trials where Incremental > Recompute
	MeanRatio  float64 // mean Incremental/Bound
}

// Lines renders the summary for terminal output.
func (s Summary) Lines() []string {
	return []string{
		fmt.Sprintf("trials:           %d", len(s.Trials)),
		fmt.Sprintf("bound violations: %d", s.Violations),
		fmt.Sprintf("incremental < recompute: %d", s.Improved),
		fmt.Sprintf("incremental > recompute: %d", s.Worse),
		fmt.Sprintf("mean size/bound:  %.3f", s.MeanRatio),
	}
}

// Option customizes Sweep.
type Option func(*sweepConfig)

type sweepConfig struct {
	searchOpts []search.Option
}

// WithSearch forwards driver options (logger, metrics, ceiling) to every
// heuristic run. Loggers and collectors are shared by all workers.
func WithSearch(opts ...search.Option) Option {
	return func(c *sweepConfig) { c.searchOpts = append(c.searchOpts, opts...) }
}

// Sweep runs cfg.Trials random structures through both dominating-set
// variants and compares them with bounds.DominatingSetBound.
func Sweep(ctx context.Context, cfg Config, opts ...Option) (Summary, error) {
	var sum Summary
	if err := cfg.Validate(); err != nil {
		return sum, errors.Wrap(err, "Sweep")
	}
	var sc sweepConfig
	for _, opt := range opts {
		opt(&sc)
	}

	trials, err := RunTrials(ctx, cfg.Trials, cfg.workers(), cfg.Seed,
		func(ctx context.Context, i int, rng *rand.Rand) (Trial, error) {
			return runTrial(ctx, cfg, sc, i, rng)
		})
	if err != nil {
		return sum, errors.Wrap(err, "Sweep")
	}

	sum.Trials = trials
	var ratio float64
	for _, t := range trials {
		if !t.WithinBound() {
			sum.Violations++
		}
		switch {
		case t.Incremental < t.Recompute:
			sum.Improved++
		case t.Incremental > t.Recompute:
			sum.Worse++
		}
		if t.Bound > 0 {
			ratio += float64(t.Incremental) / float64(t.Bound)
		}
	}
	sum.MeanRatio = ratio / float64(len(trials))
	return sum, nil
}

func runTrial(ctx context.Context, cfg Config, sc sweepConfig, i int, rng *rand.Rand) (Trial, error) {
	t := Trial{Index: i}
	t.N = cfg.MinN + rng.Intn(cfg.MaxN-cfg.MinN+1)
	t.Delta = cfg.MinDelta + rng.Intn(cfg.MaxDelta-cfg.MinDelta+1)

	g, err := builder.RandomStructure(t.N, t.Delta, cfg.P, rng)
	if err != nil {
		return t, errors.Wrapf(err, "n=%d delta=%d", t.N, t.Delta)
	}
	t.MinDegree = g.MinDegree()
	t.Edges = g.EdgeCount()
	t.Bound = bounds.DominatingSetBound(t.N, t.MinDegree)

	a, err := domset.Solve(ctx, g, domset.VariantRecompute, domset.WithSearch(sc.searchOpts...))
	if err != nil {
		return t, errors.Wrapf(err, "n=%d delta=%d", t.N, t.Delta)
	}
	b, err := domset.Solve(ctx, g, domset.VariantIncremental, domset.WithSearch(sc.searchOpts...))
	if err != nil {
		return t, errors.Wrapf(err, "n=%d delta=%d", t.N, t.Delta)
	}
	t.Recompute, t.Incremental = a.Size(), b.Size()
	return t, nil
}
