// SPDX-License-Identifier: MIT
// Package: gainsearch/search
//
// run.go: the driver loop.
//
// Contract:
//   • One iteration = one commit or one switch.
//   • ctx is checked once per iteration.
//   • On termination without convergence the partial Result is returned
//     together with a wrapped sentinel (ErrNonConvergence, ctx.Err(), or the
//     problem's own error).
//
// Complexity:
//   • O(iterations · (cost(Select) + cost(Commit))).

package search

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

const methodRun = "Run"

// Run drives p until it converges, gets stuck, or reaches the iteration ceiling.
func Run[C any](ctx context.Context, p Problem[C], opts ...Option) (Result[C], error) {
	var res Result[C]
	if p == nil {
		return res, fmt.Errorf("%s: %w", methodRun, ErrNilProblem)
	}
	cfg := newConfig(opts...)
	log := cfg.logger.WithProblem(cfg.name)
	sw, canSwitch := any(p).(Switcher)
	progress := rate.Sometimes{Every: cfg.progressEvery}
	start := time.Now()

	finish := func(status Status, err error) (Result[C], error) {
		res.Status = status
		res.Elapsed = time.Since(start)
		cfg.metrics.RecordRun(cfg.name, status, res.Iterations, res.Elapsed)
		log.LogRun(ctx, status, res.Iterations, len(res.Log), res.Switches, err)
		return res, err
	}

	var (
		c    C
		gain int64
		ok   bool
		err  error
	)
	for {
		if err = ctx.Err(); err != nil {
			return finish(StatusCanceled, fmt.Errorf("%s: iteration %d: %w", methodRun, res.Iterations, err))
		}
		// Selecting.
		if p.Done() {
			return finish(StatusConverged, nil)
		}
		if res.Iterations >= cfg.maxIterations {
			return finish(StatusNonConverged, fmt.Errorf("%s: ceiling %d reached with %d commits: %w",
				methodRun, cfg.maxIterations, len(res.Log), ErrNonConvergence))
		}
		res.Iterations++

		c, gain, ok = p.Select()
		if !ok {
			if !canSwitch {
				return finish(StatusLocalOptimum, fmt.Errorf("%s: no candidate after %d commits: %w",
					methodRun, len(res.Log), ErrNonConvergence))
			}
			if ok, err = sw.Switch(); err != nil {
				return finish(StatusFailed, fmt.Errorf("%s: switch at iteration %d: %w", methodRun, res.Iterations, err))
			}
			if !ok {
				return finish(StatusLocalOptimum, fmt.Errorf("%s: no candidate and no switch: %w",
					methodRun, ErrNonConvergence))
			}
			res.Switches++
			res.Trace = append(res.Trace, Step[C]{Iteration: res.Iterations, Switch: true})
			cfg.metrics.RecordSwitch(cfg.name)
			log.LogSwitch(ctx, res.Iterations)
			continue
		}

		// Committing.
		if err = p.Commit(c); err != nil {
			return finish(StatusFailed, fmt.Errorf("%s: commit at iteration %d: %w", methodRun, res.Iterations, err))
		}
		res.Log = append(res.Log, c)
		res.Trace = append(res.Trace, Step[C]{Iteration: res.Iterations, Candidate: c, Gain: gain})
		cfg.metrics.RecordCommit(cfg.name, gain)
		progress.Do(func() {
			log.LogProgress(ctx, res.Iterations, len(res.Log), res.Switches, gain)
		})
	}
}
