// SPDX-License-Identifier: MIT
// Package: gainsearch/search
//
// types.go: Problem contract, run status and result records.

package search

import "time"

// Problem is one incremental heuristic over candidates of type C.
type Problem[C any] interface {
	// Done reports whether the objective is met.
	Done() bool
	// Select returns the best open candidate and its gain.
	// ok is false when nothing can be committed.
	Select() (c C, gain int64, ok bool)
	// Commit applies c and updates the gain index.
	Commit(c C) error
}

// Switcher is implemented by problems that can perturb a stuck state.
// Switch reports false when no perturbation is possible.
type Switcher interface {
	Switch() (bool, error)
}

// Status is the terminal state of a run.
type Status int

const (
	// StatusConverged means Done() became true.
	StatusConverged Status = iota + 1
	// StatusNonConverged means the iteration ceiling was reached.
	StatusNonConverged
	// StatusLocalOptimum means no candidate and no switch remained.
	StatusLocalOptimum
	// StatusCanceled means the context ended the run.
	StatusCanceled
	// StatusFailed means Commit or Switch returned an error.
	StatusFailed
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusNonConverged:
		return "non-converged"
	case StatusLocalOptimum:
		return "local-optimum"
	case StatusCanceled:
		return "canceled"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Step is one entry of the run trace.
type Step[C any] struct {
	Iteration int
	Candidate C     // zero value for switches
	Gain      int64 // zero for switches
	Switch    bool
}

// Result is what a run produced, partial or complete.
type Result[C any] struct {
	Status     Status
	Log        []C       // committed candidates in order
	Trace      []Step[C] // commits and switches in order
	Iterations int
	Switches   int
	Elapsed    time.Duration
}

// Converged reports whether the run met its objective.
func (r Result[C]) Converged() bool { return r.Status == StatusConverged }
