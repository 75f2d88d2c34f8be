// SPDX-License-Identifier: MIT
// Package: gainsearch/search
//
// errors.go: sentinel errors for the driver.

package search

import "errors"

// ErrNonConvergence indicates that a run stopped before its objective was met:
// either the iteration ceiling was reached or no candidate and no switch exist.
// The partial Result is returned alongside.
var ErrNonConvergence = errors.New("search: did not converge")

// ErrNilProblem indicates Run was called with a nil Problem.
var ErrNilProblem = errors.New("search: nil problem")
