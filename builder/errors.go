// SPDX-License-Identifier: MIT
// Package: gainsearch/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` and a method tag:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodX, n, minX, ErrTooFewVertices)
//   • Constructors never panic; validation panics are confined to WithX options.
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrInvalidProbability → ErrInfeasibleDegree → ErrNeedRandSource.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, delta) is below the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInfeasibleDegree indicates that the requested minimum degree cannot be
// met for the vertex count (delta > n-1).
var ErrInfeasibleDegree = errors.New("builder: minimum degree infeasible")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an edge the core graph refused.
var ErrConstructFailed = errors.New("builder: construction failed")
