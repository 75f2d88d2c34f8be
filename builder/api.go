// SPDX-License-Identifier: MIT
// Package: gainsearch/builder
//
// api.go: thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg,
//     runs cons in order.
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; constructors return wrapped sentinel errors.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gainsearch/core"
)

// Constructor applies a deterministic edge mutation to g using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Generators skip pairs already present; explicit lists reject them.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with n vertices, resolves the builder configuration
// from bopts and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w" and returned immediately.
//
// Complexity: O(n) + Σ cost of each constructor.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if n < minVertices {
		return nil, fmt.Errorf("BuildGraph: n=%d < min=%d: %w", n, minVertices, ErrTooFewVertices)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// RandomStructure is the one-call generator used by experiments and the CLI:
// n vertices, every vertex of degree ≥ delta, extra edges with probability p,
// driven by rng. Connectivity is not guaranteed.
func RandomStructure(n, delta int, p float64, rng *rand.Rand) (*core.Graph, error) {
	if rng == nil {
		return nil, fmt.Errorf("RandomStructure: %w", ErrNeedRandSource)
	}
	return BuildGraph(n, []BuilderOption{WithRand(rng)}, RandomMinDegree(delta, p))
}

// minVertices is the smallest vertex count accepted by BuildGraph.
const minVertices = 1
