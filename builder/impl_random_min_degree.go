// SPDX-License-Identifier: MIT
// Package: gainsearch/builder
//
// impl_random_min_degree.go: implementation of RandomMinDegree(delta, p).
//
// Model:
//   - For i = 0..n-1 (asc): draw one Bernoulli(p) trial for every j>i (asc)
//     and add {i,j} on success.
//   - If deg(i) < delta afterwards, sample delta-deg(i) distinct non-neighbors
//     of i uniformly (partial Fisher–Yates over the ascending candidate list)
//     and connect them.
//   - Vertices processed earlier only gain edges later, so every vertex ends
//     with degree ≥ delta.
//   - p ≥ 1 or delta ≥ n-1 short-circuits to the complete graph.
//
// Contract:
//   - 0 ≤ delta (else ErrTooFewVertices), delta ≤ n-1 (else ErrInfeasibleDegree).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil unless the outcome is deterministic
//     (complete graph, or p == 0 with delta == 0).
//
// Complexity:
//   - Time: O(n²) trials + O(n) per repaired vertex.
//
// Determinism:
//   - Fixed trial order; identical graphs for identical seeds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gainsearch/core"
)

const (
	methodRandomMinDegree = "RandomMinDegree"
	minDegreeFloor        = 0
	probMin               = 0.0
	probMax               = 1.0
)

// RandomMinDegree returns a Constructor that samples a random graph whose
// minimum degree is at least delta, with independent edge probability p.
func RandomMinDegree(delta int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()

		// 1) Validate parameters (fail fast, zero side-effects on invalid input).
		if delta < minDegreeFloor {
			return fmt.Errorf("%s: delta=%d < min=%d: %w",
				methodRandomMinDegree, delta, minDegreeFloor, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomMinDegree, p, probMin, probMax, ErrInvalidProbability)
		}
		if delta > n-1 {
			return fmt.Errorf("%s: delta=%d > n-1=%d: %w",
				methodRandomMinDegree, delta, n-1, ErrInfeasibleDegree)
		}

		// 2) Deterministic shortcuts.
		if p >= probMax || delta >= n-1 {
			return completeInPlace(g, methodRandomMinDegree)
		}
		if p == probMin && delta == 0 {
			return nil
		}
		rng := cfg.rng
		if rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomMinDegree, ErrNeedRandSource)
		}

		var (
			i, j, deg, k int
			err          error
			pool         = make([]int, 0, n) // reused candidate buffer
		)
		for i = 0; i < n; i++ {
			// 3) Bernoulli trials for j>i; one draw per pair regardless of outcome.
			for j = i + 1; j < n; j++ {
				if rng.Float64() < p && !g.HasEdge(i, j) {
					if _, err = g.AddEdge(i, j); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomMinDegree, i, j, err)
					}
				}
			}

			// 4) Minimum-degree repair.
			deg, _ = g.Degree(i)
			if deg >= delta {
				continue
			}
			pool = pool[:0]
			for j = 0; j < n; j++ {
				if j != i && !g.HasEdge(i, j) {
					pool = append(pool, j)
				}
			}
			for k = 0; k < delta-deg; k++ {
				pick := k + rng.Intn(len(pool)-k)
				pool[k], pool[pick] = pool[pick], pool[k]
				if _, err = g.AddEdge(i, pool[k]); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomMinDegree, i, pool[k], err)
				}
			}
		}

		return nil
	}
}
