// SPDX-License-Identifier: MIT
// Package: gainsearch/builder
//
// impl_complete.go: implementation of the Complete() constructor.
//
// Contract:
//   • Emits each unordered pair {i,j} with i<j that is not yet an edge.
//   • Never needs an RNG.
//
// Complexity:
//   • Time: O(n²) pair emission.
//
// Determinism:
//   • Lexicographic pair order by (i,j), i<j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gainsearch/core"
)

const methodComplete = "Complete"

// Complete returns a Constructor that fills g up to the complete graph K_n.
func Complete() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		return completeInPlace(g, methodComplete)
	}
}

// completeInPlace adds every missing pair of g in lexicographic order.
func completeInPlace(g *core.Graph, method string) error {
	n := g.VertexCount()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if g.HasEdge(i, j) {
				continue
			}
			if _, err := g.AddEdge(i, j); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, i, j, err)
			}
		}
	}
	return nil
}
