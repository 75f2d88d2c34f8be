// SPDX-License-Identifier: MIT
// Package: gainsearch/builder
//
// impl_edges.go: implementation of FromEdges(edges).
//
// Contract:
//   • Adds the listed pairs in order.
//   • Self-loops and duplicates (in either orientation) are rejected, never skipped:
//     the wrapped core sentinel (ErrLoopNotAllowed / ErrMultiEdgeNotAllowed /
//     ErrVertexNotFound) is returned together with ErrConstructFailed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gainsearch/core"
)

const methodFromEdges = "FromEdges"

// Pair is one explicit undirected edge {U,V}.
type Pair struct {
	U, V int
}

// FromEdges returns a Constructor that adds an explicit edge list.
func FromEdges(edges []Pair) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i, e := range edges {
			if _, err := g.AddEdge(e.U, e.V); err != nil {
				return fmt.Errorf("%s: edge #%d (%d,%d): %w: %w",
					methodFromEdges, i, e.U, e.V, ErrConstructFailed, err)
			}
		}
		return nil
	}
}
