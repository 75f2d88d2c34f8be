// SPDX-License-Identifier: MIT
package domset

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/gainsearch/core"
)

// coverState is shared by both variants: closed neighbourhoods, the
// uncovered bitmap and the chosen flags.
type coverState struct {
	closed    [][]int // closed[v] = N[v], ascending
	uncovered *roaring.Bitmap
	chosen    []bool
}

func newCoverState(g *core.Graph) *coverState {
	n := g.VertexCount()
	adj := g.AdjacencyList()
	s := &coverState{
		closed:    make([][]int, n),
		uncovered: roaring.New(),
		chosen:    make([]bool, n),
	}
	for v := 0; v < n; v++ {
		nb := make([]int, 0, len(adj[v])+1)
		placed := false
		for _, u := range adj[v] {
			if !placed && u > v {
				nb = append(nb, v)
				placed = true
			}
			nb = append(nb, u)
		}
		if !placed {
			nb = append(nb, v)
		}
		s.closed[v] = nb
	}
	if n > 0 {
		s.uncovered.AddRange(0, uint64(n))
	}
	return s
}

// gainOf counts uncovered members of N[v].
func (s *coverState) gainOf(v int) int64 {
	var g int64
	for _, u := range s.closed[v] {
		if s.uncovered.Contains(uint32(u)) {
			g++
		}
	}
	return g
}

// cover marks v chosen and returns the vertices it newly covered.
func (s *coverState) cover(v int) []int {
	s.chosen[v] = true
	var fresh []int
	for _, u := range s.closed[v] {
		if s.uncovered.CheckedRemove(uint32(u)) {
			fresh = append(fresh, u)
		}
	}
	return fresh
}

func (s *coverState) done() bool { return s.uncovered.IsEmpty() }
