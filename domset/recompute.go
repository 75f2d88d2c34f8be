// SPDX-License-Identifier: MIT
package domset

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gainsearch/core"
)

// Recompute is Variant A: degree greedy over the remaining vertices.
//
// Candidates are the uncovered vertices only. Each is scored by its degree
// inside the uncovered subgraph, rescanned at every pick. A covered vertex is
// never picked, even when it would cover more.
type Recompute struct {
	state *coverState
	rng   *rand.Rand
	ties  []int // reused buffer
}

// NewRecompute prepares Variant A over g. Initial scores are full degrees.
func NewRecompute(g *core.Graph, opts ...Option) (*Recompute, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := newConfig(opts...)
	return &Recompute{state: newCoverState(g), rng: cfg.rng}, nil
}

// Done reports whether every vertex is covered.
func (r *Recompute) Done() bool { return r.state.done() }

// Degree is the degree of an uncovered v inside the uncovered subgraph.
func (r *Recompute) Degree(v int) (int, bool) {
	if v < 0 || v >= len(r.state.chosen) || !r.state.uncovered.Contains(uint32(v)) {
		return 0, false
	}
	return int(r.state.gainOf(v)) - 1, true
}

// Select returns the uncovered vertex of largest remaining degree. The gain
// is the number of vertices the pick covers: itself plus that degree.
func (r *Recompute) Select() (int, int64, bool) {
	var best int64
	r.ties = r.ties[:0]
	it := r.state.uncovered.Iterator()
	for it.HasNext() {
		v := int(it.Next())
		g := r.state.gainOf(v) // v ∈ N[v] is uncovered, so g ≥ 1
		switch {
		case g > best:
			best = g
			r.ties = append(r.ties[:0], v)
		case g == best:
			r.ties = append(r.ties, v)
		}
	}
	if best == 0 {
		return 0, 0, false
	}
	if r.rng == nil {
		return r.ties[0], best, true
	}
	return r.ties[r.rng.Intn(len(r.ties))], best, true
}

// Commit adds v, which must still be uncovered.
func (r *Recompute) Commit(v int) error {
	if v < 0 || v >= len(r.state.chosen) {
		return fmt.Errorf("Recompute.Commit: v=%d: %w", v, core.ErrVertexNotFound)
	}
	if r.state.chosen[v] {
		return fmt.Errorf("Recompute.Commit: v=%d: %w", v, ErrAlreadyChosen)
	}
	if !r.state.uncovered.Contains(uint32(v)) {
		return fmt.Errorf("Recompute.Commit: v=%d: %w", v, ErrCovered)
	}
	r.state.cover(v)
	return nil
}
