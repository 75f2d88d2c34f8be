// SPDX-License-Identifier: MIT
package domset

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gainsearch/core"
	"github.com/katalvlaran/gainsearch/gain"
)

// Incremental is Variant B: cached gains updated on every commit.
//
// Invariant: for every unchosen w, tracker score(w) == |N[w] ∩ uncovered|.
type Incremental struct {
	state   *coverState
	tracker *gain.Tracker
	rng     *rand.Rand
}

// NewIncremental prepares Variant B over g. Initial gains are deg(v)+1.
func NewIncremental(g *core.Graph, opts ...Option) (*Incremental, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := newConfig(opts...)
	s := newCoverState(g)
	tr := gain.NewTracker()
	for v, nb := range s.closed {
		tr.Set(v, int64(len(nb)))
	}
	return &Incremental{state: s, tracker: tr, rng: cfg.rng}, nil
}

// Done reports whether every vertex is covered.
func (in *Incremental) Done() bool { return in.state.done() }

// Select returns the tracker's best vertex.
func (in *Incremental) Select() (int, int64, bool) {
	id, score, ok := in.tracker.Best()
	if !ok || score <= 0 {
		return 0, 0, false
	}
	if in.rng != nil {
		ties := in.tracker.Ties()
		id = ties[in.rng.Intn(len(ties))]
	}
	return id, score, true
}

// Commit adds v and propagates coverage changes to neighbouring gains.
func (in *Incremental) Commit(v int) error {
	if v < 0 || v >= len(in.state.chosen) {
		return fmt.Errorf("Incremental.Commit: v=%d: %w", v, core.ErrVertexNotFound)
	}
	if in.state.chosen[v] {
		return fmt.Errorf("Incremental.Commit: v=%d: %w", v, ErrAlreadyChosen)
	}
	in.tracker.Remove(v)
	for _, u := range in.state.cover(v) {
		for _, w := range in.state.closed[u] {
			if in.tracker.Contains(w) {
				if err := in.tracker.Add(w, -1); err != nil {
					return fmt.Errorf("Incremental.Commit: %w", err)
				}
			}
		}
	}
	return nil
}

// Gain exposes the cached gain of an unchosen vertex.
func (in *Incremental) Gain(v int) (int64, bool) { return in.tracker.Score(v) }
