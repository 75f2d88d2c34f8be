// SPDX-License-Identifier: MIT
package k4color

import (
	"fmt"

	"github.com/katalvlaran/gainsearch/core"
	"github.com/katalvlaran/gainsearch/search"
)

// unitsPerOne is the indicator scale: I is stored in units of 2⁻⁶.
const unitsPerOne = 64

// Move colors one edge.
type Move struct {
	Edge  int
	Color core.Color
}

// cliqueState is the indicator bookkeeping of one K4.
type cliqueState struct {
	target  core.Color
	colored int
	dead    bool
}

func (s cliqueState) indicator() int64 {
	switch {
	case s.dead:
		return 0
	case s.colored == 0:
		return 2
	}
	return 1 << s.colored
}

// delta is ΔI of coloring one more edge of the clique with c.
func (s cliqueState) delta(c core.Color) int64 {
	switch {
	case s.dead, s.colored == 0:
		return 0
	case c == s.target:
		return s.indicator()
	}
	return -s.indicator()
}

func (s *cliqueState) apply(c core.Color) {
	switch {
	case s.dead:
	case s.colored == 0:
		s.target = c
		s.colored = 1
	case c == s.target:
		s.colored++
	default:
		s.dead = true
	}
}

// Coloring greedily colors edges by conditional expectation.
// It implements search.Problem[Move].
type Coloring struct {
	g       *core.Graph
	state   []cliqueState
	order   []int
	pos     int
	sum     int64 // Σ I over all cliques, units of 2⁻⁶
	initial int64
}

// NewColoring prepares the coloring of g over the given cliques.
// Edge.RelatedCliques must already be attached (see Attach) and clique IDs
// must be 0..len(cliques)-1. Edges that already carry a color are skipped
// and their colors seed the clique indicators.
func NewColoring(g *core.Graph, cliques []Clique, opts ...Option) (*Coloring, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := newConfig(opts...)
	c := &Coloring{
		g:     g,
		state: make([]cliqueState, len(cliques)),
		order: make([]int, 0, g.EdgeCount()),
	}
	for _, e := range g.Edges() {
		if e.Color == core.ColorNone {
			c.order = append(c.order, e.ID)
		}
	}
	if cfg.shuffle != nil {
		search.ShuffleInts(c.order, cfg.shuffle)
	}
	for i, k := range cliques {
		if k.ID != i {
			return nil, fmt.Errorf("NewColoring: clique at %d has ID %d: %w", i, k.ID, ErrBadMove)
		}
		for _, eid := range k.Edges {
			e, err := g.EdgeByID(eid)
			if err != nil {
				return nil, fmt.Errorf("NewColoring: clique %d: %w", i, err)
			}
			if e.Color != core.ColorNone {
				c.state[i].apply(e.Color)
			}
		}
		c.sum += c.state[i].indicator()
	}
	c.initial = c.sum
	return c, nil
}

// reward is Σ ΔI over the cliques containing edge id.
func (c *Coloring) reward(e *core.Edge, col core.Color) int64 {
	var r int64
	for _, k := range e.RelatedCliques {
		r += c.state[k].delta(col)
	}
	return r
}

// Done reports whether every edge is colored.
func (c *Coloring) Done() bool { return c.pos >= len(c.order) }

// Select picks the cheaper color for the next edge in order.
// The gain is how much the choice undercuts the alternative.
func (c *Coloring) Select() (Move, int64, bool) {
	if c.Done() {
		return Move{}, 0, false
	}
	e, err := c.g.EdgeByID(c.order[c.pos])
	if err != nil {
		return Move{}, 0, false
	}
	rb := c.reward(e, core.ColorBlack)
	rw := c.reward(e, core.ColorWhite)
	if rw < rb {
		return Move{Edge: e.ID, Color: core.ColorWhite}, rb - rw, true
	}
	return Move{Edge: e.ID, Color: core.ColorBlack}, rw - rb, true
}

// Commit colors the edge and updates every clique that contains it.
func (c *Coloring) Commit(m Move) error {
	if m.Color != core.ColorBlack && m.Color != core.ColorWhite {
		return fmt.Errorf("Coloring.Commit: color=%s: %w", m.Color, ErrBadMove)
	}
	e, err := c.g.EdgeByID(m.Edge)
	if err != nil {
		return fmt.Errorf("Coloring.Commit: edge=%d: %w: %w", m.Edge, ErrBadMove, err)
	}
	if e.Color != core.ColorNone {
		return fmt.Errorf("Coloring.Commit: edge=%d: %w", m.Edge, ErrAlreadyColored)
	}
	for _, k := range e.RelatedCliques {
		c.sum -= c.state[k].indicator()
		c.state[k].apply(m.Color)
		c.sum += c.state[k].indicator()
	}
	if err = c.g.SetColorByID(m.Edge, m.Color); err != nil {
		return fmt.Errorf("Coloring.Commit: %w", err)
	}
	if !c.Done() && c.order[c.pos] == m.Edge {
		c.pos++
	}
	for !c.Done() && c.isColored(c.order[c.pos]) {
		c.pos++
	}
	return nil
}

func (c *Coloring) isColored(id int) bool {
	e, err := c.g.EdgeByID(id)
	return err == nil && e.Color != core.ColorNone
}

// Expected is the current conditional expectation of monochromatic K4.
func (c *Coloring) Expected() float64 { return float64(c.sum) / unitsPerOne }

// InitialExpected is the expectation before any edge was colored.
func (c *Coloring) InitialExpected() float64 { return float64(c.initial) / unitsPerOne }
