// SPDX-License-Identifier: MIT
package bisection

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/gainsearch/gain"
	"github.com/katalvlaran/gainsearch/search"
)

// Swap exchanges A-side vertex A with B-side vertex B.
type Swap struct {
	A, B int
}

// Partition is the steepest-ascent problem. It implements search.Problem[Swap].
type Partition struct {
	in      Instance
	side    []bool // true ⇒ vertex in A
	d       []int64
	trA     *gain.Tracker
	trB     *gain.Tracker
	cut     int64
	history []int64

	cached bool
	best   Swap
	bestG  int64
}

// NewPartition validates in and draws a random balanced split.
func NewPartition(in Instance, opts ...Option) (*Partition, error) {
	n := in.N()
	if n < 2 || n%2 != 0 {
		return nil, fmt.Errorf("NewPartition: n=%d: %w", n, ErrOddVertexCount)
	}
	cfg := newConfig(opts...)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	search.ShuffleInts(perm, cfg.rng)

	p := &Partition{
		in:   in,
		side: make([]bool, n),
		d:    make([]int64, n),
		trA:  gain.NewTracker(),
		trB:  gain.NewTracker(),
	}
	for _, v := range perm[:n/2] {
		p.side[v] = true
	}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if x == y {
				continue
			}
			if p.side[x] == p.side[y] {
				p.d[x] -= in.W[x][y]
			} else {
				p.d[x] += in.W[x][y]
				if p.side[x] {
					p.cut += in.W[x][y]
				}
			}
		}
		p.tracker(x).Set(x, p.d[x])
	}
	p.history = []int64{p.cut}
	return p, nil
}

func (p *Partition) tracker(x int) *gain.Tracker {
	if p.side[x] {
		return p.trA
	}
	return p.trB
}

// scan finds the best swap, pruning with D_a + D_b ≥ gain (weights ≥ 0).
func (p *Partition) scan() {
	if p.cached {
		return
	}
	p.cached = true
	p.bestG = 0
	p.best = Swap{-1, -1}
	bs := p.trB.Ranked(0)
	for _, a := range p.trA.Ranked(0) {
		da := p.d[a]
		if len(bs) == 0 || da+p.d[bs[0]] <= p.bestG {
			break
		}
		for _, b := range bs {
			db := p.d[b]
			if da+db <= p.bestG {
				break
			}
			if g := da + db - 2*p.in.W[a][b]; g > p.bestG {
				p.bestG = g
				p.best = Swap{A: a, B: b}
			}
		}
	}
}

// Done reports a local optimum: no swap lowers the cut.
func (p *Partition) Done() bool {
	p.scan()
	return p.bestG <= 0
}

// Select returns the steepest swap.
func (p *Partition) Select() (Swap, int64, bool) {
	p.scan()
	if p.bestG <= 0 {
		return Swap{}, 0, false
	}
	return p.best, p.bestG, true
}

// Commit applies s and updates every D in O(n).
func (p *Partition) Commit(s Swap) error {
	n := len(p.side)
	if s.A < 0 || s.A >= n || s.B < 0 || s.B >= n || !p.side[s.A] || p.side[s.B] {
		return fmt.Errorf("Partition.Commit: %+v: %w", s, ErrBadSwap)
	}
	a, b := s.A, s.B
	w := p.in.W
	g := p.d[a] + p.d[b] - 2*w[a][b]

	for x := 0; x < n; x++ {
		if x == a || x == b {
			continue
		}
		if p.side[x] {
			p.d[x] += 2*w[x][a] - 2*w[x][b]
		} else {
			p.d[x] += 2*w[x][b] - 2*w[x][a]
		}
		p.tracker(x).Set(x, p.d[x])
	}
	p.trA.Remove(a)
	p.trB.Remove(b)
	p.d[a] = -p.d[a] + 2*w[a][b]
	p.d[b] = -p.d[b] + 2*w[a][b]
	p.side[a], p.side[b] = false, true
	p.trB.Set(a, p.d[a])
	p.trA.Set(b, p.d[b])

	p.cut -= g
	p.history = append(p.history, p.cut)
	p.cached = false
	return nil
}

// Halves returns both sides, ascending.
func (p *Partition) Halves() (left, right []int) {
	for x, inA := range p.side {
		if inA {
			left = append(left, x)
		} else {
			right = append(right, x)
		}
	}
	return left, right
}

// Cut is the current cut weight.
func (p *Partition) Cut() int64 { return p.cut }

// History is the cut after each step, starting with the initial split.
func (p *Partition) History() []int64 { return slices.Clone(p.history) }

// Result is a balanced split and how it was reached.
type Result struct {
	Left, Right []int
	Cut         int64
	History     []int64
	Run         search.Result[Swap]
}

// Solve runs steepest ascent on in until a local optimum.
func Solve(ctx context.Context, in Instance, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	p, err := NewPartition(in, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	sopts := append([]search.Option{search.WithName("bisection")}, cfg.searchOpts...)
	run, err := search.Run[Swap](ctx, p, sopts...)
	res := Result{Cut: p.Cut(), History: p.History(), Run: run}
	res.Left, res.Right = p.Halves()
	if err != nil {
		return res, fmt.Errorf("Solve: %w", err)
	}
	return res, nil
}
