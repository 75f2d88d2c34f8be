// SPDX-License-Identifier: MIT
package sts

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gainsearch/search"
)

// Result is the constructed (or partial) block collection.
type Result struct {
	V        int
	Blocks   []Block
	Switches int
	Run      search.Result[Block]
}

// Solve builds an STS(v). On non-convergence the partial blocks are returned
// together with an error wrapping search.ErrNonConvergence.
func Solve(ctx context.Context, v int, opts ...Option) (Result, error) {
	res := Result{V: v}
	s, err := NewSystem(v, opts...)
	if err != nil {
		return res, fmt.Errorf("Solve: %w", err)
	}
	sopts := append([]search.Option{search.WithName("sts")}, s.cfg.searchOpts...)
	res.Run, err = search.Run[Block](ctx, s, sopts...)
	res.Blocks = s.Blocks()
	res.Switches = res.Run.Switches
	if err != nil {
		return res, fmt.Errorf("Solve(v=%d): %w", v, err)
	}
	return res, nil
}

// Verify checks that blocks form an STS(v): every block well formed and
// every pair of points covered exactly once.
func Verify(v int, blocks []Block) error {
	if !ValidOrder(v) {
		return fmt.Errorf("Verify: v=%d: %w", v, ErrInvalidOrder)
	}
	seen := make([][]int, v)
	for i := range seen {
		seen[i] = make([]int, v)
	}
	for _, b := range blocks {
		for _, x := range b {
			if x < 0 || x >= v {
				return fmt.Errorf("Verify: %v: %w", b, ErrBadBlock)
			}
		}
		if b[0] == b[1] || b[0] == b[2] || b[1] == b[2] {
			return fmt.Errorf("Verify: %v: %w", b, ErrBadBlock)
		}
		for _, p := range b.pairs() {
			seen[p[0]][p[1]]++
			seen[p[1]][p[0]]++
		}
	}
	for x := 0; x < v; x++ {
		for y := x + 1; y < v; y++ {
			if seen[x][y] != 1 {
				return fmt.Errorf("Verify: pair {%d,%d} covered %d times: %w", x, y, seen[x][y], ErrNotSteiner)
			}
		}
	}
	return nil
}
