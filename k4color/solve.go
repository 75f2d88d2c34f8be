// SPDX-License-Identifier: MIT
package k4color

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gainsearch/core"
	"github.com/katalvlaran/gainsearch/search"
)

// Result summarizes a coloring run. The colors live on the graph's edges.
type Result struct {
	Cliques       int
	Monochromatic int
	Expected      float64 // #K4 · 2⁻⁵
	Run           search.Result[Move]
}

// Solve clears existing colors, enumerates the K4 of g, attaches them to
// their edges and colors every edge.
func Solve(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("Solve: %w", ErrNilGraph)
	}
	cfg := newConfig(opts...)
	g.ResetColors()

	cliques, err := FindCliques(g)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	if err = Attach(g, cliques); err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	p, err := NewColoring(g, cliques, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}

	res := Result{Cliques: len(cliques), Expected: p.InitialExpected()}
	sopts := append([]search.Option{search.WithName("k4color")}, cfg.searchOpts...)
	res.Run, err = search.Run[Move](ctx, p, sopts...)
	mono, cerr := CountMonochromatic(g, cliques)
	if cerr != nil {
		return res, fmt.Errorf("Solve: %w", cerr)
	}
	res.Monochromatic = mono
	if err != nil {
		return res, fmt.Errorf("Solve: %w", err)
	}
	return res, nil
}

// Verify checks that every edge of g carries exactly one drawing color.
func Verify(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, e := range g.Edges() {
		if e.Color != core.ColorBlack && e.Color != core.ColorWhite {
			return fmt.Errorf("Verify: edge %d-%d: %w", e.From, e.To, ErrUncoloredEdge)
		}
	}
	return nil
}
