// SPDX-License-Identifier: MIT
package domset

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/gainsearch/bfs"
	"github.com/katalvlaran/gainsearch/core"
	"github.com/katalvlaran/gainsearch/search"
)

// Result is a dominating set and the run that produced it.
type Result struct {
	Variant Variant
	Set     []int // commit order
	Run     search.Result[int]
}

// Size is the number of chosen vertices.
func (r Result) Size() int { return len(r.Set) }

// Sorted returns the set in ascending vertex order.
func (r Result) Sorted() []int {
	out := slices.Clone(r.Set)
	slices.Sort(out)
	return out
}

// Solve runs the requested variant to completion on g.
func Solve(ctx context.Context, g *core.Graph, variant Variant, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	res := Result{Variant: variant}

	var (
		p   search.Problem[int]
		err error
	)
	switch variant {
	case VariantRecompute:
		p, err = NewRecompute(g, opts...)
	case VariantIncremental:
		p, err = NewIncremental(g, opts...)
	default:
		return res, fmt.Errorf("Solve: variant=%d: %w", variant, ErrUnknownVariant)
	}
	if err != nil {
		return res, fmt.Errorf("Solve: %w", err)
	}

	sopts := append([]search.Option{search.WithName("domset-" + variant.String())}, cfg.searchOpts...)
	run, err := search.Run(ctx, p, sopts...)
	res.Run = run
	res.Set = run.Log
	if err != nil {
		return res, fmt.Errorf("Solve(%s): %w", variant, err)
	}
	return res, nil
}

// Verify checks that set dominates g: the radius-1 BFS balls around the
// chosen vertices must reach every vertex. Duplicates are tolerated.
func Verify(g *core.Graph, set []int) error {
	if g == nil {
		return ErrNilGraph
	}
	covered := make([]bool, g.VertexCount())
	mark := bfs.WithOnVisit(func(v, _ int) error {
		covered[v] = true
		return nil
	})
	for _, v := range set {
		if _, err := bfs.BFS(g, v, bfs.WithMaxDepth(1), mark); err != nil {
			return fmt.Errorf("Verify: v=%d: %w", v, err)
		}
	}
	for v, ok := range covered {
		if !ok {
			return fmt.Errorf("Verify: vertex %d uncovered: %w", v, ErrNotDominating)
		}
	}
	return nil
}
