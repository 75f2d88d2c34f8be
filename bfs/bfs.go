// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted distances, visit order and components.
package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/gainsearch/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	opts  BFSOptions
	ctx   context.Context
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		adj:   g.AdjacencyList(),
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth: filled(n, -1),
		},
	}
	w.enqueue(start, 0)
	return w.res, w.loop()
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func (w *walker) enqueue(v, d int) {
	w.res.Depth[v] = d
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Depth[v]
		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		if w.opts.MaxDepth > 0 && d+1 > w.opts.MaxDepth {
			continue
		}
		for _, u := range w.adj[v] {
			if w.res.Depth[u] < 0 {
				w.enqueue(u, d+1)
			}
		}
	}
	return nil
}

// Components partitions the vertices of g into connected components by
// running one BFS from each vertex not yet labelled.
// Components are ordered by their smallest vertex, members ascend.
// Only WithContext is meaningful in opts.
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make([]bool, g.VertexCount())
	mark := WithOnVisit(func(v, _ int) error {
		seen[v] = true
		return nil
	})
	var out [][]int
	for s := range seen {
		if seen[s] {
			continue
		}
		res, err := BFS(g, s, append(slices.Clip(opts), mark)...)
		if err != nil {
			return nil, fmt.Errorf("Components: start %d: %w", s, err)
		}
		comp := slices.Clone(res.Order)
		slices.Sort(comp)
		out = append(out, comp)
	}
	return out, nil
}

// Eccentricity is the largest BFS depth reached from v, i.e. the longest
// shortest path from v inside its component.
func Eccentricity(g *core.Graph, v int, opts ...Option) (int, error) {
	res, err := BFS(g, v, opts...)
	if err != nil {
		return 0, err
	}
	last := res.Order[len(res.Order)-1]
	return res.Depth[last], nil
}
