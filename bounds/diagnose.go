// SPDX-License-Identifier: MIT
package bounds

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gainsearch/bfs"
	"github.com/katalvlaran/gainsearch/core"
)

// Report summarizes a structure.
type Report struct {
	Vertices   int
	Edges      int
	MinDegree  int
	MaxDegree  int
	AvgDegree  float64
	Components int
	Largest    int // size of the largest component
	Diameter   int // longest shortest path inside any component
}

// Connected reports whether the structure has at most one component.
func (r Report) Connected() bool { return r.Components <= 1 }

// Lines renders the report as short "key: value" lines.
func (r Report) Lines() []string {
	return []string{
		fmt.Sprintf("vertices: %d", r.Vertices),
		fmt.Sprintf("edges: %d", r.Edges),
		fmt.Sprintf("degree: min %d, max %d, avg %.2f", r.MinDegree, r.MaxDegree, r.AvgDegree),
		fmt.Sprintf("components: %d (largest %d)", r.Components, r.Largest),
		fmt.Sprintf("diameter: %d", r.Diameter),
	}
}

// Diagnose computes a Report for g. The diameter takes one BFS per vertex,
// O(V·(V+E)); ctx cancels it.
func Diagnose(ctx context.Context, g *core.Graph) (Report, error) {
	withCtx := bfs.WithContext(ctx)
	comps, err := bfs.Components(g, withCtx)
	if err != nil {
		return Report{}, fmt.Errorf("Diagnose: %w", err)
	}
	r := Report{
		Vertices:   g.VertexCount(),
		Edges:      g.EdgeCount(),
		MinDegree:  g.MinDegree(),
		MaxDegree:  g.MaxDegree(),
		Components: len(comps),
	}
	if r.Vertices > 0 {
		r.AvgDegree = 2 * float64(r.Edges) / float64(r.Vertices)
	}
	for _, c := range comps {
		if len(c) > r.Largest {
			r.Largest = len(c)
		}
	}
	for v := 0; v < r.Vertices; v++ {
		ecc, err := bfs.Eccentricity(g, v, withCtx)
		if err != nil {
			return r, fmt.Errorf("Diagnose: %w", err)
		}
		r.Diameter = max(r.Diameter, ecc)
	}
	return r, nil
}
