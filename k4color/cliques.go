// SPDX-License-Identifier: MIT
package k4color

import (
	"fmt"

	"github.com/katalvlaran/gainsearch/core"
)

// Clique is one K4 of the structure.
type Clique struct {
	ID       int
	Vertices [4]int // ascending
	Edges    [6]int // edge IDs, pairs in lexicographic vertex order
}

// FindCliques enumerates every 4-clique of g (not only maximal ones) in
// lexicographic vertex order.
//
// Complexity: O(Σ_{a<b adjacent} |N(a)∩N(b)|²) set probes.
func FindCliques(g *core.Graph) ([]Clique, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	adj := g.AdjacencyList()
	var out []Clique
	for a := range adj {
		for _, b := range adj[a] {
			if b <= a {
				continue
			}
			common := above(intersect(adj[a], adj[b]), b)
			for i, c := range common {
				for _, d := range common[i+1:] {
					if !g.HasEdge(c, d) {
						continue
					}
					k, err := newClique(g, len(out), [4]int{a, b, c, d})
					if err != nil {
						return nil, err
					}
					out = append(out, k)
				}
			}
		}
	}
	return out, nil
}

func newClique(g *core.Graph, id int, vs [4]int) (Clique, error) {
	k := Clique{ID: id, Vertices: vs}
	idx := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			eid, err := g.EdgeID(vs[i], vs[j])
			if err != nil {
				return Clique{}, fmt.Errorf("FindCliques: %v: %w", vs, err)
			}
			k.Edges[idx] = eid
			idx++
		}
	}
	return k, nil
}

// intersect merges two ascending slices.
func intersect(x, y []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		switch {
		case x[i] < y[j]:
			i++
		case x[i] > y[j]:
			j++
		default:
			out = append(out, x[i])
			i++
			j++
		}
	}
	return out
}

// above drops the prefix of an ascending slice that is ≤ floor.
func above(s []int, floor int) []int {
	for i, v := range s {
		if v > floor {
			return s[i:]
		}
	}
	return nil
}

// Attach writes clique membership into Edge.RelatedCliques of g.
func Attach(g *core.Graph, cliques []Clique) error {
	for _, k := range cliques {
		for _, eid := range k.Edges {
			if err := g.AttachClique(eid, k.ID); err != nil {
				return fmt.Errorf("Attach: clique %d edge %d: %w", k.ID, eid, err)
			}
		}
	}
	return nil
}

// CountMonochromatic counts cliques whose six edges share one drawing color.
func CountMonochromatic(g *core.Graph, cliques []Clique) (int, error) {
	count := 0
	for _, k := range cliques {
		first, err := g.EdgeByID(k.Edges[0])
		if err != nil {
			return 0, fmt.Errorf("CountMonochromatic: %w", err)
		}
		if first.Color == core.ColorNone {
			continue
		}
		mono := true
		for _, eid := range k.Edges[1:] {
			e, err := g.EdgeByID(eid)
			if err != nil {
				return 0, fmt.Errorf("CountMonochromatic: %w", err)
			}
			if e.Color != first.Color {
				mono = false
				break
			}
		}
		if mono {
			count++
		}
	}
	return count, nil
}
