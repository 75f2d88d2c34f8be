// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep and shape-only copies of a Graph.
// Policy:
//   - Clone copies edge attributes; every RelatedCliques slice is re-allocated.
//   - CloneEmpty keeps the vertex set and edges but drops all attribute state.

package core

// Clone returns a deep copy of g, including edge colors and clique references.
// Mutating the clone never affects g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	c := g.CloneEmpty()
	for i, e := range g.edges {
		c.edges[i].Color = e.Color
		c.edges[i].RelatedCliques = append(make([]int, 0, len(e.RelatedCliques)), e.RelatedCliques...)
	}
	return c
}

// CloneEmpty returns a copy with the same vertices and edges but every edge
// reset to ColorNone with an empty clique list.
// Complexity: O(V+E).
func (g *Graph) CloneEmpty() *Graph {
	c := &Graph{
		n:     g.n,
		edges: make([]*Edge, len(g.edges)),
		adj:   g.AdjacencyList(),
		index: make(map[pairKey]int, len(g.index)),
	}
	for i, e := range g.edges {
		c.edges[i] = &Edge{
			ID:             e.ID,
			From:           e.From,
			To:             e.To,
			Color:          ColorNone,
			RelatedCliques: make([]int, 0),
		}
		c.index[pairKey{lo: e.From, hi: e.To}] = e.ID
	}
	return c
}
