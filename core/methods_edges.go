// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge/EdgeByID/Edges,
//       plus the typed color attribute accessors.
// Determinism:
//   - Edges() returns edges in ID order (insertion order).
//   - Adjacency lists stay sorted ascending after every insertion.

package core

import "sort"

// AddEdge inserts the undirected edge {u,v} and returns its ID.
//
// Steps:
//  1. Validate both endpoints exist.
//  2. Reject loops and duplicates.
//  3. Append to the catalog with From=min(u,v), To=max(u,v).
//  4. Insert each endpoint into the other's sorted adjacency list.
//
// Complexity: O(deg(u)+deg(v)) for the sorted insertion.
func (g *Graph) AddEdge(u, v int) (int, error) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return -1, ErrVertexNotFound
	}
	if u == v {
		return -1, ErrLoopNotAllowed
	}
	key := makePairKey(u, v)
	if _, ok := g.index[key]; ok {
		return -1, ErrMultiEdgeNotAllowed
	}

	id := len(g.edges)
	g.edges = append(g.edges, &Edge{
		ID:             id,
		From:           key.lo,
		To:             key.hi,
		Color:          ColorNone,
		RelatedCliques: make([]int, 0), // per-edge slice, never shared
	})
	g.index[key] = id
	g.adj[u] = insertSorted(g.adj[u], v)
	g.adj[v] = insertSorted(g.adj[v], u)

	return id, nil
}

// insertSorted inserts x into the ascending slice s.
func insertSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x
	return s
}

// HasEdge reports whether {u,v} is an edge. Out-of-range vertices yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) || u == v {
		return false
	}
	_, ok := g.index[makePairKey(u, v)]
	return ok
}

// Edge returns the live edge record for {u,v}.
// The returned pointer is owned by the graph; callers mutate only through
// SetColor or the heuristics that own the run.
func (g *Graph) Edge(u, v int) (*Edge, error) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}
	id, ok := g.index[makePairKey(u, v)]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	return g.edges[id], nil
}

// EdgeID returns the catalog ID of {u,v}.
func (g *Graph) EdgeID(u, v int) (int, error) {
	e, err := g.Edge(u, v)
	if err != nil {
		return -1, err
	}
	return e.ID, nil
}

// EdgeByID returns the edge with the given catalog ID.
func (g *Graph) EdgeByID(id int) (*Edge, error) {
	if id < 0 || id >= len(g.edges) {
		return nil, ErrEdgeNotFound
	}
	return g.edges[id], nil
}

// Edges returns all edges in ID order. The slice is fresh; the *Edge values are live.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// SetColor assigns c to the edge {u,v}.
func (g *Graph) SetColor(u, v int, c Color) error {
	if !c.Valid() {
		return ErrBadColor
	}
	e, err := g.Edge(u, v)
	if err != nil {
		return err
	}
	e.Color = c
	return nil
}

// SetColorByID assigns c to the edge with catalog ID id.
func (g *Graph) SetColorByID(id int, c Color) error {
	if !c.Valid() {
		return ErrBadColor
	}
	e, err := g.EdgeByID(id)
	if err != nil {
		return err
	}
	e.Color = c
	return nil
}

// AttachClique records that the 4-clique cliqueID contains edge id.
func (g *Graph) AttachClique(id, cliqueID int) error {
	e, err := g.EdgeByID(id)
	if err != nil {
		return err
	}
	e.RelatedCliques = append(e.RelatedCliques, cliqueID)
	return nil
}

// Color returns the color of {u,v}.
func (g *Graph) Color(u, v int) (Color, error) {
	e, err := g.Edge(u, v)
	if err != nil {
		return ColorNone, err
	}
	return e.Color, nil
}

// ResetColors sets every edge back to ColorNone and clears clique references.
// Complexity: O(E).
func (g *Graph) ResetColors() {
	for _, e := range g.edges {
		e.Color = ColorNone
		e.RelatedCliques = e.RelatedCliques[:0]
	}
}

// ColorCounts returns how many edges carry each color.
func (g *Graph) ColorCounts() (none, black, white int) {
	for _, e := range g.edges {
		switch e.Color {
		case ColorBlack:
			black++
		case ColorWhite:
			white++
		default:
			none++
		}
	}
	return none, black, white
}
