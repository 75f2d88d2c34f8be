// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Degree, AdjacencyList) and degree summaries.
// Determinism:
//   - Neighbors() and AdjacencyList() return ascending vertex indices.
//   - Returned slices are independent copies (no shared backing arrays).

package core

// Neighbors returns the neighbors of v in ascending order.
//
// Errors:
//   - ErrVertexNotFound: if v is outside [0, n).
//
// Complexity: O(deg(v)) for the copy.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])
	return out, nil
}

// Degree returns the number of neighbors of v.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}
	return len(g.adj[v]), nil
}

// AdjacencyList returns a deep copy of the adjacency lists, indexed by vertex.
// Complexity: O(V+E).
func (g *Graph) AdjacencyList() [][]int {
	out := make([][]int, g.n)
	for v := 0; v < g.n; v++ {
		out[v] = make([]int, len(g.adj[v]))
		copy(out[v], g.adj[v])
	}
	return out
}

// MinDegree returns the smallest vertex degree, or 0 for an empty graph.
func (g *Graph) MinDegree() int {
	if g.n == 0 {
		return 0
	}
	m := len(g.adj[0])
	for v := 1; v < g.n; v++ {
		if d := len(g.adj[v]); d < m {
			m = d
		}
	}
	return m
}

// MaxDegree returns the largest vertex degree, or 0 for an empty graph.
func (g *Graph) MaxDegree() int {
	m := 0
	for v := 0; v < g.n; v++ {
		if d := len(g.adj[v]); d > m {
			m = d
		}
	}
	return m
}
