// SPDX-License-Identifier: MIT
// Package: gainsearch/core
//
// types.go: Graph, Edge, Color and the sentinel errors of the structure model.
//
// Errors:
//
//	ErrBadVertexCount      - negative vertex count at construction.
//	ErrVertexNotFound      - vertex index outside [0, n).
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop u==v.
//	ErrMultiEdgeNotAllowed - a second edge between the same endpoints.
//	ErrBadColor            - color value outside the Color enum.
package core

import "errors"

// Sentinel errors for core structure operations.
var (
	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadColor indicates a color value outside the Color enum.
	ErrBadColor = errors.New("core: unknown color")
)

// Color is the two-valued edge state used by edge-coloring heuristics.
// The zero value ColorNone marks an uncolored edge.
type Color uint8

const (
	// ColorNone marks an edge that has not been colored yet.
	ColorNone Color = iota
	// ColorBlack is the first of the two colors; it wins color ties.
	ColorBlack
	// ColorWhite is the second color.
	ColorWhite
)

// String returns a lower-case color name.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	default:
		return "invalid"
	}
}

// Opposite returns the other proper color; ColorNone maps to itself.
func (c Color) Opposite() Color {
	switch c {
	case ColorBlack:
		return ColorWhite
	case ColorWhite:
		return ColorBlack
	default:
		return c
	}
}

// Valid reports whether c is one of the declared Color values.
func (c Color) Valid() bool {
	return c <= ColorWhite
}

// Edge is one undirected edge of a Graph.
//
// From < To always holds; ID is the insertion index in the edge catalog.
// Color and RelatedCliques are the typed per-edge attributes mutated by
// heuristics. RelatedCliques is allocated per edge and never shared.
type Edge struct {
	// ID is the position of the edge in Graph.Edges() (insertion order).
	ID int

	// From is the smaller endpoint.
	From int

	// To is the larger endpoint.
	To int

	// Color is the current edge color (ColorNone until colored).
	Color Color

	// RelatedCliques lists the identifiers of the 4-cliques containing this edge.
	RelatedCliques []int
}

// pairKey identifies an unordered vertex pair with lo < hi.
type pairKey struct {
	lo, hi int
}

// makePairKey normalizes (u,v) into a pairKey.
func makePairKey(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}
	return pairKey{lo: u, hi: v}
}

// Graph is a simple undirected graph over the vertices 0..n-1.
//
// The vertex set is fixed at construction. Edges may be added until the
// structure is handed to a heuristic; afterwards only edge attributes change.
// A Graph is not safe for concurrent mutation: each run owns its structure.
type Graph struct {
	n     int             // vertex count
	edges []*Edge         // edge catalog in insertion order (Edge.ID == index)
	adj   [][]int         // adj[v] sorted ascending
	index map[pairKey]int // {lo,hi} -> Edge.ID
}

// NewGraph creates a graph with n isolated vertices 0..n-1.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadVertexCount
	}
	g := &Graph{
		n:     n,
		edges: make([]*Edge, 0),
		adj:   make([][]int, n),
		index: make(map[pairKey]int),
	}

	return g, nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether v is in [0, n).
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.n
}
