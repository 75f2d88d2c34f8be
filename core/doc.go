// SPDX-License-Identifier: MIT

// Package core provides the structure model consumed by every heuristic in
// gainsearch: a simple undirected graph over the vertices 0..n-1 with typed,
// mutable edge attributes.
//
// The Graph G = (V,E) guarantees:
//
//   - Fixed vertex set chosen at construction (NewGraph(n)).
//   - Undirected edges only; no self-loops, no parallel edges.
//   - Edge records normalized so that From < To.
//   - Deterministic iteration: Edges() in insertion (ID) order,
//     Neighbors() and AdjacencyList() ascending.
//   - Typed edge attributes instead of key-value bags:
//     Color (ColorNone, ColorBlack, ColorWhite) and RelatedCliques []int.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int) (*Graph, error)          // O(n)
//	AddEdge(u, v int) (id int, err error)    // O(deg)
//
//	// Query
//	HasVertex(v) bool, HasEdge(u, v) bool    // O(1)
//	Edge(u, v) (*Edge, error)                // O(1)
//	EdgeByID(id) (*Edge, error)              // O(1)
//	Edges() []*Edge                          // O(E)
//	Neighbors(v) ([]int, error)              // O(deg)
//	Degree(v) (int, error)                   // O(1)
//	MinDegree(), MaxDegree() int             // O(V)
//
//	// Attributes
//	SetColor(u, v, c) error, Color(u, v) (Color, error)
//	ResetColors(), ColorCounts()
//
//	// Cloning
//	Clone() *Graph, CloneEmpty() *Graph      // O(V+E)
//
// Errors:
//
//	ErrBadVertexCount      – negative n
//	ErrVertexNotFound      – vertex outside [0, n)
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – u == v
//	ErrMultiEdgeNotAllowed – duplicate {u,v}
//	ErrBadColor            – color outside the enum
//
// Concurrency: a Graph is owned by a single run. Independent runs build
// independent graphs and may execute in parallel.
package core
