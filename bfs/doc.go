// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing distance from a start vertex.
//   - BFSResult carries the visit Order and Depth slices (-1 = unreached).
//   - Components(g) splits the structure into connected components with one
//     BFS per component; Eccentricity(g, v) is the deepest level from v.
//     The bounds reporter uses both for structure diagnostics, and
//     domset.Verify walks radius-1 balls with WithMaxDepth(1).
//
// Determinism
//
//	core.Graph keeps adjacency lists sorted ascending, and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):        cancellation.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0).
//   - WithOnVisit(fn):         hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
