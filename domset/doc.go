// SPDX-License-Identifier: MIT

// Package domset builds dominating sets greedily.
//
// A vertex v covers its closed neighbourhood N[v] = {v} ∪ N(v). Two greedy
// policies are provided, both breaking ties by lowest vertex id unless
// WithRandomTies is given:
//
//   - Recompute (Variant A) picks among the uncovered vertices only, the one
//     with the largest degree inside the uncovered subgraph, rescanned at each
//     pick. O(n·Δ) per pick.
//   - Incremental (Variant B) picks among all unchosen vertices the one
//     covering the most uncovered vertices. Gains live in a gain.Tracker and,
//     when a vertex u becomes covered, the gain of each member of N[u] drops
//     by one. O(Δ² log n) per pick.
//
// Variant B can choose an already covered hub that Variant A must skip, so it
// usually returns fewer vertices, though not on every structure.
//
// The uncovered set is a roaring bitmap. Both problems plug into search.Run.
//
// For a structure with n vertices and minimum degree δ, Incremental never
// exceeds bounds.DominatingSetBound(n, δ).
package domset
