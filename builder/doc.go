// SPDX-License-Identifier: MIT

// Package builder generates the structures that heuristics consume.
//
// It follows a functional-options design:
//
//   - Constructor: a closure that adds edges to a *core.Graph.
//   - BuilderOption: mutates builderConfig (the RNG) before construction.
//   - BuildGraph(n, bopts, cons...): the single orchestrator.
//
// Constructors:
//
//   - RandomMinDegree(delta, p) – Bernoulli(p) pairs plus a per-vertex repair
//     step that guarantees minimum degree delta. Connectivity is incidental.
//   - Complete()               – K_n.
//   - FromEdges(pairs)         – explicit edge list; loops/duplicates rejected.
//
// RandomStructure(n, delta, p, rng) wraps the common case.
//
// Guarantees:
//
//   - Deterministic for a fixed seed and constructor order.
//   - Fast-fail on invalid option values via panics in option constructors.
//   - Constructors return sentinel errors wrapped with a method tag:
//     ErrTooFewVertices, ErrInvalidProbability, ErrInfeasibleDegree,
//     ErrNeedRandSource, ErrConstructFailed.
package builder
