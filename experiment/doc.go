// SPDX-License-Identifier: MIT

// Package experiment runs independent heuristic trials in parallel.
//
// RunTrials is the generic fan-out: trial i gets its own *rand.Rand seeded
// with search.DeriveSeed(seed, i), so results do not depend on the number
// of workers or on scheduling. Sweep uses it to compare both dominating-set
// variants against the greedy bound on random structures of varying size
// and minimum degree.
//
// Each trial owns its graph, its gain index and its log; nothing is shared
// between goroutines except the optional logger and metrics collector,
// which must be safe for concurrent use.
package experiment
