// SPDX-License-Identifier: MIT

// Package gain provides the ordered marginal-gain index shared by the
// incremental heuristics.
//
// A Tracker keeps one score per candidate identifier and answers "best
// candidate" queries in O(log n). Ordering is score descending, then
// identifier ascending, so ties always resolve to the lowest identifier.
//
// The tracker is not safe for concurrent use; a single run owns it.
package gain
