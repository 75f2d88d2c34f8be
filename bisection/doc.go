// SPDX-License-Identifier: MIT

// Package bisection splits a weighted complete graph into two equal halves
// with a small cut by steepest-ascent swapping.
//
// For a vertex x let D_x = external(x) − internal(x), the weight it sends
// across the cut minus the weight it keeps on its own side. Swapping a ∈ A
// with b ∈ B lowers the cut by
//
//	gain(a,b) = D_a + D_b − 2·w(a,b)
//
// Each step applies the pair with the largest gain; the run stops at a local
// optimum (largest gain ≤ 0). D values live in two gain.Tracker indexes so the
// pair scan can stop as soon as D_a + D_b cannot beat the best gain so far.
// After a swap every D is updated in O(n).
//
// Weights are integers so gains compare exactly.
package bisection
