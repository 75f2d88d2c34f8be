// SPDX-License-Identifier: MIT

// Package bounds reports the theoretical guarantees the heuristics are
// measured against, plus structural diagnostics of an input.
//
//   - DominatingSetBound(n, δ)          = ⌊n(1+ln(δ+1))/(δ+1)⌋
//   - ExpectedMonochromaticK4(n)        = C(n,4)·2⁻⁵
//   - ExpectedMonochromaticFromCliques  = k·2⁻⁵ for an explicit K4 count k
//   - STSBlockCount(v)                  = v(v-1)/6
//   - Diagnose(ctx, g)                  vertex/edge counts, degrees, components, diameter
//
// All functions are pure; none of them mutates its input.
package bounds
