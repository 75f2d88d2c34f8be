// SPDX-License-Identifier: MIT

// Package sts constructs Steiner triple systems by hill climbing.
//
// A Steiner triple system STS(v) is a set of 3-point blocks over v points in
// which every pair of points lies in exactly one block. It exists iff
// v ≡ 1 or 3 (mod 6) and has v(v-1)/6 blocks.
//
// A pair is live while no block covers it; a point is live while it has a
// live pair. Each point keeps a roaring bitmap of its uncovered partners, so
// the points c completing a live pair (a,b) into a live block are exactly
// rows[a] ∧ rows[b].
//
// Construction plugs into search.Run:
//
//   - Select returns a live block (lowest pair, lowest third point by default;
//     WithRandomBlocks draws them instead).
//   - When none exists the driver calls Switch: pick a live pair (a,b) at
//     random, orient it at random, pick c with (a,c) live, and replace the
//     block (x,b,c) covering {b,c} by (a,b,c). The block count is unchanged.
//
// Reaching the iteration ceiling is reported as search.ErrNonConvergence,
// never as a truncated system.
package sts
