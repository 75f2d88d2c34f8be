// SPDX-License-Identifier: MIT

// Package search is the greedy / local-search driver shared by every heuristic.
//
// A heuristic implements Problem[C] over its candidate type C:
//
//   - Done() reports whether the objective is met.
//   - Select() returns the best open candidate and its gain.
//   - Commit(c) applies c and updates the marginal-gain index incrementally.
//
// Run drives the state machine Selecting → Committing → (Selecting | Terminated):
//
//   - Done() ⇒ StatusConverged.
//   - Nothing selectable ⇒ Switch() when the problem implements Switcher,
//     otherwise StatusLocalOptimum.
//   - Iteration ceiling reached ⇒ StatusNonConverged.
//
// Every status other than StatusConverged comes back together with an error;
// ceiling and local-optimum terminations wrap ErrNonConvergence and still carry
// the partial Result.
//
// Ambient pieces live here too: Logger (slog), MetricsCollector and the
// deterministic RNG helpers (NewRand, DeriveSeed, ShuffleInts).
package search
