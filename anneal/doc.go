// SPDX-License-Identifier: MIT

// Package anneal solves the 0/1 knapsack problem by simulated annealing.
//
// The run starts from a random feasible selection, then repeats
// MaxIterations times:
//
//  1. T ← T · CoolingRate
//  2. draw a neighbor by toggling one item, uniformly among the toggles that
//     keep the selection within capacity
//  3. accept it if it is better, or with probability exp(Δ/T)
//
// Result carries the final selection, its value, the best value seen at any
// point and the value history (one entry per iteration plus the start).
package anneal
