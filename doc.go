// SPDX-License-Identifier: MIT

// Package gainsearch is a small toolkit of incremental local-search
// heuristics on graphs and block designs.
//
// Every heuristic repeatedly picks the candidate with the best marginal
// gain, commits it and updates the affected gains, until a predicate holds:
//
//	domset/     greedy dominating set (full rescan and incremental variants)
//	k4color/    two-coloring of K_n edges minimizing monochromatic K4
//	sts/        Steiner triple systems with a switch move on dead ends
//	bisection/  balanced min-cut bisection by steepest pair swaps
//	anneal/     simulated annealing for 0/1 knapsack
//
// Shared infrastructure:
//
//	core/       undirected structure with typed edges and coloring state
//	builder/    random minimum-degree, complete and explicit structures
//	gain/       ordered (score desc, id asc) gain index
//	search/     the select/commit driver, logging, metrics hooks, rng
//	bounds/     theoretical guarantees and structure diagnostics
//	bfs/        breadth-first traversal and components
//	edgelist/   text edge-list reader and writer
//	render/     Graphviz DOT output
//	metrics/    Prometheus adapter for search events
//	experiment/ parallel seeded trials and the dominating-set sweep
//
// The command in cmd/gainsearch exposes each heuristic.
//
// Quick example:
//
//	g, _ := builder.RandomStructure(100, 3, 0.02, search.NewRand(7))
//	res, _ := domset.Solve(ctx, g, domset.VariantIncremental)
//	fmt.Println(res.Size(), bounds.DominatingSetBound(100, g.MinDegree()))
package gainsearch
