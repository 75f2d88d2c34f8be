// SPDX-License-Identifier: MIT

// Package k4color two-colors the edges of a structure while keeping the
// number of monochromatic 4-cliques (K4) at or below the random expectation.
//
// Every K4 carries an indicator I, the probability that it ends up
// monochromatic if its remaining edges were colored uniformly at random,
// kept in integer units of 2⁻⁶:
//
//	no colored edge               I = 2
//	c ≥ 1 edges, all one color    I = 2^c
//	two colors present            I = 0 (dead forever)
//
// Edges are colored one at a time. For each edge the reward of a color is the
// sum of ΔI over the cliques listed in Edge.RelatedCliques; the color with the
// smaller reward wins, Black on ties. Σ I never increases, so the final count
// of monochromatic K4 is at most ⌊#K4/32⌋.
//
// The default order is edge ID order; WithShuffledOrder colors in a seeded
// random order instead.
package k4color
