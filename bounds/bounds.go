// SPDX-License-Identifier: MIT
package bounds

import "math"

// monochromaticShare is the probability that a uniformly random two-coloring
// makes a fixed K4 monochromatic: 2 · 2⁻⁶.
const monochromaticShare = 1.0 / 32.0

// DominatingSetBound is the greedy guarantee ⌊n(1+ln(δ+1))/(δ+1)⌋ for a
// structure with n vertices and minimum degree δ. Negative inputs yield 0.
func DominatingSetBound(n, delta int) int {
	if n <= 0 || delta < 0 {
		return 0
	}
	d := float64(delta + 1)
	return int(math.Floor(float64(n) * (1 + math.Log(d)) / d))
}

// Binomial returns C(n,k); out-of-range k yields 0.
func Binomial(n, k int) int64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	var r int64 = 1
	for i := 0; i < k; i++ {
		r = r * int64(n-i) / int64(i+1)
	}
	return r
}

// ExpectedMonochromaticK4 is the expected number of monochromatic K4 in a
// uniformly random two-coloring of K_n.
func ExpectedMonochromaticK4(n int) float64 {
	return float64(Binomial(n, 4)) * monochromaticShare
}

// ExpectedMonochromaticFromCliques is the same expectation for a structure
// with an explicit count of K4 subgraphs.
func ExpectedMonochromaticFromCliques(cliques int) float64 {
	if cliques < 0 {
		return 0
	}
	return float64(cliques) * monochromaticShare
}

// STSBlockCount is the number of blocks of a Steiner triple system on v points.
func STSBlockCount(v int) int {
	if v < 3 {
		return 0
	}
	return v * (v - 1) / 6
}
