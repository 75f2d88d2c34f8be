// SPDX-License-Identifier: MIT
package bisection

import (
	"fmt"
	"math/rand"
)

// MaxWeight is the exclusive upper bound of RandomInstance weights.
const MaxWeight = 100

// Instance is a symmetric weight matrix over vertices 0..N-1.
type Instance struct {
	W [][]int64
}

// N is the vertex count.
func (in Instance) N() int { return len(in.W) }

// NewInstance validates w and wraps it. w is not copied.
func NewInstance(w [][]int64) (Instance, error) {
	n := len(w)
	if n < 2 || n%2 != 0 {
		return Instance{}, fmt.Errorf("NewInstance: n=%d: %w", n, ErrOddVertexCount)
	}
	for i := range w {
		if len(w[i]) != n {
			return Instance{}, fmt.Errorf("NewInstance: row %d has %d entries: %w", i, len(w[i]), ErrBadWeights)
		}
		if w[i][i] != 0 {
			return Instance{}, fmt.Errorf("NewInstance: w[%d][%d]=%d: %w", i, i, w[i][i], ErrBadWeights)
		}
		for j := 0; j < i; j++ {
			if w[i][j] != w[j][i] || w[i][j] < 0 {
				return Instance{}, fmt.Errorf("NewInstance: w[%d][%d]=%d: %w", i, j, w[i][j], ErrBadWeights)
			}
		}
	}
	return Instance{W: w}, nil
}

// RandomInstance draws every w(i,j), i<j, uniformly from [0, MaxWeight).
func RandomInstance(n int, rng *rand.Rand) (Instance, error) {
	if n < 2 || n%2 != 0 {
		return Instance{}, fmt.Errorf("RandomInstance: n=%d: %w", n, ErrOddVertexCount)
	}
	w := make([][]int64, n)
	for i := range w {
		w[i] = make([]int64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			x := rng.Int63n(MaxWeight)
			w[i][j], w[j][i] = x, x
		}
	}
	return Instance{W: w}, nil
}

// Cut sums w(a,b) over a ∈ left, b ∈ right.
func (in Instance) Cut(left, right []int) int64 {
	var c int64
	for _, a := range left {
		for _, b := range right {
			c += in.W[a][b]
		}
	}
	return c
}
