// SPDX-License-Identifier: MIT
package bisection

import "errors"

var (
	// ErrOddVertexCount indicates the vertex count cannot be split evenly.
	ErrOddVertexCount = errors.New("bisection: vertex count must be even and ≥ 2")

	// ErrBadWeights indicates a non-square, asymmetric, negative or non-zero-diagonal matrix.
	ErrBadWeights = errors.New("bisection: invalid weight matrix")

	// ErrBadSwap indicates a swap whose endpoints are not on opposite sides.
	ErrBadSwap = errors.New("bisection: invalid swap")
)
