// SPDX-License-Identifier: MIT
package sts

import "errors"

var (
	// ErrInvalidOrder indicates v ≢ 1,3 (mod 6) or v < 1.
	ErrInvalidOrder = errors.New("sts: order must satisfy v ≡ 1 or 3 (mod 6)")

	// ErrBadBlock indicates a block with repeated or out-of-range points.
	ErrBadBlock = errors.New("sts: malformed block")

	// ErrPairCovered indicates a block reuses an already covered pair.
	ErrPairCovered = errors.New("sts: pair already covered")

	// ErrNotSteiner indicates Verify found a pair covered zero or several times.
	ErrNotSteiner = errors.New("sts: not a Steiner triple system")
)
