// SPDX-License-Identifier: MIT
package k4color

import "errors"

var (
	// ErrNilGraph indicates a nil structure was passed.
	ErrNilGraph = errors.New("k4color: nil graph")

	// ErrAlreadyColored indicates a move targets an edge that already has a color.
	ErrAlreadyColored = errors.New("k4color: edge already colored")

	// ErrBadMove indicates a move with an unknown edge or a non-drawing color.
	ErrBadMove = errors.New("k4color: invalid move")

	// ErrUncoloredEdge indicates Verify found an edge without a color.
	ErrUncoloredEdge = errors.New("k4color: edge left uncolored")
)
