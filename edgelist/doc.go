// SPDX-License-Identifier: MIT

// Package edgelist reads and writes structures as plain edge lists.
//
// Format:
//
//	# comments run to end of line
//	vertices: 6        (optional; default is max endpoint + 1)
//	0 1
//	1-2, 2 - 3; 4 5
//
// Pairs may be separated by whitespace, newlines, commas or semicolons, and
// the two endpoints by whitespace or '-'. Loops and duplicate pairs are
// rejected when the structure is built.
package edgelist
