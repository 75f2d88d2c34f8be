// SPDX-License-Identifier: MIT
package domset

import "errors"

var (
	// ErrNilGraph indicates a nil structure was passed.
	ErrNilGraph = errors.New("domset: nil graph")

	// ErrNotDominating indicates a set leaves some vertex uncovered.
	ErrNotDominating = errors.New("domset: set is not dominating")

	// ErrUnknownVariant indicates a Variant outside the enum.
	ErrUnknownVariant = errors.New("domset: unknown variant")

	// ErrAlreadyChosen indicates a commit of a vertex that is already in the set.
	ErrAlreadyChosen = errors.New("domset: vertex already chosen")

	// ErrCovered indicates a Recompute commit of a vertex that is already covered.
	ErrCovered = errors.New("domset: vertex already covered")
)
