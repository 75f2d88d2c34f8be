// SPDX-License-Identifier: MIT
package domset

import (
	"math/rand"

	"github.com/katalvlaran/gainsearch/search"
)

// Variant selects the gain policy.
type Variant int

const (
	// VariantRecompute rescans all gains at each pick.
	VariantRecompute Variant = iota + 1
	// VariantIncremental maintains gains incrementally.
	VariantIncremental
)

// String returns the short variant name.
func (v Variant) String() string {
	switch v {
	case VariantRecompute:
		return "recompute"
	case VariantIncremental:
		return "incremental"
	}
	return "unknown"
}

// Option customizes Solve and the problem constructors.
type Option func(*config)

type config struct {
	rng        *rand.Rand // nil ⇒ lowest id wins ties
	searchOpts []search.Option
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRandomTies breaks gain ties uniformly at random using r. Panics on nil.
func WithRandomTies(r *rand.Rand) Option {
	if r == nil {
		panic("domset: WithRandomTies(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSearch forwards driver options (ceiling, logger, metrics) to search.Run.
func WithSearch(opts ...search.Option) Option {
	return func(c *config) { c.searchOpts = append(c.searchOpts, opts...) }
}
