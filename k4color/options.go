// SPDX-License-Identifier: MIT
package k4color

import (
	"math/rand"

	"github.com/katalvlaran/gainsearch/search"
)

// Option customizes Solve and NewColoring.
type Option func(*config)

type config struct {
	shuffle    *rand.Rand // nil ⇒ edge ID order
	searchOpts []search.Option
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithShuffledOrder colors edges in an order drawn from r. Panics on nil.
func WithShuffledOrder(r *rand.Rand) Option {
	if r == nil {
		panic("k4color: WithShuffledOrder(nil)")
	}
	return func(c *config) { c.shuffle = r }
}

// WithSearch forwards driver options to search.Run.
func WithSearch(opts ...search.Option) Option {
	return func(c *config) { c.searchOpts = append(c.searchOpts, opts...) }
}
