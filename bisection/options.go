// SPDX-License-Identifier: MIT
package bisection

import (
	"math/rand"

	"github.com/katalvlaran/gainsearch/search"
)

// Option customizes Solve and NewPartition.
type Option func(*config)

type config struct {
	rng        *rand.Rand
	searchOpts []search.Option
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = search.NewRand(0)
	}
	return cfg
}

// WithRand sets the source of the initial split. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("bisection: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed is WithRand(search.NewRand(seed)).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = search.NewRand(seed) }
}

// WithSearch forwards driver options to search.Run.
func WithSearch(opts ...search.Option) Option {
	return func(c *config) { c.searchOpts = append(c.searchOpts, opts...) }
}
