// SPDX-License-Identifier: MIT
package sts

import (
	"math/rand"

	"github.com/katalvlaran/gainsearch/search"
)

// Option customizes NewSystem and Solve.
type Option func(*config)

type config struct {
	rng          *rand.Rand
	randomBlocks bool
	observer     func(Event)
	searchOpts   []search.Option
}

func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = search.NewRand(0)
	}
	return cfg
}

// WithRand sets the source used for switches and random block choice.
// Panics on nil. Default: search.NewRand(0).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sts: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed is WithRand(search.NewRand(seed)).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = search.NewRand(seed) }
}

// WithRandomBlocks draws live blocks at random instead of lowest-first.
func WithRandomBlocks() Option {
	return func(c *config) { c.randomBlocks = true }
}

// WithObserver calls fn after every add and every switch. Panics on nil.
func WithObserver(fn func(Event)) Option {
	if fn == nil {
		panic("sts: WithObserver(nil)")
	}
	return func(c *config) { c.observer = fn }
}

// WithSearch forwards driver options to search.Run.
func WithSearch(opts ...search.Option) Option {
	return func(c *config) { c.searchOpts = append(c.searchOpts, opts...) }
}
