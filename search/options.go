// SPDX-License-Identifier: MIT
// Package: gainsearch/search
//
// options.go: functional options for Run.
//
// Contract:
//   • Option constructors PANIC on meaningless inputs; Run never panics.
//   • Defaults are deterministic and need no RNG.

package search

import "fmt"

// DefaultMaxIterations is the iteration ceiling used when none is given.
const DefaultMaxIterations = 1_000_000

// DefaultProgressEvery is the default number of iterations between progress lines.
const DefaultProgressEvery = 1000

// Option customizes a run.
type Option func(*config)

type config struct {
	name          string
	maxIterations int
	progressEvery int
	logger        *Logger
	metrics       MetricsCollector
}

func newConfig(opts ...Option) config {
	cfg := config{
		name:          "run",
		maxIterations: DefaultMaxIterations,
		progressEvery: DefaultProgressEvery,
		logger:        NoopLogger(),
		metrics:       NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithName labels log lines and metrics of the run.
func WithName(name string) Option {
	if name == "" {
		panic("search: WithName(\"\")")
	}
	return func(c *config) { c.name = name }
}

// WithMaxIterations sets the iteration ceiling. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("search: WithMaxIterations(%d): must be ≥ 1", n))
	}
	return func(c *config) { c.maxIterations = n }
}

// WithProgressEvery emits a progress line every n iterations. Panics if n < 1.
func WithProgressEvery(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("search: WithProgressEvery(%d): must be ≥ 1", n))
	}
	return func(c *config) { c.progressEvery = n }
}

// WithLogger routes run logs to l. Panics on nil.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic("search: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMetrics records run events into m. Panics on nil.
func WithMetrics(m MetricsCollector) Option {
	if m == nil {
		panic("search: WithMetrics(nil)")
	}
	return func(c *config) { c.metrics = m }
}
