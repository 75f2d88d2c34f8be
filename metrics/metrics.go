// SPDX-License-Identifier: MIT

// Package metrics exports search run events to Prometheus.
//
// Collector implements search.MetricsCollector. Every series carries a
// "problem" label taken from search.WithName, so one Collector can serve
// many heuristics and many concurrent runs.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gainsearch/search"
)

// Namespace prefixes every metric name.
const Namespace = "gainsearch"

// ErrNilRegisterer is returned by Register when no registerer is given.
var ErrNilRegisterer = errors.New("metrics: nil registerer")

// Collector holds the Prometheus vectors fed by search.Run.
type Collector struct {
	commits    *prometheus.CounterVec
	gain       *prometheus.CounterVec
	switches   *prometheus.CounterVec
	runs       *prometheus.CounterVec
	iterations *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

var _ search.MetricsCollector = (*Collector)(nil)

// NewCollector builds an unregistered Collector.
func NewCollector() *Collector {
	return &Collector{
		commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "commits_total",
			Help:      "Committed candidates.",
		}, []string{"problem"}),
		gain: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "gain_total",
			Help:      "Sum of non-negative gains of committed candidates.",
		}, []string{"problem"}),
		switches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "switches_total",
			Help:      "Applied switch moves.",
		}, []string{"problem"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Finished runs by terminal status.",
		}, []string{"problem", "status"}),
		iterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_iterations",
			Help:      "Iterations per finished run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"problem"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time per finished run.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"problem"}),
	}
}

// Register adds every vector to reg. A partial failure leaves the vectors
// registered so far in place.
func (c *Collector) Register(reg prometheus.Registerer) error {
	if reg == nil {
		return ErrNilRegisterer
	}
	for _, col := range c.collectors() {
		if err := reg.Register(col); err != nil {
			return fmt.Errorf("Register: %w", err)
		}
	}
	return nil
}

// MustRegister is Register that panics on failure.
func (c *Collector) MustRegister(reg prometheus.Registerer) {
	if err := c.Register(reg); err != nil {
		panic(err)
	}
}

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{c.commits, c.gain, c.switches, c.runs, c.iterations, c.duration}
}

// RecordCommit counts one commit. Non-positive gains are not added to the
// gain counter, which must stay monotonic.
func (c *Collector) RecordCommit(problem string, gain int64) {
	c.commits.WithLabelValues(problem).Inc()
	if gain > 0 {
		c.gain.WithLabelValues(problem).Add(float64(gain))
	}
}

// RecordSwitch counts one applied switch.
func (c *Collector) RecordSwitch(problem string) {
	c.switches.WithLabelValues(problem).Inc()
}

// RecordRun counts a finished run and observes its size and duration.
func (c *Collector) RecordRun(problem string, status search.Status, iterations int, d time.Duration) {
	c.runs.WithLabelValues(problem, status.String()).Inc()
	c.iterations.WithLabelValues(problem).Observe(float64(iterations))
	c.duration.WithLabelValues(problem).Observe(d.Seconds())
}
