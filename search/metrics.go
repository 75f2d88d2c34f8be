// SPDX-License-Identifier: MIT
package search

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives run events. Implement it to export counters
// to a monitoring system; see package metrics for the Prometheus adapter.
type MetricsCollector interface {
	// RecordCommit is called after each successful commit.
	RecordCommit(problem string, gain int64)
	// RecordSwitch is called after each applied switch.
	RecordSwitch(problem string)
	// RecordRun is called once when a run terminates.
	RecordRun(problem string, status Status, iterations int, duration time.Duration)
}

// NoopMetricsCollector drops every event.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCommit(string, int64)                   {}
func (NoopMetricsCollector) RecordSwitch(string)                          {}
func (NoopMetricsCollector) RecordRun(string, Status, int, time.Duration) {}

// BasicMetricsCollector keeps in-memory totals across runs.
// Safe for concurrent use by independent runs.
type BasicMetricsCollector struct {
	Commits     atomic.Int64
	GainTotal   atomic.Int64
	Switches    atomic.Int64
	Runs        atomic.Int64
	Converged   atomic.Int64
	Iterations  atomic.Int64
	ElapsedNano atomic.Int64
}

func (b *BasicMetricsCollector) RecordCommit(_ string, gain int64) {
	b.Commits.Add(1)
	b.GainTotal.Add(gain)
}

func (b *BasicMetricsCollector) RecordSwitch(string) {
	b.Switches.Add(1)
}

func (b *BasicMetricsCollector) RecordRun(_ string, status Status, iterations int, d time.Duration) {
	b.Runs.Add(1)
	if status == StatusConverged {
		b.Converged.Add(1)
	}
	b.Iterations.Add(int64(iterations))
	b.ElapsedNano.Add(int64(d))
}
