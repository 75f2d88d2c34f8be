// SPDX-License-Identifier: MIT
package search

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with run-specific helpers and field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithProblem tags every line with the problem name.
func (l *Logger) WithProblem(name string) *Logger {
	return &Logger{Logger: l.Logger.With("problem", name)}
}

// WithSeed tags every line with the seed of the run.
func (l *Logger) WithSeed(seed int64) *Logger {
	return &Logger{Logger: l.Logger.With("seed", seed)}
}

// LogProgress logs a periodic progress line.
func (l *Logger) LogProgress(ctx context.Context, iteration, committed, switches int, lastGain int64) {
	l.DebugContext(ctx, "search progress",
		"iteration", iteration,
		"committed", committed,
		"switches", switches,
		"last_gain", lastGain,
	)
}

// LogSwitch logs a perturbation move.
func (l *Logger) LogSwitch(ctx context.Context, iteration int) {
	l.DebugContext(ctx, "switch applied", "iteration", iteration)
}

// LogRun logs the terminal state of a run.
func (l *Logger) LogRun(ctx context.Context, status Status, iterations, committed, switches int, err error) {
	if err != nil {
		l.WarnContext(ctx, "search stopped",
			"status", status.String(),
			"iterations", iterations,
			"committed", committed,
			"switches", switches,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "search converged",
		"iterations", iterations,
		"committed", committed,
		"switches", switches,
	)
}
