// SPDX-License-Identifier: MIT
package anneal

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a Config field outside its domain.
var ErrInvalidConfig = errors.New("anneal: invalid config")

// ErrInvalidInstance indicates negative weights, profits or capacity.
var ErrInvalidInstance = errors.New("anneal: invalid knapsack instance")

// Config holds the cooling schedule.
type Config struct {
	Temperature   float64 // initial temperature, > 0
	CoolingRate   float64 // multiplicative factor, in (0,1)
	MaxIterations int     // ≥ 1
	LogEvery      int     // progress line period; 0 disables
}

// DefaultConfig returns T=1000, cooling 0.996, 1000 iterations, a progress
// line every 100 iterations.
func DefaultConfig() Config {
	return Config{
		Temperature:   1000,
		CoolingRate:   0.996,
		MaxIterations: 1000,
		LogEvery:      100,
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Temperature <= 0 {
		return fmt.Errorf("Temperature=%g must be > 0: %w", c.Temperature, ErrInvalidConfig)
	}
	if c.CoolingRate <= 0 || c.CoolingRate >= 1 {
		return fmt.Errorf("CoolingRate=%g must be in (0,1): %w", c.CoolingRate, ErrInvalidConfig)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("MaxIterations=%d must be ≥ 1: %w", c.MaxIterations, ErrInvalidConfig)
	}
	if c.LogEvery < 0 {
		return fmt.Errorf("LogEvery=%d must be ≥ 0: %w", c.LogEvery, ErrInvalidConfig)
	}
	return nil
}
