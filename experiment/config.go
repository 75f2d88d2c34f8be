// SPDX-License-Identifier: MIT
package experiment

import (
	"runtime"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate and Sweep for unusable parameters.
var ErrInvalidConfig = errors.New("experiment: invalid config")

// Config describes a dominating-set sweep.
type Config struct {
	Trials   int     // number of random structures
	MinN     int     // smallest vertex count (inclusive)
	MaxN     int     // largest vertex count (inclusive)
	MinDelta int     // smallest requested minimum degree (inclusive)
	MaxDelta int     // largest requested minimum degree (inclusive), < MinN
	P        float64 // extra-edge probability
	Seed     int64   // parent seed; 0 ⇒ search.DefaultSeed
	Workers  int     // parallel trials; 0 ⇒ GOMAXPROCS
}

// DefaultConfig returns the sweep used by the command line tool.
func DefaultConfig() Config {
	return Config{
		Trials:   100,
		MinN:     10,
		MaxN:     200,
		MinDelta: 1,
		MaxDelta: 9,
		P:        0.02,
		Seed:     1,
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.Trials < 1:
		return errors.Wrapf(ErrInvalidConfig, "Trials=%d must be ≥ 1", c.Trials)
	case c.MinN < 2 || c.MaxN < c.MinN:
		return errors.Wrapf(ErrInvalidConfig, "vertex range [%d,%d] invalid", c.MinN, c.MaxN)
	case c.MinDelta < 0 || c.MaxDelta < c.MinDelta:
		return errors.Wrapf(ErrInvalidConfig, "degree range [%d,%d] invalid", c.MinDelta, c.MaxDelta)
	case c.MaxDelta > c.MinN-1:
		return errors.Wrapf(ErrInvalidConfig, "MaxDelta=%d exceeds MinN-1=%d", c.MaxDelta, c.MinN-1)
	case c.P < 0 || c.P > 1:
		return errors.Wrapf(ErrInvalidConfig, "P=%g not in [0,1]", c.P)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "Workers=%d must be ≥ 0", c.Workers)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}
