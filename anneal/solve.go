// SPDX-License-Identifier: MIT
package anneal

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/gainsearch/search"
)

// Option customizes Solve.
type Option func(*options)

type options struct {
	rng    *rand.Rand
	logger *search.Logger
}

// WithRand sets the random source. Panics on nil. Default: search.NewRand(0).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("anneal: WithRand(nil)")
	}
	return func(o *options) { o.rng = r }
}

// WithLogger routes progress lines to l. Panics on nil.
func WithLogger(l *search.Logger) Option {
	if l == nil {
		panic("anneal: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// Result is the outcome of one annealing run.
type Result struct {
	Selected    []int // ascending item indices
	Value       int
	Weight      int
	BestEver    int
	History     []int
	Temperature float64 // final temperature
}

// state is the current selection as a membership mask plus totals.
type state struct {
	in     []bool
	weight int
	value  int
}

func (s *state) toggle(k Knapsack, i int) {
	if s.in[i] {
		s.weight -= k.Items[i].Weight
		s.value -= k.Items[i].Profit
	} else {
		s.weight += k.Items[i].Weight
		s.value += k.Items[i].Profit
	}
	s.in[i] = !s.in[i]
}

func (s *state) selected() []int {
	var out []int
	for i, ok := range s.in {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// Solve anneals k under cfg.
func Solve(ctx context.Context, k Knapsack, cfg Config, opts ...Option) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	if err := k.Validate(); err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	o := options{logger: search.NoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = search.NewRand(0)
	}
	rng := o.rng
	log := o.logger.WithProblem("knapsack")

	cur := initial(k, rng)
	best := cur.value
	history := make([]int, 0, cfg.MaxIterations+1)
	history = append(history, cur.value)
	temp := cfg.Temperature
	progress := rate.Sometimes{Every: max(cfg.LogEvery, 1)}
	toggles := make([]int, 0, len(k.Items))

	for it := 1; it <= cfg.MaxIterations; it++ {
		if err := ctx.Err(); err != nil {
			return result(cur, best, history, temp), fmt.Errorf("Solve: iteration %d: %w", it, err)
		}
		temp *= cfg.CoolingRate

		toggles = feasibleToggles(k, &cur, toggles[:0])
		if len(toggles) > 0 {
			i := toggles[rng.Intn(len(toggles))]
			before := cur.value
			cur.toggle(k, i)
			delta := cur.value - before
			if delta <= 0 && rng.Float64() >= math.Exp(float64(delta)/temp) {
				cur.toggle(k, i) // rejected
			}
		}
		if cur.value > best {
			best = cur.value
		}
		history = append(history, cur.value)
		if cfg.LogEvery > 0 {
			progress.Do(func() {
				log.DebugContext(ctx, "anneal progress",
					"iteration", it,
					"temperature", temp,
					"value", cur.value,
					"best_ever", best,
				)
			})
		}
	}
	return result(cur, best, history, temp), nil
}

// initial adds random items until the first one that does not fit.
func initial(k Knapsack, rng *rand.Rand) state {
	s := state{in: make([]bool, len(k.Items))}
	choices := make([]int, len(k.Items))
	for i := range choices {
		choices[i] = i
	}
	for len(choices) > 0 {
		j := rng.Intn(len(choices))
		i := choices[j]
		if s.weight+k.Items[i].Weight > k.Capacity {
			break
		}
		s.toggle(k, i)
		choices = append(choices[:j], choices[j+1:]...)
	}
	return s
}

// feasibleToggles lists every item whose toggle keeps the weight in capacity.
func feasibleToggles(k Knapsack, s *state, dst []int) []int {
	for i, it := range k.Items {
		if s.in[i] || s.weight+it.Weight <= k.Capacity {
			dst = append(dst, i)
		}
	}
	return dst
}

func result(s state, best int, history []int, temp float64) Result {
	return Result{
		Selected:    s.selected(),
		Value:       s.value,
		Weight:      s.weight,
		BestEver:    best,
		History:     history,
		Temperature: temp,
	}
}
