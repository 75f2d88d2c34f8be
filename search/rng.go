// SPDX-License-Identifier: MIT
// Package: gainsearch/search
//
// rng.go: deterministic random helpers shared by all heuristics.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Seed parallel trials with DeriveSeed(parent, trial) (see experiment.RunTrials).

package search

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// using the SplitMix64 finalizer.
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// ShuffleInts performs an in-place Fisher–Yates shuffle of a.
// rng==nil uses the DefaultSeed stream.
func ShuffleInts(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	if rng == nil {
		rng = NewRand(0)
	}
	var i, j int
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
