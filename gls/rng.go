// Package gls - RNG utilities.
//
// This file centralizes random generation for the search.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a Rand across goroutines.
//   - Use DeriveRand to create independent streams for independent runs.
package gls

import "math/rand"

// Rand is the only capability the search needs from a random source.
// *math/rand.Rand satisfies it, as do most third-party generators.
type Rand interface {
	Intn(n int) int
}

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer, so consecutive stream ids give uncorrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRand creates an independent deterministic stream from base and a
// stream id. If base==nil, defaultRNGSeed is the parent; otherwise base.Int63()
// is consumed once so that reusing a stream id still yields a fresh child.
//
// Call it during setup, not in hot loops.
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// resolveRand picks the generator for one Search call.
func resolveRand(o Options) Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return NewRand(o.Seed)
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// RandomTour returns a uniformly random permutation of 0..n-1 drawn from rng.
//
// Complexity: O(n) time, O(n) space.
func RandomTour(n int, rng Rand) Tour {
	if n < 0 {
		panic("gls: RandomTour: n must be non-negative")
	}
	t := make(Tour, n)
	var i int
	for i = 0; i < n; i++ {
		t[i] = i
	}
	shuffleInPlace(t, rng)
	return t
}
