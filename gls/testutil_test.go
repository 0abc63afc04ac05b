// Package gls_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package gls_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/glsearch/gls"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is a deterministic seed for every random component.
	seedDet = int64(42)

	// relTol is the relative tolerance for cost consistency checks.
	relTol = 1e-5

	// absTol is the absolute tolerance for near-zero comparisons.
	absTol = 1e-9
)

// Repeat runs fn n times; used to lock determinism.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// unitSquare returns the corners of the unit square in boundary order.
func unitSquare() []gls.City {
	return []gls.City{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// rippledCircle places n cities on a circle with a small deterministic radial
// ripple so that edge lengths are pairwise distinct.
func rippledCircle(n int) []gls.City {
	out := make([]gls.City, n)
	var (
		i  int
		th float64
		r  float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 10 + 0.25*float64((i*5)%7)
		out[i] = gls.City{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}
	return out
}

// scatter returns n pseudo-random cities in [0,100)² from a fixed seed.
func scatter(n int, seed int64) []gls.City {
	rng := gls.NewRand(seed)
	out := make([]gls.City, n)
	var i int
	for i = range out {
		out[i] = gls.City{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	return out
}

// requirePermutation asserts that tour is a bijection over 0..n-1.
func requirePermutation(t *testing.T, tour gls.Tour, n int) {
	t.Helper()
	require.NoError(t, gls.ValidatePermutation(tour, n), "tour %v", tour)
}

// requireCostConsistent asserts that c.RawCost equals an independent sum of
// cyclic edge lengths.
func requireCostConsistent(t *testing.T, cities []gls.City, c gls.Candidate) {
	t.Helper()
	want := gls.TourLength(cities, c.Tour)
	require.InEpsilon(t, want, c.RawCost, relTol, "raw cost drifted from tour length")
}

// reversedSegment locates the single contiguous difference between a and b
// and reports its bounds [lo, hi) and whether b[lo:hi] is a's segment reversed.
func reversedSegment(a, b gls.Tour) (lo, hi int, ok bool) {
	lo = 0
	for lo < len(a) && a[lo] == b[lo] {
		lo++
	}
	if lo == len(a) {
		return 0, 0, false
	}
	hi = len(a)
	for hi > lo && a[hi-1] == b[hi-1] {
		hi--
	}
	var i int
	for i = lo; i < hi; i++ {
		if a[i] != b[hi-1-(i-lo)] {
			return lo, hi, false
		}
	}
	return lo, hi, true
}

// scriptedRand replays a fixed sequence of Intn results.
type scriptedRand struct {
	vals []int
	pos  int
}

func (s *scriptedRand) Intn(n int) int {
	if s.pos >= len(s.vals) {
		panic("scriptedRand: script exhausted")
	}
	v := s.vals[s.pos]
	s.pos++
	if v < 0 || v >= n {
		panic("scriptedRand: scripted value out of range")
	}
	return v
}
