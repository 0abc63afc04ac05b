package gls

import "fmt"

// StochasticTwoOpt returns a random 2-opt neighbor of tour.
//
// Algorithm:
//  1. Draw an anchor c1 uniformly from [0, n).
//  2. Exclude c1 and its cyclic predecessor and successor; reversing a
//     segment that starts next to the anchor would leave the cycle unchanged.
//  3. Draw c2 uniformly until it is not excluded.
//  4. Order the cut points so c1 < c2 and reverse the half-open segment [c1, c2).
//
// The input is not modified. The result differs from it by exactly one
// contiguous reversed segment of length in [2, n-2].
//
// Panics if len(tour) < MinCities.
//
// Complexity: O(n) time and space (the copy).
func StochasticTwoOpt(tour Tour, rng Rand) Tour {
	n := len(tour)
	if n < MinCities {
		panic(fmt.Sprintf("gls: StochasticTwoOpt: tour of %d cities, need at least %d", n, MinCities))
	}

	var (
		c1   = rng.Intn(n)
		prev = (c1 + n - 1) % n
		next = (c1 + 1) % n
		c2   = c1
	)
	for c2 == c1 || c2 == prev || c2 == next {
		c2 = rng.Intn(n)
	}
	if c1 > c2 {
		c1, c2 = c2, c1
	}

	out := CopyTour(tour)
	reverseSegment(out, c1, c2)
	return out
}
