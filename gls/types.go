// Package gls - shared types and sentinel errors.
package gls

import "errors"

// Sentinel errors returned by Search. Compare with errors.Is.
var (
	// ErrNoCities indicates an empty city list.
	ErrNoCities = errors.New("gls: city list is empty")

	// ErrTooFewCities indicates fewer than MinCities cities; 2-opt needs at least four.
	ErrTooFewCities = errors.New("gls: at least 4 cities are required")

	// ErrNonFiniteCity indicates a city coordinate that is NaN or ±Inf.
	ErrNonFiniteCity = errors.New("gls: city coordinates must be finite")

	// ErrBadIterLimit indicates a non-positive outer iteration limit.
	ErrBadIterLimit = errors.New("gls: iteration limit must be positive")

	// ErrBadNoImproveLimit indicates a non-positive local-search no-improvement limit.
	ErrBadNoImproveLimit = errors.New("gls: no-improvement limit must be positive")

	// ErrBadLambda indicates a negative or non-finite penalty weight.
	ErrBadLambda = errors.New("gls: lambda must be finite and non-negative")

	// ErrNotPermutation is returned by ValidatePermutation.
	ErrNotPermutation = errors.New("gls: tour is not a permutation of 0..n-1")

	// ErrBadTieEpsilon indicates a negative or non-finite utility tie epsilon.
	ErrBadTieEpsilon = errors.New("gls: tie epsilon must be finite and non-negative")
)

// MinCities is the smallest instance StochasticTwoOpt can mutate: the anchor,
// its two neighbors and at least one admissible second cut point.
const MinCities = 4

// City is an immutable 2D coordinate.
type City struct {
	X float64
	Y float64
}

// Tour is an open permutation of city indices 0..n-1, interpreted cyclically:
// the successor of the last element is the first. Unlike closed tours it
// does not repeat the start vertex at the end.
type Tour []int

// Edge is an unordered city pair in canonical form (A < B).
type Edge struct {
	A int
	B int
}

// MakeEdge returns the canonical form of the unordered pair {u, v}.
func MakeEdge(u, v int) Edge {
	if v < u {
		u, v = v, u
	}
	return Edge{A: u, B: v}
}

// Candidate is a tour together with its costs.
//
// RawCost is the geometric length of the cyclic tour and is the value Search
// optimizes. AugmentedCost is the penalty-derived acceptance cost used inside
// LocalSearch; it is only meaningful relative to the PenaltyTable it was
// computed against.
type Candidate struct {
	Tour          Tour
	RawCost       float64
	AugmentedCost float64
}

// Clone returns a deep copy of c; the tour is not shared.
func (c Candidate) Clone() Candidate {
	return Candidate{
		Tour:          CopyTour(c.Tour),
		RawCost:       c.RawCost,
		AugmentedCost: c.AugmentedCost,
	}
}

// IterationStats is passed to the OnIteration hook after each outer iteration.
type IterationStats struct {
	// Iter is the zero-based outer iteration index.
	Iter int

	// Current is the local optimum reached in this iteration.
	Current Candidate

	// BestRawCost is the best raw cost seen so far, including this iteration.
	BestRawCost float64

	// Improved is true when this iteration replaced the best candidate.
	Improved bool

	// Accepted counts accepted local-search moves in this iteration.
	Accepted int

	// Penalized counts edges whose penalty was incremented in this iteration.
	Penalized int

	// Penalties is the live table after the update. Hooks must not mutate it.
	Penalties *PenaltyTable
}
