// Package gls - augmented cost evaluation.
//
// AugmentedCost walks the n cyclic edges of a tour once and returns both
// the raw geometric length and the penalty-weighted acceptance cost.
// Pairs are canonicalized (c1 < c2) before the table lookup.
//
// Design:
//   - Deterministic and side-effect free.
//   - Dimension mismatches are programmer errors and panic.
//
// Complexity:
//   - O(n) time, O(1) extra space.
package gls

import "fmt"

// AugmentedCost returns, for tour over cities:
//
//	raw       = Σ length(e)
//	augmented = Σ length(e) · λ · penalty(e)
//
// The augmented sum intentionally carries no raw-cost base term; with
// lambda == 0 it is exactly 0 for every tour.
func AugmentedCost(cities []City, tour Tour, penalties *PenaltyTable, lambda float64) (raw, augmented float64) {
	mustMatch(cities, tour, penalties)

	var (
		n      = len(tour)
		i      int
		c1, c2 int
		d      float64
	)
	for i = 0; i < n; i++ {
		c1 = tour[i]
		c2 = tour[(i+1)%n]
		if c2 < c1 {
			c1, c2 = c2, c1
		}
		d = Distance(cities[c1], cities[c2])
		raw += d
		augmented += d * (lambda * penalties.At(c1, c2))
	}
	return raw, augmented
}

// mustMatch enforces len(cities) == len(tour) == penalties.Size().
func mustMatch(cities []City, tour Tour, penalties *PenaltyTable) {
	if penalties == nil {
		panic("gls: nil penalty table")
	}
	if len(cities) != len(tour) || len(tour) != penalties.Size() {
		panic(fmt.Sprintf("gls: dimension mismatch: %d cities, tour of %d, penalty table for %d",
			len(cities), len(tour), penalties.Size()))
	}
}

// Evaluator bundles everything needed to cost a tour under the current
// penalty landscape.
type Evaluator struct {
	Cities    []City
	Penalties *PenaltyTable
	Lambda    float64
	Objective Objective
}

// Evaluate returns (raw, augmented) for tour under e.Objective.
//
//   - PenaltyOnly: AugmentedCost as is.
//   - Canonical:   raw + λ·Σ penalty(e), computed in the same single pass.
func (e Evaluator) Evaluate(tour Tour) (raw, augmented float64) {
	if e.Objective != Canonical {
		return AugmentedCost(e.Cities, tour, e.Penalties, e.Lambda)
	}

	mustMatch(e.Cities, tour, e.Penalties)
	var (
		n   = len(tour)
		i   int
		pen float64
	)
	for i = 0; i < n; i++ {
		raw += Distance(e.Cities[tour[i]], e.Cities[tour[(i+1)%n]])
		pen += e.Penalties.At(tour[i], tour[(i+1)%n])
	}
	return raw, raw + e.Lambda*pen
}

// Refresh recomputes c's costs from its tour.
func (e Evaluator) Refresh(c *Candidate) {
	c.RawCost, c.AugmentedCost = e.Evaluate(c.Tour)
}
