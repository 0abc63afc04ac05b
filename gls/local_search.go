// Package gls - local search under the augmented cost.
//
// LocalSearch is greedy stochastic hill climbing: it only ever moves to a
// neighbor with a strictly lower augmented cost, and gives up after
// noImproveLimit consecutive non-improving neighbors.
package gls

import "fmt"

// LocalSearch drives c to a local optimum under ev and returns the number of
// accepted moves. c is refreshed against ev first, then mutated in place.
//
// Loop:
//   - neighbor = StochasticTwoOpt(c.Tour)
//   - accept iff neighbor.AugmentedCost < c.AugmentedCost, resetting the counter
//   - otherwise increment the counter; stop when it reaches noImproveLimit
//
// Panics on a nil candidate, a non-positive limit, or a tour shorter than MinCities.
//
// Complexity: O(n · (accepted + noImproveLimit)) time.
func LocalSearch(c *Candidate, ev Evaluator, noImproveLimit int, rng Rand) int {
	return localSearch(c, ev, noImproveLimit, rng, nil)
}

func localSearch(c *Candidate, ev Evaluator, noImproveLimit int, rng Rand, onAccept func(Candidate)) int {
	if c == nil {
		panic("gls: LocalSearch: nil candidate")
	}
	if noImproveLimit <= 0 {
		panic(fmt.Sprintf("gls: LocalSearch: noImproveLimit must be positive, got %d", noImproveLimit))
	}

	ev.Refresh(c)

	var (
		count    int
		accepted int
		next     Candidate
	)
	for count < noImproveLimit {
		next.Tour = StochasticTwoOpt(c.Tour, rng)
		ev.Refresh(&next)
		if next.AugmentedCost < c.AugmentedCost {
			// StochasticTwoOpt always returns a fresh slice, so c may keep it.
			*c = next
			count = 0
			accepted++
			if onAccept != nil {
				onAccept(c.Clone())
			}
			continue
		}
		count++
	}
	return accepted
}
