// Package gls implements Guided Local Search (GLS) for the symmetric
// Euclidean Travelling Salesman Problem.
//
// 🚀 What is GLS?
//
//	GLS escapes local optima without restarts or temperature schedules.
//	Instead it permanently biases the cost landscape: every edge that keeps
//	showing up in locally optimal tours accumulates a penalty, so the next
//	local search is pushed away from reusing it and into unexplored structure.
//
// Building blocks (leaf-first):
//
//	Distance          — Euclidean length of the edge between two cities.
//	StochasticTwoOpt  — random 2-opt neighbor: reverse one tour segment.
//	PenaltyTable      — symmetric, non-decreasing penalty per unordered city pair.
//	AugmentedCost     — raw tour length plus the penalty-weighted acceptance cost.
//	LocalSearch       — greedy hill climbing under the augmented cost.
//	Utilities / UpdatePenalties — per-edge utility, +1 penalty on the maximum (ties fan out).
//	Search            — the outer loop tying all of the above together.
//
// Augmented cost:
//
// By default the acceptance cost is the pure penalty-weighted sum
//
//	augmented = λ · Σ_edges length(e) · penalty(e)
//
// without the raw tour length as a base term. With λ = 0 the augmented cost
// is therefore always 0 and local search never accepts a move. The textbook
// formulation h(s) = g(s) + λ·Σ penalty(e) is available through
// WithObjective(Canonical).
//
// Randomness:
//
// There is no global or time-seeded generator. Every random decision draws
// from a Rand passed through the call chain (WithRand / WithSeed); the same
// seed and inputs reproduce the same sequence of accepted candidates.
//
// ⚙️ Usage:
//
//	cities := []gls.City{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
//	best, err := gls.Search(cities, 20, 10, 0.1, gls.WithSeed(42))
//	if err != nil {
//		// ErrTooFewCities, ErrBadLambda, ...
//	}
//	fmt.Println(best.Tour, best.RawCost)
//
// Complexity (n cities, I = iterLimit, L = noImproveLimit):
//
//   - One augmented evaluation: O(n).
//   - One local search: O(n · (accepted + L)) time.
//   - Utilities + penalty update: O(n) per outer iteration.
//   - Memory: O(n²) for the dense penalty table, O(#penalized edges) for the sparse one.
package gls
