// Package gls - input validation for Search.
//
// Deterministic, side-effect free checks returning sentinel errors from
// types.go. No panics on caller input here; panics are reserved for
// programmer errors deep inside the kernel.
package gls

import "math"

// validateInputs checks everything Search receives before any work is done.
//
// Complexity: O(n).
func validateInputs(cities []City, iterLimit, noImproveLimit int, lambda float64, o Options) error {
	if len(cities) == 0 {
		return ErrNoCities
	}
	if len(cities) < MinCities {
		return ErrTooFewCities
	}
	var i int
	for i = range cities {
		if !isFinite(cities[i].X) || !isFinite(cities[i].Y) {
			return ErrNonFiniteCity
		}
	}
	if iterLimit <= 0 {
		return ErrBadIterLimit
	}
	if noImproveLimit <= 0 {
		return ErrBadNoImproveLimit
	}
	if !isFinite(lambda) || lambda < 0 {
		return ErrBadLambda
	}
	if !isFinite(o.TieEpsilon) || o.TieEpsilon < 0 {
		return ErrBadTieEpsilon
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
