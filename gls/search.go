// Package gls - the Guided Local Search controller.
//
// Search owns the PenaltyTable for the lifetime of one call. Control flow is
// strictly nested:
//
//	outer iteration → LocalSearch (bounded by noImproveLimit)
//	                → Utilities + UpdatePenalties
//	                → best tracking on raw cost
//
// There is no convergence detection: the full iterLimit budget always runs,
// unless the caller cancels the context supplied via WithContext.
package gls

// Search runs Guided Local Search on cities and returns the best candidate
// found, judged by RawCost.
//
// Contracts:
//   - len(cities) ≥ MinCities, all coordinates finite.
//   - iterLimit > 0, noImproveLimit > 0, lambda finite and ≥ 0.
//
// Errors: ErrNoCities, ErrTooFewCities, ErrNonFiniteCity, ErrBadIterLimit,
// ErrBadNoImproveLimit, ErrBadLambda, ErrBadTieEpsilon; ctx.Err() if the
// context is cancelled (the best candidate so far is returned with it).
//
// Complexity: O(iterLimit · n · (accepted + noImproveLimit)) time;
// O(n²) memory for the dense table.
func Search(cities []City, iterLimit, noImproveLimit int, lambda float64, opts ...Option) (Candidate, error) {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if err := validateInputs(cities, iterLimit, noImproveLimit, lambda, o); err != nil {
		return Candidate{}, err
	}

	var (
		n         = len(cities)
		rng       = resolveRand(o)
		penalties *PenaltyTable
	)
	if o.SparsePenalties {
		penalties = NewSparsePenaltyTable(n)
	} else {
		penalties = NewPenaltyTable(n)
	}
	ev := Evaluator{Cities: cities, Penalties: penalties, Lambda: lambda, Objective: o.Objective}

	var (
		current   = Candidate{Tour: RandomTour(n, rng)}
		best      Candidate
		iter      int
		accepted  int
		penalized int
		improved  bool
		utilities []float64
		onAccept  func(Candidate)
	)
	if o.OnAccept != nil {
		onAccept = func(c Candidate) { o.OnAccept(iter, c) }
	}

	for iter = 0; iter < iterLimit; iter++ {
		if err := o.Ctx.Err(); err != nil {
			return best, err
		}

		accepted = localSearch(&current, ev, noImproveLimit, rng, onAccept)
		utilities = Utilities(cities, current.Tour, penalties)
		penalized = UpdatePenalties(penalties, current.Tour, utilities, o.TieEpsilon)

		improved = iter == 0 || current.RawCost < best.RawCost
		if improved {
			best = current.Clone()
		}

		if o.OnIteration != nil {
			o.OnIteration(IterationStats{
				Iter:        iter,
				Current:     current.Clone(),
				BestRawCost: best.RawCost,
				Improved:    improved,
				Accepted:    accepted,
				Penalized:   penalized,
				Penalties:   penalties,
			})
		}
	}

	return best, nil
}

// MustSearch is like Search but panics on error.
func MustSearch(cities []City, iterLimit, noImproveLimit int, lambda float64, opts ...Option) Candidate {
	best, err := Search(cities, iterLimit, noImproveLimit, lambda, opts...)
	if err != nil {
		panic(err)
	}
	return best
}

// LambdaFromAlpha derives the penalty weight from a scale-free factor:
//
//	λ = alpha · localOptimumCost / n
//
// localOptimumCost is typically the raw cost of one plain local search, so
// that λ is on the order of a single edge length.
// Returns 0 when n ≤ 0.
func LambdaFromAlpha(alpha, localOptimumCost float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return alpha * localOptimumCost / float64(n)
}
