// Package gls - functional options for Search.
package gls

import (
	"context"
	"math"
)

// DefaultTieEpsilon is the tolerance used by UpdatePenalties to decide that an
// edge utility equals the maximum. It is the single-precision machine epsilon.
const DefaultTieEpsilon = 1.1920929e-07

// Stable panic messages for invalid option arguments.
const (
	panicTieEpsilonInvalid = "gls: WithTieEpsilon: eps must be finite, non-negative"
	panicRandNil           = "gls: WithRand: rng must be non-nil"
	panicContextNil        = "gls: WithContext: ctx must be non-nil"
)

// Objective selects the augmented cost formula used for acceptance.
type Objective int

const (
	// PenaltyOnly sums length·λ·penalty over the tour edges, with no raw-cost
	// base term. This is the default.
	PenaltyOnly Objective = iota

	// Canonical adds the raw tour length: raw + λ·Σ penalty(e).
	Canonical
)

// String implements fmt.Stringer.
func (o Objective) String() string {
	switch o {
	case PenaltyOnly:
		return "penalty"
	case Canonical:
		return "canonical"
	default:
		return "unknown"
	}
}

// Options configures Search. Build it through functional options; the zero
// value is not meant to be used directly.
//
//   - Ctx             — checked once per outer iteration; default context.Background().
//   - Rand            — random source; nil means "derive from Seed".
//   - Seed            — used when Rand is nil; 0 maps to the package default seed.
//   - TieEpsilon      — utility tie tolerance (DefaultTieEpsilon).
//   - Objective       — PenaltyOnly (default) or Canonical.
//   - SparsePenalties — map-backed penalty table instead of the dense n×n one.
//   - OnAccept        — called for every accepted local-search move.
//   - OnIteration     — called after every outer iteration.
type Options struct {
	Ctx             context.Context
	Rand            Rand
	Seed            int64
	TieEpsilon      float64
	Objective       Objective
	SparsePenalties bool
	OnAccept        func(iter int, c Candidate)
	OnIteration     func(stats IterationStats)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the Options Search starts from:
//   - Background context
//   - Seed 0 (deterministic default stream), no injected Rand
//   - TieEpsilon = DefaultTieEpsilon
//   - Objective = PenaltyOnly, dense penalty table
//   - No hooks
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		TieEpsilon: DefaultTieEpsilon,
		Objective:  PenaltyOnly,
	}
}

// WithContext sets a context that can cancel Search between outer iterations.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicContextNil)
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithRand injects the random source. The caller keeps ownership; a Rand must
// not be shared by concurrent Search calls.
func WithRand(rng Rand) Option {
	if rng == nil {
		panic(panicRandNil)
	}
	return func(o *Options) { o.Rand = rng }
}

// WithSeed makes Search build its own generator from seed.
// Ignored when WithRand is also given.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithTieEpsilon overrides DefaultTieEpsilon.
func WithTieEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicTieEpsilonInvalid)
	}
	return func(o *Options) { o.TieEpsilon = eps }
}

// WithObjective selects the augmented cost formula.
func WithObjective(obj Objective) Option {
	return func(o *Options) { o.Objective = obj }
}

// WithSparsePenalties stores penalties in a map keyed by Edge instead of a
// dense symmetric matrix. Results are identical; memory scales with the
// number of penalized edges.
func WithSparsePenalties() Option {
	return func(o *Options) { o.SparsePenalties = true }
}

// WithOnAccept registers a hook fired for every accepted local-search move.
// The candidate passed in owns its tour.
func WithOnAccept(fn func(iter int, c Candidate)) Option {
	return func(o *Options) { o.OnAccept = fn }
}

// WithOnIteration registers a hook fired after every outer iteration.
func WithOnIteration(fn func(stats IterationStats)) Option {
	return func(o *Options) { o.OnIteration = fn }
}
