package gls_test

import (
	"testing"

	"github.com/katalvlaran/glsearch/gls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rectangle2x1 is a 2×1 rectangle: two long sides of length 2, two short of length 1.
func rectangle2x1() []gls.City {
	return []gls.City{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 1}}
}

func TestUtilities_LengthOverOnePlusPenalty(t *testing.T) {
	cities := rectangle2x1()
	p := gls.NewPenaltyTable(4)
	p.Increment(0, 1)
	p.Increment(0, 1)
	p.Increment(1, 2)

	u := gls.Utilities(cities, gls.Tour{0, 1, 2, 3}, p)
	require.Len(t, u, 4)
	assert.InDelta(t, 2.0/3.0, u[0], absTol) // 0-1: 2/(1+2)
	assert.InDelta(t, 0.5, u[1], absTol)     // 1-2: 1/(1+1)
	assert.InDelta(t, 2.0, u[2], absTol)     // 2-3: 2/1
	assert.InDelta(t, 1.0, u[3], absTol)     // 3-0: 1/1
}

// TestUtilities_ClosingEdgeUsesFirstTourCity checks that the last position
// describes the edge back to tour[0], not to city 0.
func TestUtilities_ClosingEdgeUsesFirstTourCity(t *testing.T) {
	cities := rectangle2x1()
	u := gls.Utilities(cities, gls.Tour{2, 3, 0, 1}, gls.NewPenaltyTable(4))
	assert.InDelta(t, 1.0, u[3], absTol, "closing edge 1→2 has length 1")
}

// TestUpdatePenalties_TieFanOut: two edges of equal length and equal penalty
// both receive the increment in the same update.
func TestUpdatePenalties_TieFanOut(t *testing.T) {
	cities := rectangle2x1()
	tour := gls.Tour{0, 1, 2, 3}
	for name, p := range tables(4) {
		t.Run(name, func(t *testing.T) {
			u := gls.Utilities(cities, tour, p)
			n := gls.UpdatePenalties(p, tour, u, gls.DefaultTieEpsilon)

			assert.Equal(t, 2, n)
			assert.Equal(t, 1.0, p.At(0, 1))
			assert.Equal(t, 1.0, p.At(3, 2))
			assert.Equal(t, 0.0, p.At(1, 2))
			assert.Equal(t, 0.0, p.At(0, 3))

			// Long sides now score 2/2 = 1, the same as the short ones: all four tie.
			u = gls.Utilities(cities, tour, p)
			n = gls.UpdatePenalties(p, tour, u, gls.DefaultTieEpsilon)
			assert.Equal(t, 4, n)
			assert.Equal(t, 2.0, p.At(1, 0))
			assert.Equal(t, 1.0, p.At(2, 1))
		})
	}
}

func TestUpdatePenalties_Epsilon(t *testing.T) {
	tour := gls.Tour{0, 1, 2, 3}
	u := []float64{1, 1 + 1e-9, 0.5, 1 - 1e-3}

	p := gls.NewPenaltyTable(4)
	assert.Equal(t, 2, gls.UpdatePenalties(p, tour, u, gls.DefaultTieEpsilon), "within epsilon both count")
	assert.Equal(t, 1.0, p.At(0, 1))
	assert.Equal(t, 1.0, p.At(1, 2))

	p = gls.NewPenaltyTable(4)
	assert.Equal(t, 1, gls.UpdatePenalties(p, tour, u, 0), "exact match only")
	assert.Equal(t, 0.0, p.At(0, 1))
	assert.Equal(t, 1.0, p.At(1, 2))
}

func TestUpdatePenalties_PanicsOnLengthMismatch(t *testing.T) {
	p := gls.NewPenaltyTable(4)
	assert.Panics(t, func() { gls.UpdatePenalties(p, gls.Tour{0, 1, 2, 3}, []float64{1, 2}, 0) })
	assert.Panics(t, func() { gls.UpdatePenalties(p, nil, nil, 0) })
}
