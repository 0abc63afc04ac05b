// Package gls - feature utilities and the penalty update rule.
//
// The "features" of a tour are its edges. The utility of an edge is
//
//	util(e) = length(e) / (1 + penalty(e))
//
// so long edges that have not been penalized much yet are the most useful
// to penalize next. Every edge whose utility equals the maximum (within the
// tie epsilon) receives +1 in the same update: ties fan out.
package gls

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Utilities returns one utility per tour position; position i describes the
// edge (tour[i], tour[(i+1)%n]).
//
// Complexity: O(n) time, O(n) space.
func Utilities(cities []City, tour Tour, penalties *PenaltyTable) []float64 {
	mustMatch(cities, tour, penalties)

	var (
		n      = len(tour)
		out    = make([]float64, n)
		i      int
		c1, c2 int
	)
	for i = 0; i < n; i++ {
		c1 = tour[i]
		c2 = tour[(i+1)%n]
		out[i] = Distance(cities[c1], cities[c2]) / (1 + penalties.At(c1, c2))
	}
	return out
}

// UpdatePenalties increments by 1.0 the penalty of every tour edge whose
// utility is within eps of the maximum utility, and returns how many edges
// were incremented.
//
// Panics if len(utilities) != len(tour) or the tour is empty.
//
// Complexity: O(n) time.
func UpdatePenalties(penalties *PenaltyTable, tour Tour, utilities []float64, eps float64) int {
	n := len(tour)
	if n == 0 || len(utilities) != n {
		panic(fmt.Sprintf("gls: UpdatePenalties: %d utilities for tour of %d", len(utilities), n))
	}

	var (
		maxUtility = floats.Max(utilities)
		i          int
		updated    int
	)
	for i = 0; i < n; i++ {
		if math.Abs(utilities[i]-maxUtility) <= eps {
			penalties.Increment(tour[i], tour[(i+1)%n])
			updated++
		}
	}
	return updated
}
