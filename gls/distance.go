package gls

import "math"

// Distance returns the Euclidean distance between a and b.
//
// Complexity: O(1).
func Distance(a, b City) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// TourLength returns the total Euclidean length of the cyclic tour over
// cities. It is the independent raw-cost oracle: AugmentedCost computes the
// same quantity in its single pass.
//
// Panics if tour indexes outside cities.
//
// Complexity: O(n).
func TourLength(cities []City, tour Tour) float64 {
	var (
		n   = len(tour)
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += Distance(cities[tour[i]], cities[tour[(i+1)%n]])
	}
	return sum
}
