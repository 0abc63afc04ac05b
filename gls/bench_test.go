// Package gls_test - benchmarks for the GLS building blocks and the full search.
//
// Policy:
//   - Deterministic instances (scatter with fixed seeds).
//   - Inputs are built outside the timer; only the algorithmic core is measured.
package gls_test

import (
	"testing"

	"github.com/katalvlaran/glsearch/gls"
)

func BenchmarkAugmentedCost_n100(b *testing.B) {
	cities := scatter(100, seedDet)
	tour := gls.RandomTour(len(cities), gls.NewRand(seedDet))
	p := gls.NewPenaltyTable(len(cities))
	b.ReportAllocs()
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		_, _ = gls.AugmentedCost(cities, tour, p, 0.3)
	}
}

func BenchmarkStochasticTwoOpt_n100(b *testing.B) {
	rng := gls.NewRand(seedDet)
	tour := gls.RandomTour(100, rng)
	b.ReportAllocs()
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		_ = gls.StochasticTwoOpt(tour, rng)
	}
}

func benchmarkSearch(b *testing.B, n int, opts ...gls.Option) {
	cities := scatter(n, seedDet)
	opts = append(opts, gls.WithSeed(seedDet))
	b.ReportAllocs()
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		if _, err := gls.Search(cities, 20, 20, 0.3, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Dense_n52(b *testing.B)  { benchmarkSearch(b, 52) }
func BenchmarkSearch_Sparse_n52(b *testing.B) { benchmarkSearch(b, 52, gls.WithSparsePenalties()) }
func BenchmarkSearch_Dense_n200(b *testing.B) { benchmarkSearch(b, 200) }
