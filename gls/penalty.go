// Package gls - penalty table.
//
// A PenaltyTable maps an unordered city pair to its accumulated penalty.
// Contract (both storages):
//   - Symmetric: At(a, b) == At(b, a).
//   - Non-negative and non-decreasing: the only mutation is Increment.
//   - Sized once for n cities; indices outside [0, n) panic.
//
// Dense storage uses a gonum SymDense, which keeps a single upper triangle
// and is symmetric by construction. Sparse storage is a map keyed by the
// canonical Edge and only holds penalized pairs.
package gls

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PenaltyTable is the symmetric penalty store owned by one Search call.
type PenaltyTable struct {
	n      int
	dense  *mat.SymDense
	sparse map[Edge]float64
}

// NewPenaltyTable returns a dense all-zero table for n cities.
// Panics if n < 1.
//
// Complexity: O(n²) memory.
func NewPenaltyTable(n int) *PenaltyTable {
	if n < 1 {
		panic(fmt.Sprintf("gls: NewPenaltyTable: n must be positive, got %d", n))
	}
	return &PenaltyTable{n: n, dense: mat.NewSymDense(n, nil)}
}

// NewSparsePenaltyTable returns a map-backed all-zero table for n cities.
// Panics if n < 1.
func NewSparsePenaltyTable(n int) *PenaltyTable {
	if n < 1 {
		panic(fmt.Sprintf("gls: NewSparsePenaltyTable: n must be positive, got %d", n))
	}
	return &PenaltyTable{n: n, sparse: make(map[Edge]float64)}
}

// Size returns the number of cities the table was built for.
func (p *PenaltyTable) Size() int { return p.n }

// Sparse reports whether the table uses map storage.
func (p *PenaltyTable) Sparse() bool { return p.sparse != nil }

func (p *PenaltyTable) mustIndex(a, b int) {
	if a < 0 || a >= p.n || b < 0 || b >= p.n {
		panic(fmt.Sprintf("gls: penalty index (%d,%d) out of range for %d cities", a, b, p.n))
	}
}

// At returns the penalty of the unordered pair {a, b}.
//
// Complexity: O(1).
func (p *PenaltyTable) At(a, b int) float64 {
	p.mustIndex(a, b)
	if p.sparse != nil {
		return p.sparse[MakeEdge(a, b)]
	}
	return p.dense.At(a, b)
}

// Increment adds 1.0 to the penalty of the unordered pair {a, b}.
func (p *PenaltyTable) Increment(a, b int) {
	p.mustIndex(a, b)
	if p.sparse != nil {
		p.sparse[MakeEdge(a, b)]++
		return
	}
	p.dense.SetSym(a, b, p.dense.At(a, b)+1)
}

// Penalized returns the number of pairs {a, b} with a non-zero penalty.
//
// Complexity: O(1) sparse, O(n²) dense.
func (p *PenaltyTable) Penalized() int {
	if p.sparse != nil {
		return len(p.sparse)
	}
	var (
		count int
		a, b  int
	)
	for a = 0; a < p.n; a++ {
		for b = a; b < p.n; b++ {
			if p.dense.At(a, b) != 0 {
				count++
			}
		}
	}
	return count
}

// Clone returns an independent copy with the same storage kind.
func (p *PenaltyTable) Clone() *PenaltyTable {
	if p.sparse != nil {
		cp := make(map[Edge]float64, len(p.sparse))
		var (
			e Edge
			v float64
		)
		for e, v = range p.sparse {
			cp[e] = v
		}
		return &PenaltyTable{n: p.n, sparse: cp}
	}
	d := mat.NewSymDense(p.n, nil)
	d.CopySym(p.dense)
	return &PenaltyTable{n: p.n, dense: d}
}
