// Package gls - tour utilities.
//
// Compact helpers that operate purely on tour structure (index sequences),
// without touching coordinates or penalties:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - CopyTour: independent copy of a tour.
//   - reverseSegment: in-place half-open segment reversal (2-opt core).
//   - EqualToursModuloRotation: same cyclic order, same direction.
//   - DebugString: compact printable representation.
package gls

import (
	"strconv"
	"strings"
)

// ValidatePermutation checks that t is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(t Tour, n int) error {
	if n <= 0 || len(t) != n {
		return ErrNotPermutation
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = t[i]
		if v < 0 || v >= n || seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}
	return nil
}

// CopyTour returns an independent copy of t.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(t Tour) Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)
	return out
}

// reverseSegment reverses t[i:k] in place (half-open).
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegment(t Tour, i, k int) {
	for k--; i < k; i, k = i+1, k-1 {
		t[i], t[k] = t[k], t[i]
	}
}

// EqualToursModuloRotation reports whether a and b visit the same cyclic
// order in the same direction, regardless of the starting position.
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b Tour) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}
	p := -1
	var j int
	for j = 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}
	var i int
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}
	return true
}

// DebugString returns a compact printable representation, e.g. "[0 3 1 2 ↺]"
// where the arrow marks the implicit closing edge.
func DebugString(t Tour) string {
	var sb strings.Builder
	sb.WriteByte('[')
	var i int
	for i = range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(t[i]))
	}
	if len(t) > 0 {
		sb.WriteString(" ↺")
	}
	sb.WriteByte(']')
	return sb.String()
}
