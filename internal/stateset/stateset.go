// Package stateset provides a sparse set of small non-negative
// integers with O(1) insertion and membership testing, used over the
// NFA/DFA state-id universe by epsilon-closure computation and subset
// construction.
package stateset

import "sort"

// Set is a set of int values in [0, capacity) with O(1) insert,
// membership test, and clear, plus O(n log n) deterministic ordering
// via Sorted. Subset construction (spec §4.4) requires a canonical
// ordering so that discovered DFA states are reproducible.
type Set struct {
	sparse []int
	dense  []int
	size   int
}

// New creates a Set over the universe [0, capacity).
func New(capacity int) *Set {
	return &Set{
		sparse: make([]int, capacity),
		dense:  make([]int, 0, capacity),
	}
}

// Add inserts value into the set. A no-op if already present.
func (s *Set) Add(value int) {
	if s.Contains(value) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether value is a member.
func (s *Set) Contains(value int) bool {
	if value < 0 || value >= len(s.sparse) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Len returns the number of elements.
func (s *Set) Len() int { return s.size }

// Clear empties the set in O(1).
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Values returns the members in unspecified (insertion-derived) order.
// The returned slice aliases internal storage and is valid until the
// next mutation.
func (s *Set) Values() []int {
	return s.dense[:s.size]
}

// Sorted returns the members sorted ascending, the canonical form used
// for ε-closure results and subset-map keys.
func (s *Set) Sorted() []int {
	out := make([]int, s.size)
	copy(out, s.dense[:s.size])
	sort.Ints(out)
	return out
}
