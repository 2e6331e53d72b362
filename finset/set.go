package finset

import (
	"fmt"
	"strings"
)

// Set is an immutable finite set of comparable elements.
//
// Sets are plain values compared extensionally: two sets are equal exactly
// when they contain the same elements, regardless of construction order.
// Iteration (Elems) follows the deduplicated insertion order, which is
// stable for the lifetime of the value. The zero value is the empty set.
type Set[E comparable] struct {
	elems []E            // deduplicated, insertion order
	index map[E]struct{} // membership
}

// NewSet builds a set from the given elements, dropping duplicates while
// preserving the first occurrence order.
// Complexity: O(len(elems)).
func NewSet[E comparable](elems ...E) Set[E] {
	ordered := make([]E, 0, len(elems))
	index := make(map[E]struct{}, len(elems))
	for _, e := range elems {
		if _, seen := index[e]; seen {
			continue
		}
		index[e] = struct{}{}
		ordered = append(ordered, e)
	}

	return Set[E]{elems: ordered, index: index}
}

// Len returns the number of elements. O(1).
func (s Set[E]) Len() int {
	return len(s.elems)
}

// Contains reports membership of x. O(1).
func (s Set[E]) Contains(x E) bool {
	_, ok := s.index[x]

	return ok
}

// Elems returns the elements in the set's stable iteration order.
// The returned slice is a copy; mutating it does not affect the set.
func (s Set[E]) Elems() []E {
	out := make([]E, len(s.elems))
	copy(out, s.elems)

	return out
}

// Equal reports extensional equality: same cardinality, same members.
// Complexity: O(Len).
func (s Set[E]) Equal(o Set[E]) bool {
	if len(s.elems) != len(o.elems) {
		return false
	}
	for _, e := range s.elems {
		if !o.Contains(e) {
			return false
		}
	}

	return true
}

// String renders the set as "{e1 e2 ...}" in iteration order.
func (s Set[E]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range s.elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte('}')

	return b.String()
}
