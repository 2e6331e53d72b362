package finset

// Function is a total function between two finite sets. It owns its domain,
// codomain and mapping table; all three are fixed at construction.
//
// The zero value is the empty function between empty sets.
type Function[E comparable] struct {
	dom   Set[E]
	codom Set[E]
	table map[E]E
}

// NewFunction validates and builds a total function dom → codom from the
// given mapping table.
//
// Validation (fail-fast, in order):
//  1. every table key must belong to dom (ErrSpuriousKey),
//  2. every domain element must have an entry (ErrNotTotal),
//  3. every table value must belong to codom (ErrNotIntoCodomain).
//
// The table is copied; later mutation of the argument does not affect the
// function. Complexity: O(dom.Len()).
func NewFunction[E comparable](dom, codom Set[E], table map[E]E) (Function[E], error) {
	for k := range table {
		if !dom.Contains(k) {
			return Function[E]{}, ErrSpuriousKey
		}
	}
	owned := make(map[E]E, dom.Len())
	for _, x := range dom.elems {
		y, ok := table[x]
		if !ok {
			return Function[E]{}, ErrNotTotal
		}
		if !codom.Contains(y) {
			return Function[E]{}, ErrNotIntoCodomain
		}
		owned[x] = y
	}

	return Function[E]{dom: dom, codom: codom, table: owned}, nil
}

// Dom returns the domain set. Stable for the lifetime of the function.
func (f Function[E]) Dom() Set[E] {
	return f.dom
}

// Codom returns the codomain set. Stable for the lifetime of the function.
func (f Function[E]) Codom() Set[E] {
	return f.codom
}

// At evaluates the function at x.
// Fails with ErrKeyNotFound when x is outside the domain.
func (f Function[E]) At(x E) (E, error) {
	y, ok := f.table[x]
	if !ok {
		var zero E

		return zero, ErrKeyNotFound
	}

	return y, nil
}

// Equal reports extensional equality: equal domain, equal codomain, and
// pointwise equal mapping. Complexity: O(dom.Len()).
func (f Function[E]) Equal(o Function[E]) bool {
	if !f.dom.Equal(o.dom) || !f.codom.Equal(o.codom) {
		return false
	}
	for x, y := range f.table {
		if oy, ok := o.table[x]; !ok || oy != y {
			return false
		}
	}

	return true
}
