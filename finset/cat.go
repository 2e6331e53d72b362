package finset

import "github.com/katalvlaran/catkit/category"

// Cat is the category of finite sets over element type E: objects are
// Set[E] values, morphisms are Function[E] values. Stateless; the zero
// value is the canonical singleton.
type Cat[E comparable] struct{}

var _ category.Category[Set[int], Function[int]] = Cat[int]{}

// Dom returns f's domain set.
func (Cat[E]) Dom(f Function[E]) Set[E] {
	return f.dom
}

// Codom returns f's codomain set.
func (Cat[E]) Codom(f Function[E]) Set[E] {
	return f.codom
}

// Compose returns "first f, then g": the function f.Dom() → g.Codom() with
// table x ↦ g(f(x)), computed eagerly for every x in f's domain.
//
// Fails with category.ErrDomainMismatch unless Codom(f) is extensionally
// equal to Dom(g). Complexity: O(f.Dom().Len()).
func (Cat[E]) Compose(f, g Function[E]) (Function[E], error) {
	if !f.codom.Equal(g.dom) {
		return Function[E]{}, category.ErrDomainMismatch
	}

	table := make(map[E]E, len(f.table))
	for _, x := range f.dom.elems {
		// Both lookups stay inside validated domains; errors here would mean
		// a broken Function invariant, and are propagated rather than hidden.
		y, err := f.At(x)
		if err != nil {
			return Function[E]{}, err
		}
		z, err := g.At(y)
		if err != nil {
			return Function[E]{}, err
		}
		table[x] = z
	}

	return Function[E]{dom: f.dom, codom: g.codom, table: table}, nil
}

// ID returns the identity function on x: table e ↦ e for every e in x.
// Complexity: O(x.Len()).
func (Cat[E]) ID(x Set[E]) (Function[E], error) {
	table := make(map[E]E, x.Len())
	for _, e := range x.elems {
		table[e] = e
	}

	return Function[E]{dom: x, codom: x, table: table}, nil
}
