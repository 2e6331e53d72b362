package kitten

import (
	"errors"

	"github.com/katalvlaran/catkit/category"
)

// ErrCompositionMismatch reports ComposeFunctors(f, g) where the target
// category of f is not the same category value as the source of g.
var ErrCompositionMismatch = errors.New("kitten: codomain category of f does not match domain category of g")

// Identity returns the identity functor on c: both mappings return their
// argument unchanged, and the functor's source and target are c itself.
// Fails with category.ErrNilCategory when c is nil.
func Identity(c *category.Box) (*category.FunctorBox, error) {
	if c == nil {
		return nil, category.ErrNilCategory
	}

	// One shared closure serves both mappings; identity has no per-level state.
	echo := func(v any) (any, error) { return v, nil }

	return category.NewFunctorBox(c, c, echo, echo)
}

// ComposeFunctors returns the functor "first f, then g".
//
// Requires Codom(f).Same(Dom(g)); fails with ErrCompositionMismatch
// otherwise. The result holds references to f and g and evaluates
// g.ObMap(f.ObMap(x)) (and likewise for HomMap) lazily on each call, so
// composing is O(1) and the constituents are shared, never copied.
//
// When f and g individually preserve identities and composition, so does
// the composite; the property tests exercise this closure on concrete
// functor chains.
func ComposeFunctors(f, g *category.FunctorBox) (*category.FunctorBox, error) {
	if f == nil || g == nil {
		return nil, category.ErrNilFunctor
	}
	if !f.Codom().Same(g.Dom()) {
		return nil, ErrCompositionMismatch
	}

	ob := func(x any) (any, error) {
		mid, err := f.ObMap(x)
		if err != nil {
			return nil, err
		}

		return g.ObMap(mid)
	}
	hom := func(h any) (any, error) {
		mid, err := f.HomMap(h)
		if err != nil {
			return nil, err
		}

		return g.HomMap(mid)
	}

	return category.NewFunctorBox(f.Dom(), g.Codom(), ob, hom)
}

// Cat is the category of (boxed) categories: objects are *category.Box
// values, morphisms are *category.FunctorBox values. Stateless; the zero
// value is the canonical singleton.
type Cat struct{}

var _ category.Category[*category.Box, *category.FunctorBox] = Cat{}

// Dom returns the source category of f (nil for a nil functor).
func (Cat) Dom(f *category.FunctorBox) *category.Box {
	if f == nil {
		return nil
	}

	return f.Dom()
}

// Codom returns the target category of f (nil for a nil functor).
func (Cat) Codom(f *category.FunctorBox) *category.Box {
	if f == nil {
		return nil
	}

	return f.Codom()
}

// Compose delegates to ComposeFunctors.
func (Cat) Compose(f, g *category.FunctorBox) (*category.FunctorBox, error) {
	return ComposeFunctors(f, g)
}

// ID delegates to Identity.
func (Cat) ID(c *category.Box) (*category.FunctorBox, error) {
	return Identity(c)
}
