// Package category: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// category package and re-used by concrete categories for shared failure
// modes. Operations MUST return these sentinels and tests MUST check them
// via errors.Is. The public surface never panics on caller-triggered
// conditions.

package category

import "errors"

var (
	// ErrNotImplemented reports that an abstract base operation was invoked
	// without a concrete override (UnimplementedCategory/UnimplementedFunctor).
	ErrNotImplemented = errors.New("category: operation not implemented")

	// ErrDomainMismatch reports Compose(f, g) with Codom(f) != Dom(g).
	// Concrete categories (finset, fincat, matcat) return this same sentinel
	// so callers can match composition failures uniformly.
	ErrDomainMismatch = errors.New("category: codomain of f does not match domain of g")

	// ErrNilCategory reports a nil category handle passed to a constructor.
	ErrNilCategory = errors.New("category: nil category")

	// ErrNotComparable reports Wrap given a category value Go == cannot
	// compare (e.g. a struct carrying a map). Box equality (Same) is built
	// on ==, so such values are rejected up front instead of panicking on
	// the first composability check.
	ErrNotComparable = errors.New("category: category value is not comparable")

	// ErrNilFunctor reports a nil functor handle passed to a constructor.
	ErrNilFunctor = errors.New("category: nil functor")

	// ErrForeignObject reports a boxed operation given a value whose dynamic
	// type is not the wrapped category's object type.
	ErrForeignObject = errors.New("category: value is not an object of the boxed category")

	// ErrForeignMorphism reports a boxed operation given a value whose dynamic
	// type is not the wrapped category's morphism type.
	ErrForeignMorphism = errors.New("category: value is not a morphism of the boxed category")
)
