// Package category: erased handles.
// This file implements the boxed layer: Box wraps any typed Category behind
// four func fields, FunctorBox wraps any typed Functor behind two, so that
// heterogeneous categories and functors can be treated uniformly (the kitten
// package builds the category of categories on exactly these handles).
// The trade is deliberate: some static checking is given up in exchange for
// heterogeneity; dynamic-type violations surface as ErrForeignObject /
// ErrForeignMorphism, never as panics.

package category

import "reflect"

// Box is a fixed-size erased handle around a typed Category. It satisfies
// Category[any, any] itself, dispatching through stored closures.
//
// Equality: two boxes denote the same category when their wrapped category
// values compare equal under Go ==. Stateless singleton categories
// (zero-size struct values) therefore compare equal however often they are
// wrapped; categories held by pointer compare by identity. Wrap enforces
// that the wrapped value is comparable (ErrNotComparable otherwise), so
// Same never faces a value == would panic on — stateful categories with
// uncomparable fields are wrapped by pointer.
type Box struct {
	source  any // the wrapped category value, kept for Same
	dom     func(f any) (any, error)
	codom   func(f any) (any, error)
	compose func(f, g any) (any, error)
	id      func(x any) (any, error)
}

var _ Category[any, any] = (*Box)(nil)

// Wrap erases a typed category into a Box.
// Fails with ErrNilCategory when c is nil and ErrNotComparable when the
// category value cannot be compared with Go == (wrap such categories by
// pointer; identity is then the equality, per the Box contract).
func Wrap[Ob, Hom any](c Category[Ob, Hom]) (*Box, error) {
	if isNil(c) {
		return nil, ErrNilCategory
	}
	// Value-level check: reflect.Value.Comparable also catches interface
	// fields that happen to hold uncomparable values.
	if !reflect.ValueOf(c).Comparable() {
		return nil, ErrNotComparable
	}

	return &Box{
		source: c,
		dom: func(f any) (any, error) {
			h, ok := f.(Hom)
			if !ok {
				return nil, ErrForeignMorphism
			}

			return c.Dom(h), nil
		},
		codom: func(f any) (any, error) {
			h, ok := f.(Hom)
			if !ok {
				return nil, ErrForeignMorphism
			}

			return c.Codom(h), nil
		},
		compose: func(f, g any) (any, error) {
			hf, ok := f.(Hom)
			if !ok {
				return nil, ErrForeignMorphism
			}
			hg, ok := g.(Hom)
			if !ok {
				return nil, ErrForeignMorphism
			}

			return c.Compose(hf, hg)
		},
		id: func(x any) (any, error) {
			ox, ok := x.(Ob)
			if !ok {
				return nil, ErrForeignObject
			}

			return c.ID(ox)
		},
	}, nil
}

// Dom projects the domain object of f.
// A value that is not a morphism of the wrapped category yields nil
// (the projection signature has no error slot; use Compose/ID for checked
// entry points).
func (b *Box) Dom(f any) any {
	x, err := b.dom(f)
	if err != nil {
		return nil
	}

	return x
}

// Codom projects the codomain object of f; nil for foreign values.
func (b *Box) Codom(f any) any {
	x, err := b.codom(f)
	if err != nil {
		return nil
	}

	return x
}

// Compose delegates to the wrapped category's Compose.
// Fails with ErrForeignMorphism for values of the wrong dynamic type and
// propagates the wrapped category's own errors (ErrDomainMismatch etc.).
func (b *Box) Compose(f, g any) (any, error) {
	return b.compose(f, g)
}

// ID delegates to the wrapped category's ID.
// Fails with ErrForeignObject for values of the wrong dynamic type.
func (b *Box) ID(x any) (any, error) {
	return b.id(x)
}

// Same reports whether b and o wrap equal category values (Go ==).
// This is the "category equality" used to validate functor composability.
func (b *Box) Same(o *Box) bool {
	if b == nil || o == nil {
		return b == o
	}

	return b.source == o.source
}

// Unwrap returns the wrapped category value.
func (b *Box) Unwrap() any {
	return b.source
}

// FunctorBox is a fixed-size erased handle around a typed Functor together
// with its source and target categories as *values*. It satisfies
// Functor[any, any, any, any].
//
// A FunctorBox shares, never copies, whatever it closes over: the same
// functor may participate in any number of compositions.
type FunctorBox struct {
	src *Box
	dst *Box
	ob  func(x any) (any, error)
	hom func(f any) (any, error)
}

var _ Functor[any, any, any, any] = (*FunctorBox)(nil)

// WrapFunctor erases a typed functor into a FunctorBox with the given
// source and target boxes. The caller is responsible for src/dst actually
// being the categories f maps between; that association is a value-level
// fact the type parameters cannot express.
// Fails with ErrNilFunctor / ErrNilCategory on nil inputs.
func WrapFunctor[SOb, SHom, TOb, THom any](f Functor[SOb, SHom, TOb, THom], src, dst *Box) (*FunctorBox, error) {
	if isNil(f) {
		return nil, ErrNilFunctor
	}
	if src == nil || dst == nil {
		return nil, ErrNilCategory
	}

	return &FunctorBox{
		src: src,
		dst: dst,
		ob: func(x any) (any, error) {
			ox, ok := x.(SOb)
			if !ok {
				return nil, ErrForeignObject
			}

			return f.ObMap(ox)
		},
		hom: func(h any) (any, error) {
			sh, ok := h.(SHom)
			if !ok {
				return nil, ErrForeignMorphism
			}

			return f.HomMap(sh)
		},
	}, nil
}

// NewFunctorBox assembles a FunctorBox directly from erased mapping
// closures. This is the constructor the kitten package uses to build
// identity and composed functors without re-entering the typed layer.
// Fails with ErrNilCategory / ErrNilFunctor on nil inputs.
func NewFunctorBox(src, dst *Box, ob, hom func(any) (any, error)) (*FunctorBox, error) {
	if src == nil || dst == nil {
		return nil, ErrNilCategory
	}
	if ob == nil || hom == nil {
		return nil, ErrNilFunctor
	}

	return &FunctorBox{src: src, dst: dst, ob: ob, hom: hom}, nil
}

// Dom returns the source category value.
func (fb *FunctorBox) Dom() *Box {
	return fb.src
}

// Codom returns the target category value.
func (fb *FunctorBox) Codom() *Box {
	return fb.dst
}

// ObMap applies the object-level mapping.
func (fb *FunctorBox) ObMap(x any) (any, error) {
	return fb.ob(x)
}

// HomMap applies the morphism-level mapping.
func (fb *FunctorBox) HomMap(f any) (any, error) {
	return fb.hom(f)
}

// isNil reports whether a value of interface type holds no implementation.
// A plain == nil check is enough here: boxes are built from interface
// parameters, not from typed nil pointers hidden behind interfaces.
func isNil(v any) bool {
	return v == nil
}
