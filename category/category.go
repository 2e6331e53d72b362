// Package category: core contracts.
// This file declares the Category and Functor interfaces plus the
// embeddable Unimplemented bases. Erased (boxed) handles live in box.go.

package category

// Category is the capability contract every category-like value satisfies:
// objects of type Ob, morphisms of type Hom, with projections, composition
// and identities.
//
// Contract (not enforced by the compiler, verified by property tests):
//
//   - Dom and Codom are total, side-effect-free and stable for the lifetime
//     of a morphism value.
//   - Compose(f, g) is "first f, then g" and requires Codom(f) == Dom(g);
//     implementations return ErrDomainMismatch otherwise. Composition is
//     associative wherever defined.
//   - ID(x) is the two-sided identity on x: Compose(ID(x), f) == f and
//     Compose(f, ID(y)) == f for every f : x → y.
//
// A category typically uses only a subset of its declared Ob/Hom types as
// actual objects/morphisms; values outside that subset are a caller bug and
// surface as typed errors, never panics.
//
// Implementations are expected to be immutable once constructed so that a
// single category value can be shared freely across goroutines.
type Category[Ob, Hom any] interface {
	// Dom returns the domain object of f. Total; O(1).
	Dom(f Hom) Ob

	// Codom returns the codomain object of f. Total; O(1).
	Codom(f Hom) Ob

	// Compose returns the composite "first f, then g".
	// Fails with ErrDomainMismatch when Codom(f) != Dom(g).
	Compose(f, g Hom) (Hom, error)

	// ID returns the identity morphism on x.
	ID(x Ob) (Hom, error)
}

// Functor is the capability contract for a structure-preserving mapping
// from a source category (objects SOb, morphisms SHom) to a target category
// (objects TOb, morphisms THom).
//
// Laws (documented contract, verified by property tests):
//
//	HomMap(ID(x))        == ID(ObMap(x))                 for every object x
//	HomMap(Compose(f,g)) == Compose(HomMap(f), HomMap(g)) for composable f,g
//
// The interface is parameterized by category *types* only; the actual source
// and target category *values* are recovered at the boxed level (FunctorBox
// Dom/Codom), because some categories carry runtime state beyond their type.
type Functor[SOb, SHom, TOb, THom any] interface {
	// ObMap maps an object of the source category to one of the target.
	// Total over the objects the source category actually uses.
	ObMap(x SOb) (TOb, error)

	// HomMap maps a morphism of the source category to one of the target,
	// preserving identities and composition per the functor laws.
	HomMap(f SHom) (THom, error)
}

// UnimplementedCategory is an embeddable base for forward-compatible
// Category implementations. Every fallible operation fails with
// ErrNotImplemented until the embedding type overrides it; the projections
// return zero values.
type UnimplementedCategory[Ob, Hom any] struct{}

// Dom returns the zero Ob; override in the embedding type.
func (UnimplementedCategory[Ob, Hom]) Dom(Hom) Ob {
	var zero Ob

	return zero
}

// Codom returns the zero Ob; override in the embedding type.
func (UnimplementedCategory[Ob, Hom]) Codom(Hom) Ob {
	var zero Ob

	return zero
}

// Compose fails with ErrNotImplemented; override in the embedding type.
func (UnimplementedCategory[Ob, Hom]) Compose(Hom, Hom) (Hom, error) {
	var zero Hom

	return zero, ErrNotImplemented
}

// ID fails with ErrNotImplemented; override in the embedding type.
func (UnimplementedCategory[Ob, Hom]) ID(Ob) (Hom, error) {
	var zero Hom

	return zero, ErrNotImplemented
}

// UnimplementedFunctor is the Functor counterpart of UnimplementedCategory:
// both mappings fail with ErrNotImplemented until overridden.
type UnimplementedFunctor[SOb, SHom, TOb, THom any] struct{}

// ObMap fails with ErrNotImplemented; override in the embedding type.
func (UnimplementedFunctor[SOb, SHom, TOb, THom]) ObMap(SOb) (TOb, error) {
	var zero TOb

	return zero, ErrNotImplemented
}

// HomMap fails with ErrNotImplemented; override in the embedding type.
func (UnimplementedFunctor[SOb, SHom, TOb, THom]) HomMap(SHom) (THom, error) {
	var zero THom

	return zero, ErrNotImplemented
}

// Compile-time conformance checks.
var (
	_ Category[int, string]       = UnimplementedCategory[int, string]{}
	_ Functor[int, int, int, int] = UnimplementedFunctor[int, int, int, int]{}
)
