// Package category defines the two contracts everything else in catkit is
// built on: Category and Functor.
//
// What:
//
//   - Category[Ob, Hom] — a collection of objects and morphisms with
//     Dom/Codom projections, associative Compose, and identity morphisms.
//   - Functor[SOb, SHom, TOb, THom] — a structure-preserving mapping between
//     two categories (ObMap on objects, HomMap on morphisms).
//   - UnimplementedCategory / UnimplementedFunctor — embeddable bases whose
//     operations fail with ErrNotImplemented until overridden.
//   - Box / FunctorBox — fixed-size erased handles that let heterogeneous
//     categories and functors travel through one uniform type, which is what
//     makes a "category of categories" expressible at all (see kitten).
//
// Why:
//
//   - Concrete categories (finset, fincat, matcat, user-defined ones) are
//     open-ended implementers of one small interface, not a closed enum.
//   - Go's type system guides but does not certify the mathematics: the
//     hom-set membership invariant (Dom(f)==x ∧ Codom(f)==y ⇒ f ∈ Hom(x,y))
//     and the functor laws are documented contracts verified by property
//     tests, not by the compiler.
//
// Laws (documented contracts, checked in tests):
//
//   - Compose(Compose(f,g),h) == Compose(f,Compose(g,h)) whenever defined.
//   - Compose(ID(x), f) == f and Compose(f, ID(y)) == f for f : x → y.
//   - HomMap(ID(x)) == ID(ObMap(x)) and
//     HomMap(Compose(f,g)) == Compose(HomMap(f), HomMap(g)).
//
// Composition order is diagrammatic throughout catkit: Compose(f, g) means
// "first f, then g", so it requires Codom(f) == Dom(g).
//
// Errors:
//
//   - ErrNotImplemented: an embedded Unimplemented base was invoked directly.
//   - ErrDomainMismatch: Compose called with Codom(f) != Dom(g).
//   - ErrNilCategory / ErrNilFunctor: a nil handle reached a constructor.
//   - ErrForeignObject / ErrForeignMorphism: a boxed operation received a
//     value whose dynamic type does not belong to the wrapped category.
//
// All operations are pure and synchronous; every value in this package is
// immutable after construction and safe to share between goroutines.
package category
