// Package kitten closes the loop: it makes "categories and functors"
// itself a category.
//
// What:
//
//   - Identity(c) — the identity functor on a boxed category c
//     (ObMap and HomMap are the identity mappings, Dom = Codom = c).
//   - ComposeFunctors(f, g) — the composite functor "first f, then g",
//     evaluated lazily per call; requires Codom(f) to be the same category
//     value as Dom(g).
//   - Cat — the category whose objects are *category.Box values and whose
//     morphisms are *category.FunctorBox values, with Compose and ID wired
//     to the two constructions above. The zero value is ready to use.
//
// Why:
//
//	On their own, Category and Functor are an incomplete structure: functors
//	map between categories but are not morphisms of anything. Cat is the
//	fixed point that completes it — functors become the morphisms of a
//	category whose objects are categories, and the identity and
//	associativity laws hold for them the way they hold everywhere else.
//
// Scope:
//
//	Cat models the category of categories expressible as boxed handles in
//	this library, not the category of all small categories.
//
// Composed functors share their two constituents by reference; a functor
// may participate in any number of compositions without duplication, and
// each ObMap/HomMap call walks the chain afresh (no precomputed tables).
//
// Errors:
//
//   - ErrCompositionMismatch: ComposeFunctors(f, g) where Codom(f) and
//     Dom(g) are not the same category value.
//   - category.ErrNilCategory / category.ErrNilFunctor: nil handles.
//
// Complexity: Identity and ComposeFunctors are O(1); a composed functor's
// ObMap/HomMap cost is the sum of its constituents' costs.
package kitten
