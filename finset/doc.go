// Package finset implements the category of finite sets: objects are
// finite sets of comparable elements, morphisms are total functions
// between them.
//
// What:
//
//   - Set[E] — an immutable finite set compared extensionally; iteration
//     order is the (deduplicated) insertion order and stays consistent for
//     the lifetime of the value.
//   - Function[E] — a total function owning its domain set, codomain set
//     and mapping table; evaluated with At.
//   - Cat[E] — the category over Set[E]/Function[E]: Compose builds the
//     table of x ↦ g(f(x)) eagerly, ID builds the identity table.
//
// Why:
//
//	Finite sets are the concrete category every introduction leans on: small
//	enough to enumerate, rich enough to exercise the full Category contract
//	(projections, composition, identities, mismatch rejection) end to end.
//
// Errors:
//
//   - category.ErrDomainMismatch: Compose(f, g) where Codom(f) is not
//     extensionally equal to Dom(g).
//   - ErrKeyNotFound: a Function evaluated outside its domain.
//   - ErrNotTotal / ErrNotIntoCodomain / ErrSpuriousKey: NewFunction given
//     a table that is not a total function dom → codom.
//
// Complexity: Contains/At are O(1); Equal, Compose and ID are linear in
// the sets involved. All values are immutable after construction and safe
// for concurrent sharing.
package finset
