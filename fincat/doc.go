// Package fincat implements the category of finite ordinals: an object is
// a positive natural number n standing for the ordinal {1..n}, and a
// morphism from n to m is a total function {1..n} → {1..m} stored as an
// index table.
//
// What:
//
//   - Map — a morphism: domain ordinal, codomain ordinal and an image table
//     img where img[i-1] = f(i), validated at construction.
//   - Cat — the category over int/Map: Compose chains the tables eagerly,
//     ID(n) is the table 1↦1 .. n↦n.
//   - Indicator — the functor fincat → matcat sending n to n and a map f to
//     its n×m indicator matrix (row i has a single 1 in column f(i)). This
//     is the bridge showing two very different-looking categories related
//     by a law-preserving mapping.
//
// Why:
//
//	Finite ordinals are finite sets with the bookkeeping stripped away:
//	objects are just sizes, so the category is a skeletal cousin of finset
//	and the natural source for a linear-algebra representation.
//
// Errors:
//
//   - ErrBadOrdinal: an ordinal < 1 where a positive one is required.
//   - ErrImageLength: NewMap given an image table whose length differs from
//     the domain ordinal.
//   - ErrIndexRange: an image value outside 1..codom, or Map.At called
//     outside 1..dom.
//   - category.ErrDomainMismatch: Compose(f, g) with Codom(f) != Dom(g).
//
// Complexity: At O(1); Compose, ID and Indicator.HomMap linear in the
// table (HomMap is O(n·m) for the matrix allocation). Map values are
// immutable after construction.
package fincat
