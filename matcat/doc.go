// Package matcat implements the category of matrices: objects are positive
// natural numbers (dimensions), and a morphism from n to m is an n×m dense
// real matrix. Composition is matrix multiplication, the identity morphism
// on n is the n×n identity matrix.
//
// What:
//
//   - Dense — a row-major float64 matrix with checked accessors, Mul,
//     Clone, Equal and a Stringer for teaching output.
//   - Identity(n) — the n×n identity matrix.
//   - Cat — the category over int/( *Dense): Compose(f, g) = f·g in
//     diagrammatic order (f : n→m is n×m, g : m→k is m×k, result n×k),
//     ID(n) = Identity(n).
//
// Why:
//
//	Matrices are the second concrete category of the library and the target
//	of the fincat.Indicator functor: a total function between finite
//	ordinals becomes a 0/1 matrix, function composition becomes matrix
//	multiplication. Having both categories under the same contract is what
//	makes that functor (and its laws) testable.
//
// Morphism equality is exact float64 comparison via Dense.Equal; the
// teaching scenarios only ever produce 0/1 entries and small integer sums,
// all exactly representable.
//
// Errors:
//
//   - ErrBadShape: requested dimensions are not positive.
//   - ErrOutOfRange: an index is outside valid bounds (At/Set return this,
//     they never panic).
//   - ErrDimensionMismatch: Mul with a.Cols != b.Rows.
//   - ErrNilMatrix: a nil *Dense receiver or argument.
//   - category.ErrDomainMismatch: Cat.Compose with Codom(f) != Dom(g).
//
// Complexity: At/Set O(1); Mul O(n·m·k); everything else linear in the
// matrix size. Dense values are mutable until handed to the category layer;
// the category treats them as immutable morphisms.
package matcat
