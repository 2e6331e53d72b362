package matcat

import "github.com/katalvlaran/catkit/category"

// Cat is the category of matrices: objects are positive dimensions (int),
// a morphism from n to m is an n×m *Dense. Stateless; the zero value is
// the canonical singleton.
type Cat struct{}

var _ category.Category[int, *Dense] = Cat{}

// Dom returns f's domain dimension (its row count); 0 for nil.
func (Cat) Dom(f *Dense) int {
	if f == nil {
		return 0
	}

	return f.r
}

// Codom returns f's codomain dimension (its column count); 0 for nil.
func (Cat) Codom(f *Dense) int {
	if f == nil {
		return 0
	}

	return f.c
}

// Compose returns "first f, then g" = the matrix product f·g.
// With f : n→m as n×m and g : m→k as m×k this is the n×k composite,
// matching diagrammatic order.
//
// Fails with ErrNilMatrix on nil operands and category.ErrDomainMismatch
// when f.Cols != g.Rows. Complexity: O(n·m·k).
func (Cat) Compose(f, g *Dense) (*Dense, error) {
	if f == nil || g == nil {
		return nil, ErrNilMatrix
	}
	if f.c != g.r {
		return nil, category.ErrDomainMismatch
	}

	return f.Mul(g)
}

// ID returns the identity matrix on dimension n.
// Fails with ErrBadShape for n < 1. Complexity: O(n²).
func (Cat) ID(n int) (*Dense, error) {
	return Identity(n)
}
