package fincat

import (
	"github.com/katalvlaran/catkit/category"
	"github.com/katalvlaran/catkit/matcat"
)

// Indicator is the functor fincat → matcat.
//
// ObMap keeps the dimension: n ↦ n. HomMap sends f : {1..n} → {1..m} to
// the n×m indicator matrix A with A[i][f(i)] = 1 for every i and zeros
// elsewhere (0-based storage, 1-based ordinals).
//
// The functor laws hold by construction: the identity map yields the
// identity matrix, and chaining tables then indicating equals indicating
// then multiplying. Tests verify both on concrete probes.
//
// Stateless; the zero value is ready to use.
type Indicator struct{}

var _ category.Functor[int, Map, int, *matcat.Dense] = Indicator{}

// ObMap maps the ordinal n to the matrix dimension n.
// Fails with ErrBadOrdinal for n < 1.
func (Indicator) ObMap(n int) (int, error) {
	if n < 1 {
		return 0, ErrBadOrdinal
	}

	return n, nil
}

// HomMap materializes f as its indicator matrix.
// Complexity: O(Dom·Codom) for the allocation, O(Dom) ones written.
func (Indicator) HomMap(f Map) (*matcat.Dense, error) {
	out, err := matcat.NewDense(f.dom, f.codom)
	if err != nil {
		// The zero Map (dom == 0) lands here as ErrBadShape.
		return nil, err
	}
	for i, v := range f.img {
		if setErr := out.Set(i, v-1, 1); setErr != nil {
			return nil, setErr
		}
	}

	return out, nil
}
