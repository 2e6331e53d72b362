package fincat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/catkit/category"
	"github.com/katalvlaran/catkit/fincat"
)

// TestNewMap_Validation exercises the fail-fast constructor checks.
func TestNewMap_Validation(t *testing.T) {
	_, err := fincat.NewMap(0, 2, 1)
	assert.ErrorIs(t, err, fincat.ErrBadOrdinal, "dom < 1 must be rejected")

	_, err = fincat.NewMap(2, 0, 1, 1)
	assert.ErrorIs(t, err, fincat.ErrBadOrdinal, "codom < 1 must be rejected")

	_, err = fincat.NewMap(2, 3, 1)
	assert.ErrorIs(t, err, fincat.ErrImageLength, "short image table must be rejected")

	_, err = fincat.NewMap(2, 3, 1, 4)
	assert.ErrorIs(t, err, fincat.ErrIndexRange, "image value above codom must be rejected")

	_, err = fincat.NewMap(2, 3, 0, 1)
	assert.ErrorIs(t, err, fincat.ErrIndexRange, "image value below 1 must be rejected")
}

// TestMap_At verifies 1-based evaluation and range errors.
func TestMap_At(t *testing.T) {
	f, err := fincat.NewMap(2, 3, 2, 3)
	require.NoError(t, err)

	v, err := f.At(1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = f.At(0)
	assert.ErrorIs(t, err, fincat.ErrIndexRange)
	_, err = f.At(3)
	assert.ErrorIs(t, err, fincat.ErrIndexRange)
}

// TestCat_ComposeAndID verifies table chaining, identity tables and the
// identity laws.
func TestCat_ComposeAndID(t *testing.T) {
	cat := fincat.Cat{}

	f, err := fincat.NewMap(2, 3, 2, 3) // 1↦2, 2↦3
	require.NoError(t, err)
	g, err := fincat.NewMap(3, 2, 1, 1, 2) // 1↦1, 2↦1, 3↦2
	require.NoError(t, err)

	gf, err := cat.Compose(f, g)
	require.NoError(t, err)
	want, err := fincat.NewMap(2, 2, 1, 2) // 1↦g(2)=1, 2↦g(3)=2
	require.NoError(t, err)
	assert.True(t, want.Equal(gf), "table chaining must follow diagrammatic order")

	id3, err := cat.ID(3)
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		v, atErr := id3.At(i)
		require.NoError(t, atErr)
		assert.Equal(t, i, v, "identity table must fix %d", i)
	}

	id2, err := cat.ID(2)
	require.NoError(t, err)
	left, err := cat.Compose(id2, f)
	require.NoError(t, err)
	right, err := cat.Compose(f, id3)
	require.NoError(t, err)
	assert.True(t, left.Equal(f), "id ∘ f must equal f")
	assert.True(t, right.Equal(f), "f ∘ id must equal f")

	_, err = cat.Compose(g, g)
	assert.ErrorIs(t, err, category.ErrDomainMismatch, "2 → 3 gap must be rejected")

	_, err = cat.ID(0)
	assert.ErrorIs(t, err, fincat.ErrBadOrdinal)
}

// TestCat_Associativity checks the associativity law on a concrete chain.
func TestCat_Associativity(t *testing.T) {
	cat := fincat.Cat{}

	f, err := fincat.NewMap(2, 3, 2, 3)
	require.NoError(t, err)
	g, err := fincat.NewMap(3, 3, 3, 1, 2)
	require.NoError(t, err)
	h, err := fincat.NewMap(3, 2, 1, 2, 1)
	require.NoError(t, err)

	fg, err := cat.Compose(f, g)
	require.NoError(t, err)
	gh, err := cat.Compose(g, h)
	require.NoError(t, err)

	lhs, err := cat.Compose(fg, h)
	require.NoError(t, err)
	rhs, err := cat.Compose(f, gh)
	require.NoError(t, err)

	assert.True(t, lhs.Equal(rhs), "composition must be associative")
}
