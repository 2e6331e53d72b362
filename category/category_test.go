package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/catkit/category"
	"github.com/katalvlaran/catkit/fincat"
	"github.com/katalvlaran/catkit/finset"
	"github.com/katalvlaran/catkit/matcat"
)

// TestUnimplementedCategory verifies that the embeddable base fails every
// fallible operation with ErrNotImplemented and zero-values the projections.
func TestUnimplementedCategory(t *testing.T) {
	base := category.UnimplementedCategory[string, int]{}

	_, err := base.Compose(1, 2)
	assert.ErrorIs(t, err, category.ErrNotImplemented, "Compose on the base must fail")

	_, err = base.ID("x")
	assert.ErrorIs(t, err, category.ErrNotImplemented, "ID on the base must fail")

	assert.Equal(t, "", base.Dom(1), "Dom on the base must return the zero object")
	assert.Equal(t, "", base.Codom(1), "Codom on the base must return the zero object")
}

// TestUnimplementedFunctor verifies the functor base's ErrNotImplemented contract.
func TestUnimplementedFunctor(t *testing.T) {
	base := category.UnimplementedFunctor[int, int, int, int]{}

	_, err := base.ObMap(1)
	assert.ErrorIs(t, err, category.ErrNotImplemented, "ObMap on the base must fail")

	_, err = base.HomMap(1)
	assert.ErrorIs(t, err, category.ErrNotImplemented, "HomMap on the base must fail")
}

// TestWrap_NilCategory verifies the fail-fast nil check.
func TestWrap_NilCategory(t *testing.T) {
	_, err := category.Wrap[int, fincat.Map](nil)
	assert.ErrorIs(t, err, category.ErrNilCategory, "wrapping nil must fail")
}

// roster is a stateful category over a runtime-chosen carrier set; the map
// field makes the value uncomparable under Go ==.
type roster struct {
	category.UnimplementedCategory[int, int]
	members map[int]struct{}
}

// TestWrap_UncomparableCategory verifies that a stateful category whose
// value == cannot compare is rejected at Wrap time with ErrNotComparable,
// and that wrapping it by pointer works with identity as equality.
func TestWrap_UncomparableCategory(t *testing.T) {
	byValue := roster{members: map[int]struct{}{1: {}, 2: {}}}
	_, err := category.Wrap[int, int](byValue)
	assert.ErrorIs(t, err, category.ErrNotComparable, "map-bearing category value must be rejected, not crash Same later")

	// Held by pointer the value is comparable again; equality is identity.
	first := &roster{members: map[int]struct{}{1: {}}}
	second := &roster{members: map[int]struct{}{1: {}}}

	boxA, err := category.Wrap[int, int](first)
	require.NoError(t, err)
	boxB, err := category.Wrap[int, int](first)
	require.NoError(t, err)
	boxC, err := category.Wrap[int, int](second)
	require.NoError(t, err)

	assert.True(t, boxA.Same(boxB), "two wrappings of one instance must be equal")
	assert.False(t, boxA.Same(boxC), "distinct instances must differ even with equal state")
}

// TestBox_DelegatesToWrapped verifies that a Box forwards the four
// operations to the wrapped category and propagates its sentinels.
func TestBox_DelegatesToWrapped(t *testing.T) {
	box, err := category.Wrap[int, fincat.Map](fincat.Cat{})
	require.NoError(t, err)

	f, err := fincat.NewMap(2, 3, 2, 3)
	require.NoError(t, err)
	g, err := fincat.NewMap(3, 2, 1, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, box.Dom(f), "Dom must project through the box")
	assert.Equal(t, 3, box.Codom(f), "Codom must project through the box")

	gf, err := box.Compose(f, g)
	require.NoError(t, err)
	composed, ok := gf.(fincat.Map)
	require.True(t, ok, "boxed Compose must return the wrapped morphism type")
	assert.Equal(t, 2, composed.Dom())
	assert.Equal(t, 2, composed.Codom())

	idObj, err := box.ID(3)
	require.NoError(t, err)
	idMap, ok := idObj.(fincat.Map)
	require.True(t, ok)
	want, err := fincat.Cat{}.ID(3)
	require.NoError(t, err)
	assert.True(t, idMap.Equal(want), "boxed ID must match the wrapped ID")

	// Mismatch from the wrapped category surfaces unchanged.
	_, err = box.Compose(g, g)
	assert.ErrorIs(t, err, category.ErrDomainMismatch, "wrapped sentinel must propagate")
}

// TestBox_ForeignValues verifies the erased layer's dynamic-type contract:
// foreign morphisms yield nil projections and typed errors, never panics.
func TestBox_ForeignValues(t *testing.T) {
	box, err := category.Wrap[int, fincat.Map](fincat.Cat{})
	require.NoError(t, err)

	assert.Nil(t, box.Dom("not a map"), "foreign morphism must project to nil")
	assert.Nil(t, box.Codom(42), "foreign morphism must project to nil")

	_, err = box.Compose("nope", "nope")
	assert.ErrorIs(t, err, category.ErrForeignMorphism)

	_, err = box.ID("three")
	assert.ErrorIs(t, err, category.ErrForeignObject)
}

// TestBox_Same verifies category equality: stateless singletons compare
// equal across independent wrappings, distinct categories do not.
func TestBox_Same(t *testing.T) {
	finA, err := category.Wrap[int, fincat.Map](fincat.Cat{})
	require.NoError(t, err)
	finB, err := category.Wrap[int, fincat.Map](fincat.Cat{})
	require.NoError(t, err)
	mat, err := category.Wrap[int, *matcat.Dense](matcat.Cat{})
	require.NoError(t, err)
	sets, err := category.Wrap[finset.Set[int], finset.Function[int]](finset.Cat[int]{})
	require.NoError(t, err)

	assert.True(t, finA.Same(finB), "two wrappings of the same singleton must be equal")
	assert.False(t, finA.Same(mat), "distinct categories must not be equal")
	assert.False(t, mat.Same(sets), "distinct categories must not be equal")
	assert.False(t, finA.Same(nil), "nil is no category")
}

// TestWrapFunctor_Contract verifies erasure of a typed functor: endpoint
// recovery, delegation, and foreign-value rejection.
func TestWrapFunctor_Contract(t *testing.T) {
	src, err := category.Wrap[int, fincat.Map](fincat.Cat{})
	require.NoError(t, err)
	dst, err := category.Wrap[int, *matcat.Dense](matcat.Cat{})
	require.NoError(t, err)

	fb, err := category.WrapFunctor[int, fincat.Map, int, *matcat.Dense](fincat.Indicator{}, src, dst)
	require.NoError(t, err)

	assert.True(t, fb.Dom().Same(src), "Dom must recover the source category value")
	assert.True(t, fb.Codom().Same(dst), "Codom must recover the target category value")

	n, err := fb.ObMap(3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = fb.ObMap("three")
	assert.ErrorIs(t, err, category.ErrForeignObject)

	_, err = fb.HomMap("not a map")
	assert.ErrorIs(t, err, category.ErrForeignMorphism)

	_, err = category.WrapFunctor[int, fincat.Map, int, *matcat.Dense](nil, src, dst)
	assert.ErrorIs(t, err, category.ErrNilFunctor)
	_, err = category.WrapFunctor[int, fincat.Map, int, *matcat.Dense](fincat.Indicator{}, nil, dst)
	assert.ErrorIs(t, err, category.ErrNilCategory)
}

// TestNewFunctorBox_Validation verifies the nil checks on the direct
// erased constructor.
func TestNewFunctorBox_Validation(t *testing.T) {
	box, err := category.Wrap[int, fincat.Map](fincat.Cat{})
	require.NoError(t, err)
	echo := func(v any) (any, error) { return v, nil }

	_, err = category.NewFunctorBox(nil, box, echo, echo)
	assert.ErrorIs(t, err, category.ErrNilCategory)

	_, err = category.NewFunctorBox(box, box, nil, echo)
	assert.ErrorIs(t, err, category.ErrNilFunctor)

	fb, err := category.NewFunctorBox(box, box, echo, echo)
	require.NoError(t, err)
	out, err := fb.ObMap(7)
	require.NoError(t, err)
	assert.Equal(t, 7, out)
}
