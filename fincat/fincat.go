package fincat

import (
	"errors"

	"github.com/katalvlaran/catkit/category"
)

// Sentinel errors returned by the fincat package.
var (
	// ErrBadOrdinal indicates an ordinal < 1 where a positive one is required.
	ErrBadOrdinal = errors.New("fincat: ordinal must be >= 1")

	// ErrImageLength indicates an image table whose length differs from the
	// domain ordinal.
	ErrImageLength = errors.New("fincat: image length must equal the domain ordinal")

	// ErrIndexRange indicates an index outside the 1-based ordinal range.
	ErrIndexRange = errors.New("fincat: index outside ordinal range")
)

// Map is a morphism of the finite-ordinal category: a total function
// {1..dom} → {1..codom} stored as a 1-based image table, img[i-1] = f(i).
// Immutable after construction; the zero value is not a valid morphism.
type Map struct {
	dom   int
	codom int
	img   []int
}

// NewMap validates and builds the morphism f : dom → codom with
// f(i) = img[i-1].
//
// Fails with ErrBadOrdinal when dom or codom < 1, ErrImageLength when
// len(img) != dom, and ErrIndexRange when any image value falls outside
// 1..codom. The image table is copied. Complexity: O(dom).
func NewMap(dom, codom int, img ...int) (Map, error) {
	if dom < 1 || codom < 1 {
		return Map{}, ErrBadOrdinal
	}
	if len(img) != dom {
		return Map{}, ErrImageLength
	}
	owned := make([]int, dom)
	for i, v := range img {
		if v < 1 || v > codom {
			return Map{}, ErrIndexRange
		}
		owned[i] = v
	}

	return Map{dom: dom, codom: codom, img: owned}, nil
}

// Dom returns the domain ordinal.
func (f Map) Dom() int {
	return f.dom
}

// Codom returns the codomain ordinal.
func (f Map) Codom() int {
	return f.codom
}

// At evaluates f at i (1-based).
// Fails with ErrIndexRange when i is outside 1..Dom().
func (f Map) At(i int) (int, error) {
	if i < 1 || i > f.dom {
		return 0, ErrIndexRange
	}

	return f.img[i-1], nil
}

// Equal reports equal endpoints and pointwise equal image tables.
func (f Map) Equal(o Map) bool {
	if f.dom != o.dom || f.codom != o.codom {
		return false
	}
	for i, v := range f.img {
		if o.img[i] != v {
			return false
		}
	}

	return true
}

// Cat is the category of finite ordinals: objects are positive ints,
// morphisms are Map values. Stateless; the zero value is the canonical
// singleton.
type Cat struct{}

var _ category.Category[int, Map] = Cat{}

// Dom returns f's domain ordinal.
func (Cat) Dom(f Map) int {
	return f.dom
}

// Codom returns f's codomain ordinal.
func (Cat) Codom(f Map) int {
	return f.codom
}

// Compose returns "first f, then g": the map i ↦ g(f(i)), table chained
// eagerly. Fails with category.ErrDomainMismatch when f.Codom != g.Dom.
// Complexity: O(f.Dom()).
func (Cat) Compose(f, g Map) (Map, error) {
	if f.codom != g.dom {
		return Map{}, category.ErrDomainMismatch
	}

	img := make([]int, f.dom)
	for i, mid := range f.img {
		img[i] = g.img[mid-1] // mid ∈ 1..g.dom by Map's construction invariant
	}

	return Map{dom: f.dom, codom: g.codom, img: img}, nil
}

// ID returns the identity map on n: i ↦ i for i in 1..n.
// Fails with ErrBadOrdinal for n < 1. Complexity: O(n).
func (Cat) ID(n int) (Map, error) {
	if n < 1 {
		return Map{}, ErrBadOrdinal
	}

	img := make([]int, n)
	for i := range img {
		img[i] = i + 1
	}

	return Map{dom: n, codom: n, img: img}, nil
}
