// Package finset: sentinel error set.
// Composition mismatches reuse category.ErrDomainMismatch so callers match
// them uniformly across concrete categories; the sentinels below cover the
// failure modes specific to finite functions.

package finset

import "errors"

var (
	// ErrKeyNotFound reports evaluation of a Function at an element outside
	// the domain it was constructed over.
	ErrKeyNotFound = errors.New("finset: element not in the function's domain")

	// ErrNotTotal reports a mapping table missing an entry for some domain
	// element.
	ErrNotTotal = errors.New("finset: mapping is not total over the domain")

	// ErrNotIntoCodomain reports a mapping table entry whose value is not a
	// member of the codomain.
	ErrNotIntoCodomain = errors.New("finset: mapping value outside the codomain")

	// ErrSpuriousKey reports a mapping table entry whose key is not a member
	// of the domain.
	ErrSpuriousKey = errors.New("finset: mapping key outside the domain")
)
