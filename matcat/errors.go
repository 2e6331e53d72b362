// Package matcat: sentinel error set.
// All operations return these sentinels (optionally wrapped with the
// operation name via fmt.Errorf("Op: %w", ...)); tests match them with
// errors.Is. Panics are reserved for programmer errors in private helpers.

package matcat

import "errors"

var (
	// ErrBadShape is returned when requested matrix dimensions are not
	// positive. Creation validates before allocating.
	ErrBadShape = errors.New("matcat: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matcat: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// i.e. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matcat: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matcat: nil matrix")
)
