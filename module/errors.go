// SPDX-License-Identifier: MIT
// Package module: sentinel error set.
// Every failure is reported synchronously at the offending call and matched
// by callers with errors.Is. These are caller errors, never transient.

package module

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch: a coordinate list or row matrix does not match the
	// rank, or a matrix has other than exactly one row.
	ErrDimensionMismatch = errors.New("module: dimension mismatch")

	// ErrIncompatibleParent: two elements of different descriptors were combined
	// or compared.
	ErrIncompatibleParent = errors.New("module: incompatible parent")

	// ErrIncompatibleScalar: a ring-typed scalar from another ring, or a plain
	// rational the base ring cannot represent.
	ErrIncompatibleScalar = errors.New("module: incompatible scalar")

	// ErrIndexOutOfRange: generator or coordinate index outside [1, rank].
	ErrIndexOutOfRange = errors.New("module: index out of range")

	// ErrIncompatibleRing: a coordinate or row matrix over another ring.
	ErrIncompatibleRing = errors.New("module: coordinate over a different ring")

	// ErrNegativeRank: New called with rank < 0.
	ErrNegativeRank = errors.New("module: rank must be >= 0")

	// ErrNilRing: New called without a base ring.
	ErrNilRing = errors.New("module: nil base ring")

	// ErrUncomparableRing: New called with a ring descriptor that cannot be
	// compared with ==, so ring identity is undefined for its elements.
	ErrUncomparableRing = errors.New("module: ring descriptor is not comparable")

	// ErrNilElement: nil element receiver, operand or matrix.
	ErrNilElement = errors.New("module: nil element")

	// ErrNotVectorSpace: Dimension requested over a ring that is not a field.
	ErrNotVectorSpace = errors.New("module: base ring is not a field")

	// ErrParse: malformed element literal, or a base ring without a parser.
	ErrParse = errors.New("module: cannot parse element")
)

// moduleErrorf wraps err with the operation tag.
func moduleErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
