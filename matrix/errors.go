// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with a call-site tag and
// tests MUST check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in kernels and tests):
// nil -> shape -> ring identity.

var (
	// ErrInvalidDimensions indicates that requested dimensions are out of contract
	// (non-positive for NewDense, negative for the zero-size friendly constructors).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set/Row MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilRing indicates a constructor was called without a coefficient ring.
	ErrNilRing = errors.New("matrix: nil ring")

	// ErrRingMismatch indicates an entry, scalar or operand over a different ring.
	ErrRingMismatch = errors.New("matrix: ring mismatch")
)

// matrixErrorf wraps err with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps err with a uniform Dense context and call-site indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
