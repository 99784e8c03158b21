// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/ring checks here.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape → Ring).
//  - Each validator states what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/ring"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including typed nil
// *Dense values stored in the interface.
// Complexity: O(1).
func ValidateNotNil[T ring.Element[T]](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense[T]); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape[T ring.Element[T]](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameRing ensures a and b share one ring descriptor (identity).
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameRing[T ring.Element[T]](a, b Matrix[T]) error {
	if a.Ring() != b.Ring() {
		return validatorErrorf("ValidateSameRing", ErrRingMismatch)
	}

	return nil
}

// ValidateRowVector ensures m is non-nil and exactly 1×n.
// Complexity: O(1).
func ValidateRowVector[T ring.Element[T]](m Matrix[T], n int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != 1 {
		return validatorErrorf("ValidateRowVector: Rows", ErrDimensionMismatch)
	}
	if m.Cols() != n {
		return validatorErrorf("ValidateRowVector: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinary runs the full NotNil → Shape → Ring sequence for two operands.
// Complexity: O(1).
func ValidateBinary[T ring.Element[T]](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if err := ValidateSameShape(a, b); err != nil {
		return err
	}

	return ValidateSameRing(a, b)
}
