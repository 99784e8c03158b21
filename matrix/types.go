// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Dense is the only implementation shipped here; kernels take a fast path on
// *Dense and fall back to At/Set for any other implementation.
package matrix

import "github.com/katalvlaran/lvlalg/ring"

// Matrix is a two-dimensional mutable array of ring elements.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T ring.Element[T]] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Ring returns the coefficient ring shared by every entry.
	Ring() ring.Ring[T]

	// At retrieves the element at (i, j); ErrOutOfRange on bad indices.
	At(i, j int) (T, error)

	// Set assigns v at (i, j); ErrOutOfRange on bad indices, ErrRingMismatch
	// when v belongs to another ring.
	Set(i, j int, v T) error

	// Clone returns an independent deep copy.
	Clone() Matrix[T]
}
