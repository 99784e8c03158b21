// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Thin, intention-revealing entry points; each delegates to the canonical
// implementation without duplicating loops.

package matrix

import "github.com/katalvlaran/lvlalg/ring"

// NewIdentity returns I_n over rg (rg.One() on the diagonal).
// Complexity: O(n^2).
func NewIdentity[T ring.Element[T]](rg ring.Ring[T], n int) (*Dense[T], error) {
	I, err := NewDense(rg, n, n)
	if err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	one := rg.One()
	for i := 0; i < n; i++ {
		I.data[i*n+i] = one
	}

	return I, nil
}

// UnitRow returns the 1×n row vector with rg.One() at column j and zeros
// elsewhere: the j-th standard basis vector.
// Errors: ErrInvalidDimensions for n < 0, ErrOutOfRange for j ∉ [0, n).
// Complexity: O(n).
func UnitRow[T ring.Element[T]](rg ring.Ring[T], n, j int) (*Dense[T], error) {
	row, err := newDenseZeroOK(rg, 1, n)
	if err != nil {
		return nil, matrixErrorf("UnitRow", err)
	}
	if err = row.Set(0, j, rg.One()); err != nil {
		return nil, matrixErrorf("UnitRow", err)
	}

	return row, nil
}

// ZeroRow returns the 1×n zero row vector; n == 0 is legal.
// Complexity: O(n).
func ZeroRow[T ring.Element[T]](rg ring.Ring[T], n int) (*Dense[T], error) {
	row, err := newDenseZeroOK(rg, 1, n)
	if err != nil {
		return nil, matrixErrorf("ZeroRow", err)
	}

	return row, nil
}

// CloneDense returns a deep copy of m as a *Dense. It uses m.Clone when that
// yields a *Dense and otherwise materializes m through At.
// Complexity: O(r*c).
func CloneDense[T ring.Element[T]](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneDense", err)
	}
	if d, ok := m.Clone().(*Dense[T]); ok {
		return d, nil
	}

	return ewMap("CloneDense", m, func(x T) T { return x })
}
