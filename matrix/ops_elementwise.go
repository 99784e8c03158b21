// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the element-wise kernels (Add, Sub, Neg, ScaleLeft, ScaleRight,
//     Equal) on top of two private micro-kernels, ewMap and ewZip, so the tight
//     loops live in exactly one place.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on *Dense, i→j in the fallback).
//   - One output allocation per call; operands are never mutated.

package matrix

import "github.com/katalvlaran/lvlalg/ring"

// op tags used in error wrappers.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opNeg        = "Neg"
	opScaleLeft  = "ScaleLeft"
	opScaleRight = "ScaleRight"
	opEqual      = "Equal"
)

// ewMap computes out[i,j] = f(X[i,j]).
// Time: O(r*c). Space: O(r*c).
func ewMap[T ring.Element[T]](tag string, X Matrix[T], f func(T) T) (*Dense[T], error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := newDenseZeroOK(X.Ring(), r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Dense fast-path: single pass over the flat buffer.
	if d, ok := X.(*Dense[T]); ok {
		for k, v := range d.data {
			out.data[k] = f(v)
		}
		return out, nil
	}

	// Generic fallback via At.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(tag, e)
			}
			out.data[i*c+j] = f(v)
		}
	}

	return out, nil
}

// ewZip computes out[i,j] = f(A[i,j], B[i,j]) after the full binary validation.
// Time: O(r*c). Space: O(r*c).
func ewZip[T ring.Element[T]](tag string, A, B Matrix[T], f func(x, y T) T) (*Dense[T], error) {
	if err := ValidateBinary(A, B); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := A.Rows(), A.Cols()
	out, err := newDenseZeroOK(A.Ring(), r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	da, okA := A.(*Dense[T])
	db, okB := B.(*Dense[T])
	if okA && okB {
		for k := range da.data {
			out.data[k] = f(da.data[k], db.data[k])
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, e := A.At(i, j)
			if e != nil {
				return nil, matrixErrorf(tag, e)
			}
			y, e := B.At(i, j)
			if e != nil {
				return nil, matrixErrorf(tag, e)
			}
			out.data[i*c+j] = f(x, y)
		}
	}

	return out, nil
}

// Add returns the element-wise sum a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrRingMismatch.
// Complexity: O(r*c).
func Add[T ring.Element[T]](a, b Matrix[T]) (*Dense[T], error) {
	return ewZip(opAdd, a, b, func(x, y T) T { return x.Add(y) })
}

// Sub returns the element-wise difference a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrRingMismatch.
// Complexity: O(r*c).
func Sub[T ring.Element[T]](a, b Matrix[T]) (*Dense[T], error) {
	return ewZip(opSub, a, b, func(x, y T) T { return x.Sub(y) })
}

// Neg returns −m.
// Complexity: O(r*c).
func Neg[T ring.Element[T]](m Matrix[T]) (*Dense[T], error) {
	return ewMap(opNeg, m, func(x T) T { return x.Neg() })
}

// ScaleLeft returns c·m, the scalar multiplying each entry from the left.
// Errors: ErrNilMatrix; ErrRingMismatch when c is not over m.Ring().
// Complexity: O(r*c).
func ScaleLeft[T ring.Element[T]](c T, m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleLeft, err)
	}
	if c.Ring() != m.Ring() {
		return nil, matrixErrorf(opScaleLeft, ErrRingMismatch)
	}

	return ewMap(opScaleLeft, m, func(x T) T { return c.Mul(x) })
}

// ScaleRight returns m·c, the scalar multiplying each entry from the right.
// Errors: ErrNilMatrix; ErrRingMismatch when c is not over m.Ring().
// Complexity: O(r*c).
func ScaleRight[T ring.Element[T]](m Matrix[T], c T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleRight, err)
	}
	if c.Ring() != m.Ring() {
		return nil, matrixErrorf(opScaleRight, ErrRingMismatch)
	}

	return ewMap(opScaleRight, m, func(x T) T { return x.Mul(c) })
}

// Equal reports entry-wise ring equality of a and b.
// Shapes and rings must match; comparing incomparable operands is an error,
// not false.
// Complexity: O(r*c) worst case, stops at the first difference.
func Equal[T ring.Element[T]](a, b Matrix[T]) (bool, error) {
	if err := ValidateBinary(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, e := a.At(i, j)
			if e != nil {
				return false, matrixErrorf(opEqual, e)
			}
			y, e := b.At(i, j)
			if e != nil {
				return false, matrixErrorf(opEqual, e)
			}
			if !x.Equal(y) {
				return false, nil
			}
		}
	}

	return true, nil
}
