// SPDX-License-Identifier: MIT

// Package matrix provides a generic dense matrix over an arbitrary ring.
//
// The matrix package provides:
//
//   - Dense[T]: a row-major matrix whose entries are elements of a ring.Ring[T],
//     stored in a flat slice for cache friendliness.
//   - Row-vector constructors (NewRowVector, UnitRow, ZeroRow) that accept 1×0
//     shapes, which free modules of rank 0 rely on, and NewIdentity, whose rows
//     are the standard basis.
//   - Element-wise kernels (Add, Sub, Neg, ScaleLeft, ScaleRight, Equal) that
//     validate shape and ring identity before touching any data.
//
// Multiplication by a scalar comes in two flavours because the ring may be
// noncommutative: ScaleLeft computes c·m[i,j], ScaleRight computes m[i,j]·c.
//
// Every public entry point returns sentinel errors (see errors.go) instead of
// panicking on user input.
package matrix
