// SPDX-License-Identifier: MIT

// Package module implements free modules of finite rank over a generic,
// possibly noncommutative ring.
//
// A FreeModule[T] describes R^n for a ring R (ring.Ring[T]) and a fixed rank
// n; it is the factory and validator for its elements. An Element[T] is an
// immutable 1×n row vector over R that keeps a back-reference to its
// descriptor. Cross-element operations (Add, Sub, Equal) require both
// operands to share the same descriptor instance and fail with
// ErrIncompatibleParent otherwise.
//
// Descriptors are cached by default: New(r, n) called twice with the same
// ring and rank returns the same pointer. The cache is a Registry; the
// process-wide one is DefaultRegistry(), and WithRegistry injects another.
// WithCache(false) always allocates a fresh descriptor.
//
// When the base ring is a field (ring.IsField), the module is a vector space:
// Dimension() succeeds and String() reads "Vector space of dimension n over R".
//
// Scalar multiplication:
//
//	e.LeftMul(c)     c·x_i   (c must belong to the base ring)
//	e.RightMul(c)    x_i·c   (c must belong to the base ring)
//	Scale(e, 3)      plain integer, coerced without a ring-identity check
//	ScaleRat(e, q)   plain rational, coerced when the ring embeds QQ
//
// Example:
//
//	M, _ := module.New[ring.Int](ring.ZZ, 3)
//	a, _ := M.FromInts(1, 2, 3)
//	b, _ := M.FromInts(4, 5, 6)
//	s, _ := a.Add(b) // (5, 7, 9)
package module
