// SPDX-License-Identifier: MIT

// Package ring defines the coefficient-ring abstraction consumed by the
// matrix and module packages, together with a handful of concrete rings.
//
// The package provides:
//
//   - Element[T]: the capability set of a ring element (add, sub, neg, mul,
//     equality, compact rendering, owning ring).
//   - Ring[T]: the ring descriptor (zero, one, integer coercion, name).
//   - Field[T]: a marker extension of Ring[T] exposing inversion; used by the
//     module package to specialize free modules into vector spaces.
//   - Optional capabilities: Parser[T] (literal parsing) and RatEmbedder[T]
//     (coercion of plain rationals).
//
// Concrete rings, all arbitrary precision on top of math/big:
//
//	ZZ                 integers (Int)
//	QQ                 rationals (Rat), a field
//	NewIntegersMod(n)  residues modulo n (ModInt), a field iff n is prime
//	HH                 Hamilton quaternions over QQ (Quat), noncommutative
//
// Ring identity is pointer identity: two rings are the same ring iff their
// descriptors compare equal with ==. Elements are immutable values; every
// arithmetic method returns a fresh element.
package ring
