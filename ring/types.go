// SPDX-License-Identifier: MIT

// Package ring: capability interfaces.
// This file contains ONLY the interfaces shared by concrete rings and by the
// generic matrix/module code. Concrete rings live in their own files.

package ring

import "math/big"

// Element is the capability set every ring element type T must provide.
// T is the element type itself (F-bounded), so arithmetic stays statically
// typed: a.Add(b) with a, b of type T returns a T.
//
// Multiplication is not assumed commutative: a.Mul(b) computes a·b with the
// receiver on the LEFT.
type Element[T any] interface {
	// Ring returns the descriptor of the ring owning this element.
	Ring() Ring[T]

	// Add returns the receiver plus b.
	Add(b T) T

	// Sub returns the receiver minus b.
	Sub(b T) T

	// Neg returns the additive inverse of the receiver.
	Neg() T

	// Mul returns the receiver times b (receiver on the left).
	Mul(b T) T

	// Equal reports ring equality with b.
	Equal(b T) bool

	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool

	// String renders the element in compact form.
	String() string
}

// Ring describes a coefficient ring with elements of type T.
// Descriptors are compared by identity (==), so implementations must be
// pointer types.
type Ring[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T

	// FromBigInt coerces a plain integer into the ring (n·1).
	FromBigInt(n *big.Int) T

	// String renders the ring in compact form (e.g. "Integers").
	String() string
}

// Field marks a ring whose non-zero elements are invertible and whose
// multiplication is commutative. A descriptor implementing Field can still
// veto the specialization through an IsField() bool method (residue rings of
// composite order, division rings).
type Field[T any] interface {
	Ring[T]

	// Inv returns the multiplicative inverse of a.
	Inv(a T) (T, error)
}

// Parser is implemented by rings able to read back their compact rendering.
type Parser[T any] interface {
	Parse(s string) (T, error)
}

// RatEmbedder is implemented by rings able to coerce plain rationals.
type RatEmbedder[T any] interface {
	FromRat(q *big.Rat) (T, error)
}

// fieldVeto is the optional IsField override described on Field.
type fieldVeto interface {
	IsField() bool
}

// IsField reports whether r should be treated as a field: r implements
// Field[T] and, when it exposes IsField(), that method agrees.
// Complexity: O(1).
func IsField[T any](r Ring[T]) bool {
	if _, ok := r.(Field[T]); !ok {
		return false
	}
	if v, ok := r.(fieldVeto); ok {
		return v.IsField()
	}

	return true
}

// FromInt64 is a convenience wrapper over Ring.FromBigInt.
func FromInt64[T any](r Ring[T], n int64) T {
	return r.FromBigInt(big.NewInt(n))
}
