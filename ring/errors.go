// SPDX-License-Identifier: MIT
// Package ring: sentinel error set.
// All constructors and partial operations (inversion, parsing, coercion)
// return these sentinels, possibly wrapped with a call-site tag; callers match
// them with errors.Is.

package ring

import (
	"errors"
	"fmt"
)

var (
	// ErrBadModulus is returned when a residue ring is requested with n < 2.
	ErrBadModulus = errors.New("ring: modulus must be >= 2")

	// ErrDivisionByZero indicates an attempt to invert the zero element.
	ErrDivisionByZero = errors.New("ring: division by zero")

	// ErrNotInvertible indicates a non-zero element without a multiplicative inverse.
	ErrNotInvertible = errors.New("ring: element is not invertible")

	// ErrNotRepresentable indicates a rational that has no image in the ring
	// (e.g. 1/2 in ZZ, or 1/3 in Z/3Z).
	ErrNotRepresentable = errors.New("ring: value not representable in ring")

	// ErrParse indicates a malformed element literal.
	ErrParse = errors.New("ring: cannot parse literal")
)

// ringErrorf tags err with the operation that produced it.
func ringErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// parseErrorf reports a malformed literal s for the given ring.
func parseErrorf(ringName, s string) error {
	return fmt.Errorf("%s: %q: %w", ringName, s, ErrParse)
}
