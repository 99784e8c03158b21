// SPDX-License-Identifier: MIT

package main

import "errors"

var (
	// errUnknownRing: --ring names none of ZZ, QQ, HH, Z/<n>.
	errUnknownRing = errors.New("freemod: unknown ring")

	// errUnknownOp: a batch op with an unsupported name.
	errUnknownOp = errors.New("freemod: unknown operation")

	// errArity: wrong number of operands for an op.
	errArity = errors.New("freemod: wrong number of operands")

	// errBadScalar: a scalar literal the base ring or Scale cannot read.
	errBadScalar = errors.New("freemod: bad scalar")
)
