// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/big"
)

// IntegersMod is the residue ring Z/nZ.
// Every call to NewIntegersMod returns a distinct descriptor: two residue
// rings with the same modulus are different rings for identity purposes.
type IntegersMod struct {
	n     *big.Int
	prime bool
	name  string
}

var (
	_ Field[ModInt]       = (*IntegersMod)(nil)
	_ Parser[ModInt]      = (*IntegersMod)(nil)
	_ RatEmbedder[ModInt] = (*IntegersMod)(nil)
	_ Element[ModInt]     = ModInt{}
)

// NewIntegersMod returns the ring Z/nZ for n >= 2.
// Primality is decided once (Miller–Rabin, 20 rounds) and cached.
func NewIntegersMod(n int64) (*IntegersMod, error) {
	if n < 2 {
		return nil, ringErrorf("NewIntegersMod", ErrBadModulus)
	}
	m := big.NewInt(n)

	return &IntegersMod{
		n:     m,
		prime: m.ProbablyPrime(20),
		name:  fmt.Sprintf("Integers modulo %d", n),
	}, nil
}

// Modulus returns a copy of n.
func (r *IntegersMod) Modulus() *big.Int { return new(big.Int).Set(r.n) }

// IsField reports whether n is prime.
func (r *IntegersMod) IsField() bool { return r.prime }

// reduce returns v mod n in [0, n).
func (r *IntegersMod) reduce(v *big.Int) ModInt {
	return ModInt{r: r, v: new(big.Int).Mod(v, r.n)}
}

// Zero returns 0 mod n.
func (r *IntegersMod) Zero() ModInt { return ModInt{r: r, v: new(big.Int)} }

// One returns 1 mod n.
func (r *IntegersMod) One() ModInt { return r.reduce(big.NewInt(1)) }

// FromBigInt returns v mod n.
func (r *IntegersMod) FromBigInt(v *big.Int) ModInt { return r.reduce(v) }

// FromRat returns num·den⁻¹ mod n, or ErrNotRepresentable when den is not a unit.
func (r *IntegersMod) FromRat(q *big.Rat) (ModInt, error) {
	inv := new(big.Int).ModInverse(new(big.Int).Mod(q.Denom(), r.n), r.n)
	if inv == nil {
		return ModInt{}, ringErrorf("IntegersMod.FromRat", ErrNotRepresentable)
	}

	return r.reduce(inv.Mul(inv, q.Num())), nil
}

// Inv returns a⁻¹ mod n.
func (r *IntegersMod) Inv(a ModInt) (ModInt, error) {
	if a.IsZero() {
		return ModInt{}, ringErrorf("IntegersMod.Inv", ErrDivisionByZero)
	}
	inv := new(big.Int).ModInverse(a.v, r.n)
	if inv == nil {
		return ModInt{}, ringErrorf("IntegersMod.Inv", ErrNotInvertible)
	}

	return ModInt{r: r, v: inv}, nil
}

// Parse reads a decimal integer literal and reduces it mod n.
func (r *IntegersMod) Parse(s string) (ModInt, error) {
	v, err := parseRat(r.name, s, true)
	if err != nil {
		return ModInt{}, err
	}

	return r.reduce(v.Num()), nil
}

// String returns "Integers modulo n".
func (r *IntegersMod) String() string { return r.name }

// ModInt is an immutable residue class. Values must be obtained from their
// IntegersMod descriptor; the zero value has no ring.
type ModInt struct {
	r *IntegersMod
	v *big.Int // canonical representative in [0, n)
}

// Ring returns the owning residue ring.
func (a ModInt) Ring() Ring[ModInt] { return a.r }

// Value returns a copy of the canonical representative.
func (a ModInt) Value() *big.Int { return new(big.Int).Set(a.v) }

// same panics when a and b live in different residue rings. The module layer
// validates ring identity first, so reaching this is a programmer error.
func (a ModInt) same(b ModInt) {
	if a.r != b.r {
		panic(fmt.Sprintf("ring: mixing %v and %v", a.r, b.r))
	}
}

// Add returns a+b mod n.
func (a ModInt) Add(b ModInt) ModInt {
	a.same(b)
	return a.r.reduce(new(big.Int).Add(a.v, b.v))
}

// Sub returns a-b mod n.
func (a ModInt) Sub(b ModInt) ModInt {
	a.same(b)
	return a.r.reduce(new(big.Int).Sub(a.v, b.v))
}

// Neg returns -a mod n.
func (a ModInt) Neg() ModInt { return a.r.reduce(new(big.Int).Neg(a.v)) }

// Mul returns a*b mod n.
func (a ModInt) Mul(b ModInt) ModInt {
	a.same(b)
	return a.r.reduce(new(big.Int).Mul(a.v, b.v))
}

// Equal reports whether a and b are the same class of the same ring.
func (a ModInt) Equal(b ModInt) bool { return a.r == b.r && a.v.Cmp(b.v) == 0 }

// IsZero reports a == 0 mod n.
func (a ModInt) IsZero() bool { return a.v.Sign() == 0 }

// String renders the canonical representative.
func (a ModInt) String() string { return a.v.String() }
