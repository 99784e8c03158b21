// SPDX-License-Identifier: MIT

package ring

import "math/big"

// Integers is the ring ZZ of arbitrary-precision integers.
// Use the singleton ZZ; the type is exported only for documentation.
type Integers struct {
	name string // non-empty so distinct descriptors never share an address
}

// ZZ is the integer ring.
var ZZ = &Integers{name: "Integers"}

// Compile-time conformance.
var (
	_ Ring[Int]    = (*Integers)(nil)
	_ Parser[Int]  = (*Integers)(nil)
	_ Element[Int] = Int{}
)

// Zero returns 0.
func (*Integers) Zero() Int { return Int{} }

// One returns 1.
func (*Integers) One() Int { return NewInt(1) }

// FromBigInt returns a copy of n as an Int.
func (*Integers) FromBigInt(n *big.Int) Int { return Int{v: new(big.Int).Set(n)} }

// FromRat returns q when it is integral, ErrNotRepresentable otherwise.
func (*Integers) FromRat(q *big.Rat) (Int, error) {
	if !q.IsInt() {
		return Int{}, ringErrorf("Integers.FromRat", ErrNotRepresentable)
	}

	return Int{v: new(big.Int).Set(q.Num())}, nil
}

// Parse reads a decimal integer literal such as "-12".
func (z *Integers) Parse(s string) (Int, error) {
	v, err := parseRat(z.name, s, true)
	if err != nil {
		return Int{}, err
	}

	return Int{v: new(big.Int).Set(v.Num())}, nil
}

// String returns "Integers".
func (z *Integers) String() string { return z.name }

// Int is an immutable element of ZZ. The zero value is 0.
type Int struct {
	v *big.Int // nil means 0; never mutated after construction
}

// NewInt returns n as an element of ZZ.
func NewInt(n int64) Int { return Int{v: big.NewInt(n)} }

// bigval returns the backing value, treating nil as zero.
func (a Int) bigval() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}

	return a.v
}

// BigInt returns a copy of the value.
func (a Int) BigInt() *big.Int { return new(big.Int).Set(a.bigval()) }

// Ring returns ZZ.
func (Int) Ring() Ring[Int] { return ZZ }

// Add returns a+b.
func (a Int) Add(b Int) Int { return Int{v: new(big.Int).Add(a.bigval(), b.bigval())} }

// Sub returns a-b.
func (a Int) Sub(b Int) Int { return Int{v: new(big.Int).Sub(a.bigval(), b.bigval())} }

// Neg returns -a.
func (a Int) Neg() Int { return Int{v: new(big.Int).Neg(a.bigval())} }

// Mul returns a*b.
func (a Int) Mul(b Int) Int { return Int{v: new(big.Int).Mul(a.bigval(), b.bigval())} }

// Equal reports a == b.
func (a Int) Equal(b Int) bool { return a.bigval().Cmp(b.bigval()) == 0 }

// IsZero reports a == 0.
func (a Int) IsZero() bool { return a.bigval().Sign() == 0 }

// String renders a in base 10.
func (a Int) String() string { return a.bigval().String() }
