// SPDX-License-Identifier: MIT

package ring

import "math/big"

// Rationals is the field QQ of arbitrary-precision rationals.
type Rationals struct {
	name string
}

// QQ is the rational field.
var QQ = &Rationals{name: "Rationals"}

var (
	_ Field[Rat]       = (*Rationals)(nil)
	_ Parser[Rat]      = (*Rationals)(nil)
	_ RatEmbedder[Rat] = (*Rationals)(nil)
	_ Element[Rat]     = Rat{}
)

// Zero returns 0.
func (*Rationals) Zero() Rat { return Rat{} }

// One returns 1.
func (*Rationals) One() Rat { return NewRat(1, 1) }

// FromBigInt returns n/1.
func (*Rationals) FromBigInt(n *big.Int) Rat { return Rat{v: new(big.Rat).SetInt(n)} }

// FromRat returns a copy of q.
func (*Rationals) FromRat(q *big.Rat) (Rat, error) { return Rat{v: new(big.Rat).Set(q)}, nil }

// Inv returns 1/a, or ErrDivisionByZero for a == 0.
func (*Rationals) Inv(a Rat) (Rat, error) {
	if a.IsZero() {
		return Rat{}, ringErrorf("Rationals.Inv", ErrDivisionByZero)
	}

	return Rat{v: new(big.Rat).Inv(a.bigval())}, nil
}

// Parse reads a decimal "p" or "p/q".
func (f *Rationals) Parse(s string) (Rat, error) {
	v, err := parseRat(f.name, s, false)
	if err != nil {
		return Rat{}, err
	}

	return Rat{v: v}, nil
}

// String returns "Rationals".
func (f *Rationals) String() string { return f.name }

// Rat is an immutable element of QQ. The zero value is 0.
type Rat struct {
	v *big.Rat // nil means 0
}

// NewRat returns num/den. It panics if den == 0, like big.NewRat.
func NewRat(num, den int64) Rat { return Rat{v: big.NewRat(num, den)} }

func (a Rat) bigval() *big.Rat {
	if a.v == nil {
		return new(big.Rat)
	}

	return a.v
}

// BigRat returns a copy of the value.
func (a Rat) BigRat() *big.Rat { return new(big.Rat).Set(a.bigval()) }

// Ring returns QQ.
func (Rat) Ring() Ring[Rat] { return QQ }

// Add returns a+b.
func (a Rat) Add(b Rat) Rat { return Rat{v: new(big.Rat).Add(a.bigval(), b.bigval())} }

// Sub returns a-b.
func (a Rat) Sub(b Rat) Rat { return Rat{v: new(big.Rat).Sub(a.bigval(), b.bigval())} }

// Neg returns -a.
func (a Rat) Neg() Rat { return Rat{v: new(big.Rat).Neg(a.bigval())} }

// Mul returns a*b.
func (a Rat) Mul(b Rat) Rat { return Rat{v: new(big.Rat).Mul(a.bigval(), b.bigval())} }

// Equal reports a == b.
func (a Rat) Equal(b Rat) bool { return a.bigval().Cmp(b.bigval()) == 0 }

// IsZero reports a == 0.
func (a Rat) IsZero() bool { return a.bigval().Sign() == 0 }

// String renders "p" for integers and "p/q" otherwise.
func (a Rat) String() string { return a.bigval().RatString() }
