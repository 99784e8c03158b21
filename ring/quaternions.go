// SPDX-License-Identifier: MIT

package ring

import (
	"math/big"
	"strings"
)

// Quaternions is the division ring HH of Hamilton quaternions with rational
// coefficients. Multiplication is NOT commutative (i·j = k, j·i = -k), so
// HH is deliberately not reported as a field.
type Quaternions struct {
	name string
}

// HH is the quaternion ring over QQ.
var HH = &Quaternions{name: "Quaternions over Rationals"}

var (
	_ Field[Quat]       = (*Quaternions)(nil)
	_ Parser[Quat]      = (*Quaternions)(nil)
	_ RatEmbedder[Quat] = (*Quaternions)(nil)
	_ Element[Quat]     = Quat{}
)

// quatUnits are the rendering symbols of the imaginary units, in order.
const quatUnits = "ijk"

// IsField returns false: HH is a division ring, not a commutative field.
func (*Quaternions) IsField() bool { return false }

// Zero returns 0.
func (*Quaternions) Zero() Quat { return Quat{} }

// One returns 1.
func (*Quaternions) One() Quat { return NewQuat(NewRat(1, 1), Rat{}, Rat{}, Rat{}) }

// FromBigInt returns n as a real quaternion.
func (*Quaternions) FromBigInt(n *big.Int) Quat {
	return Quat{c: [4]Rat{{v: new(big.Rat).SetInt(n)}}}
}

// FromRat returns q as a real quaternion.
func (*Quaternions) FromRat(q *big.Rat) (Quat, error) {
	return Quat{c: [4]Rat{{v: new(big.Rat).Set(q)}}}, nil
}

// I, J and K return the imaginary units.
func (*Quaternions) I() Quat { return NewQuat(Rat{}, NewRat(1, 1), Rat{}, Rat{}) }
func (*Quaternions) J() Quat { return NewQuat(Rat{}, Rat{}, NewRat(1, 1), Rat{}) }
func (*Quaternions) K() Quat { return NewQuat(Rat{}, Rat{}, Rat{}, NewRat(1, 1)) }

// Inv returns conj(a)/|a|², the two-sided inverse.
func (*Quaternions) Inv(a Quat) (Quat, error) {
	if a.IsZero() {
		return Quat{}, ringErrorf("Quaternions.Inv", ErrDivisionByZero)
	}
	norm := a.Norm()
	inv, _ := QQ.Inv(norm) // norm > 0 for a != 0
	conj := a.Conj()
	var out Quat
	for t := range conj.c {
		out.c[t] = conj.c[t].Mul(inv)
	}

	return out, nil
}

// Parse reads the compact form produced by Quat.String, e.g. "1+2i-1/3j+k".
// Whitespace around signs and '*' between coefficient and unit are tolerated.
func (h *Quaternions) Parse(s string) (Quat, error) { return parseQuat(h.name, s) }

// String returns "Quaternions over Rationals".
func (h *Quaternions) String() string { return h.name }

// Quat is an immutable quaternion a + b·i + c·j + d·k. The zero value is 0.
type Quat struct {
	c [4]Rat // real, i, j, k coefficients
}

// NewQuat returns a + b·i + c·j + d·k.
func NewQuat(a, b, c, d Rat) Quat { return Quat{c: [4]Rat{a, b, c, d}} }

// Coeffs returns the (real, i, j, k) coefficients.
func (q Quat) Coeffs() [4]Rat { return q.c }

// Ring returns HH.
func (Quat) Ring() Ring[Quat] { return HH }

// Add returns q+p.
func (q Quat) Add(p Quat) Quat {
	var out Quat
	for t := range q.c {
		out.c[t] = q.c[t].Add(p.c[t])
	}

	return out
}

// Sub returns q-p.
func (q Quat) Sub(p Quat) Quat {
	var out Quat
	for t := range q.c {
		out.c[t] = q.c[t].Sub(p.c[t])
	}

	return out
}

// Neg returns -q.
func (q Quat) Neg() Quat {
	var out Quat
	for t := range q.c {
		out.c[t] = q.c[t].Neg()
	}

	return out
}

// Mul returns the Hamilton product q·p (q on the left).
func (q Quat) Mul(p Quat) Quat {
	a1, b1, c1, d1 := q.c[0], q.c[1], q.c[2], q.c[3]
	a2, b2, c2, d2 := p.c[0], p.c[1], p.c[2], p.c[3]

	return Quat{c: [4]Rat{
		a1.Mul(a2).Sub(b1.Mul(b2)).Sub(c1.Mul(c2)).Sub(d1.Mul(d2)),
		a1.Mul(b2).Add(b1.Mul(a2)).Add(c1.Mul(d2)).Sub(d1.Mul(c2)),
		a1.Mul(c2).Sub(b1.Mul(d2)).Add(c1.Mul(a2)).Add(d1.Mul(b2)),
		a1.Mul(d2).Add(b1.Mul(c2)).Sub(c1.Mul(b2)).Add(d1.Mul(a2)),
	}}
}

// Conj returns the conjugate a - b·i - c·j - d·k.
func (q Quat) Conj() Quat {
	return Quat{c: [4]Rat{q.c[0], q.c[1].Neg(), q.c[2].Neg(), q.c[3].Neg()}}
}

// Norm returns a² + b² + c² + d².
func (q Quat) Norm() Rat {
	var n Rat
	for _, x := range q.c {
		n = n.Add(x.Mul(x))
	}

	return n
}

// Equal reports coefficient-wise equality.
func (q Quat) Equal(p Quat) bool {
	for t := range q.c {
		if !q.c[t].Equal(p.c[t]) {
			return false
		}
	}

	return true
}

// IsZero reports q == 0.
func (q Quat) IsZero() bool {
	for _, x := range q.c {
		if !x.IsZero() {
			return false
		}
	}

	return true
}

// String renders q compactly: "0", "3", "-k", "1+2i-1/3j+k".
func (q Quat) String() string {
	var sb strings.Builder
	for t, x := range q.c {
		if x.IsZero() {
			continue
		}
		s := x.String()
		if t > 0 {
			switch s {
			case "1":
				s = ""
			case "-1":
				s = "-"
			}
			s += string(quatUnits[t-1])
		}
		if sb.Len() > 0 && s[0] != '-' {
			sb.WriteByte('+')
		}
		sb.WriteString(s)
	}
	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}
