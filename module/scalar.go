// SPDX-License-Identifier: MIT

package module

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
	"golang.org/x/exp/constraints"
)

// Scale returns s·e for a plain integer s of any Go integer type.
// The scalar is not tied to a ring instance, so no ring-identity check
// applies: s is coerced through BaseRing().FromBigInt. Integer multiples of
// one are central, so left and right multiplication agree.
//
// Errors: ErrNilElement.
func Scale[T ring.Element[T], S constraints.Integer](e *Element[T], s S) (*Element[T], error) {
	if e == nil {
		return nil, moduleErrorf("Scale", ErrNilElement)
	}

	return e.scaleCentral("Scale", e.parent.ring.FromBigInt(bigFromInteger(s)))
}

// ScaleRat returns q·e for a plain rational q, coerced through the base
// ring's ring.RatEmbedder capability.
//
// Errors: ErrNilElement; ErrIncompatibleScalar when q is nil, the ring cannot
// embed rationals, or q has no image in the ring (1/2 over ZZ). The ring's
// own error stays in the chain.
func ScaleRat[T ring.Element[T]](e *Element[T], q *big.Rat) (*Element[T], error) {
	if e == nil {
		return nil, moduleErrorf("ScaleRat", ErrNilElement)
	}
	if q == nil {
		return nil, moduleErrorf("ScaleRat: nil rational", ErrIncompatibleScalar)
	}
	emb, ok := e.parent.ring.(ring.RatEmbedder[T])
	if !ok {
		return nil, fmt.Errorf("ScaleRat: %v does not embed rationals: %w", e.parent.ring, ErrIncompatibleScalar)
	}
	c, err := emb.FromRat(q)
	if err != nil {
		return nil, fmt.Errorf("ScaleRat(%s): %w: %w", q.RatString(), ErrIncompatibleScalar, err)
	}

	return e.scaleCentral("ScaleRat", c)
}

// scaleCentral multiplies by a coerced central scalar.
func (e *Element[T]) scaleCentral(tag string, c T) (*Element[T], error) {
	row, err := matrix.ScaleRight[T](e.coords, c)
	if err != nil {
		return nil, moduleErrorf(tag, err)
	}

	return e.parent.wrap(row), nil
}

// bigFromInteger converts any Go integer without overflow.
func bigFromInteger[S constraints.Integer](s S) *big.Int {
	if s < 0 {
		return big.NewInt(int64(s))
	}

	return new(big.Int).SetUint64(uint64(s))
}
