// SPDX-License-Identifier: MIT

package module

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// Formatting literals for elements.
const (
	_fmtOpen  = "("
	_fmtClose = ")"
	_fmtSep   = ", "
)

// Element is an immutable element of a FreeModule: a 1×rank row vector over
// the base ring plus a back-reference to its descriptor. Elements are only
// created through FreeModule entry points; every operation returns a new
// Element.
type Element[T ring.Element[T]] struct {
	parent *FreeModule[T]
	coords *matrix.Dense[T] // 1×parent.rank, never mutated after construction
}

// Parent returns the owning descriptor.
func (e *Element[T]) Parent() *FreeModule[T] { return e.parent }

// BaseRing returns Parent().BaseRing().
func (e *Element[T]) BaseRing() ring.Ring[T] { return e.parent.ring }

// Coordinates returns a copy of the coordinates in order.
func (e *Element[T]) Coordinates() []T {
	row, _ := e.coords.Row(0) // always 1×rank

	return row
}

// Coordinate returns the i-th coordinate, 1 <= i <= rank.
func (e *Element[T]) Coordinate(i int) (T, error) {
	if i < 1 || i > e.parent.rank {
		var zero T
		return zero, fmt.Errorf("Coordinate(%d) with rank %d: %w", i, e.parent.rank, ErrIndexOutOfRange)
	}

	return e.coords.At(0, i-1)
}

// Matrix returns a copy of the backing 1×rank row matrix.
func (e *Element[T]) Matrix() *matrix.Dense[T] {
	row, _ := matrix.CloneDense[T](e.coords)

	return row
}

// IsZero reports whether every coordinate is zero.
func (e *Element[T]) IsZero() bool {
	for _, c := range e.Coordinates() {
		if !c.IsZero() {
			return false
		}
	}

	return true
}

// checkParent enforces the parent-compatibility invariant for binary
// operations: both operands non-nil and tagged with the same descriptor.
func checkParent[T ring.Element[T]](tag string, a, b *Element[T]) error {
	if a == nil || b == nil {
		return moduleErrorf(tag, ErrNilElement)
	}
	if a.parent != b.parent {
		return fmt.Errorf("%s: %v vs %v: %w", tag, a.parent, b.parent, ErrIncompatibleParent)
	}

	return nil
}

// Neg returns -e.
func (e *Element[T]) Neg() *Element[T] {
	row, _ := matrix.Neg[T](e.coords) // coords is a valid non-nil row

	return e.parent.wrap(row)
}

// Add returns e + o.
// Errors: ErrNilElement, ErrIncompatibleParent.
func (e *Element[T]) Add(o *Element[T]) (*Element[T], error) {
	if err := checkParent("Add", e, o); err != nil {
		return nil, err
	}
	row, err := matrix.Add[T](e.coords, o.coords)
	if err != nil {
		return nil, moduleErrorf("Add", err)
	}

	return e.parent.wrap(row), nil
}

// Sub returns e - o.
// Errors: ErrNilElement, ErrIncompatibleParent.
func (e *Element[T]) Sub(o *Element[T]) (*Element[T], error) {
	if err := checkParent("Sub", e, o); err != nil {
		return nil, err
	}
	row, err := matrix.Sub[T](e.coords, o.coords)
	if err != nil {
		return nil, moduleErrorf("Sub", err)
	}

	return e.parent.wrap(row), nil
}

// LeftMul returns c·e, multiplying every coordinate by c from the left.
// Errors: ErrNilElement; ErrIncompatibleScalar when c is not over the base ring.
func (e *Element[T]) LeftMul(c T) (*Element[T], error) {
	if e == nil {
		return nil, moduleErrorf("LeftMul", ErrNilElement)
	}
	if c.Ring() != e.parent.ring {
		return nil, fmt.Errorf("LeftMul: scalar over %v: %w", c.Ring(), ErrIncompatibleScalar)
	}
	row, err := matrix.ScaleLeft[T](c, e.coords)
	if err != nil {
		return nil, moduleErrorf("LeftMul", err)
	}

	return e.parent.wrap(row), nil
}

// RightMul returns e·c, multiplying every coordinate by c from the right.
// Errors: ErrNilElement; ErrIncompatibleScalar when c is not over the base ring.
func (e *Element[T]) RightMul(c T) (*Element[T], error) {
	if e == nil {
		return nil, moduleErrorf("RightMul", ErrNilElement)
	}
	if c.Ring() != e.parent.ring {
		return nil, fmt.Errorf("RightMul: scalar over %v: %w", c.Ring(), ErrIncompatibleScalar)
	}
	row, err := matrix.ScaleRight[T](e.coords, c)
	if err != nil {
		return nil, moduleErrorf("RightMul", err)
	}

	return e.parent.wrap(row), nil
}

// Equal reports whether e and o have pairwise equal coordinates.
// Errors: ErrNilElement, ErrIncompatibleParent.
func (e *Element[T]) Equal(o *Element[T]) (bool, error) {
	if err := checkParent("Equal", e, o); err != nil {
		return false, err
	}
	eq, err := matrix.Equal[T](e.coords, o.coords)
	if err != nil {
		return false, moduleErrorf("Equal", err)
	}

	return eq, nil
}

// String renders "(c1, c2, ..., cn)" with coordinates in the ring's compact
// form; rank 0 renders as "()".
func (e *Element[T]) String() string {
	coords := e.Coordinates()
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = c.String()
	}

	return _fmtOpen + strings.Join(parts, _fmtSep) + _fmtClose
}
