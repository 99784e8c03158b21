// SPDX-License-Identifier: MIT

package module

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// Formatting of descriptors.
const (
	_fmtFreeModule  = "Free module of rank %d over %s"
	_fmtVectorSpace = "Vector space of dimension %d over %s"
)

// FreeModule is the descriptor of the free module R^rank over a base ring R.
// Descriptors are immutable and compared by pointer identity.
type FreeModule[T ring.Element[T]] struct {
	ring        ring.Ring[T] // base ring
	rank        int          // fixed at construction
	vectorSpace bool         // ring.IsField(ring), computed once
}

// New returns the free module of the given rank over rg.
//
// Caching (default on): repeated calls with the same ring instance and rank
// return the same descriptor. WithCache(false) always allocates.
//
// Errors: ErrNilRing, ErrUncomparableRing, ErrNegativeRank.
// Complexity: O(1) amortized.
func New[T ring.Element[T]](rg ring.Ring[T], rank int, opts ...Option) (*FreeModule[T], error) {
	if rg == nil {
		return nil, moduleErrorf("New", ErrNilRing)
	}
	// Every Make and scalar check compares rings with ==.
	if !reflect.ValueOf(rg).Comparable() {
		return nil, fmt.Errorf("New: %T: %w", rg, ErrUncomparableRing)
	}
	if rank < 0 {
		return nil, moduleErrorf(fmt.Sprintf("New(rank=%d)", rank), ErrNegativeRank)
	}
	o := gatherOptions(opts)
	if !o.cached {
		return newFreeModule(rg, rank), nil
	}

	return lookupOrCreate(o.registry, rg, rank), nil
}

// newFreeModule allocates a descriptor; inputs are already validated.
func newFreeModule[T ring.Element[T]](rg ring.Ring[T], rank int) *FreeModule[T] {
	return &FreeModule[T]{ring: rg, rank: rank, vectorSpace: ring.IsField(rg)}
}

// Rank returns the fixed rank n.
func (m *FreeModule[T]) Rank() int { return m.rank }

// BaseRing returns the coefficient ring.
func (m *FreeModule[T]) BaseRing() ring.Ring[T] { return m.ring }

// NumGens returns the number of standard generators, equal to the rank.
func (m *FreeModule[T]) NumGens() int { return m.rank }

// IsVectorSpace reports whether the base ring is a field.
func (m *FreeModule[T]) IsVectorSpace() bool { return m.vectorSpace }

// Dimension returns the rank when the module is a vector space, and
// ErrNotVectorSpace otherwise.
func (m *FreeModule[T]) Dimension() (int, error) {
	if !m.vectorSpace {
		return 0, moduleErrorf("Dimension", ErrNotVectorSpace)
	}

	return m.rank, nil
}

// Gen returns the i-th standard basis element, 1 <= i <= rank: One() in
// position i and Zero() elsewhere.
//
// Errors: ErrIndexOutOfRange.
func (m *FreeModule[T]) Gen(i int) (*Element[T], error) {
	if i < 1 || i > m.rank {
		return nil, fmt.Errorf("Gen(%d) with rank %d: %w", i, m.rank, ErrIndexOutOfRange)
	}
	row, err := matrix.UnitRow(m.ring, m.rank, i-1)
	if err != nil {
		return nil, moduleErrorf("Gen", err)
	}

	return m.wrap(row), nil
}

// Gens returns [Gen(1), ..., Gen(rank)] in order: the rows of the rank×rank
// identity matrix.
func (m *FreeModule[T]) Gens() []*Element[T] {
	out := make([]*Element[T], m.rank)
	if m.rank == 0 {
		return out
	}
	id, _ := matrix.NewIdentity(m.ring, m.rank) // rank > 0, ring non-nil
	for i := range out {
		vals, _ := id.Row(i)
		row, _ := matrix.NewRowVector(m.ring, vals) // entries come from m.ring
		out[i] = m.wrap(row)
	}

	return out
}

// Zero returns the element with all coordinates Zero().
func (m *FreeModule[T]) Zero() *Element[T] {
	row, _ := matrix.ZeroRow(m.ring, m.rank) // rank >= 0 and ring non-nil by construction

	return m.wrap(row)
}

// Make builds the element with the given coordinates.
//
// Errors: ErrDimensionMismatch when len(coords) != rank; ErrIncompatibleRing
// when a coordinate belongs to another ring.
// Complexity: O(rank).
func (m *FreeModule[T]) Make(coords ...T) (*Element[T], error) {
	if len(coords) != m.rank {
		return nil, fmt.Errorf("Make: %d coordinates for rank %d: %w", len(coords), m.rank, ErrDimensionMismatch)
	}
	for i, c := range coords {
		if c.Ring() != m.ring {
			return nil, fmt.Errorf("Make: coordinate %d over %v: %w", i+1, c.Ring(), ErrIncompatibleRing)
		}
	}
	row, err := matrix.NewRowVector(m.ring, coords)
	if err != nil {
		return nil, moduleErrorf("Make", err)
	}

	return m.wrap(row), nil
}

// FromInts builds an element from plain integers, each coerced through the
// base ring's FromBigInt.
//
// Errors: ErrDimensionMismatch.
func (m *FreeModule[T]) FromInts(vals ...int64) (*Element[T], error) {
	coords := make([]T, len(vals))
	for i, v := range vals {
		coords[i] = ring.FromInt64(m.ring, v)
	}

	return m.Make(coords...)
}

// FromMatrix builds the element whose coordinates are the single row of rm.
// rm must be 1×rank over the base ring. rm is copied, so later mutation of rm
// through Set does not affect the element.
//
// Errors: ErrNilElement, ErrDimensionMismatch, ErrIncompatibleRing.
func (m *FreeModule[T]) FromMatrix(rm *matrix.Dense[T]) (*Element[T], error) {
	if rm == nil {
		return nil, moduleErrorf("FromMatrix", ErrNilElement)
	}
	if err := matrix.ValidateRowVector[T](rm, m.rank); err != nil {
		return nil, fmt.Errorf("FromMatrix: %d×%d for rank %d: %w", rm.Rows(), rm.Cols(), m.rank, ErrDimensionMismatch)
	}
	if rm.Ring() != m.ring {
		return nil, fmt.Errorf("FromMatrix: matrix over %v: %w", rm.Ring(), ErrIncompatibleRing)
	}
	row, err := matrix.CloneDense[T](rm)
	if err != nil {
		return nil, moduleErrorf("FromMatrix", err)
	}

	return m.wrap(row), nil
}

// wrap tags a validated row vector with this descriptor.
func (m *FreeModule[T]) wrap(row *matrix.Dense[T]) *Element[T] {
	return &Element[T]{parent: m, coords: row}
}

// String renders "Free module of rank n over R", or
// "Vector space of dimension n over R" when R is a field.
func (m *FreeModule[T]) String() string {
	if m.vectorSpace {
		return fmt.Sprintf(_fmtVectorSpace, m.rank, m.ring)
	}

	return fmt.Sprintf(_fmtFreeModule, m.rank, m.ring)
}
