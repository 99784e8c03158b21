// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep every entry tagged with the same ring; Set rejects foreign elements.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-fill; At/Set: O(1); Clone: O(r*c); Row: O(c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/ring"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix over a ring.
//   - r,c hold dimensions (rows, cols); zero is allowed only through the
//     zero-size friendly constructors.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T ring.Element[T]] struct {
	r, c int          // row and column counts
	ring ring.Ring[T] // coefficient ring of every entry
	data []T          // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[ring.Int] = (*Dense[ring.Int])(nil)
	_ fmt.Stringer     = (*Dense[ring.Int])(nil)
)

// NewDense creates an r×c zero matrix over rg.
// Implementation:
//   - Stage 1: validate rg != nil and rows>0 && cols>0.
//   - Stage 2: allocate the flat buffer and fill it with rg.Zero().
//
// Errors: ErrNilRing, ErrInvalidDimensions.
// Complexity: Time O(r*c), Space O(r*c).
func NewDense[T ring.Element[T]](rg ring.Ring[T], rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
	}

	return newDenseZeroOK(rg, rows, cols)
}

// newDenseZeroOK is the internal constructor that allows rows==0 or cols==0.
// The Go zero value of T is not necessarily the ring's zero (residue classes
// carry their ring), so every cell is filled explicitly.
func newDenseZeroOK[T ring.Element[T]](rg ring.Ring[T], rows, cols int) (*Dense[T], error) {
	if rg == nil {
		return nil, matrixErrorf("NewDense", ErrNilRing)
	}
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
	}
	buf := make([]T, rows*cols)
	zero := rg.Zero()
	for k := range buf {
		buf[k] = zero // elements are immutable, sharing is safe
	}

	return &Dense[T]{r: rows, c: cols, ring: rg, data: buf}, nil
}

// NewRowVector builds a 1×len(vals) matrix over rg from vals (copied).
// An empty vals yields the legal 1×0 row vector.
//
// Errors: ErrNilRing; ErrRingMismatch when some entry belongs to another ring.
// Complexity: O(n).
func NewRowVector[T ring.Element[T]](rg ring.Ring[T], vals []T) (*Dense[T], error) {
	if rg == nil {
		return nil, matrixErrorf("NewRowVector", ErrNilRing)
	}
	for j, v := range vals {
		if v.Ring() != rg {
			return nil, denseErrorf("NewRowVector", 0, j, ErrRingMismatch)
		}
	}
	buf := make([]T, len(vals))
	copy(buf, vals)

	return &Dense[T]{r: 1, c: len(vals), ring: rg, data: buf}, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Ring returns the coefficient ring.
func (m *Dense[T]) Ring() ring.Ring[T] { return m.ring }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// tagged with the calling method.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Stage 1 (Validate): bounds check via indexOf, then ring identity.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if v.Ring() != m.ring {
		return denseErrorf(ctxSet, row, col, ErrRingMismatch)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy of the Dense matrix. Entries are immutable ring
// elements, so copying the slice is enough.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() Matrix[T] { return m.cloneDense() }

func (m *Dense[T]) cloneDense() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{r: m.r, c: m.c, ring: m.ring, data: buf}
}

// String implements fmt.Stringer: one "[a, b, c]" line per row, entries in
// the ring's compact form.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
