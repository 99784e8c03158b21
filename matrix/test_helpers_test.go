// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures over ZZ and HH.
//   • Offer hide{} to force the non-*Dense fallback paths in kernels.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix to hide its concrete type from type assertions, so
// kernels under test take the At/Set fallback path.
type hide struct{ matrix.Matrix[ring.Int] }

// ints converts plain integers into ZZ elements.
func ints(vals ...int64) []ring.Int {
	out := make([]ring.Int, len(vals))
	for i, v := range vals {
		out[i] = ring.NewInt(v)
	}

	return out
}

// MustRow builds a 1×n integer row vector or fails the test.
func MustRow(t *testing.T, vals ...int64) *matrix.Dense[ring.Int] {
	t.Helper()
	m, err := matrix.NewRowVector[ring.Int](ring.ZZ, ints(vals...))
	require.NoError(t, err)

	return m
}

// MustRows builds an integer matrix from row literals or fails the test.
func MustRows(t *testing.T, rows ...[]int64) *matrix.Dense[ring.Int] {
	t.Helper()
	require.NotEmpty(t, rows)
	m, err := matrix.NewDense[ring.Int](ring.ZZ, len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, r := range rows {
		require.Len(t, r, len(rows[0]))
		for j, v := range ints(r...) {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// requireRow asserts that m is a 1×len(want) row with the given entries.
func requireRow(t *testing.T, m matrix.Matrix[ring.Int], want ...int64) {
	t.Helper()
	require.Equal(t, 1, m.Rows())
	require.Equal(t, len(want), m.Cols())
	for j, w := range want {
		v, err := m.At(0, j)
		require.NoError(t, err)
		require.Truef(t, v.Equal(ring.NewInt(w)), "col %d: got %s want %d", j, v, w)
	}
}
