// SPDX-License-Identifier: MIT
// Package module_test contains unit tests for free-module descriptors.
package module_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/module"
	"github.com/katalvlaran/lvlalg/ring"
	"github.com/stretchr/testify/require"
)

// newZZ returns a freshly allocated (uncached) ZZ^n.
func newZZ(t *testing.T, n int) *module.FreeModule[ring.Int] {
	t.Helper()
	M, err := module.New[ring.Int](ring.ZZ, n, module.WithCache(false))
	require.NoError(t, err)

	return M
}

// mustInts builds an element of M from plain integers or fails the test.
func mustInts[T ring.Element[T]](t *testing.T, M *module.FreeModule[T], vals ...int64) *module.Element[T] {
	t.Helper()
	e, err := M.FromInts(vals...)
	require.NoError(t, err)

	return e
}

// requireEqual asserts element equality under the module's own Equal.
func requireEqual[T ring.Element[T]](t *testing.T, want, got *module.Element[T]) {
	t.Helper()
	eq, err := want.Equal(got)
	require.NoError(t, err)
	require.Truef(t, eq, "want %s, got %s", want, got)
}

// TestNewValidation covers the constructor contract.
func TestNewValidation(t *testing.T) {
	_, err := module.New[ring.Int](nil, 2)
	require.ErrorIs(t, err, module.ErrNilRing)

	_, err = module.New[ring.Int](ring.ZZ, -1)
	require.ErrorIs(t, err, module.ErrNegativeRank)

	require.Panics(t, func() { module.WithRegistry(nil) })
}

// TestAccessors covers Rank, BaseRing, NumGens, Dimension and String.
func TestAccessors(t *testing.T) {
	M := newZZ(t, 3)
	require.Equal(t, 3, M.Rank())
	require.Equal(t, 3, M.NumGens())
	require.Equal(t, ring.Ring[ring.Int](ring.ZZ), M.BaseRing())
	require.False(t, M.IsVectorSpace())
	require.Equal(t, "Free module of rank 3 over Integers", M.String())

	_, err := M.Dimension()
	require.ErrorIs(t, err, module.ErrNotVectorSpace)

	V, err := module.New[ring.Rat](ring.QQ, 2, module.WithCache(false))
	require.NoError(t, err)
	require.True(t, V.IsVectorSpace())
	require.Equal(t, "Vector space of dimension 2 over Rationals", V.String())
	d, err := V.Dimension()
	require.NoError(t, err)
	require.Equal(t, 2, d)
}

// TestDescriptorNaming covers the remaining rings: prime and composite
// residue rings and the noncommutative quaternions.
func TestDescriptorNaming(t *testing.T) {
	z7, err := ring.NewIntegersMod(7)
	require.NoError(t, err)
	z8, err := ring.NewIntegersMod(8)
	require.NoError(t, err)

	F, err := module.New[ring.ModInt](z7, 4, module.WithCache(false))
	require.NoError(t, err)
	require.Equal(t, "Vector space of dimension 4 over Integers modulo 7", F.String())

	R, err := module.New[ring.ModInt](z8, 4, module.WithCache(false))
	require.NoError(t, err)
	require.Equal(t, "Free module of rank 4 over Integers modulo 8", R.String())

	H, err := module.New[ring.Quat](ring.HH, 1, module.WithCache(false))
	require.NoError(t, err)
	require.Equal(t, "Free module of rank 1 over Quaternions over Rationals", H.String())
}

// TestGenerators checks that Gen(i) has One at i and Zero elsewhere.
func TestGenerators(t *testing.T) {
	const n = 4
	M := newZZ(t, n)

	gens := M.Gens()
	require.Len(t, gens, n)
	for i := 1; i <= n; i++ {
		g, err := M.Gen(i)
		require.NoError(t, err)
		requireEqual(t, gens[i-1], g)
		require.Same(t, M, g.Parent())
		for j := 1; j <= n; j++ {
			c, err := g.Coordinate(j)
			require.NoError(t, err)
			if i == j {
				require.True(t, c.Equal(ring.ZZ.One()))
			} else {
				require.True(t, c.IsZero())
			}
		}
	}
	require.Equal(t, "(0, 1, 0, 0)", gens[1].String())

	for _, bad := range []int{0, -1, n + 1} {
		_, err := M.Gen(bad)
		require.ErrorIs(t, err, module.ErrIndexOutOfRange)
	}
}

// TestGeneratorsModN uses the ring's own zero and one, not Go zero values.
func TestGeneratorsModN(t *testing.T) {
	z5, err := ring.NewIntegersMod(5)
	require.NoError(t, err)
	M, err := module.New[ring.ModInt](z5, 2, module.WithCache(false))
	require.NoError(t, err)

	g, err := M.Gen(2)
	require.NoError(t, err)
	require.Equal(t, "(0, 1)", g.String())

	gens := M.Gens()
	require.Len(t, gens, 2)
	require.Equal(t, "(1, 0)", gens[0].String())
	requireEqual(t, g, gens[1])
	for _, c := range g.Coordinates() {
		require.Equal(t, ring.Ring[ring.ModInt](z5), c.Ring())
	}
}

// TestMakeRoundTrip verifies make(coords).coordinates == coords.
func TestMakeRoundTrip(t *testing.T) {
	M, err := module.New[ring.Rat](ring.QQ, 3, module.WithCache(false))
	require.NoError(t, err)

	coords := []ring.Rat{ring.NewRat(1, 2), ring.NewRat(-3, 1), ring.QQ.Zero()}
	e, err := M.Make(coords...)
	require.NoError(t, err)

	got := e.Coordinates()
	require.Len(t, got, len(coords))
	for i := range coords {
		require.True(t, coords[i].Equal(got[i]))
	}

	got[0] = ring.NewRat(99, 1) // copies only
	c, err := e.Coordinate(1)
	require.NoError(t, err)
	require.Equal(t, "1/2", c.String())

	_, err = e.Coordinate(4)
	require.ErrorIs(t, err, module.ErrIndexOutOfRange)
}

// TestMakeValidation covers length and ring checks.
func TestMakeValidation(t *testing.T) {
	M := newZZ(t, 3)

	_, err := M.FromInts(1, 2)
	require.ErrorIs(t, err, module.ErrDimensionMismatch)
	_, err = M.FromInts(1, 2, 3, 4)
	require.ErrorIs(t, err, module.ErrDimensionMismatch)

	z5a, err := ring.NewIntegersMod(5)
	require.NoError(t, err)
	z5b, err := ring.NewIntegersMod(5)
	require.NoError(t, err)
	N, err := module.New[ring.ModInt](z5a, 1, module.WithCache(false))
	require.NoError(t, err)
	_, err = N.Make(z5b.One())
	require.ErrorIs(t, err, module.ErrIncompatibleRing)
}

// TestFromMatrix covers shape checks, ring checks and defensive copying.
func TestFromMatrix(t *testing.T) {
	M := newZZ(t, 2)

	row, err := matrix.NewRowVector[ring.Int](ring.ZZ, []ring.Int{ring.NewInt(7), ring.NewInt(8)})
	require.NoError(t, err)
	e, err := M.FromMatrix(row)
	require.NoError(t, err)
	require.Equal(t, "(7, 8)", e.String())

	require.NoError(t, row.Set(0, 0, ring.NewInt(-1)))
	require.Equal(t, "(7, 8)", e.String(), "element must not alias the source matrix")

	tall, err := matrix.NewDense[ring.Int](ring.ZZ, 2, 2)
	require.NoError(t, err)
	_, err = M.FromMatrix(tall)
	require.ErrorIs(t, err, module.ErrDimensionMismatch)

	wide, err := matrix.NewDense[ring.Int](ring.ZZ, 1, 3)
	require.NoError(t, err)
	_, err = M.FromMatrix(wide)
	require.ErrorIs(t, err, module.ErrDimensionMismatch)

	_, err = M.FromMatrix(nil)
	require.ErrorIs(t, err, module.ErrNilElement)

	z3, err := ring.NewIntegersMod(3)
	require.NoError(t, err)
	N, err := module.New[ring.ModInt](z3, 2, module.WithCache(false))
	require.NoError(t, err)
	z3other, err := ring.NewIntegersMod(3)
	require.NoError(t, err)
	foreign, err := matrix.ZeroRow[ring.ModInt](z3other, 2)
	require.NoError(t, err)
	_, err = N.FromMatrix(foreign)
	require.ErrorIs(t, err, module.ErrIncompatibleRing)

	m := e.Matrix()
	require.NoError(t, m.Set(0, 1, ring.NewInt(0)))
	require.Equal(t, "(7, 8)", e.String())
}

// TestRankZero covers the degenerate module.
func TestRankZero(t *testing.T) {
	M := newZZ(t, 0)

	e, err := M.Make()
	require.NoError(t, err)
	require.Equal(t, "()", e.String())
	require.True(t, e.IsZero())
	require.Empty(t, M.Gens())
	requireEqual(t, M.Zero(), e)

	_, err = M.Gen(1)
	require.ErrorIs(t, err, module.ErrIndexOutOfRange)

	empty, err := matrix.NewRowVector[ring.Int](ring.ZZ, nil)
	require.NoError(t, err)
	f, err := M.FromMatrix(empty)
	require.NoError(t, err)
	requireEqual(t, e, f)
}
