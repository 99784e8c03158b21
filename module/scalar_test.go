// SPDX-License-Identifier: MIT

package module_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/lvlalg/module"
	"github.com/katalvlaran/lvlalg/ring"
	"github.com/stretchr/testify/require"
)

// TestScaleInteger is the untyped scalar scenario (1,2)*3 == (3,6).
func TestScaleInteger(t *testing.T) {
	M := newZZ(t, 2)
	x := mustInts(t, M, 1, 2)

	y, err := module.Scale(x, 3)
	require.NoError(t, err)
	requireEqual(t, mustInts(t, M, 3, 6), y)

	y, err = module.Scale(x, int8(-2))
	require.NoError(t, err)
	require.Equal(t, "(-2, -4)", y.String())

	y, err = module.Scale(x, uint64(math.MaxUint64))
	require.NoError(t, err)
	require.Equal(t, "(18446744073709551615, 36893488147419103230)", y.String())

	var none *module.Element[ring.Int]
	_, err = module.Scale(none, 1)
	require.ErrorIs(t, err, module.ErrNilElement)
}

// TestScaleIntegerOtherRings shows the coercion goes through the base ring.
func TestScaleIntegerOtherRings(t *testing.T) {
	z5, err := ring.NewIntegersMod(5)
	require.NoError(t, err)
	M, err := module.New[ring.ModInt](z5, 2, module.WithCache(false))
	require.NoError(t, err)
	y, err := module.Scale(mustInts(t, M, 1, 2), 3)
	require.NoError(t, err)
	require.Equal(t, "(3, 1)", y.String())

	H, err := module.New[ring.Quat](ring.HH, 1, module.WithCache(false))
	require.NoError(t, err)
	q, err := H.Make(ring.HH.I())
	require.NoError(t, err)
	q2, err := module.Scale(q, -2)
	require.NoError(t, err)
	require.Equal(t, "(-2i)", q2.String())
}

// TestScaleRat covers the rational path and its failures.
func TestScaleRat(t *testing.T) {
	V, err := module.New[ring.Rat](ring.QQ, 2, module.WithCache(false))
	require.NoError(t, err)
	y, err := module.ScaleRat(mustInts(t, V, 1, 3), big.NewRat(1, 2))
	require.NoError(t, err)
	require.Equal(t, "(1/2, 3/2)", y.String())

	M := newZZ(t, 2)
	x := mustInts(t, M, 2, 4)
	y2, err := module.ScaleRat(x, big.NewRat(3, 1))
	require.NoError(t, err)
	require.Equal(t, "(6, 12)", y2.String())

	_, err = module.ScaleRat(x, big.NewRat(1, 2))
	require.ErrorIs(t, err, module.ErrIncompatibleScalar)
	require.ErrorIs(t, err, ring.ErrNotRepresentable)

	_, err = module.ScaleRat(x, nil)
	require.ErrorIs(t, err, module.ErrIncompatibleScalar)
}

// TestScaleRatResidue checks inverse-based embedding into Z/n.
func TestScaleRatResidue(t *testing.T) {
	z7, err := ring.NewIntegersMod(7)
	require.NoError(t, err)
	F, err := module.New[ring.ModInt](z7, 1, module.WithCache(false))
	require.NoError(t, err)
	y, err := module.ScaleRat(mustInts(t, F, 1), big.NewRat(1, 2)) // 2⁻¹ = 4 mod 7
	require.NoError(t, err)
	require.Equal(t, "(4)", y.String())

	z6, err := ring.NewIntegersMod(6)
	require.NoError(t, err)
	R, err := module.New[ring.ModInt](z6, 1, module.WithCache(false))
	require.NoError(t, err)
	_, err = module.ScaleRat(mustInts(t, R, 1), big.NewRat(1, 2))
	require.ErrorIs(t, err, module.ErrIncompatibleScalar)
}
