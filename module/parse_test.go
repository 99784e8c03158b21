// SPDX-License-Identifier: MIT

package module_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/module"
	"github.com/katalvlaran/lvlalg/ring"
	"github.com/stretchr/testify/require"
)

// TestParseRoundTrip checks Parse(e.String()) == e over every shipped ring.
func TestParseRoundTrip(t *testing.T) {
	M := newZZ(t, 3)
	e := mustInts(t, M, 1, -2, 30)
	p, err := M.Parse(e.String())
	require.NoError(t, err)
	requireEqual(t, e, p)

	V, err := module.New[ring.Rat](ring.QQ, 2, module.WithCache(false))
	require.NoError(t, err)
	q, err := V.Make(ring.NewRat(-1, 3), ring.NewRat(7, 2))
	require.NoError(t, err)
	require.Equal(t, "(-1/3, 7/2)", q.String())
	pq, err := V.Parse(q.String())
	require.NoError(t, err)
	requireEqual(t, q, pq)

	H, err := module.New[ring.Quat](ring.HH, 2, module.WithCache(false))
	require.NoError(t, err)
	h, err := H.Parse("(1+2i-1/3j+k, -k)")
	require.NoError(t, err)
	require.Equal(t, "(1+2i-1/3j+k, -k)", h.String())

	spaced, err := H.Parse("( 1 + 2i - 1/3j + k ,-k )")
	require.NoError(t, err)
	requireEqual(t, h, spaced)

	z7, err := ring.NewIntegersMod(7)
	require.NoError(t, err)
	F, err := module.New[ring.ModInt](z7, 2, module.WithCache(false))
	require.NoError(t, err)
	f, err := F.Parse("(9, -1)")
	require.NoError(t, err)
	require.Equal(t, "(2, 6)", f.String())

	Z := newZZ(t, 0)
	z, err := Z.Parse("()")
	require.NoError(t, err)
	require.True(t, z.IsZero())
}

// TestParseErrors covers syntax, coordinate and arity failures.
func TestParseErrors(t *testing.T) {
	M := newZZ(t, 2)

	for _, bad := range []string{"", "1, 2", "(1, 2", "(1,, 2)", "(1 2)x", "((1), 2)"} {
		_, err := M.Parse(bad)
		require.ErrorIsf(t, err, module.ErrParse, "input %q", bad)
	}

	_, err := M.Parse("(1/2, 3)")
	require.ErrorIs(t, err, module.ErrParse)
	require.ErrorIs(t, err, ring.ErrParse)

	for _, bad := range []string{"(1 2, 3)", "(1, - 2)", "(0x10, 1)"} {
		_, err = M.Parse(bad)
		require.ErrorIsf(t, err, ring.ErrParse, "input %q", bad)
	}

	H, err := module.New[ring.Quat](ring.HH, 1, module.WithCache(false))
	require.NoError(t, err)
	for _, bad := range []string{"(2 3)", "(1 2i)", "(1/ 2)"} {
		_, err = H.Parse(bad)
		require.ErrorIsf(t, err, module.ErrParse, "input %q", bad)
	}

	_, err = M.Parse("(1, 2, 3)")
	require.ErrorIs(t, err, module.ErrDimensionMismatch)

	N, err := module.New[ring.Int](&bareRing{name: "bare"}, 1, module.WithCache(false))
	require.NoError(t, err)
	_, err = N.Parse("(1)")
	require.ErrorIs(t, err, module.ErrParse)
}
