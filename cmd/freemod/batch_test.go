// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/katalvlaran/lvlalg/module"
	"github.com/stretchr/testify/require"
)

const scriptZZ3 = `
ring = "ZZ"
rank = 3

[[op]]
name = "add"
args = ["(1, 2, 3)", "(4, 5, 6)"]

[[op]]
name = "scale"
args = ["3", "(1, 2, 3)"]

[[op]]
name = "eq"
args = ["(1, 2, 3)", "(1, 2, 3)"]

[[op]]
name = "describe"
`

func TestBatch(t *testing.T) {
	path := writeFile(t, "ops.toml", scriptZZ3)

	out, _, err := run(t, "--ring", "QQ", "batch", path)
	require.NoError(t, err)
	require.Equal(t, "(5, 7, 9)\n(3, 6, 9)\ntrue\nFree module of rank 3 over Integers\n", out)
}

func TestBatchDefaultsFromFlags(t *testing.T) {
	path := writeFile(t, "ops.toml", "[[op]]\nname = \"gens\"\n")

	out, _, err := run(t, "--ring", "Z/3", "--rank", "2", "batch", path)
	require.NoError(t, err)
	require.Equal(t, "(1, 0)\n(0, 1)\n", out)
}

func TestBatchErrors(t *testing.T) {
	path := writeFile(t, "bad.toml", `
[[op]]
name = "neg"
args = ["(1, 2, 3)"]

[[op]]
name = "add"
args = ["(1, 2)", "(1, 2, 3)"]

[[op]]
name = "neg"
args = ["(0, 0, 0)"]
`)
	out, _, err := run(t, "batch", path)
	require.ErrorIs(t, err, module.ErrDimensionMismatch)
	require.ErrorContains(t, err, "op 2 (add)")
	require.Equal(t, "(-1, -2, -3)\n", out, "ops after the failure do not run")

	path = writeFile(t, "unknown.toml", "[[op]]\nname = \"mul\"\nargs = []\n")
	_, _, err = run(t, "batch", path)
	require.ErrorIs(t, err, errUnknownOp)

	path = writeFile(t, "arity.toml", "[[op]]\nname = \"add\"\nargs = [\"(1, 2, 3)\"]\n")
	_, _, err = run(t, "batch", path)
	require.ErrorIs(t, err, errArity)

	path = writeFile(t, "typo.toml", "rnak = 3\n")
	_, _, err = run(t, "batch", path)
	require.Error(t, err)

	_, _, err = run(t, "batch", path+".missing")
	require.Error(t, err)
}
