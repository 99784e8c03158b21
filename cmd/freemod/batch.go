// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// batchFile is a TOML script:
//
//	ring = "ZZ"
//	rank = 3
//
//	[[op]]
//	name = "add"
//	args = ["(1, 2, 3)", "(4, 5, 6)"]
//
// ring and rank are optional and default to the resolved configuration.
type batchFile struct {
	Ring string    `toml:"ring"`
	Rank *int      `toml:"rank"`
	Ops  []batchOp `toml:"op"`
}

type batchOp struct {
	Name string   `toml:"name"`
	Args []string `toml:"args"`
}

// readBatch decodes path, rejecting unknown keys.
func readBatch(path string) (*batchFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var bf batchFile
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&bf); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &bf, nil
}

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Run the ops of a TOML script, one output line per op",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bf, err := readBatch(args[0])
			if err != nil {
				return err
			}
			ringName, rank := a.cfg.Ring, a.cfg.Rank
			if bf.Ring != "" {
				ringName = bf.Ring
			}
			if bf.Rank != nil {
				rank = *bf.Rank
			}
			s, err := a.open(ringName, rank)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, op := range bf.Ops {
				res, err := s.Apply(op.Name, op.Args)
				if err != nil {
					return fmt.Errorf("op %d (%s): %w", i+1, op.Name, err)
				}
				a.logger.Debug("op", "index", i+1, "name", op.Name, "result", res)
				fmt.Fprintln(out, res)
			}

			return nil
		},
	}
}
