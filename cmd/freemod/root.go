// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/lvlalg/module"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	cfg     config
	logger  *log.Logger
	reg     *module.Registry
}

// newRootCmd builds the command tree. Every call returns an independent tree
// with its own viper instance, so tests can run invocations side by side.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "freemod",
		Short: "Arithmetic in free modules R^n over ZZ, QQ, HH and Z/n",
		Long: `freemod builds the free module of rank --rank over --ring and evaluates
operations on elements written as "(c1, c2, ..., cn)".

Rings: ZZ (integers), QQ (rationals), HH (quaternions over QQ), Z/<n>.

Examples:
  freemod --ring ZZ --rank 3 add "(1, 2, 3)" "(4, 5, 6)"
  freemod --ring HH --rank 1 lmul i "(j)"
  freemod --ring QQ --rank 2 scale 1/2 "(1, 3)"
  freemod batch script.toml`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String("ring", defaultRing, "base ring: ZZ, QQ, HH or Z/<n>")
	flags.Int("rank", defaultRank, "rank of the free module")
	flags.StringVar(&a.cfgFile, "config", "", "TOML config file")
	flags.String("log-level", defaultLogLevel, "log level: debug, info, warn or error")

	root.AddCommand(
		newDescribeCmd(a),
		newGensCmd(a),
		newOpCmd(a, "neg", "A", "Print -A"),
		newOpCmd(a, "add", "A B", "Print A + B"),
		newOpCmd(a, "sub", "A B", "Print A - B"),
		newOpCmd(a, "eq", "A B", "Print whether A equals B"),
		newOpCmd(a, "lmul", "C A", "Print C·A (scalar on the left)"),
		newOpCmd(a, "rmul", "A C", "Print A·C (scalar on the right)"),
		newOpCmd(a, "scale", "N A", "Print N·A for an integer or rational N"),
		newBatchCmd(a),
	)

	return root
}

// setup resolves configuration and builds the logger and registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v, err := newViper(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	cfg, err := loadConfig(v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	a.reg = module.NewRegistry(module.WithLogger(a.logger))
	a.logger.Debug("configured", "ring", cfg.Ring, "rank", cfg.Rank, "config", a.cfgFile)

	return nil
}

// open returns a session for ringName and rank.
func (a *app) open(ringName string, rank int) (session, error) {
	s, err := openSession(ringName, rank, a.reg)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("session", "module", s.Describe())

	return s, nil
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the module description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(a.cfg.Ring, a.cfg.Rank)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.Describe())

			return nil
		},
	}
}

func newGensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gens",
		Short: "Print the standard generators, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(a.cfg.Ring, a.cfg.Rank)
			if err != nil {
				return err
			}
			for _, g := range s.Gens() {
				fmt.Fprintln(cmd.OutOrStdout(), g)
			}

			return nil
		},
	}
}

// newOpCmd wires one element operation to session.Apply.
func newOpCmd(a *app, op, operands, short string) *cobra.Command {
	return &cobra.Command{
		Use:   op + " " + operands,
		Short: short,
		Args:  cobra.ExactArgs(opArity[op]),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(a.cfg.Ring, a.cfg.Rank)
			if err != nil {
				return err
			}
			out, err := s.Apply(op, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
}
