// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlalg/module"
	"github.com/katalvlaran/lvlalg/ring"
)

// Ring names accepted by --ring.
const (
	ringIntegers    = "ZZ"
	ringRationals   = "QQ"
	ringQuaternions = "HH"
	ringModPrefix   = "Z/"
)

// session evaluates ops against one free module. It hides the element type
// so commands can stay non-generic.
type session interface {
	Describe() string
	Gens() []string
	Apply(op string, args []string) (string, error)
}

// opArity is the operand count of every op understood by Apply.
var opArity = map[string]int{
	"describe": 0,
	"gens":     0,
	"neg":      1,
	"add":      2,
	"sub":      2,
	"eq":       2,
	"lmul":     2,
	"rmul":     2,
	"scale":    2,
}

// openSession resolves a ring name and builds the module of the given rank.
func openSession(name string, rank int, reg *module.Registry) (session, error) {
	switch name {
	case ringIntegers:
		return newSession[ring.Int](ring.ZZ, rank, reg)
	case ringRationals:
		return newSession[ring.Rat](ring.QQ, rank, reg)
	case ringQuaternions:
		return newSession[ring.Quat](ring.HH, rank, reg)
	}
	if mod, ok := strings.CutPrefix(name, ringModPrefix); ok {
		n, err := strconv.ParseInt(mod, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, errUnknownRing)
		}
		rg, err := ring.NewIntegersMod(n)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}

		return newSession[ring.ModInt](rg, rank, reg)
	}

	return nil, fmt.Errorf("%q (want %s, %s, %s or %s<n>): %w",
		name, ringIntegers, ringRationals, ringQuaternions, ringModPrefix, errUnknownRing)
}

// typedSession is the session over elements of type T.
type typedSession[T ring.Element[T]] struct {
	m *module.FreeModule[T]
}

func newSession[T ring.Element[T]](rg ring.Ring[T], rank int, reg *module.Registry) (session, error) {
	m, err := module.New[T](rg, rank, module.WithRegistry(reg))
	if err != nil {
		return nil, err
	}

	return &typedSession[T]{m: m}, nil
}

func (s *typedSession[T]) Describe() string { return s.m.String() }

func (s *typedSession[T]) Gens() []string {
	gens := s.m.Gens()
	out := make([]string, len(gens))
	for i, g := range gens {
		out[i] = g.String()
	}

	return out
}

// Apply runs one op. Element operands use the "(c1, ..., cn)" literal form;
// scalars use the base ring's literal form, except for scale which takes a
// plain integer or a rational p/q.
func (s *typedSession[T]) Apply(op string, args []string) (string, error) {
	want, ok := opArity[op]
	if !ok {
		return "", fmt.Errorf("%q: %w", op, errUnknownOp)
	}
	if len(args) != want {
		return "", fmt.Errorf("%s takes %d, got %d: %w", op, want, len(args), errArity)
	}

	switch op {
	case "describe":
		return s.Describe(), nil
	case "gens":
		return strings.Join(s.Gens(), "\n"), nil
	case "neg":
		a, err := s.m.Parse(args[0])
		if err != nil {
			return "", err
		}
		return a.Neg().String(), nil
	case "add", "sub", "eq":
		a, err := s.m.Parse(args[0])
		if err != nil {
			return "", err
		}
		b, err := s.m.Parse(args[1])
		if err != nil {
			return "", err
		}
		return s.binary(op, a, b)
	case "lmul":
		c, err := s.scalar(args[0])
		if err != nil {
			return "", err
		}
		a, err := s.m.Parse(args[1])
		if err != nil {
			return "", err
		}
		return stringOrErr[T](a.LeftMul(c))
	case "rmul":
		a, err := s.m.Parse(args[0])
		if err != nil {
			return "", err
		}
		c, err := s.scalar(args[1])
		if err != nil {
			return "", err
		}
		return stringOrErr[T](a.RightMul(c))
	default: // scale
		a, err := s.m.Parse(args[1])
		if err != nil {
			return "", err
		}
		return s.scale(args[0], a)
	}
}

func (s *typedSession[T]) binary(op string, a, b *module.Element[T]) (string, error) {
	switch op {
	case "add":
		return stringOrErr[T](a.Add(b))
	case "sub":
		return stringOrErr[T](a.Sub(b))
	default:
		eq, err := a.Equal(b)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(eq), nil
	}
}

// scalar reads a ring-typed scalar.
func (s *typedSession[T]) scalar(lit string) (T, error) {
	var zero T
	p, ok := s.m.BaseRing().(ring.Parser[T])
	if !ok {
		return zero, fmt.Errorf("%v cannot read %q: %w", s.m.BaseRing(), lit, errBadScalar)
	}
	c, err := p.Parse(lit)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", errBadScalar, err)
	}

	return c, nil
}

// scale applies a plain integer or rational scalar.
func (s *typedSession[T]) scale(lit string, a *module.Element[T]) (string, error) {
	if strings.Contains(lit, "/") {
		q, err := ring.QQ.Parse(lit)
		if err != nil {
			return "", fmt.Errorf("%w: %w", errBadScalar, err)
		}
		return stringOrErr[T](module.ScaleRat[T](a, q.BigRat()))
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%q: %w", lit, errBadScalar)
	}

	return stringOrErr[T](module.Scale[T, int64](a, n))
}

func stringOrErr[T ring.Element[T]](e *module.Element[T], err error) (string, error) {
	if err != nil {
		return "", err
	}

	return e.String(), nil
}
