// SPDX-License-Identifier: MIT

package ring

import (
	"math/big"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// scalarLiteral is a decimal integer or fraction: "-12", "3/4".
// Whitespace is not a token, so "1 2" and "1 / 2" fail to lex.
type scalarLiteral struct {
	Num string `parser:"@Int"`
	Den string `parser:"@Den?"`
}

var scalarLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[+-]?\d+`},
	{Name: "Den", Pattern: `/\d+`},
})

var scalarParser = participle.MustBuild[scalarLiteral](
	participle.Lexer(scalarLexer),
)

// quatLiteral is a signed sum of monomials: "1+2i-1/3j+k", "2 * i - 1".
// Only the first monomial may omit its sign, so "2 3" is rejected.
type quatLiteral struct {
	Sign string            `parser:"@Sign?"`
	Head *quatMonomial     `parser:"@@"`
	Tail []*quatSignedTerm `parser:"@@*"`
}

type quatSignedTerm struct {
	Sign string        `parser:"@Sign"`
	Mono *quatMonomial `parser:"@@"`
}

// quatMonomial captures [coefficient] [unit]; at least one is present.
type quatMonomial struct {
	Parts []string `parser:"( @Number ( \"*\"? @Unit )? | @Unit )"`
}

var quatLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `\d+(?:/\d+)?`},
	{Name: "Sign", Pattern: `[+-]`},
	{Name: "Unit", Pattern: `[ijk]`},
	{Name: "Star", Pattern: `\*`},
})

var quatParser = participle.MustBuild[quatLiteral](
	participle.Lexer(quatLexer),
	participle.Elide("Whitespace"),
)

// parseRat reads a decimal "p" or "p/q" literal. integral rejects the
// fraction form.
func parseRat(ringName, s string, integral bool) (*big.Rat, error) {
	src := strings.TrimSpace(s)
	lit, err := scalarParser.ParseString("", src)
	if err != nil || (integral && lit.Den != "") {
		return nil, parseErrorf(ringName, s)
	}
	v, ok := new(big.Rat).SetString(lit.Num + lit.Den)
	if !ok { // zero denominator
		return nil, parseErrorf(ringName, s)
	}

	return v, nil
}

// parseQuat reads the compact quaternion form produced by Quat.String.
func parseQuat(ringName, s string) (Quat, error) {
	lit, err := quatParser.ParseString("", s)
	if err != nil {
		return Quat{}, parseErrorf(ringName, s)
	}
	var out Quat
	add := func(sign string, m *quatMonomial) error {
		coeff, unit := big.NewRat(1, 1), 0
		for _, p := range m.Parts {
			if u := strings.IndexByte(quatUnits, p[0]); u >= 0 {
				unit = u + 1
				continue
			}
			v, ok := new(big.Rat).SetString(p)
			if !ok {
				return parseErrorf(ringName, s)
			}
			coeff = v
		}
		if sign == "-" {
			coeff.Neg(coeff)
		}
		out.c[unit] = out.c[unit].Add(Rat{v: coeff})

		return nil
	}
	if err := add(lit.Sign, lit.Head); err != nil {
		return Quat{}, err
	}
	for _, t := range lit.Tail {
		if err := add(t.Sign, t.Mono); err != nil {
			return Quat{}, err
		}
	}

	return out, nil
}
