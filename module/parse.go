// SPDX-License-Identifier: MIT

package module

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/katalvlaran/lvlalg/ring"
)

// elementLiteral is the grammar of the rendering produced by Element.String:
// a parenthesised, comma-separated, possibly empty coordinate list.
type elementLiteral struct {
	Coords []*coordLiteral `parser:"\"(\" ( @@ ( \",\" @@ )* )? \")\""`
}

// coordLiteral holds the raw tokens of one coordinate. They are re-joined
// with single spaces, so the ring parser decides whether inner whitespace is
// legal: "1 + 2i" is a quaternion, "1 2" is no integer.
type coordLiteral struct {
	Parts []string `parser:"@Term+"`
}

// literalLexer tokenizes element literals.
var literalLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Punct", Pattern: `[(),]`},
	// Anything else up to the next separator: "-3", "1/2", "1+2i-k".
	{Name: "Term", Pattern: `[^(),\s]+`},
})

var literalParser = participle.MustBuild[elementLiteral](
	participle.Lexer(literalLexer),
	participle.Elide("Whitespace"),
)

// Parse reads an element literal such as "(1, -2, 3/4)" and builds the
// element through Make, so the usual rank and ring checks apply. Each
// coordinate is handed to the base ring's ring.Parser.
//
// Errors: ErrParse (bad syntax, bad coordinate, ring without parser),
// ErrDimensionMismatch.
func (m *FreeModule[T]) Parse(s string) (*Element[T], error) {
	p, ok := m.ring.(ring.Parser[T])
	if !ok {
		return nil, fmt.Errorf("Parse: %v has no literal parser: %w", m.ring, ErrParse)
	}
	lit, err := literalParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("Parse(%q): %w: %v", s, ErrParse, err)
	}
	coords := make([]T, len(lit.Coords))
	for i, c := range lit.Coords {
		v, err := p.Parse(strings.Join(c.Parts, " "))
		if err != nil {
			return nil, fmt.Errorf("Parse(%q): coordinate %d: %w: %w", s, i+1, ErrParse, err)
		}
		coords[i] = v
	}

	return m.Make(coords...)
}
