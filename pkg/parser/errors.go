package parser

import (
	"fmt"
	"strings"

	"github.com/cwbudde/parsec/pkg/token"
)

// eofName is the auto-derived name of the Finished primitive. The final
// error formatter special-cases it: when Finished is the only thing that
// was expected at the furthest position, the message reads "should have
// reached <EOF>: ..." instead of the generic "got unexpected token" shape,
// because a dangling suffix after an otherwise-complete parse reads better
// that way than "expected <EOF>" would.
const eofName = "<EOF>"

// ParseError is raised when no parse path succeeds. It reports the
// furthest token any branch reached and the set of names attempted there,
// mirroring the "longest parsed prefix" discipline in the data model.
type ParseError struct {
	Pos      token.Position
	Got      string   // "" for end of input
	GotType  string   // token type at Pos, "" for end of input
	Expected []string // in first-seen order
}

func (e *ParseError) Error() string {
	expected := strings.Join(e.Expected, " or ")
	if e.Got == "" {
		return fmt.Sprintf("got unexpected end of input, expected: %s", expected)
	}
	if len(e.Expected) == 1 && e.Expected[0] == eofName {
		return fmt.Sprintf("should have reached %s: %s", eofName, e.Got)
	}
	return fmt.Sprintf("got unexpected token: %s, expected: %s", e.Got, expected)
}

// GrammarError indicates a bug in the grammar itself, not in the input:
// Many/OnePlus was applied to a parser that can succeed without consuming,
// or a Forward was used before being Defined. Never recovered by the
// engine; it always propagates out of Parse.
type GrammarError struct {
	Message string
}

func (e *GrammarError) Error() string {
	return e.Message
}

func buildParseError(tokens []token.Token, g *errState) *ParseError {
	expected := append([]string(nil), g.order...)
	if len(expected) == 0 {
		expected = []string{"<something>"}
	}
	if g.maxPos >= len(tokens) {
		pos := token.Position{Line: 1, Column: 1}
		if n := len(tokens); n > 0 {
			pos = tokens[n-1].End
		}
		return &ParseError{Pos: pos, Expected: expected}
	}
	tok := tokens[g.maxPos]
	return &ParseError{
		Pos:      tok.Start,
		Got:      tok.Value,
		GotType:  tok.Type,
		Expected: expected,
	}
}
