package parser

import (
	"fmt"

	"github.com/cwbudde/parsec/pkg/token"
)

func halts(v bool) func() bool { return func() bool { return v } }

// Any matches any single token, whatever it is.
func Any() Parser {
	return Parser{
		name:    "any token",
		mayHalt: halts(true),
		run: func(toks []token.Token, pos int, g *errState) (any, int, bool) {
			if pos >= len(toks) {
				g.record(pos, "any token")
				return nil, pos, false
			}
			return toks[pos], pos + 1, true
		},
	}
}

// Satisfy matches the next token if pred reports true for it.
func Satisfy(name string, pred func(token.Token) bool) Parser {
	return Parser{
		name:    name,
		mayHalt: halts(true),
		run: func(toks []token.Token, pos int, g *errState) (any, int, bool) {
			if pos >= len(toks) || !pred(toks[pos]) {
				g.record(pos, name)
				return nil, pos, false
			}
			return toks[pos], pos + 1, true
		},
	}
}

// Equals matches a token equal (by Type and Value, per token.Token.Equal)
// to want. Its auto-derived name is a quoted form of want.Value.
func Equals(want token.Token) Parser {
	name := fmt.Sprintf("%q", want.Value)
	return Satisfy(name, func(tok token.Token) bool { return tok.Equal(want) })
}

// Match matches a token by Type alone, or by (Type, Value) when value is
// given. The auto-derived name is the type name, or a quoted value when
// one was given.
func Match(typ string, value ...string) Parser {
	if len(value) == 0 {
		return Satisfy(typ, func(tok token.Token) bool { return tok.Type == typ })
	}
	want := value[0]
	name := fmt.Sprintf("%q", want)
	return Satisfy(name, func(tok token.Token) bool {
		return tok.Type == typ && tok.Value == want
	})
}

// Pure always succeeds, consuming nothing, and returns v.
func Pure(v any) Parser {
	return Parser{
		name:    fmt.Sprintf("%v", v),
		mayHalt: halts(false),
		run: func(toks []token.Token, pos int, g *errState) (any, int, bool) {
			return v, pos, true
		},
	}
}

// Finished succeeds with Unit{} only when pos is at the end of the token
// sequence; otherwise it fails. Its name is the special "<EOF>" the error
// formatter recognizes (see errors.go).
func Finished() Parser {
	return Parser{
		name:    eofName,
		mayHalt: halts(false),
		run: func(toks []token.Token, pos int, g *errState) (any, int, bool) {
			if pos == len(toks) {
				return Unit{}, pos, true
			}
			g.record(pos, eofName)
			return nil, pos, false
		},
	}
}
