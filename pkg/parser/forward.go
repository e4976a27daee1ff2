package parser

import "github.com/cwbudde/parsec/pkg/token"

// Forward is a placeholder for a parser whose definition is supplied
// later, enabling recursive grammars (a rule that refers to itself, or to
// a rule defined further down the same function). Build the grammar
// referencing fwd.P(), finish constructing the recursive definition, then
// call fwd.Define. All Define calls must happen before any Parse call:
// once a grammar starts running, a Forward's target is read concurrently
// by every in-flight Parse and must not change underneath them, so treat
// construction (including every Define) as a single-threaded phase that
// completes before the grammar is ever handed to Parse.
type Forward struct {
	target  *Parser
	defined bool
}

// NewForward creates an undefined forward declaration.
func NewForward() *Forward {
	return &Forward{}
}

// Define sets the parser fwd stands for. Calling it twice overwrites the
// previous definition; only the grammar construction phase should do this.
func (fwd *Forward) Define(p Parser) {
	t := p
	fwd.target = &t
	fwd.defined = true
}

// P returns the Parser value that proxies to fwd's definition. It is safe
// to call before Define — the returned Parser only needs a definition to
// exist by the time it is actually run.
func (fwd *Forward) P() Parser {
	return Parser{
		name: "<forward>",
		mayHalt: func() bool {
			if !fwd.defined {
				panic(grammarPanic{&GrammarError{Message: "forward declaration used before Define was called"}})
			}
			return fwd.target.mayHalt()
		},
		run: func(toks []token.Token, pos int, g *errState) (any, int, bool) {
			if !fwd.defined {
				panic(grammarPanic{&GrammarError{Message: "forward declaration used before Define was called"}})
			}
			return fwd.target.run(toks, pos, g)
		},
	}
}
