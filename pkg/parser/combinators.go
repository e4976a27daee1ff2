package parser

import "github.com/cwbudde/parsec/pkg/token"

// Then implements sequence (`p + q` in the source grammar). It runs p,
// then q on what p left unconsumed, and returns their flattened Tuple (see
// tuple.go). If p fails, Then fails without trying q. If p succeeds and q
// fails, Then fails, reporting q's own furthest reach so an enclosing Or
// can see that this branch committed (see the runFunc doc comment).
func (p Parser) Then(q Parser) Parser {
	return Parser{
		name:    "(" + p.name + ", " + q.name + ")",
		mayHalt: func() bool { return p.mayHalt() || q.mayHalt() },
		skip:    p.skip && q.skip,
		run: func(toks []token.Token, pos int, g *errState) (any, int, bool) {
			val1, pos1, ok := p.run(toks, pos, g)
			if !ok {
				return nil, pos1, false
			}
			val2, pos2, ok := q.run(toks, pos1, g)
			if !ok {
				return nil, pos2, false
			}
			elems := append(contribution(p, val1), contribution(q, val2)...)
			return collapse(elems), pos2, true
		},
	}
}

// Or implements alternation (`p | q`). See the package doc comment and
// DESIGN.md for the commit rule this implements.
func (p Parser) Or(q Parser) Parser {
	return Parser{
		name:    p.name + " or " + q.name,
		mayHalt: func() bool { return p.mayHalt() && q.mayHalt() },
		run: func(toks []token.Token, pos int, g *errState) (any, int, bool) {
			val, newPos, ok := p.run(toks, pos, g)
			if ok {
				return val, newPos, true
			}
			if newPos == pos {
				return q.run(toks, pos, g)
			}
			return nil, newPos, false
		},
	}
}

// Map implements `p >> f`: run p, then apply f to its result.
func (p Parser) Map(f func(any) any) Parser {
	return Parser{
		name:    p.name,
		mayHalt: p.mayHalt,
		run: func(toks []token.Token, pos int, g *errState) (any, int, bool) {
			val, newPos, ok := p.run(toks, pos, g)
			if !ok {
				return nil, newPos, false
			}
			return f(val), newPos, true
		},
	}
}

// Bind implements monadic sequencing: run p, compute q = f(result), run q.
// Every other combinator is implementable in terms of Bind and Pure; they
// are provided directly for performance and for better auto-derived names.
//
// mayHalt cannot, in general, be computed from f — f is an opaque closure
// that may return a structurally different Parser for different input
// values, so there is no single "q" to inspect ahead of time. Bind
// approximates may_halt(p) || may_halt(q) by returning p's mayHalt alone:
// sound whenever p always consumes (the overall Bind then always consumes
// at least that much, whatever q does), and conservative — it may report
// false where the true answer happens to be true — whenever p does not.
// The conservative case only costs a GrammarError on a grammar that
// actually would have terminated, never an unguarded infinite loop.
func (p Parser) Bind(f func(any) Parser) Parser {
	return Parser{
		name:    p.name,
		mayHalt: p.mayHalt,
		run: func(toks []token.Token, pos int, g *errState) (any, int, bool) {
			val, pos1, ok := p.run(toks, pos, g)
			if !ok {
				return nil, pos1, false
			}
			q := f(val)
			return q.run(toks, pos1, g)
		},
	}
}

// Skip marks p's successful result as ignored: inside a Then it is
// omitted from the resulting Tuple; run standalone it returns Unit{}.
func (p Parser) Skip() Parser {
	return Parser{
		name:    p.name,
		mayHalt: p.mayHalt,
		skip:    true,
		run: func(toks []token.Token, pos int, g *errState) (any, int, bool) {
			_, newPos, ok := p.run(toks, pos, g)
			if !ok {
				return nil, newPos, false
			}
			return Unit{}, newPos, true
		},
	}
}

// Many repeatedly applies p until it fails without consuming a token, and
// returns the (possibly empty) list of results. If p fails after
// consuming tokens, that failure propagates instead of silently ending the
// repetition. Panics with a *GrammarError, recovered by Parse, if p may
// succeed without consuming (which would loop forever).
func Many(p Parser) Parser {
	return Parser{
		name:    "{ " + p.name + " }",
		mayHalt: halts(false),
		run: func(toks []token.Token, pos int, g *errState) (any, int, bool) {
			checkMayHalt(p, "Many")
			var results []any
			cur := pos
			for {
				val, newPos, ok := p.run(toks, cur, g)
				if !ok {
					if newPos > cur {
						return nil, newPos, false
					}
					break
				}
				results = append(results, val)
				cur = newPos
			}
			return results, cur, true
		},
	}
}

// OnePlus is Many, requiring at least one success. Its mayHalt equals
// p's (the guard that keeps it from looping forever requires p.mayHalt()
// to already be true, so this is never the conservative case Bind has).
func OnePlus(p Parser) Parser {
	return Parser{
		name:    "{ " + p.name + " }+",
		mayHalt: p.mayHalt,
		run: func(toks []token.Token, pos int, g *errState) (any, int, bool) {
			checkMayHalt(p, "OnePlus")
			val, pos1, ok := p.run(toks, pos, g)
			if !ok {
				return nil, pos1, false
			}
			results := []any{val}
			cur := pos1
			for {
				val2, newPos, ok := p.run(toks, cur, g)
				if !ok {
					if newPos > cur {
						return nil, newPos, false
					}
					break
				}
				results = append(results, val2)
				cur = newPos
			}
			return results, cur, true
		},
	}
}

// Maybe tries p; a non-committing failure yields nil (returned as `any`)
// instead of failing, while a committing failure still propagates.
func Maybe(p Parser) Parser {
	return Parser{
		name:    "[ " + p.name + " ]",
		mayHalt: halts(false),
		run: func(toks []token.Token, pos int, g *errState) (any, int, bool) {
			val, newPos, ok := p.run(toks, pos, g)
			if ok {
				return val, newPos, true
			}
			if newPos == pos {
				return nil, pos, true
			}
			return nil, newPos, false
		},
	}
}
