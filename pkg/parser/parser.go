// Package parser implements recursive-descent LL(*) parser combinators.
//
// A Parser is an opaque value: a name (for error messages), a may-halt
// flag (whether every successful run of it consumes at least one token),
// and a run function. Users never call run directly; they build Parsers
// with the primitives and combinators in this package and invoke the
// result with Parse.
//
// # Alternation and commit
//
// Or (p | q in the source grammar this is ported from) runs p first. If p
// fails without having consumed any token — it "failed at the very first
// token it looked at" — q is tried from the same starting position. If p
// consumed at least one token before failing, the whole alternation fails;
// there is no backtracking past a committed prefix. This is what makes
// error messages point at a precise position: grammars are expected to
// list longer/more specific alternatives first. See DESIGN.md for the one
// place this reading was picked over a second plausible one.
//
// # Sequence flattening
//
// Then (p + q) produces a flat tuple: grouping (a+b)+c and a+(b+c) both
// yield a 3-element Tuple in source order, never a nested one. Skip marks
// an operand's contribution as ignored — it's omitted from the enclosing
// tuple, and a Then where every operand is skipped collapses to Unit{}.
package parser

import (
	"github.com/cwbudde/parsec/pkg/token"
)

// Unit is the result of a parser that succeeds without producing a
// meaningful value (Finished, and any sequence whose every element is
// Skip-ed).
type Unit struct{}

// runFunc is the internal shape of every Parser's execution step.
//
// On success, it returns (value, newPos, true): newPos is the token index
// immediately after what this call consumed (newPos >= pos).
//
// On failure, it returns (nil, newPos, false): newPos is the furthest
// index *this attempt* reached before giving up, relative to pos. Then
// propagates its second operand's newPos even on failure so an enclosing
// Or can tell whether the failing branch committed (newPos > pos) or
// failed immediately (newPos == pos). This is separate from the run's
// global furthest-failure bookkeeping (see errState), which exists only to
// build the final ParseError.
type runFunc func(toks []token.Token, pos int, g *errState) (value any, newPos int, ok bool)

// Parser is an opaque, reusable parse function plus metadata used for
// error messages and the non-termination guard on Many/OnePlus. Construct
// one with the primitives (Any, Satisfy, Equals, Match, Pure, Finished,
// NewForward) and combine it with Then, Or, Map, Skip, Many, OnePlus,
// Maybe, and Bind. A Parser is immutable and safe to reuse across many
// Parse calls (the one exception is a Forward that hasn't been Defined
// yet; see forward.go).
type Parser struct {
	name string
	// mayHalt is evaluated lazily (not snapshotted at construction) so a
	// Forward's may-halt status — unknowable until Define is called — is
	// resolved correctly no matter when in the grammar it's referenced.
	mayHalt func() bool
	run     runFunc
	// skip marks this parser's contribution to an enclosing Then as
	// ignored (see Skip in combinators.go and contribution in tuple.go).
	skip bool
}

// Named returns a copy of p with its error-message name overridden. Use it
// on intermediate parsers to produce readable "expected: ..." messages
// instead of the auto-derived structural names. When the named parser fails
// without getting past its starting position, the names it recorded there
// are replaced by name.
func (p Parser) Named(name string) Parser {
	inner := p.run
	p.name = name
	p.run = func(toks []token.Token, pos int, g *errState) (any, int, bool) {
		prevMax, prevLen := g.maxPos, len(g.order)
		val, newPos, ok := inner(toks, pos, g)
		if !ok && newPos == pos && g.maxPos == pos {
			keep := 0
			if prevMax == pos {
				keep = prevLen
			}
			for _, n := range g.order[keep:] {
				delete(g.expected, n)
			}
			g.order = g.order[:keep]
			g.record(pos, name)
		}
		return val, newPos, ok
	}
	return p
}

// errState is the per-top-level-run bookkeeping: the furthest token index
// any branch's primitive failed at, and the set of primitive/combinator
// names that were attempted there. It is shared (via pointer) across every
// recursive call within one Parse invocation and never reset mid-run.
type errState struct {
	maxPos   int
	expected map[string]struct{}
	// order preserves first-seen order so error messages are deterministic
	// rather than depending on Go's randomized map iteration.
	order []string
}

func newErrState() *errState {
	return &errState{expected: make(map[string]struct{})}
}

func (g *errState) record(pos int, name string) {
	switch {
	case pos > g.maxPos:
		g.maxPos = pos
		g.expected = map[string]struct{}{name: {}}
		g.order = []string{name}
	case pos == g.maxPos:
		if _, seen := g.expected[name]; !seen {
			g.expected[name] = struct{}{}
			g.order = append(g.order, name)
		}
	}
}

// grammarPanic wraps a *GrammarError so Parse's recover can distinguish a
// deliberate non-termination guard trip from an actual Go panic bug.
type grammarPanic struct{ err *GrammarError }

func checkMayHalt(p Parser, combinator string) {
	if !p.mayHalt() {
		panic(grammarPanic{&GrammarError{
			Message: combinator + " applied to a parser (" + p.name + ") that can succeed without consuming a token; this would loop forever",
		}})
	}
}

// Parse runs p over tokens from the start and returns its result, or a
// *ParseError describing the furthest point any branch reached and what
// was expected there. A *GrammarError surfaces instead if the grammar
// wraps Many/OnePlus around a parser that may succeed without consuming,
// or uses a Forward before it was Defined.
//
// Parse discards any unconsumed suffix of tokens; callers that require
// full consumption should build their grammar as p.Then(Finished.Skip())
// (conventionally written p + -finished in the source grammar).
func (p Parser) Parse(tokens []token.Token) (result any, err error) {
	g := newErrState()

	defer func() {
		if r := recover(); r != nil {
			if gp, ok := r.(grammarPanic); ok {
				err = gp.err
				return
			}
			panic(r)
		}
	}()

	val, _, ok := p.run(tokens, 0, g)
	if ok {
		return val, nil
	}
	return nil, buildParseError(tokens, g)
}
