// Package lexer compiles an ordered list of named regular-expression rules
// into a tokenizer. Rules are tried in priority order at each offset — the
// first one whose pattern matches wins, not the longest match — so callers
// that want longest-match behavior (e.g. float before int) must order their
// rules accordingly, exactly as a hand-rolled recursive-descent lexer would
// document in a comment above its rule table.
//
// The tokenizer does no filtering of its own: a rule marked non-useful
// (Skip) still advances the cursor but never yields a token, which is how
// whitespace and comments are dropped without the caller needing a second
// filtering pass.
package lexer

import (
	"fmt"
	"regexp"

	"golang.org/x/text/unicode/norm"

	"github.com/cwbudde/parsec/pkg/token"
)

// Rule is one entry in a Spec's ordered rule list: a name used as the
// resulting Token.Type, a pattern to try at the current offset, and whether
// a match should actually produce a token (Useful) or just be skipped.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Useful  bool
}

// New compiles a named rule. The pattern is implicitly anchored to the
// start of the remaining input on every match attempt (see Tokenizer.Next);
// callers write it the same way they would write any other regexp.
func New(name, pattern string) Rule {
	return Rule{Name: name, Pattern: regexp.MustCompile(pattern), Useful: true}
}

// Skip compiles a rule whose matches are discarded — the standard way to
// describe whitespace and comment rules.
func Skip(name, pattern string) Rule {
	r := New(name, pattern)
	r.Useful = false
	return r
}

// Spec is a compiled, ordered rule list ready to tokenize input.
type Spec struct {
	rules     []Rule
	normalize bool
}

// Option configures a Spec at construction time.
type Option func(*Spec)

// Normalize enables Unicode NFC normalization of the input text before
// scanning begins. Off by default; it exists for grammars whose identifier
// rules are sensitive to combining-character forms (e.g. a precomposed "é"
// vs. "e"+combining-acute both needing to lex as the same IDENT shape).
func Normalize(enabled bool) Option {
	return func(s *Spec) { s.normalize = enabled }
}

// NewSpec compiles an ordered rule list into a Spec. Rules earlier in the list
// take priority over later ones at the same offset.
func NewSpec(rules []Rule, opts ...Option) *Spec {
	s := &Spec{rules: append([]Rule(nil), rules...)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Error reports that no rule matched at Pos, or that a rule matched with
// zero length (which would otherwise loop the tokenizer forever).
type Error struct {
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Tokenizer scans one piece of input text against a Spec's rules and lazily
// yields tokens on successive calls to Next.
type Tokenizer struct {
	text   string
	rules  []Rule
	pos    int // byte offset into text
	line   int
	column int // rune count on the current line, 1-origin
}

// Tokenize returns a lazy tokenizer over text. It does not scan anything
// until Next is called.
func (s *Spec) Tokenize(text string) *Tokenizer {
	if s.normalize {
		text = norm.NFC.String(text)
	}
	return &Tokenizer{text: text, rules: s.rules, line: 1, column: 1}
}

// Next scans forward from the current offset, skipping non-useful matches,
// until it produces a token, reaches the end of input, or hits text no rule
// can match. ok is false with a nil error at end of input; err is non-nil
// (and ok is false) when the input is unlexable at the current position.
func (t *Tokenizer) Next() (tok token.Token, ok bool, err error) {
	for {
		if t.pos >= len(t.text) {
			return token.Token{}, false, nil
		}

		rule, length, matched := t.matchRule()
		if !matched {
			return token.Token{}, false, &Error{
				Pos:     token.Position{Line: t.line, Column: t.column},
				Message: fmt.Sprintf("no rule matches input starting with %q", t.preview()),
			}
		}

		start := token.Position{Line: t.line, Column: t.column}
		matchedText := t.text[t.pos : t.pos+length]
		if len(matchedText) == 0 {
			return token.Token{}, false, &Error{
				Pos:     start,
				Message: fmt.Sprintf("rule %q matched a zero-length string, which would loop forever", rule.Name),
			}
		}

		t.advance(matchedText)

		if !rule.Useful {
			continue
		}
		return token.New(rule.Name, matchedText, start), true, nil
	}
}

// Tokens drains the tokenizer into a slice, the representation the parser
// package requires (the grammar specification mandates a materialized,
// random-access token sequence; see pkg/parser).
func (s *Spec) Tokens(text string) ([]token.Token, error) {
	t := s.Tokenize(text)
	var toks []token.Token
	for {
		tok, ok, err := t.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func (t *Tokenizer) matchRule() (rule Rule, length int, ok bool) {
	remaining := t.text[t.pos:]
	for _, r := range t.rules {
		if loc := r.Pattern.FindStringIndex(remaining); loc != nil && loc[0] == 0 {
			return r, loc[1] - loc[0], true
		}
	}
	return Rule{}, 0, false
}

func (t *Tokenizer) advance(matched string) {
	for _, r := range matched {
		if r == '\n' {
			t.line++
			t.column = 1
			continue
		}
		t.column++
	}
	t.pos += len(matched)
}

// preview returns a short rune-safe snippet of the remaining input for
// error messages, without risking a mid-rune cut.
func (t *Tokenizer) preview() string {
	remaining := t.text[t.pos:]
	const maxRunes = 16
	n := 0
	for i := range remaining {
		if n == maxRunes {
			return remaining[:i] + "..."
		}
		n++
	}
	return remaining
}
