package parser

import (
	"testing"

	"github.com/cwbudde/parsec/pkg/token"
)

func tok(typ, value string) token.Token {
	return token.Token{Type: typ, Value: value}
}

func toks(values ...string) []token.Token {
	result := make([]token.Token, len(values))
	for i, v := range values {
		result[i] = tok("SYM", v)
	}
	return result
}

// S1 — primitive.
func TestPrimitiveEquals(t *testing.T) {
	p := Equals(tok("SYM", "x"))
	result, err := p.Parse(toks("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := result.(token.Token)
	if !ok || got.Value != "x" {
		t.Fatalf("result = %#v, want token x", result)
	}
}

// S2 — sequence + skip.
func TestSequenceWithSkip(t *testing.T) {
	g := Equals(tok("SYM", "(")).Skip().
		Then(Equals(tok("SYM", "a"))).
		Then(Equals(tok("SYM", ")")).Skip())

	result, err := g.Parse(toks("(", "a", ")"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := result.(token.Token)
	if !ok || got.Value != "a" {
		t.Fatalf("result = %#v, want token a", result)
	}
}

// S3 — alternation, second (unambiguous) case: the longer alternative
// succeeds outright, so there's nothing to decide about commit.
func TestAlternationLongerMatchWins(t *testing.T) {
	g := Equals(tok("SYM", "a")).Then(Equals(tok("SYM", "b"))).
		Or(Equals(tok("SYM", "a")))

	result, err := g.Parse(toks("a", "b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tuple, ok := result.(Tuple)
	if !ok || len(tuple) != 2 {
		t.Fatalf("result = %#v, want a 2-tuple", result)
	}
	if Get[token.Token](tuple, 0).Value != "a" || Get[token.Token](tuple, 1).Value != "b" {
		t.Fatalf("result = %#v, want (a, b)", tuple)
	}
}

// S4 — nested forward-declared grammar: `{` many(nested) `}`.
func TestForwardDeclNestedBraces(t *testing.T) {
	type node struct{ children []node }

	fwd := NewForward()
	nested := Equals(tok("SYM", "{")).Skip().
		Then(Many(fwd.P())).
		Then(Equals(tok("SYM", "}")).Skip()).
		Map(func(v any) any {
			var n node
			if list, ok := v.([]any); ok {
				for _, c := range list {
					n.children = append(n.children, c.(node))
				}
			}
			return n
		})
	fwd.Define(nested)

	result, err := nested.Parse(toks("{", "{", "}", "{", "}", "}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root, ok := result.(node)
	if !ok {
		t.Fatalf("result = %#v, not a node", result)
	}
	if len(root.children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.children))
	}
	for i, c := range root.children {
		if len(c.children) != 0 {
			t.Errorf("child %d has %d children, want 0", i, len(c.children))
		}
	}
}

// S6 — furthest-reached error.
func TestFurthestErrorPointsAtDeepestBranch(t *testing.T) {
	g := Equals(tok("SYM", "a")).
		Then(Equals(tok("SYM", "b"))).
		Then(Equals(tok("SYM", "c")))

	_, err := g.Parse(toks("a", "b", "x"))
	if err == nil {
		t.Fatal("expected an error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	if pe.Got != "x" {
		t.Errorf("Got = %q, want %q", pe.Got, "x")
	}
	if len(pe.Expected) != 1 || pe.Expected[0] != `"c"` {
		t.Errorf("Expected = %v, want [\"c\"]", pe.Expected)
	}
	if pe.Error() != `got unexpected token: x, expected: "c"` {
		t.Errorf("Error() = %q", pe.Error())
	}
}

// S7 — grammar guard: Many over a parser that can succeed without
// consuming must raise a GrammarError instead of looping.
func TestGrammarGuardOnNonHaltingMany(t *testing.T) {
	g := Many(Maybe(Equals(tok("SYM", "a"))))

	_, err := g.Parse(toks("a", "a"))
	if err == nil {
		t.Fatal("expected a GrammarError")
	}
	if _, ok := err.(*GrammarError); !ok {
		t.Fatalf("error %v is not a *GrammarError", err)
	}
}

func TestForwardUsedBeforeDefineIsFatal(t *testing.T) {
	fwd := NewForward()
	_, err := fwd.P().Parse(toks("a"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*GrammarError); !ok {
		t.Fatalf("error %v is not a *GrammarError", err)
	}
}

func TestParseReportsEndOfInput(t *testing.T) {
	g := Equals(tok("SYM", "a")).Then(Equals(tok("SYM", "b")))
	_, err := g.Parse(toks("a"))
	if err == nil {
		t.Fatal("expected an error")
	}
	pe := err.(*ParseError)
	if pe.Got != "" {
		t.Errorf("Got = %q, want empty (end of input)", pe.Got)
	}
	want := `got unexpected end of input, expected: "b"`
	if pe.Error() != want {
		t.Errorf("Error() = %q, want %q", pe.Error(), want)
	}
}

func TestFinishedMismatchMessage(t *testing.T) {
	g := Equals(tok("SYM", "a")).Then(Finished())
	_, err := g.Parse(toks("a", "b"))
	if err == nil {
		t.Fatal("expected an error")
	}
	want := `should have reached <EOF>: b`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// Round-trip with Map (testable property #9).
func TestPureMapRoundTrip(t *testing.T) {
	p := Pure(21).Map(func(v any) any { return v.(int) * 2 })
	result, err := p.Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(int) != 42 {
		t.Fatalf("result = %v, want 42", result)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	g := Equals(tok("SYM", "a")).Then(Equals(tok("SYM", "b")))
	input := toks("a", "b")
	r1, err1 := g.Parse(input)
	r2, err2 := g.Parse(input)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if r1.(Tuple)[0].(token.Token) != r2.(Tuple)[0].(token.Token) {
		t.Fatalf("repeated Parse calls produced different results")
	}
}
