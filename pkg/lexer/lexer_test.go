package lexer

import (
	"errors"
	"testing"

	"github.com/cwbudde/parsec/pkg/token"
)

func calcRules() []Rule {
	return []Rule{
		Skip("WS", `[ \t\r\n]+`),
		New("FLOAT", `[+-]?\d+\.\d*([eE][+-]?\d+)?`),
		New("INT", `[+-]?\d+`),
		New("OP", `[+\-*/()]`),
		New("POW", `\*\*`),
	}
}

func tokensOf(t *testing.T, spec *Spec, text string) []token.Token {
	t.Helper()
	toks, err := spec.Tokens(text)
	if err != nil {
		t.Fatalf("Tokens(%q) returned error: %v", text, err)
	}
	return toks
}

// S8 — lexer priority: rules are tried in order, not by longest match.
func TestLexerPriorityFloatBeforeInt(t *testing.T) {
	spec := NewSpec(calcRules())

	toks := tokensOf(t, spec, "3.14")
	if len(toks) != 1 || toks[0].Type != "FLOAT" {
		t.Fatalf("got %+v, want a single FLOAT token", toks)
	}

	toks = tokensOf(t, spec, "3")
	if len(toks) != 1 || toks[0].Type != "INT" {
		t.Fatalf("got %+v, want a single INT token", toks)
	}
}

// Because POW is listed after OP, which also matches a leading '*', OP
// wins at each '*' in "**" and the rule ordering — not regex length —
// decides it; this is the documented priority-not-longest-match behavior.
func TestLexerPriorityIsOrderNotLength(t *testing.T) {
	spec := NewSpec(calcRules())
	toks := tokensOf(t, spec, "**")
	if len(toks) != 2 || toks[0].Type != "OP" || toks[1].Type != "OP" {
		t.Fatalf("got %+v, want two OP tokens since OP is listed before POW", toks)
	}
}

func TestLexerSkipsNonUsefulRules(t *testing.T) {
	spec := NewSpec(calcRules())
	toks := tokensOf(t, spec, "1   +    2")
	var types []string
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	want := []string{"INT", "OP", "INT"}
	if len(types) != len(want) {
		t.Fatalf("types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("types[%d] = %q, want %q", i, types[i], want[i])
		}
	}
}

func TestLexerPositionsTrackLinesAndColumns(t *testing.T) {
	spec := NewSpec([]Rule{
		Skip("WS", `[ \t\r\n]+`),
		New("IDENT", `[a-zA-Z]+`),
	})
	toks := tokensOf(t, spec, "ab\ncd")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2", len(toks))
	}
	if toks[0].Start != (token.Position{Line: 1, Column: 1}) {
		t.Errorf("first token start = %v", toks[0].Start)
	}
	if toks[1].Start != (token.Position{Line: 2, Column: 1}) {
		t.Errorf("second token start = %v, want line 2 col 1", toks[1].Start)
	}
}

func TestLexerErrorOnUnmatchedInput(t *testing.T) {
	spec := NewSpec([]Rule{New("IDENT", `[a-zA-Z]+`)})
	_, err := spec.Tokens("abc#def")
	if err == nil {
		t.Fatal("expected a lexer error for '#'")
	}
	var lexErr *Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("error %v is not a *lexer.Error", err)
	}
	if lexErr.Pos != (token.Position{Line: 1, Column: 4}) {
		t.Errorf("error position = %v, want 1:4", lexErr.Pos)
	}
}

func TestLexerRejectsZeroLengthMatch(t *testing.T) {
	spec := NewSpec([]Rule{New("MAYBE", `a*`)})
	_, err := spec.Tokens("bbb")
	if err == nil {
		t.Fatal("expected an error for a rule matching zero-length at the current offset")
	}
}

func TestLazyTokenizerYieldsEOFAtEnd(t *testing.T) {
	spec := NewSpec([]Rule{New("INT", `\d+`)})
	tz := spec.Tokenize("42")
	tok, ok, err := tz.Next()
	if err != nil || !ok || tok.Value != "42" {
		t.Fatalf("first Next() = %+v, %v, %v", tok, ok, err)
	}
	_, ok, err = tz.Next()
	if err != nil || ok {
		t.Fatalf("expected end of input, got ok=%v err=%v", ok, err)
	}
}
