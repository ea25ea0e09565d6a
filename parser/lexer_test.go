package parser

import "testing"

func TestLexerPunctuation(t *testing.T) {
	cases := []struct {
		src  string
		kind TokenKind
	}{
		{"~", SQUIGGLE},
		{"(", WAX},
		{")", WANE},
		{"|", SPIKE},
		{"*", SPLAT},
		{"->", PTR},
		{":", TWOSPOT},
		{"<", ANGLE},
		{">", RIGHTANGLE},
		{"=", HALFMESH},
		{"", EOL},
	}
	for _, c := range cases {
		tok := NewLexer(c.src).Next()
		if tok.Kind != c.kind {
			t.Errorf("lexing %q: got kind %v, want %v", c.src, tok.Kind, c.kind)
		}
	}
}

func TestLexerDashNotFollowedByAngleIsError(t *testing.T) {
	tok := NewLexer("-x").Next()
	if tok.Kind != ERROR {
		t.Fatalf("expected ERROR, got %v", tok.Kind)
	}
}

func TestLexerWildcardSymbol(t *testing.T) {
	tok := NewLexer(".").Next()
	if tok.Kind != SYMBOL || tok.Text != "." {
		t.Fatalf("got %+v", tok)
	}
}

func TestLexerSymbolWithUnderscoreAndDigits(t *testing.T) {
	tok := NewLexer("div_1").Next()
	if tok.Kind != SYMBOL || tok.Text != "div_1" {
		t.Fatalf("got %+v", tok)
	}
}

func TestLexerString(t *testing.T) {
	tok := NewLexer(`"hello world"`).Next()
	if tok.Kind != STRING || tok.Text != "hello world" {
		t.Fatalf("got %+v", tok)
	}
}

func TestLexerStringEscapedQuote(t *testing.T) {
	tok := NewLexer(`"a\"b"`).Next()
	if tok.Kind != STRING || tok.Text != `a"b` {
		t.Fatalf("got %+v", tok)
	}
}

func TestLexerUnterminatedStringIsError(t *testing.T) {
	tok := NewLexer(`"unterminated`).Next()
	if tok.Kind != ERROR {
		t.Fatalf("expected ERROR, got %v", tok.Kind)
	}
}

func TestLexerSkipsWhitespaceBetweenTokens(t *testing.T) {
	l := NewLexer("  div   span ")
	first := l.Next()
	second := l.Next()
	if first.Text != "div" || second.Text != "span" {
		t.Fatalf("got %+v, %+v", first, second)
	}
}

func TestLexerSequenceOfTokens(t *testing.T) {
	l := NewLexer(`a -> b:"c" <d="e">`)
	want := []TokenKind{SYMBOL, PTR, SYMBOL, TWOSPOT, STRING, ANGLE, SYMBOL, HALFMESH, STRING, RIGHTANGLE, EOL}
	for i, k := range want {
		tok := l.Next()
		if tok.Kind != k {
			t.Fatalf("token %d: got %v, want %v", i, tok.Kind, k)
		}
	}
}

func TestLexerCloneDoesNotAdvanceOriginal(t *testing.T) {
	l := NewLexer("a b")
	clone := l.Clone()
	clone.Next()
	tok := l.Next()
	if tok.Text != "a" {
		t.Fatalf("cloning should not advance the original lexer, got %+v", tok)
	}
}
