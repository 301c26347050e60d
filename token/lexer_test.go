package token

import "testing"

func TestLex_SimplePattern(t *testing.T) {
	toks, err := Lex("a+b")
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	want := []Token{literal('a'), op(Alt), literal('b'), eof()}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Tok != w {
			t.Errorf("token %d = %+v, want %+v", i, toks[i].Tok, w)
		}
	}
}

func TestLex_PositionsAreCodepointIndices(t *testing.T) {
	// The escaped literal `\é` is two codepoints but three UTF-8 bytes
	// ("é" alone is two); the index after it must advance by 2, not 3
	// (spec invariant 1: lexer position correctness is codepoint-based,
	// not byte-based). "é" is escaped because only ASCII alphanumerics
	// are accepted unescaped.
	toks, err := Lex(`\é+a`)
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	if toks[0].At != 0 {
		t.Errorf("first token At = %d, want 0", toks[0].At)
	}
	if toks[1].At != 2 {
		t.Errorf("second token At = %d, want 2", toks[1].At)
	}
	if toks[2].At != 3 {
		t.Errorf("third token At = %d, want 3", toks[2].At)
	}
}

func TestLex_PositionsAreNonDecreasing(t *testing.T) {
	for _, pattern := range []string{"a+b*c?(d.e)", `\e\+\(a`, "  a  +  b  "} {
		toks, err := Lex(pattern)
		if err != nil {
			t.Fatalf("Lex(%q) failed: %v", pattern, err)
		}
		for i := 1; i < len(toks); i++ {
			if toks[i].At < toks[i-1].At {
				t.Fatalf("Lex(%q): position regressed at token %d: %v", pattern, i, toks)
			}
		}
	}
}

func TestLex_EpsilonEscape(t *testing.T) {
	toks, err := Lex(`\e`)
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	if toks[0].Tok.Kind != KindEpsilon {
		t.Fatalf("got %+v, want KindEpsilon", toks[0].Tok)
	}
}

func TestLex_RecognizedMetacharEscapes(t *testing.T) {
	for c, want := range escapes {
		toks, err := Lex(`\` + string(c))
		if err != nil {
			t.Fatalf(`Lex("\%c") failed: %v`, c, err)
		}
		if toks[0].Tok.Kind != KindLiteral || toks[0].Tok.Literal != want {
			t.Errorf(`Lex("\%c") = %+v, want literal %q`, c, toks[0].Tok, want)
		}
	}
}

func TestLex_DanglingEscape(t *testing.T) {
	_, err := Lex(`a\`)
	if err == nil {
		t.Fatal("expected a dangling escape error")
	}
	if err.Kind != DanglingEscape {
		t.Errorf("Kind = %v, want DanglingEscape", err.Kind)
	}
	if err.At != 1 {
		t.Errorf("At = %d, want 1", err.At)
	}
}

func TestLex_InvalidCharacter(t *testing.T) {
	_, err := Lex("a#b")
	if err == nil {
		t.Fatal("expected an invalid character error")
	}
	if err.Kind != InvalidCharacter || err.Char != '#' {
		t.Errorf("got %+v, want InvalidCharacter '#'", err)
	}
	if err.At != 1 {
		t.Errorf("At = %d, want 1", err.At)
	}
}

func TestLex_WhitespaceIgnored(t *testing.T) {
	toks, err := Lex(" a \t + \n b ")
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	want := []Kind{KindLiteral, KindOp, KindLiteral, KindEof}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Tok.Kind != k {
			t.Errorf("token %d kind = %v, want %v", i, toks[i].Tok.Kind, k)
		}
	}
}
