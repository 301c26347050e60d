package ast

import (
	"testing"

	"github.com/regviz/regcore/token"
)

func TestParse_ScenarioSExpressions(t *testing.T) {
	tests := []struct {
		pattern string
		sexpr   string
	}{
		{"a", "a"},
		{"ab", "(. a b)"},
		{"a+b", "(+ a b)"},
		{"a*", "(* a)"},
		{"(a+b)*abb", "(. (* (+ a b)) (. a (. b b)))"},
		{"(aa+aa)", "(+ (. a a) (. a a))"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.pattern, err)
			}
			if got := n.String(); got != tt.sexpr {
				t.Errorf("String() = %q, want %q", got, tt.sexpr)
			}
		})
	}
}

func TestParse_AltIsRightAssociative(t *testing.T) {
	n, err := Parse("a+b+c")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := Alt{L: Atom{'a'}, R: Alt{L: Atom{'b'}, R: Atom{'c'}}}
	if !Equal(n, want) {
		t.Errorf("Parse(\"a+b+c\") = %s, want %s", n, want)
	}
}

func TestParse_ConcatBindsTighterThanAlt(t *testing.T) {
	n, err := Parse("ab+cd")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := Alt{
		L: Concat{L: Atom{'a'}, R: Atom{'b'}},
		R: Concat{L: Atom{'c'}, R: Atom{'d'}},
	}
	if !Equal(n, want) {
		t.Errorf("Parse(\"ab+cd\") = %s, want %s", n, want)
	}
}

func TestParse_PostfixBindsTighterThanConcat(t *testing.T) {
	n, err := Parse("ab*")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := Concat{L: Atom{'a'}, R: Star{E: Atom{'b'}}}
	if !Equal(n, want) {
		t.Errorf("Parse(\"ab*\") = %s, want %s", n, want)
	}
}

func TestParse_Epsilon(t *testing.T) {
	n, err := Parse(`\e`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !Equal(n, Epsilon{}) {
		t.Errorf("Parse(\\e) = %s, want ε", n)
	}
}

func TestParse_RoundTripModuloPrecedence(t *testing.T) {
	// Spec invariant 2: the canonical S-expression, read back, yields a
	// structurally equal AST. The S-expression's prefix syntax is not a
	// valid pattern for Parse, so it is read back with parseSExpr below.
	patterns := []string{"a", "ab", "a+b", "a*", "a?", "(a+b)*abb", "(aa+aa)", "a+b+c", "ab+cd", `\e`}
	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			n1, err := Parse(p)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", p, err)
			}
			n2, err := parseSExpr(n1.String())
			if err != nil {
				t.Fatalf("re-parsing %q failed: %v", n1.String(), err)
			}
			if !Equal(n1, n2) {
				t.Errorf("round-trip mismatch for %q: %s vs %s", p, n1, n2)
			}
		})
	}
}

// parseSExpr re-derives an AST from the canonical S-expression printer
// output by reading its prefix operator syntax directly into AST
// nodes, since the printer and the parser speak different surface
// syntaxes and the printer output does not go through Parse. It
// assumes well-formed input and never returns a non-nil error.
func parseSExpr(s string) (Node, error) {
	p := &sexprParser{s: []rune(s)}
	n := p.parseNode()
	return n, nil
}

type sexprParser struct {
	s   []rune
	pos int
}

func (p *sexprParser) skipSpace() {
	for p.pos < len(p.s) && p.s[p.pos] == ' ' {
		p.pos++
	}
}

func (p *sexprParser) parseNode() Node {
	p.skipSpace()
	if p.s[p.pos] != '(' {
		c := p.s[p.pos]
		p.pos++
		if c == 'ε' {
			return Epsilon{}
		}
		return Atom{Char: c}
	}
	p.pos++ // consume '('
	p.skipSpace()
	opCh := p.s[p.pos]
	p.pos++
	p.skipSpace()
	first := p.parseNode()
	p.skipSpace()
	switch opCh {
	case '*':
		p.skipSpace()
		p.pos++ // consume ')'
		return Star{E: first}
	case '?':
		p.pos++
		return Opt{E: first}
	case '.':
		second := p.parseNode()
		p.skipSpace()
		p.pos++
		return Concat{L: first, R: second}
	case '+':
		second := p.parseNode()
		p.skipSpace()
		p.pos++
		return Alt{L: first, R: second}
	}
	panic("unreachable")
}

func TestParse_ErrorKinds(t *testing.T) {
	tests := []struct {
		pattern string
		kind    ParseErrorKind
		at      int
	}{
		{"", UnexpectedEof, 0},
		{"+a", UnexpectedPrefixOperator, 0},
		{"(a", MismatchedLeftParen, 2},
		{"a)", RightParenWithoutLeft, 1},
		{"()", ParenthesesWithInvalidExp, 0},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want %v", tt.pattern, tt.kind)
			}
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("err is %T, want *ParseError", err)
			}
			if pe.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", pe.Kind, tt.kind)
			}
			if pe.At != tt.at {
				t.Errorf("At = %d, want %d", pe.At, tt.at)
			}
		})
	}
}

func TestParse_LexErrorPropagates(t *testing.T) {
	_, err := Parse(`a\`)
	if err == nil {
		t.Fatal("expected a lex error to propagate")
	}
	if _, ok := err.(*token.LexError); !ok {
		t.Fatalf("err is %T, want *token.LexError", err)
	}
}
