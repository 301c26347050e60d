// Package token defines the lexical tokens of the regcore pattern
// grammar and the scanner that produces them.
package token

import "fmt"

// OpKind identifies the operator carried by an Op token.
type OpKind uint8

const (
	// Alt is the alternation operator '+'.
	Alt OpKind = iota
	// Star is the Kleene star operator '*'.
	Star
	// Concat is the explicit concatenation operator '.'.
	Concat
	// Opt is the optional operator '?'.
	Opt
)

// String renders the operator using its source-level symbol.
func (k OpKind) String() string {
	switch k {
	case Alt:
		return "+"
	case Star:
		return "*"
	case Concat:
		return "."
	case Opt:
		return "?"
	default:
		return fmt.Sprintf("Op(%d)", uint8(k))
	}
}

// Kind identifies a token's category.
type Kind uint8

const (
	// KindEpsilon is the literal empty-string token '\e'.
	KindEpsilon Kind = iota
	// KindLiteral is a single literal character.
	KindLiteral
	// KindOp is one of the four operator tokens.
	KindOp
	// KindLParen is '('.
	KindLParen
	// KindRParen is ')'.
	KindRParen
	// KindEof marks one past the last character of the pattern.
	KindEof
)

// Token is a single lexical unit paired implicitly with its source
// position via the surrounding Positioned wrapper.
type Token struct {
	Kind Kind
	// Literal holds the character for KindLiteral tokens.
	Literal rune
	// Op holds the operator kind for KindOp tokens.
	Op OpKind
}

// String renders the token the way it would appear re-lexed from source,
// used in error messages.
func (t Token) String() string {
	switch t.Kind {
	case KindEpsilon:
		return `\e`
	case KindLiteral:
		return string(t.Literal)
	case KindOp:
		return t.Op.String()
	case KindLParen:
		return "("
	case KindRParen:
		return ")"
	case KindEof:
		return "<eof>"
	default:
		return fmt.Sprintf("Token(kind=%d)", t.Kind)
	}
}

// Positioned pairs a Token with its codepoint index in the original
// pattern string.
type Positioned struct {
	Tok Token
	At  int
}

func epsilon() Token { return Token{Kind: KindEpsilon} }
func literal(c rune) Token { return Token{Kind: KindLiteral, Literal: c} }
func op(k OpKind) Token { return Token{Kind: KindOp, Op: k} }
func lparen() Token { return Token{Kind: KindLParen} }
func rparen() Token { return Token{Kind: KindRParen} }
func eof() Token { return Token{Kind: KindEof} }
