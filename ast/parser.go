package ast

import (
	"github.com/regviz/regcore/token"
)

// Binding powers for the Pratt precedence-climbing parser. Higher
// binds tighter. A chained binary operator recurses at its own left
// binding power (not a separate, higher right binding power), so a
// run of same-precedence operators folds right: a+b+c -> Alt(a,
// Alt(b, c)), abc -> Concat(a, Concat(b, c)) (spec §4.2's associativity
// note: either leaning is acceptable as long as it is applied
// consistently across explicit "+", explicit ".", and implicit
// concatenation, which is why implicit concat below is gated and
// recursed exactly like the explicit binary-operator case instead of
// unconditionally recursing).
const (
	bpAlt     = 1
	bpConcat  = 3
	bpPostfix = 5
)

// Parser parses a regcore pattern's token stream into an AST using
// Pratt precedence climbing (see spec §4.2).
type Parser struct {
	toks []token.Positioned
	pos  int // index into toks
}

// NewParser creates a Parser over an already-lexed token stream. toks
// must be terminated by a KindEof token.
func NewParser(toks []token.Positioned) *Parser {
	return &Parser{toks: toks}
}

// Parse lexes and parses pattern in one call, returning either a
// *token.LexError or a *ast.ParseError on failure.
func Parse(pattern string) (Node, error) {
	toks, lexErr := token.Lex(pattern)
	if lexErr != nil {
		return nil, lexErr
	}
	return NewParser(toks).ParseAll()
}

// ParseAll parses the full token stream and requires it to be fully
// consumed (aside from the trailing Eof). A trailing ')' with no
// matching '(' or any other leftover token is an error: expr's
// postfix/concat/infix loop only ever stops at such a token, it never
// consumes or rejects it itself.
func (p *Parser) ParseAll() (Node, error) {
	n, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	if t := p.cur(); t.Tok.Kind != token.KindEof {
		if t.Tok.Kind == token.KindRParen {
			return nil, &ParseError{At: t.At, Kind: RightParenWithoutLeft}
		}
		return nil, &ParseError{At: t.At, Kind: UnexpectedPrefixOperator, Op: t.Tok}
	}
	return n, nil
}

func (p *Parser) cur() token.Positioned {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) advance() token.Positioned {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// expr implements Pratt precedence climbing: parse one primary, then
// repeatedly fold in postfix operators, implicit concatenation, and
// explicit infix operators whose left binding power satisfies minBP.
func (p *Parser) expr(minBP int) (Node, error) {
	lhs, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		next := p.cur()

		if next.Tok.Kind == token.KindOp && isPostfix(next.Tok.Op) {
			if bpPostfix < minBP {
				break
			}
			p.advance()
			lhs = wrapPostfix(next.Tok.Op, lhs)
			continue
		}

		if beginsPrimary(next.Tok) {
			if bpConcat < minBP {
				break
			}
			rhs, err := p.expr(bpConcat)
			if err != nil {
				return nil, err
			}
			lhs = Concat{L: lhs, R: rhs}
			continue
		}

		if next.Tok.Kind == token.KindOp && isBinary(next.Tok.Op) {
			bp := binaryBP(next.Tok.Op)
			if bp < minBP {
				break
			}
			p.advance()
			rhs, err := p.expr(bp)
			if err != nil {
				return nil, err
			}
			lhs = wrapBinary(next.Tok.Op, lhs, rhs)
			continue
		}

		break
	}

	return lhs, nil
}

// primary parses a single atom, epsilon, or parenthesized group.
func (p *Parser) primary() (Node, error) {
	t := p.cur()

	switch t.Tok.Kind {
	case token.KindLiteral:
		p.advance()
		return Atom{Char: t.Tok.Literal}, nil

	case token.KindEpsilon:
		p.advance()
		return Epsilon{}, nil

	case token.KindLParen:
		p.advance()
		if p.cur().Tok.Kind == token.KindRParen {
			return nil, &ParseError{At: t.At, Kind: ParenthesesWithInvalidExp}
		}
		inner, err := p.expr(0)
		if err != nil {
			return nil, err
		}
		closing := p.cur()
		if closing.Tok.Kind != token.KindRParen {
			return nil, &ParseError{At: closing.At, Kind: MismatchedLeftParen, Found: closing.Tok}
		}
		p.advance()
		return inner, nil

	case token.KindRParen:
		return nil, &ParseError{At: t.At, Kind: RightParenWithoutLeft}

	case token.KindOp:
		return nil, &ParseError{At: t.At, Kind: UnexpectedPrefixOperator, Op: t.Tok}

	case token.KindEof:
		return nil, &ParseError{At: t.At, Kind: UnexpectedEof}

	default:
		return nil, &ParseError{At: t.At, Kind: UnexpectedPrefixOperator, Op: t.Tok}
	}
}

func isPostfix(op token.OpKind) bool {
	return op == token.Star || op == token.Opt
}

func isBinary(op token.OpKind) bool {
	return op == token.Alt || op == token.Concat
}

func binaryBP(op token.OpKind) int {
	if op == token.Alt {
		return bpAlt
	}
	return bpConcat
}

// beginsPrimary reports whether tok could start a primary expression,
// i.e. implicit concatenation should be synthesized in front of it.
func beginsPrimary(tok token.Token) bool {
	switch tok.Kind {
	case token.KindLiteral, token.KindEpsilon, token.KindLParen:
		return true
	default:
		return false
	}
}

func wrapPostfix(op token.OpKind, e Node) Node {
	if op == token.Star {
		return Star{E: e}
	}
	return Opt{E: e}
}

func wrapBinary(op token.OpKind, l, r Node) Node {
	if op == token.Alt {
		return Alt{L: l, R: r}
	}
	return Concat{L: l, R: r}
}
