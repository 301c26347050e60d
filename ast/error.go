package ast

import (
	"fmt"

	"github.com/regviz/regcore/token"
)

// ParseErrorKind classifies a parse failure.
type ParseErrorKind uint8

const (
	// UnexpectedEof was reached while a primary expression was expected.
	UnexpectedEof ParseErrorKind = iota
	// UnexpectedPrefixOperator found an infix/postfix operator where a
	// primary expression was expected, or a leftover operator token
	// after the top-level expression (')' is reported as
	// RightParenWithoutLeft instead).
	UnexpectedPrefixOperator
	// MismatchedLeftParen found something other than ')' closing a group.
	MismatchedLeftParen
	// RightParenWithoutLeft found ')' with no matching '('.
	RightParenWithoutLeft
	// ParenthesesWithInvalidExp found '()' with no expression inside.
	ParenthesesWithInvalidExp
)

// ParseError reports a parse failure at a codepoint offset into the
// original pattern, following the same {At, Kind} shape as
// token.LexError so regcore.BuildError can unify both uniformly.
type ParseError struct {
	At   int
	Kind ParseErrorKind
	// Op is set for UnexpectedPrefixOperator when the offending token
	// was itself an operator.
	Op token.Token
	// Found is set for MismatchedLeftParen: the token seen instead of ')'.
	Found token.Token
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedEof:
		return fmt.Sprintf("unexpected end of pattern at position %d", e.At)
	case UnexpectedPrefixOperator:
		return fmt.Sprintf("unexpected operator %q in primary position at position %d", e.Op.String(), e.At)
	case MismatchedLeftParen:
		return fmt.Sprintf("expected ')' at position %d, found %q", e.At, e.Found.String())
	case RightParenWithoutLeft:
		return fmt.Sprintf("unmatched ')' at position %d", e.At)
	case ParenthesesWithInvalidExp:
		return fmt.Sprintf("empty parentheses at position %d", e.At)
	default:
		return fmt.Sprintf("parse error at position %d", e.At)
	}
}
