package token

import "fmt"

// LexErrorKind classifies a lexical error.
type LexErrorKind uint8

const (
	// DanglingEscape is a trailing '\' with no following character.
	DanglingEscape LexErrorKind = iota
	// InvalidCharacter is a character the lexer does not recognize.
	InvalidCharacter
)

// LexError reports a scanning failure at a codepoint offset into the
// original pattern.
type LexError struct {
	At   int
	Kind LexErrorKind
	// Char is set for InvalidCharacter; zero for DanglingEscape.
	Char rune
}

// Error implements the error interface.
func (e *LexError) Error() string {
	switch e.Kind {
	case DanglingEscape:
		return fmt.Sprintf("dangling escape at position %d", e.At)
	case InvalidCharacter:
		return fmt.Sprintf("invalid character %q at position %d", e.Char, e.At)
	default:
		return fmt.Sprintf("lex error at position %d", e.At)
	}
}
