package regcore

import (
	"fmt"

	"github.com/regviz/regcore/ast"
	"github.com/regviz/regcore/internal/invariant"
	"github.com/regviz/regcore/nfa"
	"github.com/regviz/regcore/token"
)

// BuildError unifies the error families a pattern can fail to compile
// with: a lexical error, a parse error, or an NFA build error (spec
// §7 "The core raises exactly two error families, unified under a
// top-level BuildError", extended here with the NFA stage's own
// recoverable failure, a pattern nested deeper than
// nfa.Config.MaxRecursionDepth). Exactly one of Lex, Parse, NFA is
// non-nil.
type BuildError struct {
	Lex   *token.LexError
	Parse *ast.ParseError
	NFA   *nfa.BuildError
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	switch {
	case e.Lex != nil:
		return fmt.Sprintf("build error: %s", e.Lex.Error())
	case e.Parse != nil:
		return fmt.Sprintf("build error: %s", e.Parse.Error())
	case e.NFA != nil:
		return fmt.Sprintf("build error: %s", e.NFA.Error())
	default:
		return "build error"
	}
}

// Unwrap exposes the underlying *token.LexError, *ast.ParseError, or
// *nfa.BuildError to errors.As/errors.Is.
func (e *BuildError) Unwrap() error {
	switch {
	case e.Lex != nil:
		return e.Lex
	case e.Parse != nil:
		return e.Parse
	default:
		return e.NFA
	}
}

// wrapBuildError classifies err, returned by ast.Parse or nfa.Build,
// into the appropriate BuildError field.
func wrapBuildError(err error) *BuildError {
	switch e := err.(type) {
	case *token.LexError:
		return &BuildError{Lex: e}
	case *ast.ParseError:
		return &BuildError{Parse: e}
	case *nfa.BuildError:
		return &BuildError{NFA: e}
	default:
		// ast.Parse and nfa.Build only ever return these concrete
		// types; a fourth kind reaching here would itself be a bug.
		invariant.Check(false, "unexpected error type %T", err)
		return nil
	}
}
