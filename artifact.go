// Package regcore compiles a regex pattern through its five stages,
// tokens, AST, epsilon-NFA, DFA, and minimal DFA, and simulates
// acceptance over the resulting automata, bundled as a single
// immutable Artifact (spec §4.7).
package regcore

import (
	"fmt"

	"github.com/regviz/regcore/ast"
	"github.com/regviz/regcore/dfa"
	"github.com/regviz/regcore/nfa"
)

// Artifact is the immutable result of compiling a pattern: its AST,
// NFA, and alphabet are produced eagerly in one pass; its DFA and
// minimal DFA are computed lazily on first demand and cached
// thereafter (spec §4.7 "dfa and min_dfa are computed on demand;
// once set, they are cached and immutable").
type Artifact struct {
	pattern  string
	ast      ast.Node
	nfa      *nfa.NFA
	alphabet []rune

	dfa    *dfa.DFA
	minDFA *dfa.DFA
}

// Compile compiles pattern with DefaultConfig.
func Compile(pattern string) (*Artifact, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics on a build error. Intended
// for tests and program-literal patterns known good at compile time.
func MustCompile(pattern string) *Artifact {
	a, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("regcore: MustCompile(%q): %v", pattern, err))
	}
	return a
}

// CompileWithConfig compiles pattern into an Artifact holding its
// AST, NFA, and alphabet. A *BuildError is returned on a lexical,
// parse, or NFA build failure (spec §7); DFA/MinDFA are not computed
// here.
func CompileWithConfig(pattern string, cfg Config) (*Artifact, error) {
	root, err := ast.Parse(pattern)
	if err != nil {
		return nil, wrapBuildError(err)
	}
	n, err := nfa.Build(root, cfg.NFA)
	if err != nil {
		return nil, wrapBuildError(err)
	}
	return &Artifact{
		pattern:  pattern,
		ast:      root,
		nfa:      n,
		alphabet: n.Alphabet(),
	}, nil
}

// Pattern returns the original pattern string the Artifact was
// compiled from.
func (a *Artifact) Pattern() string { return a.pattern }

// AST returns the parsed syntax tree.
func (a *Artifact) AST() ast.Node { return a.ast }

// NFA returns the Thompson-construction NFA.
func (a *Artifact) NFA() *nfa.NFA { return a.nfa }

// Alphabet returns the NFA's sorted, deduplicated alphabet.
func (a *Artifact) Alphabet() []rune { return a.alphabet }

// DFA lazily determinizes the NFA by subset construction and caches
// the result.
func (a *Artifact) DFA() *dfa.DFA {
	if a.dfa == nil {
		a.dfa = dfa.Determinize(a.nfa)
	}
	return a.dfa
}

// MinDFA lazily minimizes DFA() by Hopcroft partition refinement and
// caches the result.
func (a *Artifact) MinDFA() *dfa.DFA {
	if a.minDFA == nil {
		a.minDFA = dfa.Minimize(a.DFA())
	}
	return a.minDFA
}
