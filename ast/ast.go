// Package ast defines the regcore abstract syntax tree: the tagged
// tree of regex operators produced by the parser, its canonical
// S-expression printer, and structural equality.
package ast

import "strings"

// Node is implemented by every AST node kind: Epsilon, Atom, Concat,
// Alt, Star, Opt. Each internal node exclusively owns its children.
type Node interface {
	isNode()
	// String renders the node in canonical S-expression form.
	String() string
}

// Epsilon matches the empty string.
type Epsilon struct{}

// Atom matches a single literal character.
type Atom struct {
	Char rune
}

// Concat matches L followed by R.
type Concat struct {
	L, R Node
}

// Alt matches L or R.
type Alt struct {
	L, R Node
}

// Star matches zero or more repetitions of E.
type Star struct {
	E Node
}

// Opt matches zero or one occurrence of E.
type Opt struct {
	E Node
}

func (Epsilon) isNode() {}
func (Atom) isNode()    {}
func (Concat) isNode()  {}
func (Alt) isNode()     {}
func (Star) isNode()    {}
func (Opt) isNode()     {}

// String renders "ε".
func (Epsilon) String() string { return "ε" }

// String renders the bare literal.
func (a Atom) String() string { return string(a.Char) }

// String renders "(. L R)".
func (c Concat) String() string {
	return sexpr(".", c.L, c.R)
}

// String renders "(+ L R)".
func (a Alt) String() string {
	return sexpr("+", a.L, a.R)
}

// String renders "(* E)".
func (s Star) String() string {
	return sexpr("*", s.E)
}

// String renders "(? E)".
func (o Opt) String() string {
	return sexpr("?", o.E)
}

func sexpr(op string, children ...Node) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(op)
	for _, c := range children {
		b.WriteByte(' ')
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports whether a and b are structurally identical, ignoring
// how they were allocated. Used by the parser round-trip invariant and
// by tests that would otherwise need the canonical printer to compare
// trees.
func Equal(a, b Node) bool {
	switch av := a.(type) {
	case Epsilon:
		_, ok := b.(Epsilon)
		return ok
	case Atom:
		bv, ok := b.(Atom)
		return ok && av.Char == bv.Char
	case Concat:
		bv, ok := b.(Concat)
		return ok && Equal(av.L, bv.L) && Equal(av.R, bv.R)
	case Alt:
		bv, ok := b.(Alt)
		return ok && Equal(av.L, bv.L) && Equal(av.R, bv.R)
	case Star:
		bv, ok := b.(Star)
		return ok && Equal(av.E, bv.E)
	case Opt:
		bv, ok := b.(Opt)
		return ok && Equal(av.E, bv.E)
	default:
		return false
	}
}
