package nfa

import "fmt"

// BoxKind identifies which AST operator produced a bounding box.
type BoxKind uint8

const (
	// Root is the single box enclosing the entire NFA.
	Root BoxKind = iota
	// BoxLiteral covers the states of an Atom or Epsilon fragment.
	BoxLiteral
	// BoxConcat covers the states of a Concat fragment.
	BoxConcat
	// BoxAlternation covers the states of an Alt fragment.
	BoxAlternation
	// BoxKleeneStar covers the states of a Star fragment.
	BoxKleeneStar
	// BoxOptional covers the states of an Opt fragment.
	BoxOptional
)

// String renders the box kind for diagnostics.
func (k BoxKind) String() string {
	switch k {
	case Root:
		return "Root"
	case BoxLiteral:
		return "Literal"
	case BoxConcat:
		return "Concat"
	case BoxAlternation:
		return "Alternation"
	case BoxKleeneStar:
		return "KleeneStar"
	case BoxOptional:
		return "Optional"
	default:
		return fmt.Sprintf("BoxKind(%d)", uint8(k))
	}
}

// NoParent marks a BoundingBox with no parent (the Root box).
const NoParent = -1

// BoundingBox binds an AST operator occurrence to the set of NFA
// states produced while constructing its fragment. Boxes form a tree
// rooted at the Root box; see spec §3 and §9 for the invariant that
// every state appears in exactly the path of boxes from the root to
// its innermost enclosing operator box.
type BoundingBox struct {
	ID     int
	Parent int // NoParent for the Root box
	Kind   BoxKind
	States []StateID // ordered set: states in discovery order
}
