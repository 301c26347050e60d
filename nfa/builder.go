package nfa

import (
	"fmt"
	"sort"

	"github.com/regviz/regcore/ast"
	"github.com/regviz/regcore/internal/invariant"
)

// Config controls NFA construction.
type Config struct {
	// TrackBoxes enables bounding-box metadata recording. Visualizers
	// need it; headless acceptance checking does not, so it can be
	// disabled to skip the bookkeeping.
	TrackBoxes bool
	// MaxRecursionDepth bounds the depth of nested constructs the
	// builder will descend into, guarding against stack overflow on
	// pathologically nested patterns such as a long chain of operators
	// (each '+' in a+a+...+a adds one level). Parentheses alone add no
	// depth, since a group produces no AST node of its own. The value is
	// used as given: zero admits only a single atom or ε, and any
	// pattern with an operator exceeds it.
	MaxRecursionDepth int
}

// DefaultConfig returns the default builder configuration.
func DefaultConfig() Config {
	return Config{TrackBoxes: true, MaxRecursionDepth: 1000}
}

// fragment is a partial NFA with a single start state and a single
// accept state, composable by ε-edges (spec GLOSSARY "Fragment").
type fragment struct {
	start, accept StateID
}

// Builder constructs an NFA incrementally using Thompson's
// construction, using a stack of active bounding boxes so every
// allocated state is recorded against every box currently open (spec
// §9 "Builder scoping": push on entry, pop on every exit path).
type Builder struct {
	cfg       Config
	adjacency [][]Edge
	boxes     []*BoundingBox
	stateBox  []int
	stack     []*BoundingBox
}

// NewBuilder creates a Builder with the given configuration.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build runs Thompson's construction over root and returns the
// finished NFA. Construction is a total function over a well-formed
// AST except for one recoverable failure, a pattern nested deeper
// than Config.MaxRecursionDepth, reported as a *BuildError; any other
// malformed internal state raises invariant.Check instead of
// returning an error (spec §7).
func Build(root ast.Node, cfg Config) (*NFA, error) {
	b := NewBuilder(cfg)
	b.pushBox(Root)
	frag, err := b.build(root, 0)
	b.popBox()
	if err != nil {
		return nil, err
	}
	invariant.Check(len(b.stack) == 0, "box stack not empty after build")

	n := &NFA{
		numStates: len(b.adjacency),
		start:     frag.start,
		accept:    frag.accept,
		adjacency: b.adjacency,
		boxes:     b.boxes,
		stateBox:  b.stateBox,
	}
	n.finalize()
	return n, nil
}

func (b *Builder) pushBox(kind BoxKind) *BoundingBox {
	parent := NoParent
	if len(b.stack) > 0 {
		parent = b.stack[len(b.stack)-1].ID
	}
	box := &BoundingBox{ID: len(b.boxes), Parent: parent, Kind: kind}
	b.boxes = append(b.boxes, box)
	b.stack = append(b.stack, box)
	return box
}

func (b *Builder) popBox() {
	invariant.Check(len(b.stack) > 0, "popBox called with empty box stack")
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *Builder) addState() StateID {
	id := StateID(len(b.adjacency))
	b.adjacency = append(b.adjacency, nil)
	b.stateBox = append(b.stateBox, b.stack[len(b.stack)-1].ID)
	if b.cfg.TrackBoxes {
		for _, box := range b.stack {
			box.States = append(box.States, id)
		}
	}
	return id
}

func (b *Builder) addEdge(from, to StateID, label Label) {
	b.adjacency[from] = append(b.adjacency[from], Edge{From: from, To: to, Label: label})
}

// build recursively constructs a fragment for node, following the
// fragment shapes of spec §4.3.
func (b *Builder) build(node ast.Node, depth int) (fragment, error) {
	if depth > b.cfg.MaxRecursionDepth {
		return fragment{}, &BuildError{
			Message: fmt.Sprintf("max recursion depth %d exceeded", b.cfg.MaxRecursionDepth),
			State:   InvalidState,
		}
	}

	switch n := node.(type) {
	case ast.Epsilon:
		b.pushBox(BoxLiteral)
		s := b.addState()
		b.popBox()
		return fragment{start: s, accept: s}, nil

	case ast.Atom:
		b.pushBox(BoxLiteral)
		s := b.addState()
		t := b.addState()
		b.addEdge(s, t, SymLabel(n.Char))
		b.popBox()
		return fragment{start: s, accept: t}, nil

	case ast.Concat:
		b.pushBox(BoxConcat)
		l, err := b.build(n.L, depth+1)
		if err != nil {
			b.popBox()
			return fragment{}, err
		}
		r, err := b.build(n.R, depth+1)
		if err != nil {
			b.popBox()
			return fragment{}, err
		}
		b.addEdge(l.accept, r.start, EpsLabel)
		b.popBox()
		return fragment{start: l.start, accept: r.accept}, nil

	case ast.Alt:
		b.pushBox(BoxAlternation)
		s := b.addState()
		t := b.addState()
		l, err := b.build(n.L, depth+1)
		if err != nil {
			b.popBox()
			return fragment{}, err
		}
		r, err := b.build(n.R, depth+1)
		if err != nil {
			b.popBox()
			return fragment{}, err
		}
		b.addEdge(s, l.start, EpsLabel)
		b.addEdge(s, r.start, EpsLabel)
		b.addEdge(l.accept, t, EpsLabel)
		b.addEdge(r.accept, t, EpsLabel)
		b.popBox()
		return fragment{start: s, accept: t}, nil

	case ast.Star:
		b.pushBox(BoxKleeneStar)
		s := b.addState()
		t := b.addState()
		e, err := b.build(n.E, depth+1)
		if err != nil {
			b.popBox()
			return fragment{}, err
		}
		b.addEdge(s, e.start, EpsLabel)
		b.addEdge(s, t, EpsLabel)
		b.addEdge(e.accept, e.start, EpsLabel)
		b.addEdge(e.accept, t, EpsLabel)
		b.popBox()
		return fragment{start: s, accept: t}, nil

	case ast.Opt:
		b.pushBox(BoxOptional)
		s := b.addState()
		t := b.addState()
		e, err := b.build(n.E, depth+1)
		if err != nil {
			b.popBox()
			return fragment{}, err
		}
		b.addEdge(s, e.start, EpsLabel)
		b.addEdge(s, t, EpsLabel)
		b.addEdge(e.accept, t, EpsLabel)
		b.popBox()
		return fragment{start: s, accept: t}, nil

	default:
		invariant.Check(false, "unknown AST node type %T", node)
		return fragment{}, nil
	}
}

// finalize stably sorts each state's adjacency list by destination id
// and materializes the flat edge list by iterating states in id order
// (spec §4.3 "Adjacency lists are then stably sorted...").
func (n *NFA) finalize() {
	for s := range n.adjacency {
		adj := n.adjacency[s]
		sort.SliceStable(adj, func(i, j int) bool { return adj[i].To < adj[j].To })
	}
	var edges []Edge
	for s := range n.adjacency {
		edges = append(edges, n.adjacency[s]...)
	}
	n.edges = edges
}
