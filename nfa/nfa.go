// Package nfa implements the Thompson-construction ε-NFA builder with
// structural bounding-box metadata (spec §4.3), over a rune-based
// literal alphabet.
package nfa

import (
	"fmt"
	"sort"
)

// StateID uniquely identifies an NFA state.
type StateID int

// InvalidState marks an uninitialized StateID.
const InvalidState StateID = -1

// Label is the transition a single NFA edge is taken on: either a
// literal symbol or an ε (empty) transition.
type Label struct {
	Eps bool
	Sym rune // meaningful only when Eps is false
}

// EpsLabel is the ε transition label.
var EpsLabel = Label{Eps: true}

// SymLabel returns the label for a literal transition on c.
func SymLabel(c rune) Label { return Label{Sym: c} }

// String renders the label for diagnostics: "ε" or the literal rune.
func (l Label) String() string {
	if l.Eps {
		return "ε"
	}
	return string(l.Sym)
}

// Edge is one transition of the NFA, (from, to, label).
type Edge struct {
	From, To StateID
	Label    Label
}

// NFA is an immutable ε-NFA with exactly one accept state, produced by
// Build. Adjacency is the source of truth; Edges is a read-only flat
// view materialized once at construction, stably ordered by
// (from, to), per spec §9's "dual representation".
type NFA struct {
	numStates int
	start     StateID
	accept    StateID
	adjacency [][]Edge // per-state, stably sorted by destination id
	edges     []Edge
	boxes     []*BoundingBox
	stateBox  []int // state id -> innermost box id
}

// NumStates returns the number of states in the NFA.
func (n *NFA) NumStates() int { return n.numStates }

// Start returns the NFA's single start state.
func (n *NFA) Start() StateID { return n.start }

// Accept returns the NFA's single accept state.
func (n *NFA) Accept() StateID { return n.accept }

// Adjacency returns state s's outgoing edges, sorted by destination id.
func (n *NFA) Adjacency(s StateID) []Edge { return n.adjacency[s] }

// Edges returns the flat, read-only edge list in (from, to) order.
func (n *NFA) Edges() []Edge { return n.edges }

// Boxes returns every bounding box in the tree, indexed by BoundingBox.ID.
func (n *NFA) Boxes() []*BoundingBox { return n.boxes }

// Box returns the bounding box with the given id.
func (n *NFA) Box(id int) *BoundingBox { return n.boxes[id] }

// StateToBox returns the id of the innermost box containing state s.
func (n *NFA) StateToBox(s StateID) int { return n.stateBox[s] }

// Alphabet returns the sorted, deduplicated sequence of characters
// appearing as Sym labels in the NFA (spec §3 "Alphabet").
func (n *NFA) Alphabet() []rune {
	seen := make(map[rune]bool)
	for _, e := range n.edges {
		if !e.Label.Eps {
			seen[e.Label.Sym] = true
		}
	}
	out := make([]rune, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders a compact diagnostic summary, not a serialization
// format: "NFA(states=N start=S accept=A edges=E)".
func (n *NFA) String() string {
	return fmt.Sprintf("NFA(states=%d start=%d accept=%d edges=%d)",
		n.numStates, n.start, n.accept, len(n.edges))
}
