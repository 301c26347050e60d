// Package dfa implements subset-construction determinization and
// Hopcroft partition-refinement minimization over the nfa package's
// Thompson-construction automata (spec §4.4, §4.5). The whole
// reachable state space is materialized eagerly up front, since the
// spec calls for a total, reproducible DFA rather than a lazily
// filled cache with fallback semantics.
package dfa

import "fmt"

// StateID identifies a DFA state by discovery order (spec §4.4
// "state ids are assigned in strict discovery order over the sorted
// alphabet").
type StateID int

// Dead is the implicit reject sink. No explicit state is ever
// allocated for it (spec §4.4 "a transition whose NFA-subset image is
// empty is represented as dead, not allocated as an explicit state").
const Dead StateID = -1

// DFA is an immutable deterministic finite automaton produced by
// Determinize or Minimize (spec §3 "DFA").
type DFA struct {
	numStates  int
	start      StateID
	accepting  []bool
	trans      [][]StateID // trans[state][symbolIndex]
	alphabet   []rune
	alphaIndex map[rune]int
}

func newDFA(numStates int, accepting []bool, trans [][]StateID, alphabet []rune) *DFA {
	idx := make(map[rune]int, len(alphabet))
	for i, c := range alphabet {
		idx[c] = i
	}
	return &DFA{
		numStates:  numStates,
		start:      0,
		accepting:  accepting,
		trans:      trans,
		alphabet:   alphabet,
		alphaIndex: idx,
	}
}

// NumStates returns the number of states in the DFA.
func (d *DFA) NumStates() int { return d.numStates }

// Start returns the DFA's start state, always 0.
func (d *DFA) Start() StateID { return d.start }

// IsAccepting reports whether s is an accepting state.
func (d *DFA) IsAccepting(s StateID) bool { return d.accepting[s] }

// Alphabet returns the sorted, deduplicated alphabet the DFA's
// transition table is indexed by.
func (d *DFA) Alphabet() []rune { return d.alphabet }

// SymbolIndex returns c's column in the transition table, or false if
// c is not in the DFA's alphabet.
func (d *DFA) SymbolIndex(c rune) (int, bool) {
	i, ok := d.alphaIndex[c]
	return i, ok
}

// Trans returns the destination of s's transition on the symbol at
// symbolIndex, or Dead.
func (d *DFA) Trans(s StateID, symbolIndex int) StateID { return d.trans[s][symbolIndex] }

// Accepting returns the accepting state ids in ascending order.
func (d *DFA) Accepting() []StateID {
	out := make([]StateID, 0, len(d.accepting))
	for s, acc := range d.accepting {
		if acc {
			out = append(out, StateID(s))
		}
	}
	return out
}

// String renders a compact diagnostic summary, not the CLI's DFA line:
// "DFA(states=N start=S accepts=K alphabet=M)", where K is the number
// of accepting states and M the alphabet size.
func (d *DFA) String() string {
	return fmt.Sprintf("DFA(states=%d start=%d accepts=%d alphabet=%d)",
		d.numStates, d.start, len(d.Accepting()), len(d.alphabet))
}
