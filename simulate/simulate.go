// Package simulate implements string-acceptance checking and
// per-step trace construction over both the nfa and dfa packages
// (spec §4.6): Accept/AcceptDFA report a plain boolean result,
// Trace/TraceDFA additionally record every step taken to reach it.
package simulate

import (
	"fmt"
	"sort"

	"github.com/regviz/regcore/dfa"
	"github.com/regviz/regcore/internal/stateset"
	"github.com/regviz/regcore/nfa"
)

// OutOfAlphabetError reports that the input contains a character not
// in the automaton's alphabet. It is a non-fatal signal surfaced to
// the caller (spec §7 "OutOfAlphabet(c) during simulation is a
// separate non-fatal signal"), not a BuildError.
type OutOfAlphabetError struct {
	Char rune
	At   int // codepoint index into the input string
}

// Error implements the error interface.
func (e *OutOfAlphabetError) Error() string {
	return fmt.Sprintf("simulate: character %q at position %d is not in the alphabet", e.Char, e.At)
}

// Accept reports whether n accepts the full input string (spec §4.6
// "NFA acceptance").
func Accept(n *nfa.NFA, input string) (bool, error) {
	current := epsilonClosure(n, []nfa.StateID{n.Start()})
	at := 0
	for _, c := range input {
		if !inAlphabet(n, c) {
			return false, &OutOfAlphabetError{Char: c, At: at}
		}
		current = epsilonClosure(n, move(n, current, c))
		at++
	}
	return contains(current, n.Accept()), nil
}

// AcceptDFA reports whether d accepts the full input string (spec
// §4.6 "DFA acceptance").
func AcceptDFA(d *dfa.DFA, input string) (bool, error) {
	s := d.Start()
	at := 0
	for _, c := range input {
		idx, ok := d.SymbolIndex(c)
		if !ok {
			return false, &OutOfAlphabetError{Char: c, At: at}
		}
		s = d.Trans(s, idx)
		if s == dfa.Dead {
			return false, nil
		}
		at++
	}
	return d.IsAccepting(s), nil
}

func inAlphabet(n *nfa.NFA, c rune) bool {
	alphabet := n.Alphabet()
	i := sort.Search(len(alphabet), func(i int) bool { return alphabet[i] >= c })
	return i < len(alphabet) && alphabet[i] == c
}

func contains(states []nfa.StateID, target nfa.StateID) bool {
	for _, s := range states {
		if s == target {
			return true
		}
	}
	return false
}

// epsilonClosure mirrors dfa.Determinize's closure helper; duplicated
// here (rather than exported from dfa) because simulate's trace
// builder additionally needs the individual ε-edges walked, which the
// dfa package has no reason to expose.
func epsilonClosure(n *nfa.NFA, start []nfa.StateID) []nfa.StateID {
	set := stateset.New(n.NumStates())
	var worklist []nfa.StateID
	for _, s := range start {
		if !set.Contains(int(s)) {
			set.Add(int(s))
			worklist = append(worklist, s)
		}
	}
	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]
		for _, e := range n.Adjacency(s) {
			if e.Label.Eps && !set.Contains(int(e.To)) {
				set.Add(int(e.To))
				worklist = append(worklist, e.To)
			}
		}
	}
	sorted := set.Sorted()
	out := make([]nfa.StateID, len(sorted))
	for i, v := range sorted {
		out[i] = nfa.StateID(v)
	}
	return out
}

func move(n *nfa.NFA, states []nfa.StateID, c rune) []nfa.StateID {
	seen := stateset.New(n.NumStates())
	var out []nfa.StateID
	for _, s := range states {
		for _, e := range n.Adjacency(s) {
			if !e.Label.Eps && e.Label.Sym == c && !seen.Contains(int(e.To)) {
				seen.Add(int(e.To))
				out = append(out, e.To)
			}
		}
	}
	return out
}
