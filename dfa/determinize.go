package dfa

import (
	"strconv"
	"strings"

	"github.com/regviz/regcore/internal/invariant"
	"github.com/regviz/regcore/internal/stateset"
	"github.com/regviz/regcore/nfa"
)

// Determinize builds a DFA from n by subset construction (spec §4.4),
// using an ε-closure/move worklist run to completion eagerly: every
// reachable subset is discovered and assigned an id before
// Determinize returns.
func Determinize(n *nfa.NFA) *DFA {
	alphabet := n.Alphabet()

	idOf := make(map[string]int)
	var subsets [][]nfa.StateID
	var worklist []int

	q0 := epsilonClosure(n, []nfa.StateID{n.Start()})
	idOf[subsetKey(q0)] = 0
	subsets = append(subsets, q0)
	worklist = append(worklist, 0)

	var trans [][]StateID
	for len(worklist) > 0 {
		i := worklist[0]
		worklist = worklist[1:]
		invariant.Check(i == len(trans), "determinize: discovery order violated at state %d", i)

		S := subsets[i]
		row := make([]StateID, len(alphabet))
		for ci, c := range alphabet {
			T := epsilonClosure(n, move(n, S, c))
			if len(T) == 0 {
				row[ci] = Dead
				continue
			}
			key := subsetKey(T)
			id, ok := idOf[key]
			if !ok {
				id = len(subsets)
				idOf[key] = id
				subsets = append(subsets, T)
				worklist = append(worklist, id)
			}
			row[ci] = StateID(id)
		}
		trans = append(trans, row)
	}

	accepting := make([]bool, len(subsets))
	for i, S := range subsets {
		for _, s := range S {
			if s == n.Accept() {
				accepting[i] = true
				break
			}
		}
	}

	return newDFA(len(subsets), accepting, trans, alphabet)
}

// epsilonClosure returns the least set containing start and closed
// under ε-transitions (spec §4.4 "ε-closure(S)"), as a sorted slice so
// that subsetKey is a canonical, order-independent key for equal
// subsets (spec §4.4 "Equality of subsets: as sets of NFA state ids").
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

// move returns { t | ∃ s ∈ states, s --c--> t } (spec §4.4 "move(S, c)").
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

// subsetKey canonicalizes a sorted state-id slice into a comma-joined
// string usable as an insertion-ordered map key (spec §9 "insertion-
// ordered subset map").
func subsetKey(states []nfa.StateID) string {
	var b strings.Builder
	for i, s := range states {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(s)))
	}
	return b.String()
}
