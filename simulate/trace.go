package simulate

import (
	"sort"

	"github.com/regviz/regcore/dfa"
	"github.com/regviz/regcore/internal/stateset"
	"github.com/regviz/regcore/nfa"
)

// NFAStep is one snapshot emitted by Trace (spec §4.6 "Trace builder
// (NFA)"). Symbol is nil for step 0, the initial closure before any
// input is consumed.
type NFAStep struct {
	Index     int
	Symbol    *rune
	Active    []nfa.StateID
	Traversed []nfa.Edge
	Accepting bool
}

// DFATransition is the single edge traversed by one DFA trace step.
type DFATransition struct {
	From, To dfa.StateID
	Symbol   rune
}

// DFAStep is one snapshot emitted by TraceDFA.
type DFAStep struct {
	Index     int
	Symbol    *rune
	Active    dfa.StateID
	Traversed *DFATransition
	Accepting bool
}

// Trace builds the per-step simulation of n over input, emitting step
// 0 (the initial ε-closure of the start state) followed by one step
// per input character (spec §4.6).
func Trace(n *nfa.NFA, input string) ([]NFAStep, error) {
	active := epsilonClosure(n, []nfa.StateID{n.Start()})
	steps := []NFAStep{{
		Index:     0,
		Active:    active,
		Accepting: contains(active, n.Accept()),
	}}

	i := 0
	for _, c := range input {
		if !inAlphabet(n, c) {
			return nil, &OutOfAlphabetError{Char: c, At: i}
		}

		var traversed []nfa.Edge
		for _, from := range active {
			for _, e := range n.Adjacency(from) {
				if !e.Label.Eps && e.Label.Sym == c {
					traversed = append(traversed, e)
				}
			}
		}

		moved := move(n, active, c)
		closed, walked := closureWithTrace(n, moved)
		traversed = append(traversed, walked...)

		sym := c
		i++
		active = closed
		steps = append(steps, NFAStep{
			Index:     i,
			Symbol:    &sym,
			Active:    active,
			Traversed: traversed,
			Accepting: contains(active, n.Accept()),
		})
	}
	return steps, nil
}

// TraceDFA builds the per-step simulation of d over input, analogous
// to Trace but with a singleton active state and a single traversed
// transition per step (spec §4.6 "Trace builder (DFA)").
func TraceDFA(d *dfa.DFA, input string) ([]DFAStep, error) {
	active := d.Start()
	steps := []DFAStep{{
		Index:     0,
		Active:    active,
		Accepting: d.IsAccepting(active),
	}}

	i := 0
	for _, c := range input {
		idx, ok := d.SymbolIndex(c)
		if !ok {
			return nil, &OutOfAlphabetError{Char: c, At: i}
		}

		to := dfa.Dead
		if active != dfa.Dead {
			to = d.Trans(active, idx)
		}

		sym := c
		i++
		steps = append(steps, DFAStep{
			Index:     i,
			Symbol:    &sym,
			Active:    to,
			Traversed: &DFATransition{From: active, To: to, Symbol: c},
			Accepting: to != dfa.Dead && d.IsAccepting(to),
		})
		active = to
	}
	return steps, nil
}

// closureWithTrace computes ε-closure(seeds) the same way
// epsilonClosure does, but additionally records every ε-edge used to
// discover a new state, processing the frontier in ascending state-id
// order so the walked edges are reproducible (spec §4.6 "ε-edges
// walked are those actually used by a deterministic ε-closure
// traversal ... over sorted state ids").
func closureWithTrace(n *nfa.NFA, seeds []nfa.StateID) ([]nfa.StateID, []nfa.Edge) {
	set := stateset.New(n.NumStates())
	var walked []nfa.Edge

	var frontier []nfa.StateID
	sortedSeeds := append([]nfa.StateID(nil), seeds...)
	sort.Slice(sortedSeeds, func(i, j int) bool { return sortedSeeds[i] < sortedSeeds[j] })
	for _, s := range sortedSeeds {
		if !set.Contains(int(s)) {
			set.Add(int(s))
			frontier = append(frontier, s)
		}
	}

	for len(frontier) > 0 {
		sort.Slice(frontier, func(i, j int) bool { return frontier[i] < frontier[j] })
		s := frontier[0]
		frontier = frontier[1:]
		for _, e := range n.Adjacency(s) {
			if e.Label.Eps && !set.Contains(int(e.To)) {
				set.Add(int(e.To))
				walked = append(walked, e)
				frontier = append(frontier, e.To)
			}
		}
	}

	sorted := set.Sorted()
	out := make([]nfa.StateID, len(sorted))
	for i, v := range sorted {
		out[i] = nfa.StateID(v)
	}
	return out, walked
}
