package dfa

import "sort"

// Minimize reduces d to an equivalent minimal DFA by Hopcroft
// partition refinement (spec §4.5). The result accepts the same
// language as d and, among DFAs doing so, has the minimum number of
// states; equivalent inputs produce block-isomorphic minimal DFAs
// regardless of d's original state labeling.
func Minimize(d *DFA) *DFA {
	if d.numStates <= 1 {
		return clone(d)
	}

	nStates := d.numStates
	nSyms := len(d.alphabet)

	blocks := make(map[int][]StateID)
	stateToBlock := make([]int, nStates)
	nextBlockID := 0

	var accBlock, nonAccBlock []StateID
	for s := 0; s < nStates; s++ {
		if d.accepting[s] {
			accBlock = append(accBlock, StateID(s))
		} else {
			nonAccBlock = append(nonAccBlock, StateID(s))
		}
	}

	assign := func(states []StateID) int {
		id := nextBlockID
		nextBlockID++
		blocks[id] = states
		for _, s := range states {
			stateToBlock[s] = id
		}
		return id
	}

	var initial []int
	if len(accBlock) > 0 {
		initial = append(initial, assign(accBlock))
	}
	if len(nonAccBlock) > 0 {
		initial = append(initial, assign(nonAccBlock))
	}

	inWorklist := make(map[int]bool)
	var worklist []int
	push := func(id int) {
		worklist = append(worklist, id)
		inWorklist[id] = true
	}
	switch len(initial) {
	case 2:
		a, b := initial[0], initial[1]
		if len(blocks[a]) == len(blocks[b]) {
			push(a)
			push(b)
		} else if len(blocks[a]) < len(blocks[b]) {
			push(a)
		} else {
			push(b)
		}
	case 1:
		push(initial[0])
	}

	for len(worklist) > 0 {
		aID := worklist[0]
		worklist = worklist[1:]
		delete(inWorklist, aID)
		A, ok := blocks[aID]
		if !ok {
			continue // A was itself split by an earlier iteration of this loop
		}

		for c := 0; c < nSyms; c++ {
			inA := make(map[StateID]bool, len(A))
			for _, s := range A {
				inA[s] = true
			}
			var X []StateID
			for s := 0; s < nStates; s++ {
				t := d.trans[s][c]
				if t != Dead && inA[t] {
					X = append(X, StateID(s))
				}
			}
			if len(X) == 0 {
				continue
			}
			inX := make(map[StateID]bool, len(X))
			for _, s := range X {
				inX[s] = true
			}

			ids := make([]int, 0, len(blocks))
			for id := range blocks {
				ids = append(ids, id)
			}
			sort.Ints(ids)

			for _, yID := range ids {
				Y, ok := blocks[yID]
				if !ok {
					continue
				}
				var inter, diff []StateID
				for _, s := range Y {
					if inX[s] {
						inter = append(inter, s)
					} else {
						diff = append(diff, s)
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					continue
				}

				delete(blocks, yID)
				id1 := assign(inter)
				id2 := assign(diff)

				if inWorklist[yID] {
					delete(inWorklist, yID)
					push(id1)
					push(id2)
				} else if len(inter) <= len(diff) {
					push(id1)
				} else {
					push(id2)
				}
			}
		}
	}

	return reconstruct(d, blocks, stateToBlock, nSyms)
}

// reconstruct assigns sequential ids to the final blocks (the block
// containing the original start state is 0, the rest follow in the
// order a breadth-first walk from it over the sorted alphabet first
// reaches them; blocks it never reaches come last, in creation order)
// and copies each block's representative row, remapping destinations
// through the block map (spec §4.5 step 5).
func reconstruct(d *DFA, blocks map[int][]StateID, stateToBlock []int, nSyms int) *DFA {
	finalIDs := make([]int, 0, len(blocks))
	for id := range blocks {
		finalIDs = append(finalIDs, id)
	}
	sort.Ints(finalIDs)

	startBlockID := stateToBlock[int(d.start)]
	order := make([]int, 0, len(finalIDs))
	order = append(order, startBlockID)
	seen := map[int]bool{startBlockID: true}
	for i := 0; i < len(order); i++ {
		rep := minState(blocks[order[i]])
		for c := 0; c < nSyms; c++ {
			if t := d.trans[rep][c]; t != Dead && !seen[stateToBlock[t]] {
				seen[stateToBlock[t]] = true
				order = append(order, stateToBlock[t])
			}
		}
	}
	for _, id := range finalIDs {
		if !seen[id] {
			order = append(order, id)
		}
	}

	blockIndex := make(map[int]int, len(order))
	for i, id := range order {
		blockIndex[id] = i
	}

	accepting := make([]bool, len(order))
	trans := make([][]StateID, len(order))
	for i, id := range order {
		block := blocks[id]
		rep := minState(block)

		accepting[i] = d.accepting[rep]
		row := make([]StateID, nSyms)
		for c := 0; c < nSyms; c++ {
			t := d.trans[rep][c]
			if t == Dead {
				row[c] = Dead
			} else {
				row[c] = StateID(blockIndex[stateToBlock[t]])
			}
		}
		trans[i] = row
	}

	return newDFA(len(order), accepting, trans, d.alphabet)
}

func minState(states []StateID) StateID {
	m := states[0]
	for _, s := range states[1:] {
		if s < m {
			m = s
		}
	}
	return m
}

func clone(d *DFA) *DFA {
	accepting := make([]bool, len(d.accepting))
	copy(accepting, d.accepting)
	trans := make([][]StateID, len(d.trans))
	for i, row := range d.trans {
		r := make([]StateID, len(row))
		copy(r, row)
		trans[i] = r
	}
	alphabet := make([]rune, len(d.alphabet))
	copy(alphabet, d.alphabet)
	return newDFA(d.numStates, accepting, trans, alphabet)
}
