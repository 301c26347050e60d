package dfa

// Equivalent reports whether a and b are block-isomorphic: reachable
// from each start state by transitions over the same alphabet, with a
// one-to-one correspondence between reachable states that preserves
// acceptance and every transition (SPEC_FULL §3, used to check spec
// invariants 7 and 8, minimality idempotence and language equivalence
// under structural equality, without hand-deriving a canonical form
// in every test).
func Equivalent(a, b *DFA) bool {
	if len(a.alphabet) != len(b.alphabet) {
		return false
	}
	for i := range a.alphabet {
		if a.alphabet[i] != b.alphabet[i] {
			return false
		}
	}

	mapAB := map[StateID]StateID{a.start: b.start}
	mapBA := map[StateID]StateID{b.start: a.start}
	queue := [][2]StateID{{a.start, b.start}}

	for len(queue) > 0 {
		pair := queue[0]
		queue = queue[1:]
		sa, sb := pair[0], pair[1]

		if a.IsAccepting(sa) != b.IsAccepting(sb) {
			return false
		}

		for c := range a.alphabet {
			ta := a.Trans(sa, c)
			tb := b.Trans(sb, c)
			if ta == Dead || tb == Dead {
				if ta != tb {
					return false
				}
				continue
			}
			if mappedB, ok := mapAB[ta]; ok {
				if mappedB != tb {
					return false
				}
				continue
			}
			if _, ok := mapBA[tb]; ok {
				return false // tb already paired with a different a-state
			}
			mapAB[ta] = tb
			mapBA[tb] = ta
			queue = append(queue, [2]StateID{ta, tb})
		}
	}
	return true
}
