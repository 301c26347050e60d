package dfa

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/regviz/regcore/ast"
	"github.com/regviz/regcore/nfa"
)

func build(t *testing.T, pattern string) *nfa.NFA {
	t.Helper()
	root, err := ast.Parse(pattern)
	if err != nil {
		t.Fatalf("ast.Parse(%q) failed: %v", pattern, err)
	}
	n, err := nfa.Build(root, nfa.DefaultConfig())
	if err != nil {
		t.Fatalf("nfa.Build(%q) failed: %v", pattern, err)
	}
	return n
}

func TestDeterminize_ScenarioCounts(t *testing.T) {
	tests := []struct {
		pattern   string
		numStates int
		accepting []StateID
	}{
		{"a", 2, []StateID{1}},
		{"ab", 3, []StateID{2}},
		{"a+b", 3, []StateID{1, 2}},
		{"a*", 2, []StateID{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			d := Determinize(build(t, tt.pattern))
			if d.NumStates() != tt.numStates {
				t.Errorf("NumStates() = %d, want %d", d.NumStates(), tt.numStates)
			}
			if diff := cmp.Diff(tt.accepting, d.Accepting()); diff != "" {
				t.Errorf("Accepting() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func accepts(d *DFA, s string) bool {
	cur := d.Start()
	for _, c := range s {
		idx, ok := d.SymbolIndex(c)
		if !ok {
			return false
		}
		cur = d.Trans(cur, idx)
		if cur == Dead {
			return false
		}
	}
	return d.IsAccepting(cur)
}

func TestDeterminize_AcceptsRejects(t *testing.T) {
	tests := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"a", []string{"a"}, []string{"", "b", "aa"}},
		{"ab", []string{"ab"}, []string{"a", "abb", ""}},
		{"a+b", []string{"a", "b"}, []string{"", "ab", "ba"}},
		{"a*", []string{"", "a", "aaaa"}, []string{"b", "ab"}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			d := Determinize(build(t, tt.pattern))
			for _, s := range tt.accept {
				if !accepts(d, s) {
					t.Errorf("pattern %q: expected %q to be accepted", tt.pattern, s)
				}
			}
			for _, s := range tt.reject {
				if accepts(d, s) {
					t.Errorf("pattern %q: expected %q to be rejected", tt.pattern, s)
				}
			}
		})
	}
}

func TestDeterminize_Deterministic(t *testing.T) {
	d1 := Determinize(build(t, "(a+b)*abb"))
	d2 := Determinize(build(t, "(a+b)*abb"))
	if d1.NumStates() != d2.NumStates() {
		t.Fatalf("nondeterministic state count: %d vs %d", d1.NumStates(), d2.NumStates())
	}
	if !Equivalent(d1, d2) {
		t.Fatal("two determinizations of the same pattern are not equivalent")
	}
}
