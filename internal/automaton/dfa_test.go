package automaton

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ------------------------------------------------------------------- helpers

func mustBuild(t *testing.T, n *NFA) *DFA {
	t.Helper()
	d, err := Build(n)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return d
}

func check(t *testing.T, d *DFA, word string, want Verdict) {
	t.Helper()
	if got := d.RunString(word); got != want {
		t.Errorf("RunString(%q) = %v, want %v", word, got, want)
	}
}

// allWords enumerates every word over {0,1} up to length max.
func allWords(max int) []string {
	words := []string{""}
	frontier := []string{""}
	for i := 0; i < max; i++ {
		var next []string
		for _, w := range frontier {
			next = append(next, w+"0", w+"1")
		}
		words = append(words, next...)
		frontier = next
	}
	return words
}

func example1() *NFA {
	return NewNFA(
		[]StateID{"q0", "q1", "q2"}, "q0", []StateID{"q2"},
		[]Triple{
			{"q0", Zero, "q0"},
			{"q0", Zero, "q1"},
			{"q0", One, "q0"},
			{"q1", One, "q2"},
		})
}

func randomNFA(r *rand.Rand, size int) *NFA {
	states := make([]StateID, size)
	for i := range states {
		states[i] = StateID(fmt.Sprintf("q%d", i))
	}
	var edges []Triple
	syms := []Symbol{Zero, One, Epsilon}
	for i := 0; i < size*3; i++ {
		edges = append(edges, Triple{
			From:   states[r.Intn(size)],
			Symbol: syms[r.Intn(len(syms))],
			To:     states[r.Intn(size)],
		})
	}
	var final []StateID
	for _, s := range states {
		if r.Intn(3) == 0 {
			final = append(final, s)
		}
	}
	return NewNFA(states, states[0], final, edges)
}

// ------------------------------------------------------------------- Build

func TestBuildExample1(t *testing.T) {
	d := mustBuild(t, example1())

	if diff := cmp.Diff(d.States, []Label{"q0", "q01", "q02"}); diff != "" {
		t.Fatalf("states diff (-got +want):\n%s", diff)
	}
	if d.Initial != "q0" {
		t.Fatalf("initial = %s", d.Initial)
	}
	if diff := cmp.Diff(d.FinalLabels(), []Label{"q02"}); diff != "" {
		t.Fatalf("final diff (-got +want):\n%s", diff)
	}
	want := []Edge{
		{"q0", Zero, "q01"},
		{"q0", One, "q0"},
		{"q01", Zero, "q01"},
		{"q01", One, "q02"},
		{"q02", Zero, "q01"},
		{"q02", One, "q0"},
	}
	if diff := cmp.Diff(d.Edges(), want); diff != "" {
		t.Fatalf("edges diff (-got +want):\n%s", diff)
	}

	check(t, d, "001", Accepted)
	check(t, d, "0001", Accepted)
	check(t, d, "0", Rejected)
	check(t, d, "10", Rejected)
	check(t, d, "", Rejected)
}

func TestBuildEpsilonAcceptsEmptyWord(t *testing.T) {
	n := NewNFA([]StateID{"q0", "q1"}, "q0", []StateID{"q1"},
		[]Triple{{"q0", Epsilon, "q1"}})
	d := mustBuild(t, n)
	if d.Initial != "q01" {
		t.Fatalf("initial = %s, want q01", d.Initial)
	}
	check(t, d, "", Accepted)
	check(t, d, "0", Rejected)
}

func TestDeadTransitionRejects(t *testing.T) {
	n := NewNFA([]StateID{"q0", "q1"}, "q0", []StateID{"q1"},
		[]Triple{{"q0", Zero, "q1"}, {"q1", Zero, "q1"}})
	d := mustBuild(t, n)
	if _, ok := d.Next("q0", One); ok {
		t.Fatalf("unexpected transition on 1 from q0")
	}
	check(t, d, "0", Accepted)
	check(t, d, "000", Accepted)
	check(t, d, "01", Rejected)
	check(t, d, "0100", Rejected)
	check(t, d, "1000", Rejected)
	check(t, d, "0a0", Rejected)
	check(t, d, "0h", Rejected)
}

func TestBuildDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		n := randomNFA(r, 5)
		a := mustBuild(t, n)
		b := mustBuild(t, n)
		if diff := cmp.Diff(a.Edges(), b.Edges()); diff != "" {
			t.Fatalf("edges differ between runs:\n%s", diff)
		}
		if diff := cmp.Diff(a.States, b.States); diff != "" {
			t.Fatalf("states differ between runs:\n%s", diff)
		}
		if diff := cmp.Diff(a.FinalLabels(), b.FinalLabels()); diff != "" {
			t.Fatalf("final labels differ between runs:\n%s", diff)
		}
	}
}

func TestSubsetsAreClosed(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		n := randomNFA(r, 6)
		d := mustBuild(t, n)
		for l, set := range d.Subsets() {
			if !Closure(set, n.Delta).Equal(set) {
				t.Fatalf("subset %s = %v is not ε-closed", l, set)
			}
			if LabelOf(set) != l {
				t.Fatalf("subset %v stored under %s, label is %s", set, l, LabelOf(set))
			}
		}
	}
}

func TestTransitionsArePartialFunction(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	for i := 0; i < 20; i++ {
		d := mustBuild(t, randomNFA(r, 6))
		seen := map[edgeKey]Label{}
		for _, e := range d.Edges() {
			k := edgeKey{e.From, e.Symbol}
			if prev, ok := seen[k]; ok {
				t.Fatalf("(%s, %s) has two targets: %s and %s", e.From, e.Symbol, prev, e.To)
			}
			seen[k] = e.To
			if e.Symbol == Epsilon {
				t.Fatalf("ε edge in DFA: %+v", e)
			}
		}
	}
}

func TestDFAMatchesNFA(t *testing.T) {
	words := allWords(6)
	nfas := []*NFA{
		example1(),
		NewNFA([]StateID{"q0", "q1", "q2", "q3"}, "q0", []StateID{"q3"},
			[]Triple{
				{"q0", Epsilon, "q1"},
				{"q1", Epsilon, "q2"},
				{"q2", One, "q3"},
				{"q1", Zero, "q0"},
				{"q3", Epsilon, "q0"},
			}),
	}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		nfas = append(nfas, randomNFA(r, 2+r.Intn(5)))
	}
	for i, n := range nfas {
		d := mustBuild(t, n)
		for _, w := range words {
			if got, want := d.RunString(w), Verdict(n.Accepts(w)); got != want {
				t.Fatalf("nfa #%d word %q: dfa says %v, nfa says %v", i, w, got, want)
			}
		}
	}
}

func TestLabelCollision(t *testing.T) {
	// {q0} and {0} both render as "q0".
	n := NewNFA([]StateID{"q0", "0"}, "q0", nil,
		[]Triple{{"q0", Zero, "0"}, {"0", One, "q0"}})
	_, err := Build(n)
	if !errors.Is(err, ErrLabelCollision) {
		t.Fatalf("err = %v, want ErrLabelCollision", err)
	}
}

func TestVerdictString(t *testing.T) {
	if Accepted.String() != "aceita" || Rejected.String() != "não aceita" {
		t.Fatalf("verdict strings: %q %q", Accepted, Rejected)
	}
}

// ------------------------------------------------------------------- Bench (quick)

func BenchmarkBuild(b *testing.B) {
	n := randomNFA(rand.New(rand.NewSource(1)), 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Build(n); err != nil {
			b.Fatal(err)
		}
	}
}
