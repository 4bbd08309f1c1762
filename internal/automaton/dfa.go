package automaton

import (
	"errors"
	"fmt"
	"sort"
)

// ErrLabelCollision is returned by Build when two different state sets
// canonicalise to the same label.
var ErrLabelCollision = errors.New("automaton: distinct state sets share a label")

type edgeKey struct {
	from Label
	sym  Symbol
}

// Edge is one DFA transition.
type Edge struct {
	From   Label
	Symbol Symbol
	To     Label
}

// DFA is the frozen result of the subset construction. It is safe for
// concurrent readers.
type DFA struct {
	States  []Label
	Initial Label

	final   map[Label]struct{}
	delta   map[edgeKey]Label
	edges   []Edge
	subsets map[Label]StateSet
}

// Next follows the (from, sym) transition. ok is false when none exists.
func (d *DFA) Next(from Label, sym Symbol) (to Label, ok bool) {
	to, ok = d.delta[edgeKey{from, sym}]
	return
}

func (d *DFA) IsFinal(l Label) bool {
	_, ok := d.final[l]
	return ok
}

// FinalLabels returns the accepting labels sorted.
func (d *DFA) FinalLabels() []Label {
	out := make([]Label, 0, len(d.final))
	for l := range d.final {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Edges returns the transitions in the order the construction found them.
func (d *DFA) Edges() []Edge { return append([]Edge(nil), d.edges...) }

// Subset returns the NFA states a label stands for.
func (d *DFA) Subset(l Label) (StateSet, bool) {
	s, ok := d.subsets[l]
	return s, ok
}

// Subsets returns a copy of the label to state-set mapping.
func (d *DFA) Subsets() map[Label]StateSet {
	out := make(map[Label]StateSet, len(d.subsets))
	for l, s := range d.subsets {
		out[l] = s
	}
	return out
}

// builder owns every table while the worklist is running; freeze hands
// them over to the DFA.
type builder struct {
	byKey   map[string]Label
	subsets map[Label]StateSet
	final   map[Label]struct{}
	delta   map[edgeKey]Label
	edges   []Edge
	queue   []StateSet
}

// intern returns the label of set, enqueueing it if it is new.
func (b *builder) intern(set StateSet) (Label, error) {
	if l, ok := b.byKey[set.Key()]; ok {
		return l, nil
	}
	l := LabelOf(set)
	if prev, ok := b.subsets[l]; ok {
		return "", fmt.Errorf("%w: %s and %s both map to %s", ErrLabelCollision, prev, set, l)
	}
	b.byKey[set.Key()] = l
	b.subsets[l] = set
	b.queue = append(b.queue, set)
	return l, nil
}

func (b *builder) freeze(initial Label) *DFA {
	states := make([]Label, 0, len(b.subsets))
	for l := range b.subsets {
		states = append(states, l)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return &DFA{
		States:  states,
		Initial: initial,
		final:   b.final,
		delta:   b.delta,
		edges:   b.edges,
		subsets: b.subsets,
	}
}

// Build runs the subset construction over nfa. States are explored
// breadth first; an empty move records no transition, so the result may
// be partial.
func Build(nfa *NFA) (*DFA, error) {
	b := &builder{
		byKey:   make(map[string]Label),
		subsets: make(map[Label]StateSet),
		final:   make(map[Label]struct{}),
		delta:   make(map[edgeKey]Label),
	}
	start, err := b.intern(Closure(NewStateSet(nfa.Initial), nfa.Delta))
	if err != nil {
		return nil, err
	}
	for len(b.queue) > 0 {
		cur := b.queue[0]
		b.queue = b.queue[1:]
		curLabel := b.byKey[cur.Key()]
		if nfa.accepting(cur) {
			b.final[curLabel] = struct{}{}
		}
		for _, sym := range Alphabet {
			next := Closure(Move(cur, sym, nfa.Delta), nfa.Delta)
			if next.IsEmpty() {
				continue
			}
			to, err := b.intern(next)
			if err != nil {
				return nil, err
			}
			b.delta[edgeKey{curLabel, sym}] = to
			b.edges = append(b.edges, Edge{From: curLabel, Symbol: sym, To: to})
		}
	}
	return b.freeze(start), nil
}
