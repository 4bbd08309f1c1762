package automaton

import (
	"sort"
	"strings"
)

// StateID names a single NFA state.
type StateID string

// Symbol is one input symbol of the automaton alphabet.
type Symbol byte

const (
	Zero    Symbol = '0'
	One     Symbol = '1'
	Epsilon Symbol = 'h' // marker used only on ε-edges
)

// Alphabet lists the real input symbols in the order the builder visits them.
var Alphabet = []Symbol{Zero, One}

// ParseSymbol accepts "0", "1" and the epsilon marker "h".
func ParseSymbol(s string) (Symbol, bool) {
	if len(s) != 1 {
		return 0, false
	}
	switch sym := Symbol(s[0]); sym {
	case Zero, One, Epsilon:
		return sym, true
	}
	return 0, false
}

func (s Symbol) String() string { return string(rune(s)) }

// StateSet is an immutable, sorted and deduplicated set of NFA states.
// The zero value is the empty set.
type StateSet struct {
	ids []StateID
}

func NewStateSet(ids ...StateID) StateSet {
	if len(ids) == 0 {
		return StateSet{}
	}
	cp := append([]StateID(nil), ids...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:1]
	for _, id := range cp[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return StateSet{ids: out}
}

// fromSet freezes a scratch membership map.
func fromSet(m map[StateID]struct{}) StateSet {
	ids := make([]StateID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return NewStateSet(ids...)
}

func (s StateSet) Len() int      { return len(s.ids) }
func (s StateSet) IsEmpty() bool { return len(s.ids) == 0 }

// IDs returns a copy of the members in ascending order.
func (s StateSet) IDs() []StateID {
	out := make([]StateID, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s StateSet) Contains(id StateID) bool {
	i := sort.Search(len(s.ids), func(i int) bool { return s.ids[i] >= id })
	return i < len(s.ids) && s.ids[i] == id
}

func (s StateSet) Equal(o StateSet) bool {
	if len(s.ids) != len(o.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != o.ids[i] {
			return false
		}
	}
	return true
}

// Key is an injective encoding of the set, unlike its Label.
func (s StateSet) Key() string {
	parts := make([]string, len(s.ids))
	for i, id := range s.ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, "\x00")
}

func (s StateSet) String() string {
	parts := make([]string, len(s.ids))
	for i, id := range s.ids {
		parts[i] = string(id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Transitions maps (state, symbol) to successor states. Lookups are total:
// a missing pair yields no successors.
type Transitions struct {
	edges map[StateID]map[Symbol][]StateID
}

func NewTransitions() *Transitions {
	return &Transitions{edges: make(map[StateID]map[Symbol][]StateID)}
}

// Add records from --sym--> to, ignoring duplicates.
func (t *Transitions) Add(from StateID, sym Symbol, to StateID) {
	bySym, ok := t.edges[from]
	if !ok {
		bySym = make(map[Symbol][]StateID)
		t.edges[from] = bySym
	}
	for _, existing := range bySym[sym] {
		if existing == to {
			return
		}
	}
	bySym[sym] = append(bySym[sym], to)
}

// Targets never fails; the result must not be modified.
func (t *Transitions) Targets(from StateID, sym Symbol) []StateID {
	if t == nil {
		return nil
	}
	return t.edges[from][sym]
}

// Triple is one NFA edge as delivered by the description adapter.
type Triple struct {
	From   StateID
	Symbol Symbol
	To     StateID
}

// NFA is a nondeterministic automaton with ε-transitions.
type NFA struct {
	States  []StateID
	Initial StateID
	Final   StateSet
	Delta   *Transitions
}

func NewNFA(states []StateID, initial StateID, final []StateID, edges []Triple) *NFA {
	delta := NewTransitions()
	for _, e := range edges {
		delta.Add(e.From, e.Symbol, e.To)
	}
	return &NFA{
		States:  append([]StateID(nil), states...),
		Initial: initial,
		Final:   NewStateSet(final...),
		Delta:   delta,
	}
}

// accepting reports whether any member of set is final.
func (n *NFA) accepting(set StateSet) bool {
	for _, id := range set.ids {
		if n.Final.Contains(id) {
			return true
		}
	}
	return false
}
