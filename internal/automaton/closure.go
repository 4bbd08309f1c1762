package automaton

import "container/list"

// Closure returns every state reachable from seeds using ε-edges only,
// seeds included.
func Closure(seeds StateSet, delta *Transitions) StateSet {
	seen := make(map[StateID]struct{}, seeds.Len())
	stack := list.New()
	for _, s := range seeds.ids {
		seen[s] = struct{}{}
		stack.PushBack(s)
	}
	for stack.Len() > 0 {
		cur := stack.Remove(stack.Back()).(StateID)
		for _, next := range delta.Targets(cur, Epsilon) {
			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				stack.PushBack(next)
			}
		}
	}
	return fromSet(seen)
}

// Move returns the states reachable from states by exactly one sym edge.
// It is never called with Epsilon.
func Move(states StateSet, sym Symbol, delta *Transitions) StateSet {
	res := make(map[StateID]struct{})
	for _, s := range states.ids {
		for _, to := range delta.Targets(s, sym) {
			res[to] = struct{}{}
		}
	}
	return fromSet(res)
}

// Accepts simulates the NFA directly on word. Bytes outside the alphabet
// have no edges and kill every path.
func (n *NFA) Accepts(word string) bool {
	cur := Closure(NewStateSet(n.Initial), n.Delta)
	for i := 0; i < len(word); i++ {
		sym := Symbol(word[i])
		if sym == Epsilon {
			return false
		}
		cur = Closure(Move(cur, sym, n.Delta), n.Delta)
		if cur.IsEmpty() {
			return false
		}
	}
	return n.accepting(cur)
}
