package automaton

import (
	"sort"
	"strings"
)

// Label names a DFA state.
type Label string

// LabelPrefix is stripped from NFA state ids and put back in front of the
// concatenated result, so {q0} becomes "q0" and {q0,q1} becomes "q01".
const LabelPrefix = "q"

// LabelOf derives the canonical label of set. It depends only on the
// elements, never on insertion order.
func LabelOf(set StateSet) Label {
	parts := make([]string, len(set.ids))
	for i, id := range set.ids {
		parts[i] = strings.TrimPrefix(string(id), LabelPrefix)
	}
	sort.Strings(parts)
	return Label(LabelPrefix + strings.Join(parts, ""))
}
