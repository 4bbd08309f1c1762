package automaton

// Verdict is the outcome of running a word through a DFA.
type Verdict bool

const (
	Rejected Verdict = false
	Accepted Verdict = true
)

func (v Verdict) String() string {
	if v {
		return "aceita"
	}
	return "não aceita"
}

// Run feeds word through the DFA. A missing transition rejects at once;
// the rest of the word is not read.
func (d *DFA) Run(word []Symbol) Verdict {
	cur := d.Initial
	for _, sym := range word {
		next, ok := d.Next(cur, sym)
		if !ok {
			return Rejected
		}
		cur = next
	}
	return Verdict(d.IsFinal(cur))
}

// RunString treats every byte of word as a symbol.
func (d *DFA) RunString(word string) Verdict {
	syms := make([]Symbol, len(word))
	for i := 0; i < len(word); i++ {
		syms[i] = Symbol(word[i])
	}
	return d.Run(syms)
}
