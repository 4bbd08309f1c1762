// Package afnd reads the textual NFA description:
//
//	q0 q1 q2        states
//	q0              initial state
//	q2              final states (may be empty)
//	q0 0 q1         one transition per line; h is the ε symbol
package afnd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	u "github.com/araddon/gou"

	"afnd2afd/internal/automaton"
)

type Description struct {
	States      []string      `parser:"@Token* EOL"`
	Initial     string        `parser:"@Token EOL"`
	Finals      []string      `parser:"@Token* EOL"`
	Transitions []*Transition `parser:"( @@ | EOL )*"`
}

type Transition struct {
	Pos    lexer.Position
	From   string `parser:"@Token"`
	Symbol string `parser:"@Token"`
	To     string `parser:"@Token EOL"`
}

var descLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Token", Pattern: `[^\s]+`},
})

var parser = participle.MustBuild[Description](
	participle.Lexer(descLexer),
	participle.Elide("Whitespace"),
)

// ParseString parses a description; name is only used in error positions.
func ParseString(name, data string) (*Description, error) {
	if !strings.HasSuffix(data, "\n") {
		data += "\n"
	}
	desc, err := parser.ParseString(name, data)
	if err != nil {
		return nil, fmt.Errorf("afnd: malformed description: %w", err)
	}
	return desc, nil
}

func Parse(name string, r io.Reader) (*Description, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("afnd: read %s: %w", name, err)
	}
	return ParseString(name, string(data))
}

// LoadFile reads and converts the description stored at path.
func LoadFile(path string) (*automaton.NFA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	desc, err := Parse(path, f)
	if err != nil {
		return nil, err
	}
	return desc.NFA(), nil
}

// NFA converts the description. Transitions on symbols other than 0, 1
// and h are dropped with a warning; nothing else is validated.
func (d *Description) NFA() *automaton.NFA {
	known := make(map[string]struct{}, len(d.States))
	states := make([]automaton.StateID, len(d.States))
	for i, s := range d.States {
		states[i] = automaton.StateID(s)
		known[s] = struct{}{}
	}
	if _, ok := known[d.Initial]; !ok {
		u.Warnf("initial state %q is not listed among the states", d.Initial)
	}
	finals := make([]automaton.StateID, len(d.Finals))
	for i, s := range d.Finals {
		if _, ok := known[s]; !ok {
			u.Warnf("final state %q is not listed among the states", s)
		}
		finals[i] = automaton.StateID(s)
	}
	edges := make([]automaton.Triple, 0, len(d.Transitions))
	for _, t := range d.Transitions {
		sym, ok := automaton.ParseSymbol(t.Symbol)
		if !ok {
			u.Warnf("%s: dropping transition %s %s %s: invalid symbol", t.Pos, t.From, t.Symbol, t.To)
			continue
		}
		edges = append(edges, automaton.Triple{
			From:   automaton.StateID(t.From),
			Symbol: sym,
			To:     automaton.StateID(t.To),
		})
	}
	return automaton.NewNFA(states, automaton.StateID(d.Initial), finals, edges)
}
