// Package app wires the adapters around the subset construction.
package app

import (
	"fmt"

	u "github.com/araddon/gou"
	"github.com/kr/pretty"

	"afnd2afd/internal/afnd"
	"afnd2afd/internal/automaton"
	"afnd2afd/internal/report"
	"afnd2afd/internal/words"
)

// Context holds what one run has produced so far.
type Context struct {
	Conf    Config
	NFA     *automaton.NFA
	DFA     *automaton.DFA
	Results []report.Result
}

// Run reads the NFA, writes its DFA, then classifies every word and
// writes the verdicts.
func Run(conf Config) (*Context, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	ctx := &Context{Conf: conf}

	nfa, err := afnd.LoadFile(conf.NFAPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", conf.NFAPath, err)
	}
	ctx.NFA = nfa
	u.Infof("loaded nfa with %d states from %s", len(nfa.States), conf.NFAPath)

	dfa, err := automaton.Build(nfa)
	if err != nil {
		return nil, err
	}
	ctx.DFA = dfa
	u.Infof("built dfa: %d states, %d final, %d transitions",
		len(dfa.States), len(dfa.FinalLabels()), len(dfa.Edges()))
	u.Debugf("subsets: %# v", pretty.Formatter(dfa.Subsets()))

	if err := report.WriteDFAFile(conf.DFAPath, dfa); err != nil {
		return nil, err
	}

	sc, err := words.NewScanner()
	if err != nil {
		return nil, err
	}
	ws, err := sc.LoadFile(conf.WordsPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", conf.WordsPath, err)
	}
	for _, w := range ws {
		v := dfa.Run(w.Symbols)
		u.Debugf("%q -> %s", w.Text, v)
		ctx.Results = append(ctx.Results, report.Result{Word: w.Text, Verdict: v})
	}
	if err := report.WriteResultsFile(conf.ResultsPath, ctx.Results); err != nil {
		return nil, err
	}
	u.Infof("classified %d words into %s", len(ws), conf.ResultsPath)
	return ctx, nil
}
