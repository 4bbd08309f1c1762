// Package words reads the list of words to classify, one per line.
package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"afnd2afd/internal/automaton"
)

// Word is one input line together with the symbols it scans to.
type Word struct {
	Text    string
	Symbols []automaton.Symbol
}

// Scanner splits words into alphabet symbols. Any byte other than 0 or 1
// becomes a symbol of its own, which no DFA state has a transition for.
type Scanner struct {
	lexer *lexmachine.Lexer
}

func NewScanner() (*Scanner, error) {
	l := lexmachine.NewLexer()
	l.Add([]byte(`0`), symAction)
	l.Add([]byte(`1`), symAction)
	l.Add([]byte(`[^01]`), symAction)
	if err := l.Compile(); err != nil {
		return nil, err
	}
	return &Scanner{lexer: l}, nil
}

func symAction(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return automaton.Symbol(m.Bytes[0]), nil
}

func (s *Scanner) Symbols(word string) ([]automaton.Symbol, error) {
	sc, err := s.lexer.Scanner([]byte(word))
	if err != nil {
		return nil, err
	}
	syms := make([]automaton.Symbol, 0, len(word))
	for tok, err, eof := sc.Next(); !eof; tok, err, eof = sc.Next() {
		if err != nil {
			return nil, fmt.Errorf("words: scan %q: %w", word, err)
		}
		syms = append(syms, tok.(automaton.Symbol))
	}
	return syms, nil
}

// Load reads r line by line. Lines are trimmed; a blank line is the empty
// word.
func (s *Scanner) Load(r io.Reader) ([]Word, error) {
	var out []Word
	lines := bufio.NewScanner(r)
	for lines.Scan() {
		text := strings.TrimSpace(lines.Text())
		syms, err := s.Symbols(text)
		if err != nil {
			return nil, err
		}
		out = append(out, Word{Text: text, Symbols: syms})
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Scanner) LoadFile(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return s.Load(f)
}
