// Package report serialises the DFA and the per-word verdicts.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"afnd2afd/internal/automaton"
)

// Result is the verdict for one word.
type Result struct {
	Word    string
	Verdict automaton.Verdict
}

// FormatResult pads the word to ten columns before the verdict.
func FormatResult(r Result) string {
	return fmt.Sprintf("%-10s %s", r.Word, r.Verdict)
}

func joinLabels(ls []automaton.Label) string {
	parts := make([]string, len(ls))
	for i, l := range ls {
		parts[i] = string(l)
	}
	return strings.Join(parts, " ")
}

// DFALines renders the DFA: sorted states, initial label, sorted final
// labels, then one "from symbol to" line per transition in discovery order.
func DFALines(d *automaton.DFA) []string {
	lines := []string{
		joinLabels(d.States),
		string(d.Initial),
		joinLabels(d.FinalLabels()),
	}
	for _, e := range d.Edges() {
		lines = append(lines, fmt.Sprintf("%s %s %s", e.From, e.Symbol, e.To))
	}
	return lines
}

func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(lines, "\n")); err != nil {
		return err
	}
	return bw.Flush()
}

func WriteDFA(w io.Writer, d *automaton.DFA) error {
	return writeLines(w, DFALines(d))
}

func WriteResults(w io.Writer, results []Result) error {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = FormatResult(r)
	}
	return writeLines(w, lines)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return f.Close()
}

func WriteDFAFile(path string, d *automaton.DFA) error {
	return writeFile(path, func(w io.Writer) error { return WriteDFA(w, d) })
}

func WriteResultsFile(path string, results []Result) error {
	return writeFile(path, func(w io.Writer) error { return WriteResults(w, results) })
}
