package app

import "fmt"

// Config names the files the pipeline reads and writes.
type Config struct {
	NFAPath     string // NFA description, input
	DFAPath     string // DFA description, output
	WordsPath   string // words to classify, input
	ResultsPath string // verdicts, output
	LogLevel    string // [debug,info,warn,error]
}

func DefaultConfig() Config {
	return Config{
		NFAPath:     "afnd.txt",
		DFAPath:     "afd.txt",
		WordsPath:   "palavras.txt",
		ResultsPath: "resultados.txt",
		LogLevel:    "info",
	}
}

func (c Config) Validate() error {
	for name, v := range map[string]string{
		"afnd":    c.NFAPath,
		"afd":     c.DFAPath,
		"words":   c.WordsPath,
		"results": c.ResultsPath,
	} {
		if v == "" {
			return fmt.Errorf("config: %s path is empty", name)
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}
