package main

import (
	"flag"
	"fmt"
	"os"

	u "github.com/araddon/gou"

	"afnd2afd/internal/app"
)

func main() {
	conf := app.DefaultConfig()
	flag.StringVar(&conf.NFAPath, "afnd", conf.NFAPath, "NFA description to read")
	flag.StringVar(&conf.DFAPath, "afd", conf.DFAPath, "where to write the DFA")
	flag.StringVar(&conf.WordsPath, "words", conf.WordsPath, "words to classify, one per line")
	flag.StringVar(&conf.ResultsPath, "results", conf.ResultsPath, "where to write the verdicts")
	flag.StringVar(&conf.LogLevel, "loglevel", conf.LogLevel, "log level [debug|info|warn|error]")
	flag.Parse()

	if err := conf.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	u.SetupLogging(conf.LogLevel)
	u.SetColorIfTerminal()

	ctx, err := app.Run(conf)
	if err != nil {
		u.Errorf("%v", err)
		os.Exit(1)
	}
	fmt.Printf("DFA written to %s, %d results written to %s\n",
		conf.DFAPath, len(ctx.Results), conf.ResultsPath)
}
