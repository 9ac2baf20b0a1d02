// SPDX-License-Identifier: MIT

// Command balakai tokenizes Balakai source files & prints the resulting tokens.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/tokenizer"
	"gitlab.com/fisherprime/tokenizer/grammar"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command, returning the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("balakai", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Balakai Interpreter\n\nUsage: balakai [flags] FILE...")
		fs.PrintDefaults()
	}

	debug := fs.Bool("debug", false, "log registration & scanning details")
	trimCR := fs.Bool("trim-cr", false, "drop trailing carriage returns")
	ignore := fs.String("ignore", "", "comma separated token groups to omit from the output")
	workers := fs.Int("workers", 0, "maximum concurrent scans (default GOMAXPROCS)")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 1
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	t := tokenizer.New(
		tokenizer.WithLogger(logger),
		tokenizer.WithDebug(*debug),
		tokenizer.WithTrimCR(*trimCR),
		tokenizer.WithWorkers(*workers),
	)
	grammar.Register(t)

	var omit []*tokenizer.TokenGroup
	for _, name := range strings.Split(*ignore, ",") {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}

		group, ok := t.Group(name)
		if !ok {
			fmt.Fprintf(stderr, "FATAL: Unknown token group '%s'\n", name)
			return 1
		}
		omit = append(omit, group)
	}

	sources := make([]tokenizer.Source, 0, fs.NArg())
	for _, path := range fs.Args() {
		file, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "FATAL: Couldn't open the file '%s'\n", path)
			return 1
		}
		defer file.Close()

		sources = append(sources, tokenizer.Source{Name: path, Reader: file})
	}

	results, _ := t.ScanAll(context.Background(), sources...)

	code := 0
	for _, resl := range results {
		if resl.Err != nil {
			code = 1
			report(stderr, resl.Err)
			continue
		}

		tokens := resl.Tokens.Without(omit...)
		fmt.Fprintf(stdout, "INFO: Parsed %d tokens:\n", len(tokens))
		for index := range tokens {
			fmt.Fprintf(stdout, " - [%s] %s\n", tokens[index].Name, tokens[index].Text())
		}
	}

	return code
}

// report prints a scan failure.
func report(w io.Writer, err error) {
	var unexpected *tokenizer.UnexpectedCharError
	if !errors.As(err, &unexpected) {
		fmt.Fprintf(w, "FATAL: %v\n", err)
		return
	}

	fmt.Fprintln(w, "FATAL: Found an unexpected token")
	_ = unexpected.Report(w)
}
