/*
Shinerc runs a grammar and lexer rule description, defined in a TOML file,
over an input source file and reports whether it lexes and parses.

Usage:

	shinerc [flags]

The flags are:

	-g, --grammar FILE
		The TOML file describing the lexer rules and grammar productions to
		build a Frontend from. Defaults to "grammar.toml".

	-i, --input FILE
		The source file to tokenize and parse. Defaults to reading from
		stdin.

	-t, --tokens-only
		Stop after tokenizing and print the token stream; do not parse.

	-v, --verbose
		Log each step the LALR(1) parser driver takes to stderr.

	-r, --repl
		Ignore --input and start an interactive line-at-a-time prompt
		instead, using GNU-readline-style editing.
*/
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/dekarrin/shiner"
	"github.com/dekarrin/shiner/parse"
)

const (
	// ExitSuccess indicates a successful run.
	ExitSuccess = iota

	// ExitInitError indicates the grammar/lexer description failed to load
	// or compile into a Frontend, or the input (or the interactive prompt)
	// could not be opened.
	ExitInitError

	// ExitParseError indicates the input was read but failed to lex or
	// parse.
	ExitParseError
)

var (
	returnCode  = ExitSuccess
	grammarFile = pflag.StringP("grammar", "g", "grammar.toml", "TOML file describing lexer rules and grammar productions")
	inputFile   = pflag.StringP("input", "i", "", "source file to tokenize and parse; defaults to stdin")
	tokensOnly  = pflag.BoolP("tokens-only", "t", false, "stop after tokenizing; print the token stream")
	verbose     = pflag.BoolP("verbose", "v", false, "log each parser driver step to stderr")
	repl        = pflag.BoolP("repl", "r", false, "start an interactive prompt instead of reading --input")
)

func main() {
	defer func() { os.Exit(returnCode) }()
	pflag.Parse()

	cfg, err := loadConfig(*grammarFile)
	if err != nil {
		log.Printf("ERROR: loading %s: %v", *grammarFile, err)
		returnCode = ExitInitError
		return
	}

	ruleSpecs, gramSpec := cfg.toFrontendInputs()
	front, err := shiner.NewFrontend(ruleSpecs, gramSpec)
	if err != nil {
		log.Printf("ERROR: building frontend: %v", err)
		returnCode = ExitInitError
		return
	}
	for _, c := range front.Table.Conflicts {
		log.Printf("warning: grammar conflict: %s", c)
	}

	if *repl {
		runRepl(front)
		return
	}

	src, err := readInput(*inputFile)
	if err != nil {
		log.Printf("ERROR: reading input: %v", err)
		returnCode = ExitInitError
		return
	}

	if !run(front, src) {
		returnCode = ExitParseError
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func run(front *shiner.Frontend, src string) bool {
	if *verbose {
		log.Printf("tokenizing %d bytes", len(src))
	}

	stream, err := front.Lexer.Tokenize(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lex error: %v\n", err)
		return false
	}

	if *tokensOnly {
		for stream.HasNext() {
			tok := stream.Next()
			fmt.Printf("%s\n", tok)
		}
		return true
	}

	p := parse.NewParser(front.Table)
	if *verbose {
		p.RegisterTraceListener(func(s string) { log.Print(s) })
	}

	tree, err := p.Parse(stream)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		return false
	}

	fmt.Print(tree.String())
	return true
}

func runRepl(front *shiner.Frontend) {
	rl, err := readline.New("shiner> ")
	if err != nil {
		log.Printf("ERROR: starting readline: %v", err)
		returnCode = ExitInitError
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		if line == "" {
			continue
		}
		run(front, line)
	}
}
