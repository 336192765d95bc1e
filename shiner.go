// Package shiner is the facade tying the toolkit's components together
// (§2's Frontend concept): a set of lexer rules plus a grammar, wired into
// something that can tokenize and parse source text in one call. It plays
// the role the teacher's internal/ictiobus.go root file plays for tunaq's
// compiler pipeline.
package shiner

import (
	"github.com/dekarrin/shiner/grammar"
	"github.com/dekarrin/shiner/lex"
	"github.com/dekarrin/shiner/parse"
	"github.com/dekarrin/shiner/regexp2nfa"
)

// RuleSpec is a single lexer rule as supplied by a caller building a
// Frontend: a token class name, the regex that recognizes it, and (for
// keyword-style rules) the fixed literal it denormalizes to, letting the
// tokenizer's Aho-Corasick prefilter short-circuit it.
type RuleSpec struct {
	Class    string
	Regex    string
	Literal  string
	Priority int
}

// ProductionSpec is a single grammar production as supplied by a caller:
// Left -> Right[0] Right[1] ... Right[n].
type ProductionSpec struct {
	Left  string
	Right []string
}

// GrammarSpec describes a complete grammar: terminals (taken from the
// lexer rule classes), non-terminals, productions, and a start symbol.
type GrammarSpec struct {
	NonTerminals []string
	Productions  []ProductionSpec
	Start        string
}

// Frontend is a fully-built tokenizer + LALR(1) parser pair (components
// C-K assembled together), ready to process source text.
type Frontend struct {
	Lexer *lex.Lexer
	Table *parse.Table
}

// NewFrontend compiles rules and gram into a runnable Frontend: each rule's
// regex is compiled to a DFA (components C/D/E), and gram is compiled to an
// LALR(1) parse table (components H-J). It does not fail on grammar
// conflicts -- inspect Frontend.Table.Conflicts to see if any were found.
func NewFrontend(rules []RuleSpec, gram GrammarSpec) (*Frontend, error) {
	lexRules := make([]lex.Rule, 0, len(rules))
	for _, r := range rules {
		lr := lex.Rule{Class: lex.NewClass(r.Class), Literal: r.Literal, Priority: r.Priority}
		if r.Literal == "" {
			n, err := regexp2nfa.ToNFA(r.Regex)
			if err != nil {
				return nil, err
			}
			lr.DFA = n.ToDFA().Minimize()
		}
		lexRules = append(lexRules, lr)
	}

	lexer, err := lex.NewLexer(lexRules)
	if err != nil {
		return nil, err
	}

	g := grammar.New()
	for _, r := range rules {
		if err := g.AddTerminal(r.Class); err != nil {
			return nil, err
		}
	}
	for _, nt := range gram.NonTerminals {
		if err := g.AddNonTerminal(nt); err != nil {
			return nil, err
		}
	}
	for _, p := range gram.Productions {
		if err := g.AddProduction(p.Left, p.Right...); err != nil {
			return nil, err
		}
	}
	if err := g.SetStart(gram.Start); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	table := parse.BuildLALR1Table(*g)

	return &Frontend{Lexer: lexer, Table: table}, nil
}

// Parse tokenizes source and parses the resulting stream, returning the
// parse tree on success.
func (f *Frontend) Parse(source string) (*parse.Tree, error) {
	stream, err := f.Lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return parse.NewParser(f.Table).Parse(stream)
}
