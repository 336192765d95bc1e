// Package grammar models context-free grammars and the LR item machinery
// built over them: Symbol, Production, Grammar, FIRST/FOLLOW, and LR(0)/LR(1)
// items. It corresponds to component A ("Symbol & Grammar model") and
// component H ("FIRST/FOLLOW analyzer") of the front-end toolkit.
package grammar

import "fmt"

// Kind distinguishes a terminal symbol (produced by the lexer) from a
// non-terminal symbol (produced by a grammar production).
type Kind int

const (
	Terminal Kind = iota
	NonTerminal
)

func (k Kind) String() string {
	if k == Terminal {
		return "terminal"
	}
	return "non-terminal"
}

// Symbol is a grammar vocabulary item. Two Symbols are equal iff both their
// Name and Kind match -- a terminal and a non-terminal with the same spelling
// are distinct symbols.
type Symbol struct {
	Name string
	Kind Kind
}

// Term returns the terminal symbol with the given name.
func Term(name string) Symbol { return Symbol{Name: name, Kind: Terminal} }

// NonTerm returns the non-terminal symbol with the given name.
func NonTerm(name string) Symbol { return Symbol{Name: name, Kind: NonTerminal} }

// Epsilon is the distinguished terminal symbol marking a production's empty
// right-hand side. Its name, "ε", cannot be used by caller-supplied
// terminals or non-terminals.
var Epsilon = Symbol{Name: "ε", Kind: Terminal}

// EndOfInput is the distinguished terminal appended by the parser driver as
// the lookahead for the augmented start production's accept item.
var EndOfInput = Symbol{Name: "$", Kind: Terminal}

// IsEpsilon reports whether sym is the distinguished epsilon symbol.
func (sym Symbol) IsEpsilon() bool { return sym == Epsilon }

// IsEndOfInput reports whether sym is the distinguished end-of-input symbol.
func (sym Symbol) IsEndOfInput() bool { return sym == EndOfInput }

func (sym Symbol) String() string {
	return sym.Name
}

func (sym Symbol) GoString() string {
	return fmt.Sprintf("%s(%s)", sym.Name, sym.Kind)
}
