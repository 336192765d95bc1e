package grammar

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dekarrin/shiner/ferrors"
)

// Grammar is the tuple (terminals, non-terminals, productions, start)
// described in §3 of the spec. Terminal and non-terminal names are tracked
// in insertion order so that algorithms that iterate "for each terminal"
// (CLOSURE, ACTION-table filling) produce deterministic, discovery-ordered
// output given the same construction order, per §4.I.
//
// A Grammar is built once with the Add* methods and then treated as
// read-only by every downstream component; nothing in automaton or parse
// mutates a Grammar it is handed.
type Grammar struct {
	terminals    []Symbol
	nonTerminals []Symbol
	productions  []Production
	start        string

	termIndex    map[string]bool
	nonTermIndex map[string]bool
}

// New returns an empty Grammar ready to be populated with AddTerminal,
// AddNonTerminal, AddProduction, and SetStart.
func New() *Grammar {
	return &Grammar{
		termIndex:    map[string]bool{},
		nonTermIndex: map[string]bool{},
	}
}

// AddTerminal declares a terminal symbol. It is an error to add "ε" or "$"
// explicitly; those are always implicitly available.
func (g *Grammar) AddTerminal(name string) error {
	if name == Epsilon.Name || name == EndOfInput.Name {
		return fmt.Errorf("%q is a reserved terminal name", name)
	}
	if g.termIndex[name] {
		return nil
	}
	g.termIndex[name] = true
	g.terminals = append(g.terminals, Term(name))
	return nil
}

// AddNonTerminal declares a non-terminal symbol.
func (g *Grammar) AddNonTerminal(name string) error {
	if g.nonTermIndex[name] {
		return nil
	}
	g.nonTermIndex[name] = true
	g.nonTerminals = append(g.nonTerminals, NonTerm(name))
	return nil
}

// AddProduction adds left -> right[0] right[1] ... to the grammar. left and
// every element of right must already have been declared with AddTerminal or
// AddNonTerminal, except that an empty right is allowed (an ε-production). A
// structurally identical production that is already present is a no-op.
func (g *Grammar) AddProduction(left string, right ...string) error {
	if !g.nonTermIndex[left] {
		return fmt.Errorf("production left-hand side %q is not a declared non-terminal", left)
	}

	rhs := make([]Symbol, 0, len(right))
	for _, name := range right {
		sym, ok := g.resolve(name)
		if !ok {
			return fmt.Errorf("production symbol %q is not declared as a terminal or non-terminal", name)
		}
		rhs = append(rhs, sym)
	}

	prod := Production{Left: NonTerm(left), Right: rhs}
	for _, existing := range g.productions {
		if existing.Equal(prod) {
			return nil
		}
	}
	g.productions = append(g.productions, prod)
	return nil
}

func (g *Grammar) resolve(name string) (Symbol, bool) {
	if g.nonTermIndex[name] {
		return NonTerm(name), true
	}
	if g.termIndex[name] {
		return Term(name), true
	}
	return Symbol{}, false
}

// SetStart designates name, which must already be a declared non-terminal,
// as the grammar's start symbol.
func (g *Grammar) SetStart(name string) error {
	if !g.nonTermIndex[name] {
		return fmt.Errorf("start symbol %q is not a declared non-terminal", name)
	}
	g.start = name
	return nil
}

// StartSymbol returns the grammar's designated start symbol.
func (g Grammar) StartSymbol() Symbol { return NonTerm(g.start) }

// Terminals returns the grammar's terminals in declaration order.
func (g Grammar) Terminals() []Symbol { return append([]Symbol(nil), g.terminals...) }

// NonTerminals returns the grammar's non-terminals in declaration order.
func (g Grammar) NonTerminals() []Symbol { return append([]Symbol(nil), g.nonTerminals...) }

// Productions returns every production in the grammar, in the order they
// were added.
func (g Grammar) Productions() []Production { return append([]Production(nil), g.productions...) }

// ProductionsFor returns the productions whose left-hand side is nonTerminal,
// in declaration order.
func (g Grammar) ProductionsFor(nonTerminal string) []Production {
	var out []Production
	for _, p := range g.productions {
		if p.Left.Name == nonTerminal {
			out = append(out, p)
		}
	}
	return out
}

// IsTerminal reports whether name is a declared terminal, or one of the
// always-available "ε"/"$" symbols.
func (g Grammar) IsTerminal(name string) bool {
	return g.termIndex[name] || name == Epsilon.Name || name == EndOfInput.Name
}

// IsNonTerminal reports whether name is a declared non-terminal.
func (g Grammar) IsNonTerminal(name string) bool {
	return g.nonTermIndex[name]
}

// Symbol resolves name to the Symbol it names in this grammar, including the
// reserved ε/$ terminals.
func (g Grammar) Symbol(name string) Symbol {
	if name == Epsilon.Name {
		return Epsilon
	}
	if name == EndOfInput.Name {
		return EndOfInput
	}
	if sym, ok := g.resolve(name); ok {
		return sym
	}
	return Symbol{}
}

// Validate checks the invariants from §3: the start symbol is declared, and
// no user-supplied non-terminal collides with the reserved ε/$ names.
func (g Grammar) Validate() error {
	if g.start == "" {
		return ferrors.MissingStartSymbol()
	}
	if !g.nonTermIndex[g.start] {
		return fmt.Errorf("start symbol %q is not among the grammar's non-terminals", g.start)
	}
	for _, nt := range g.nonTerminals {
		if nt.Name == Epsilon.Name || nt.Name == EndOfInput.Name {
			return fmt.Errorf("non-terminal %q collides with a reserved symbol name", nt.Name)
		}
	}
	return nil
}

// GenerateUniqueNonTerminal returns a non-terminal name derived from base
// that is guaranteed not to collide with any name already declared in g. The
// first candidate tried is base+"'" (the conventional augmented-start
// spelling, S' -> S); if that's already taken -- unusual, but a caller could
// have legitimately declared a non-terminal literally named "S'" -- a short
// UUID-derived suffix is appended instead so augmentation can never silently
// collide with user-declared grammar symbols.
func (g Grammar) GenerateUniqueNonTerminal(base string) string {
	candidate := base + "'"
	if !g.nonTermIndex[candidate] && !g.termIndex[candidate] {
		return candidate
	}
	for {
		candidate = fmt.Sprintf("%s'-%s", base, uuid.NewString()[:8])
		if !g.nonTermIndex[candidate] && !g.termIndex[candidate] {
			return candidate
		}
	}
}

// Augmented returns a new grammar identical to g but with a fresh start
// symbol S' and an added production S' -> S, per §4.I's augmentation step.
// The receiver is left unmodified.
func (g Grammar) Augmented() Grammar {
	primeName := g.GenerateUniqueNonTerminal(g.start)

	aug := Grammar{
		terminals:    append([]Symbol(nil), g.terminals...),
		nonTerminals: append([]Symbol{NonTerm(primeName)}, g.nonTerminals...),
		productions:  append([]Production{{Left: NonTerm(primeName), Right: []Symbol{NonTerm(g.start)}}}, g.productions...),
		start:        primeName,
		termIndex:    map[string]bool{},
		nonTermIndex: map[string]bool{primeName: true},
	}
	for k := range g.termIndex {
		aug.termIndex[k] = true
	}
	for k := range g.nonTermIndex {
		aug.nonTermIndex[k] = true
	}
	return aug
}
