package automaton

import (
	"sort"

	"github.com/dekarrin/shiner/grammar"
)

// LR1Automaton is the canonical LR(1) collection of component I: a DFA whose
// states are LR(1) item sets (grammar.ItemSet) and whose edges are GOTO.
// parse/lalr.go merges this collection's states by core to build the
// LALR(1) parse table (§4.J); the collection itself never records
// conflicts -- it has no notion of "action", only of items and transitions.
type LR1Automaton struct {
	States      []*grammar.ItemSet
	Transitions []map[string]int // Transitions[i][X] = j iff GOTO(States[i], X) = States[j]
	Start       int
}

// Closure computes CLOSURE(items) per §4.I: for every item [A -> α.Bβ, a] in
// the set and every production B -> γ, it adds [B -> .γ, b] for every b in
// FIRST(βa), repeating to a fixed point.
func Closure(g grammar.Grammar, first grammar.FirstSets, items *grammar.ItemSet) *grammar.ItemSet {
	closure := grammar.NewItemSet()
	closure.Merge(items)

	changed := true
	for changed {
		changed = false
		for _, it := range closure.Cores() {
			next, ok := it.NextSymbol()
			if !ok || !g.IsNonTerminal(next.Name) {
				continue
			}

			beta := it.Prod.Right[it.Dot+1:]
			betaNames := make([]string, len(beta))
			for i, s := range beta {
				betaNames[i] = s.Name
			}

			for _, la := range closure.LookaheadsFor(it).Elements() {
				seq := append(append([]string(nil), betaNames...), la)
				lookaheads := grammar.FirstOfSequence(first, seq)

				for _, prod := range g.ProductionsFor(next.Name) {
					newItem := grammar.Item{Prod: prod, Dot: 0}
					for _, b := range lookaheads.Elements() {
						if b == grammar.Epsilon.Name {
							continue
						}
						if closure.Add(newItem, b) {
							changed = true
						}
					}
				}
			}
		}
	}
	return closure
}

// Goto computes GOTO(items, X) (§4.I): the kernel obtained by advancing the
// dot over every item in items whose next symbol is X, closed under Closure.
// Returns an empty set if no item in items has X next.
func Goto(g grammar.Grammar, first grammar.FirstSets, items *grammar.ItemSet, symName string) *grammar.ItemSet {
	kernel := grammar.NewItemSet()
	for _, it := range items.Cores() {
		next, ok := it.NextSymbol()
		if !ok || next.Name != symName {
			continue
		}
		advanced := it.Advance()
		for _, la := range items.LookaheadsFor(it).Elements() {
			kernel.Add(advanced, la)
		}
	}
	if kernel.Len() == 0 {
		return kernel
	}
	return Closure(g, first, kernel)
}

// NewLR1Automaton builds the canonical LR(1) collection for g (§4.I). g must
// already be augmented (its start production must be the sole production for
// its start symbol, of the form S' -> S) -- callers pass g.Augmented().
func NewLR1Automaton(g grammar.Grammar) *LR1Automaton {
	first := grammar.First(g)

	startProd := g.ProductionsFor(g.StartSymbol().Name)[0]
	startKernel := grammar.NewItemSet()
	startKernel.Add(grammar.Item{Prod: startProd, Dot: 0}, grammar.EndOfInput.Name)
	startState := Closure(g, first, startKernel)

	aut := &LR1Automaton{}
	byKey := map[string]int{}

	add := func(is *grammar.ItemSet) int {
		key := is.Key()
		if idx, ok := byKey[key]; ok {
			return idx
		}
		idx := len(aut.States)
		aut.States = append(aut.States, is)
		aut.Transitions = append(aut.Transitions, map[string]int{})
		byKey[key] = idx
		return idx
	}

	aut.Start = add(startState)
	worklist := []int{aut.Start}

	symbols := make([]string, 0, len(g.Terminals())+len(g.NonTerminals()))
	for _, t := range g.Terminals() {
		symbols = append(symbols, t.Name)
	}
	for _, nt := range g.NonTerminals() {
		symbols = append(symbols, nt.Name)
	}
	sort.Strings(symbols)

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		for _, sym := range symbols {
			target := Goto(g, first, aut.States[cur], sym)
			if target.Len() == 0 {
				continue
			}
			key := target.Key()
			idx, known := byKey[key]
			if !known {
				idx = add(target)
				worklist = append(worklist, idx)
			}
			aut.Transitions[cur][sym] = idx
		}
	}

	return aut
}
