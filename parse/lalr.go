package parse

import (
	"github.com/dekarrin/shiner/automaton"
	"github.com/dekarrin/shiner/grammar"
)

// BuildLALR1Table constructs the LALR(1) ACTION/GOTO table for g (§4.J).
//
// The canonical LR(1) collection (component I) is built first, then its
// states are grouped by core: every LR(1) state sharing a core with another
// becomes a single LALR(1) state whose lookahead sets are the union of the
// states that merged into it. This is the "merge LR(1) states with common
// cores" construction (Purple Dragon §4.7.4) rather than the teacher's
// from-scratch kernel/lookahead propagation (Algorithm 4.63): grouping
// already-computed canonical states by CoreKey is simpler to get right and
// produces the same table, at the cost of first building the (larger)
// canonical collection.
//
// Unlike the teacher's table builder, which aborts outright on any
// shift/reduce or reduce/reduce collision, conflicts here are recorded in
// the returned Table's Conflicts field and resolved by keeping whichever
// action was written first -- BuildLALR1Table itself never fails on an
// ambiguous grammar.
func BuildLALR1Table(g grammar.Grammar) *Table {
	aug := g.Augmented()
	canonical := automaton.NewLR1Automaton(aug)

	// group canonical states by core, preserving first-seen order so state
	// numbering is deterministic for a given construction order.
	var mergedOrder []string
	groupOf := map[string]int{}
	var merged []*grammar.ItemSet
	lalrIndexOfCanonical := make([]int, len(canonical.States))

	for i, state := range canonical.States {
		key := state.CoreKey()
		idx, ok := groupOf[key]
		if !ok {
			idx = len(merged)
			groupOf[key] = idx
			merged = append(merged, grammar.NewItemSet())
			mergedOrder = append(mergedOrder, key)
		}
		merged[idx].Merge(state)
		lalrIndexOfCanonical[i] = idx
	}

	table := newTable(len(merged))
	table.States = merged
	table.Start = lalrIndexOfCanonical[canonical.Start]

	for i, row := range canonical.Transitions {
		from := lalrIndexOfCanonical[i]
		for sym, j := range row {
			to := lalrIndexOfCanonical[j]
			if aug.IsNonTerminal(sym) {
				table.Goto[from][sym] = to
			} else {
				table.setAction(from, sym, Action{Type: Shift, State: to})
			}
		}
	}

	startProdLeft := aug.StartSymbol().Name
	for i, state := range merged {
		for _, it := range state.Cores() {
			if !it.AtEnd() {
				continue
			}
			if it.Prod.Left.Name == startProdLeft {
				table.setAction(i, grammar.EndOfInput.Name, Action{Type: Accept})
				continue
			}
			for _, la := range state.LookaheadsFor(it).Elements() {
				table.setAction(i, la, Action{Type: Reduce, Prod: it.Prod})
			}
		}
	}

	return table
}
