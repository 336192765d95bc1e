// Package parse implements the LALR(1) table builder (component J) and the
// shift/reduce parser driver (component K).
package parse

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/shiner/grammar"
)

// ActionType distinguishes the three kinds of non-error ACTION-table entry
// (§4.J). The absence of an entry for (state, symbol) is the fourth,
// implicit "error" case.
type ActionType int

const (
	// Shift pushes the input symbol and moves to Action.State.
	Shift ActionType = iota
	// Reduce pops len(Action.Prod.Right) symbols and pushes Action.Prod.Left.
	Reduce
	// Accept ends a successful parse.
	Accept
)

func (t ActionType) String() string {
	switch t {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return "unknown"
	}
}

// Action is a single ACTION-table cell.
type Action struct {
	Type  ActionType
	State int // target state, for Shift
	Prod  grammar.Production
}

func (a Action) String() string {
	switch a.Type {
	case Shift:
		return fmt.Sprintf("s%d", a.State)
	case Reduce:
		return fmt.Sprintf("r(%s)", a.Prod.String())
	case Accept:
		return "acc"
	default:
		return "?"
	}
}

// Conflict records a shift/reduce or reduce/reduce collision discovered
// while filling the ACTION table. Per §4.J and §9's design note, a conflict
// is never fatal: the first action written to a cell is kept and every
// later attempt to write a different action to the same cell is recorded
// here instead of overwriting it or aborting table construction.
type Conflict struct {
	State    int
	Symbol   string
	Kept     Action
	Rejected Action
}

func (c Conflict) String() string {
	return fmt.Sprintf("state %d, symbol %q: kept %s, rejected %s", c.State, c.Symbol, c.Kept, c.Rejected)
}

// Table is a complete LALR(1) parse table: ACTION and GOTO, plus whatever
// conflicts were encountered building it. A Table with a non-empty
// Conflicts list is still usable -- it just may reject some inputs an
// unambiguous grammar would have accepted, or behave per the first-writer
// policy on ambiguous ones.
type Table struct {
	States    []*grammar.ItemSet
	Action    []map[string]Action
	Goto      []map[string]int
	Conflicts []Conflict
	Start     int
}

func newTable(n int) *Table {
	t := &Table{
		Action: make([]map[string]Action, n),
		Goto:   make([]map[string]int, n),
	}
	for i := range t.Action {
		t.Action[i] = map[string]Action{}
		t.Goto[i] = map[string]int{}
	}
	return t
}

// setAction installs act at (state, symbol), recording a Conflict instead of
// overwriting if a different action is already present there.
func (t *Table) setAction(state int, symbol string, act Action) {
	existing, ok := t.Action[state][symbol]
	if !ok {
		t.Action[state][symbol] = act
		return
	}
	if actionsEqual(existing, act) {
		return
	}
	t.Conflicts = append(t.Conflicts, Conflict{State: state, Symbol: symbol, Kept: existing, Rejected: act})
}

func actionsEqual(a, b Action) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case Shift:
		return a.State == b.State
	case Reduce:
		return a.Prod.Equal(b.Prod)
	default:
		return true
	}
}

// Expected returns the sorted list of terminal symbols that have some
// ACTION entry in state, for use in syntax-error messages ("expected one of
// ...").
func (t *Table) Expected(state int) []string {
	out := make([]string, 0, len(t.Action[state]))
	for sym := range t.Action[state] {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// String renders the table as an ASCII grid in the teacher corpus's
// rosed-table style, primarily useful for debugging small grammars.
func (t *Table) String() string {
	symbols := map[string]bool{}
	for _, row := range t.Action {
		for sym := range row {
			symbols[sym] = true
		}
	}
	for _, row := range t.Goto {
		for sym := range row {
			symbols[sym] = true
		}
	}
	syms := make([]string, 0, len(symbols))
	for s := range symbols {
		syms = append(syms, s)
	}
	sort.Strings(syms)

	header := append([]string{"state"}, syms...)
	rows := [][]string{header}
	for i := range t.Action {
		row := make([]string, 0, len(syms)+1)
		row = append(row, fmt.Sprintf("%d", i))
		for _, sym := range syms {
			if act, ok := t.Action[i][sym]; ok {
				row = append(row, act.String())
			} else if g, ok := t.Goto[i][sym]; ok {
				row = append(row, fmt.Sprintf("g%d", g))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, rows, 100, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
