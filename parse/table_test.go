package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/shiner/grammar"
)

func TestTable_SetAction_RecordsConflictKeepsFirst(t *testing.T) {
	tbl := newTable(1)
	tbl.setAction(0, "a", Action{Type: Shift, State: 1})
	tbl.setAction(0, "a", Action{Type: Reduce, Prod: grammar.Production{Left: grammar.NonTerm("X")}})

	got := tbl.Action[0]["a"]
	assert.Equal(t, Shift, got.Type)
	assert.Len(t, tbl.Conflicts, 1)
	assert.Equal(t, Shift, tbl.Conflicts[0].Kept.Type)
	assert.Equal(t, Reduce, tbl.Conflicts[0].Rejected.Type)
}

func TestTable_SetAction_IdenticalActionIsNotAConflict(t *testing.T) {
	tbl := newTable(1)
	tbl.setAction(0, "a", Action{Type: Shift, State: 1})
	tbl.setAction(0, "a", Action{Type: Shift, State: 1})
	assert.Empty(t, tbl.Conflicts)
}

func TestTable_Expected_SortsSymbols(t *testing.T) {
	tbl := newTable(1)
	tbl.setAction(0, "b", Action{Type: Shift, State: 1})
	tbl.setAction(0, "a", Action{Type: Shift, State: 1})
	assert.Equal(t, []string{"a", "b"}, tbl.Expected(0))
}
