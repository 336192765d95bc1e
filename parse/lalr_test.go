package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/shiner/grammar"
)

// exprGrammar builds the classic expression grammar used in §8 scenario 4:
//
//	E -> E + T | T
//	T -> T * F | F
//	F -> ( E ) | id
func exprGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g := grammar.New()
	for _, nt := range []string{"E", "T", "F"} {
		require.NoError(t, g.AddNonTerminal(nt))
	}
	for _, term := range []string{"+", "*", "(", ")", "id"} {
		require.NoError(t, g.AddTerminal(term))
	}
	require.NoError(t, g.AddProduction("E", "E", "+", "T"))
	require.NoError(t, g.AddProduction("E", "T"))
	require.NoError(t, g.AddProduction("T", "T", "*", "F"))
	require.NoError(t, g.AddProduction("T", "F"))
	require.NoError(t, g.AddProduction("F", "(", "E", ")"))
	require.NoError(t, g.AddProduction("F", "id"))
	require.NoError(t, g.SetStart("E"))
	return g
}

func TestBuildLALR1Table_NoConflictsOnExprGrammar(t *testing.T) {
	g := exprGrammar(t)
	table := BuildLALR1Table(*g)
	assert.Empty(t, table.Conflicts)
}

func TestBuildLALR1Table_HasAcceptAction(t *testing.T) {
	g := exprGrammar(t)
	table := BuildLALR1Table(*g)

	found := false
	for _, row := range table.Action {
		if act, ok := row["$"]; ok && act.Type == Accept {
			found = true
		}
	}
	assert.True(t, found, "table should have an accept action on $")
}

// danglingElseGrammar is the classic ambiguous grammar (§8 scenario 6):
//
//	S -> if E then S | if E then S else S | other
func danglingElseGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g := grammar.New()
	require.NoError(t, g.AddNonTerminal("S"))
	require.NoError(t, g.AddNonTerminal("E"))
	for _, term := range []string{"if", "then", "else", "cond", "other"} {
		require.NoError(t, g.AddTerminal(term))
	}
	require.NoError(t, g.AddProduction("E", "cond"))
	require.NoError(t, g.AddProduction("S", "if", "E", "then", "S"))
	require.NoError(t, g.AddProduction("S", "if", "E", "then", "S", "else", "S"))
	require.NoError(t, g.AddProduction("S", "other"))
	require.NoError(t, g.SetStart("S"))
	return g
}

func TestBuildLALR1Table_RecordsDanglingElseConflict(t *testing.T) {
	g := danglingElseGrammar(t)
	table := BuildLALR1Table(*g)
	require.NotEmpty(t, table.Conflicts)
	for _, c := range table.Conflicts {
		assert.Equal(t, "else", c.Symbol)
	}
}
