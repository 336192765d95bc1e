package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_NextSymbolAndAdvance(t *testing.T) {
	prod := Production{Left: NonTerm("E"), Right: []Symbol{NonTerm("E"), Term("+"), NonTerm("T")}}
	it := Item{Prod: prod, Dot: 0}

	sym, ok := it.NextSymbol()
	assert.True(t, ok)
	assert.Equal(t, NonTerm("E"), sym)

	it = it.Advance().Advance().Advance()
	assert.True(t, it.AtEnd())
	_, ok = it.NextSymbol()
	assert.False(t, ok)
}

func TestItem_Advance_PanicsAtEnd(t *testing.T) {
	it := Item{Prod: Production{Left: NonTerm("A")}, Dot: 0}
	assert.Panics(t, func() { it.Advance() })
}

func TestItemSet_AddMergesLookaheads(t *testing.T) {
	is := NewItemSet()
	core := Item{Prod: Production{Left: NonTerm("A"), Right: []Symbol{Term("a")}}, Dot: 0}

	assert.True(t, is.Add(core, "$"))
	assert.False(t, is.Add(core, "$"))
	assert.True(t, is.Add(core, "+"))

	las := is.LookaheadsFor(core)
	assert.Equal(t, 2, las.Len())
	assert.True(t, las.Has("$"))
	assert.True(t, las.Has("+"))
	assert.Equal(t, 1, is.Len())
}

func TestItemSet_CoreKeyIgnoresLookahead(t *testing.T) {
	core := Item{Prod: Production{Left: NonTerm("A"), Right: []Symbol{Term("a")}}, Dot: 0}

	a := NewItemSet()
	a.Add(core, "$")

	b := NewItemSet()
	b.Add(core, "+")

	assert.Equal(t, a.CoreKey(), b.CoreKey())
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestItemSet_Merge(t *testing.T) {
	core := Item{Prod: Production{Left: NonTerm("A"), Right: []Symbol{Term("a")}}, Dot: 0}

	a := NewItemSet()
	a.Add(core, "$")

	b := NewItemSet()
	b.Add(core, "+")

	changed := a.Merge(b)
	assert.True(t, changed)
	assert.Equal(t, 2, a.LookaheadsFor(core).Len())

	assert.False(t, a.Merge(b))
}
