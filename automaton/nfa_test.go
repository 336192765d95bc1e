package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNFA_EpsilonClosure(t *testing.T) {
	n := New()
	s0 := n.AddState(false)
	s1 := n.AddState(false)
	s2 := n.AddState(true)
	n.AddTransition(s0, epsilon, s1)
	n.AddTransition(s1, epsilon, s2)
	n.SetStart(s0)

	closure := n.EpsilonClosure(s0)
	assert.True(t, closure.has(s0))
	assert.True(t, closure.has(s1))
	assert.True(t, closure.has(s2))
}

func TestNFA_Move(t *testing.T) {
	n := New()
	s0 := n.AddState(false)
	s1 := n.AddState(true)
	n.AddTransition(s0, "a", s1)
	n.SetStart(s0)

	moved := n.Move(newStateSet(s0), "a")
	assert.True(t, moved.has(s1))
	assert.Empty(t, n.Move(newStateSet(s0), "b"))
}

func TestNFA_InputSymbols_ExcludesEpsilon(t *testing.T) {
	n := New()
	s0 := n.AddState(false)
	s1 := n.AddState(true)
	n.AddTransition(s0, epsilon, s1)
	n.AddTransition(s0, "a", s1)

	assert.Equal(t, []string{"a"}, n.InputSymbols())
}

func TestNFA_AddTransition_PanicsOnUnknownState(t *testing.T) {
	n := New()
	s0 := n.AddState(false)
	assert.Panics(t, func() { n.AddTransition(s0, "a", State(99)) })
}
