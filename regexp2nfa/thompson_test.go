package regexp2nfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accepts(t *testing.T, pattern, input string) bool {
	t.Helper()
	n, err := ToNFA(pattern)
	require.NoError(t, err)
	d := n.ToDFA()

	cur := d.Start()
	for _, r := range input {
		next, ok := d.Next(cur, string(r))
		if !ok {
			return false
		}
		cur = next
	}
	return d.IsAccepting(cur)
}

func TestToNFA_Literal(t *testing.T) {
	assert.True(t, accepts(t, "a", "a"))
	assert.False(t, accepts(t, "a", "b"))
	assert.False(t, accepts(t, "a", ""))
}

func TestToNFA_Concatenation(t *testing.T) {
	assert.True(t, accepts(t, "ab", "ab"))
	assert.False(t, accepts(t, "ab", "a"))
	assert.False(t, accepts(t, "ab", "ba"))
}

func TestToNFA_Alternation(t *testing.T) {
	assert.True(t, accepts(t, "a|b", "a"))
	assert.True(t, accepts(t, "a|b", "b"))
	assert.False(t, accepts(t, "a|b", "c"))
}

func TestToNFA_Star(t *testing.T) {
	assert.True(t, accepts(t, "a*", ""))
	assert.True(t, accepts(t, "a*", "aaaa"))
	assert.False(t, accepts(t, "a*", "aaab"))
}

func TestToNFA_Plus(t *testing.T) {
	assert.False(t, accepts(t, "a+", ""))
	assert.True(t, accepts(t, "a+", "a"))
	assert.True(t, accepts(t, "a+", "aaa"))
}

func TestToNFA_Question(t *testing.T) {
	assert.True(t, accepts(t, "a?", ""))
	assert.True(t, accepts(t, "a?", "a"))
	assert.False(t, accepts(t, "a?", "aa"))
}

func TestToNFA_Grouping(t *testing.T) {
	assert.True(t, accepts(t, "(ab)*", ""))
	assert.True(t, accepts(t, "(ab)*", "ababab"))
	assert.False(t, accepts(t, "(ab)*", "aba"))
}

func TestToNFA_Escape(t *testing.T) {
	assert.True(t, accepts(t, `a\*b`, "a*b"))
	assert.False(t, accepts(t, `a\*b`, "aab"))
}

func TestToNFA_KeywordVsIdentifierShapedRegex(t *testing.T) {
	// The broader identifier pattern that a keyword like "if" competes with
	// in the tokenizer (§8 scenario 3): it must accept the whole of "iffy",
	// which starts with the keyword.
	n, err := ToNFA("(a|b|c|d|e|f|g|h|i|j|k|l|m|n|o|p|q|r|s|t|u|v|w|x|y|z)+")
	require.NoError(t, err)
	d := n.ToDFA()

	cur := d.Start()
	for _, r := range "iffy" {
		next, ok := d.Next(cur, string(r))
		require.True(t, ok)
		cur = next
	}
	assert.True(t, d.IsAccepting(cur))
}

func TestToNFA_UnbalancedParens(t *testing.T) {
	_, err := ToNFA("(a|b")
	assert.Error(t, err)

	_, err = ToNFA("a|b)")
	assert.Error(t, err)
}

func TestToNFA_MissingOperand(t *testing.T) {
	_, err := ToNFA("*")
	assert.Error(t, err)

	_, err = ToNFA("|a")
	assert.Error(t, err)
}
