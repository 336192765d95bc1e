package parse

import (
	"strings"

	"github.com/dekarrin/shiner/lex"
)

// Tree is a parse tree node: either an interior node labeled with the
// non-terminal a reduction produced, or a leaf labeled with the terminal
// class of a shifted token (§3, "Parse tree").
type Tree struct {
	Symbol   string
	Terminal bool
	Token    lex.Token // set only when Terminal is true
	Children []*Tree
}

func (t *Tree) String() string {
	var sb strings.Builder
	t.write(&sb, 0)
	return sb.String()
}

func (t *Tree) write(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	if t.Terminal {
		sb.WriteString(t.Symbol)
		sb.WriteString(" (")
		sb.WriteString(t.Token.Lexeme())
		sb.WriteString(")\n")
		return
	}
	sb.WriteString(t.Symbol)
	sb.WriteString("\n")
	for _, c := range t.Children {
		c.write(sb, depth+1)
	}
}
