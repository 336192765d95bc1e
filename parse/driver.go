package parse

import (
	"fmt"

	"github.com/dekarrin/shiner/grammar"
	"github.com/dekarrin/shiner/internal/util"
	"github.com/dekarrin/shiner/lex"
)

// SyntaxError reports a token the parse table has no ACTION entry for.
type SyntaxError struct {
	Tok      lex.Token
	Expected []string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: unexpected %s; %s", e.Tok.Line(), e.Tok.LinePos(), e.Tok.Class().Human(), e.expectedString())
}

func (e *SyntaxError) expectedString() string {
	if len(e.Expected) == 0 {
		return "no further input was expected"
	}
	if len(e.Expected) == 1 {
		return util.ArticleFor(e.Expected[0], false) + " " + e.Expected[0]
	}
	return "one of: " + util.MakeTextList(e.Expected)
}

// Parser drives a Table over a lex.TokenStream (component K). It is an
// implementation of Algorithm 4.44, "LR-parsing algorithm", from the purple
// dragon book, generalized from single-lookahead-symbol LR(1) tables to
// LALR(1) tables with merged lookahead sets.
type Parser struct {
	table *Table
	trace func(string)
}

// NewParser returns a Parser driven by table.
func NewParser(table *Table) *Parser {
	return &Parser{table: table}
}

// RegisterTraceListener installs fn to be called with a human-readable
// description of each step the driver takes -- state peeks/pushes/pops,
// actions taken, tokens consumed -- mirroring the teacher's trace-listener
// hook used for debugging parser behavior interactively.
func (p *Parser) RegisterTraceListener(fn func(string)) {
	p.trace = fn
}

func (p *Parser) notify(format string, args ...interface{}) {
	if p.trace != nil {
		p.trace(fmt.Sprintf(format, args...))
	}
}

// Parse consumes stream to completion and returns the resulting parse tree,
// or a *SyntaxError if the input is not in the language the table's
// grammar describes.
func (p *Parser) Parse(stream lex.TokenStream) (*Tree, error) {
	states := util.Stack[int]{Of: []int{p.table.Start}}
	tokenBuf := util.Stack[lex.Token]{}
	subtrees := util.Stack[*Tree]{}

	a := stream.Next()
	p.notify("next token: %s", a)

	for {
		s := states.Peek()
		p.notify("state.peek(): %d", s)

		act, ok := p.table.Action[s][a.Class().ID()]
		if !ok {
			return nil, &SyntaxError{Tok: a, Expected: p.table.Expected(s)}
		}
		p.notify("action: %s", act)

		switch act.Type {
		case Shift:
			tokenBuf.Push(a)
			states.Push(act.State)
			p.notify("state.push(): %d", act.State)
			a = stream.Next()
			p.notify("next token: %s", a)

		case Reduce:
			prod := act.Prod
			node := &Tree{Symbol: prod.Left.Name}
			children := make([]*Tree, len(prod.Right))
			for i := len(prod.Right) - 1; i >= 0; i-- {
				sym := prod.Right[i]
				if sym.Kind == grammar.Terminal {
					tok := tokenBuf.Pop()
					children[i] = &Tree{Symbol: sym.Name, Terminal: true, Token: tok}
				} else {
					children[i] = subtrees.Pop()
				}
				states.Pop()
				p.notify("state.pop()")
			}
			node.Children = children
			subtrees.Push(node)

			t := states.Peek()
			to, ok := p.table.Goto[t][prod.Left.Name]
			if !ok {
				return nil, &SyntaxError{Tok: a, Expected: p.table.Expected(s)}
			}
			states.Push(to)
			p.notify("state.push(): %d (via goto %s)", to, prod.Left.Name)

		case Accept:
			return subtrees.Pop(), nil
		}
	}
}

// Accept is the pure yes/no entry point §4.K describes: it reports whether
// stream is in the language table's grammar generates, discarding the parse
// tree Parse builds along the way. Parse reports every rejection, including
// a missing GOTO entry, as a *SyntaxError, which Accept turns into
// (false, nil); any other error from Parse is passed through.
func Accept(table *Table, stream lex.TokenStream) (bool, error) {
	_, err := NewParser(table).Parse(stream)
	if err == nil {
		return true, nil
	}
	if _, ok := err.(*SyntaxError); ok {
		return false, nil
	}
	return false, err
}
