package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenClass_EqualByID(t *testing.T) {
	a := NewClass("IDENT")
	b := NewClass("IDENT")
	c := NewClass("ident")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "IDENT", a.ID())
	assert.Equal(t, "IDENT", a.Human())
}

func TestSliceStream_EndOfTextAfterExhausted(t *testing.T) {
	toks := []Token{NewToken(NewClass("a"), "a", 1, 1, "a")}
	s := newSliceStream(toks)

	assert.True(t, s.HasNext())
	first := s.Next()
	assert.Equal(t, "a", first.Lexeme())

	assert.False(t, s.HasNext())
	eof := s.Next()
	assert.Equal(t, ClassEndOfText.ID(), eof.Class().ID())
}

func TestSliceStream_PeekDoesNotAdvance(t *testing.T) {
	toks := []Token{NewToken(NewClass("a"), "a", 1, 1, "a"), NewToken(NewClass("b"), "b", 1, 2, "b")}
	s := newSliceStream(toks)

	assert.Equal(t, "a", s.Peek().Lexeme())
	assert.Equal(t, "a", s.Peek().Lexeme())
	assert.Equal(t, "a", s.Next().Lexeme())
	assert.Equal(t, "b", s.Next().Lexeme())
}
