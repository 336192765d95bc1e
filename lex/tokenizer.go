package lex

import (
	"strings"
	"unicode"

	"github.com/coregx/ahocorasick"

	"github.com/dekarrin/shiner/automaton"
	"github.com/dekarrin/shiner/ferrors"
)

// Rule binds a token class to the DFA that recognizes it (component G).
// Literal, when non-empty, names the single fixed string this rule matches
// -- keywords are declared this way so the tokenizer can fast-path them
// through an Aho-Corasick automaton instead of stepping their DFA one rune
// at a time. Priority breaks ties between rules that match the same-length
// lexeme at a position; the lowest Priority wins, mirroring lex/flex's
// "rule declared first wins" convention.
type Rule struct {
	Class    TokenClass
	DFA      *automaton.DFA
	Literal  string
	Priority int
}

// Lexer scans source text into a TokenStream by running every rule's DFA in
// parallel at each position and taking the longest match, breaking ties by
// Priority (§4.G, "maximal munch").
type Lexer struct {
	rules    []Rule
	literals *ahocorasick.Automaton // prefilter over Literal-bearing rules, nil if none are literal
}

// NewLexer builds a Lexer from rules. When two rules match an equal-length
// lexeme at the same position, the one with the lower Priority wins; between
// rules of equal Priority, a Literal rule wins over a DFA rule, and
// otherwise the one earlier in rules wins.
func NewLexer(rules []Rule) (*Lexer, error) {
	l := &Lexer{rules: rules}

	builder := ahocorasick.NewBuilder()
	anyLiteral := false
	for _, r := range rules {
		if r.Literal != "" {
			builder.AddPattern([]byte(r.Literal))
			anyLiteral = true
		}
	}
	if anyLiteral {
		auto, err := builder.Build()
		if err != nil {
			return nil, ferrors.Wrap(err, "building keyword prefilter")
		}
		l.literals = auto
	}

	return l, nil
}

// Tokenize scans the entirety of source and returns the resulting
// TokenStream. An unrecognized character (one that starts no rule's
// longest match) is reported as a ferrors.UnexpectedCharacter error; there
// is no error-recovery/resynchronization step, matching §4.G's scope.
func (l *Lexer) Tokenize(source string) (TokenStream, error) {
	runes := []rune(source)
	haystack := []byte(source)

	var toks []Token
	line, linePos := 1, 1
	byteOffset := 0

	lineStarts := computeLineStarts(source)

	advance := func(r rune) {
		byteOffset += len(string(r))
		if r == '\n' {
			line++
			linePos = 1
		} else {
			linePos++
		}
	}

	for i := 0; i < len(runes); {
		// Whitespace is always skipped, independent of any configured rule;
		// it never reaches the token stream (§4.G step 1).
		if unicode.IsSpace(runes[i]) {
			advance(runes[i])
			i++
			continue
		}

		matchLen, class := l.longestMatchAt(runes, i, haystack, byteOffset)
		if matchLen == 0 {
			return nil, ferrors.UnexpectedCharacter(i)
		}

		lexeme := string(runes[i : i+matchLen])
		toks = append(toks, NewToken(class, lexeme, line, linePos, currentLine(source, lineStarts, line)))

		for _, r := range lexeme {
			advance(r)
		}
		i += matchLen
	}

	return newSliceStream(toks), nil
}

// longestMatchAt returns the length (in runes) of the longest lexeme
// matched by any rule starting at runes[pos], and the class of the
// winning rule. It returns (0, nil) if no rule matches.
func (l *Lexer) longestMatchAt(runes []rune, pos int, haystack []byte, byteOffset int) (int, TokenClass) {
	bestLen := 0
	bestPriority := 0
	var bestClass TokenClass

	consider := func(length, priority int, class TokenClass) {
		if length == 0 {
			return
		}
		better := bestClass == nil || length > bestLen || (length == bestLen && priority < bestPriority)
		if better {
			bestLen = length
			bestPriority = priority
			bestClass = class
		}
	}

	if l.literals != nil {
		if m := l.literals.Find(haystack, byteOffset); m != nil && m.Start == byteOffset {
			litRunes := []rune(string(haystack[m.Start:m.End]))
			for _, r := range l.rules {
				if r.Literal != "" && r.Literal == string(litRunes) {
					consider(len(litRunes), r.Priority, r.Class)
				}
			}
		}
	}

	for _, r := range l.rules {
		if r.Literal != "" {
			continue
		}
		length := longestAccepted(r.DFA, runes[pos:])
		consider(length, r.Priority, r.Class)
	}

	return bestLen, bestClass
}

// longestAccepted runs d over runes from the start, returning the length
// (in runes) of the longest prefix that lands d in an accepting state (§4.G).
func longestAccepted(d *automaton.DFA, runes []rune) int {
	cur := d.Start()
	best := -1
	if d.IsAccepting(cur) {
		best = 0
	}
	for i, r := range runes {
		next, ok := d.Next(cur, string(r))
		if !ok {
			break
		}
		cur = next
		if d.IsAccepting(cur) {
			best = i + 1
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

func computeLineStarts(source string) []int {
	starts := []int{0}
	for i, r := range source {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func currentLine(source string, lineStarts []int, line int) string {
	if line-1 >= len(lineStarts) {
		return ""
	}
	start := lineStarts[line-1]
	end := len(source)
	if idx := strings.IndexByte(source[start:], '\n'); idx >= 0 {
		end = start + idx
	}
	return source[start:end]
}
