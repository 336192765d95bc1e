package grammar

import "github.com/dekarrin/shiner/internal/util"

// FirstSets maps each symbol name in a grammar (terminal or non-terminal) to
// its FIRST set, computed once and reused by CLOSURE (§4.I) and the ACTION
// table builder (§4.J).
type FirstSets map[string]util.StringSet

// FollowSets maps each non-terminal name to its FOLLOW set.
type FollowSets map[string]util.StringSet

// First computes FIRST(X) for every terminal and non-terminal X in g, per
// §4.H: FIRST(t) = {t} for a terminal; for a non-terminal, the least
// fixed point where production A -> X1..Xn contributes FIRST(Xi) \ {ε} to
// FIRST(A) for the longest prefix of Xs that are all nullable, adding ε to
// FIRST(A) itself if the whole right-hand side is nullable (including the
// empty right-hand side).
func First(g Grammar) FirstSets {
	first := FirstSets{}

	for _, t := range g.Terminals() {
		first[t.Name] = util.StringSetOf([]string{t.Name})
	}
	first[Epsilon.Name] = util.StringSetOf([]string{Epsilon.Name})
	first[EndOfInput.Name] = util.StringSetOf([]string{EndOfInput.Name})
	for _, nt := range g.NonTerminals() {
		first[nt.Name] = util.NewStringSet()
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions() {
			A := p.Left.Name
			before := first[A].Len()

			if p.IsEpsilon() {
				first[A].Add(Epsilon.Name)
			} else {
				allNullable := true
				for _, X := range p.Right {
					firstX := first[X.Name]
					for _, sym := range firstX.Elements() {
						if sym != Epsilon.Name {
							first[A].Add(sym)
						}
					}
					if !firstX.Has(Epsilon.Name) {
						allNullable = false
						break
					}
				}
				if allNullable {
					first[A].Add(Epsilon.Name)
				}
			}

			if first[A].Len() != before {
				changed = true
			}
		}
	}

	return first
}

// FirstOfSequence computes FIRST(X1 X2 ... Xn) for an arbitrary sequence of
// symbol names, the operation CLOSURE needs for FIRST(βa) in §4.I. ε is
// included in the result iff every symbol in seq is nullable (including the
// empty sequence, which is trivially nullable).
func FirstOfSequence(first FirstSets, seq []string) util.StringSet {
	result := util.NewStringSet()
	allNullable := true

	for _, name := range seq {
		set, ok := first[name]
		if !ok {
			allNullable = false
			break
		}
		for _, sym := range set.Elements() {
			if sym != Epsilon.Name {
				result.Add(sym)
			}
		}
		if !set.Has(Epsilon.Name) {
			allNullable = false
			break
		}
	}

	if allNullable {
		result.Add(Epsilon.Name)
	}
	return result
}

// Follow computes FOLLOW(A) for every non-terminal A in g, per §4.H:
// FOLLOW(start) always contains "$"; for production B -> X1..Xn and each
// non-terminal Xi, FIRST of the symbols following Xi (minus ε) is added to
// FOLLOW(Xi), and if that remainder is nullable (or Xi is the last symbol),
// FOLLOW(B) is added to FOLLOW(Xi) too.
func Follow(g Grammar, first FirstSets) FollowSets {
	follow := FollowSets{}
	for _, nt := range g.NonTerminals() {
		follow[nt.Name] = util.NewStringSet()
	}
	follow[g.StartSymbol().Name].Add(EndOfInput.Name)

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions() {
			B := p.Left.Name
			for i, X := range p.Right {
				if X.Kind != NonTerminal {
					continue
				}
				before := follow[X.Name].Len()

				beta := make([]string, 0, len(p.Right)-i-1)
				for _, s := range p.Right[i+1:] {
					beta = append(beta, s.Name)
				}
				firstBeta := FirstOfSequence(first, beta)

				for _, sym := range firstBeta.Elements() {
					if sym != Epsilon.Name {
						follow[X.Name].Add(sym)
					}
				}
				if firstBeta.Has(Epsilon.Name) {
					for _, sym := range follow[B].Elements() {
						follow[X.Name].Add(sym)
					}
				}

				if follow[X.Name].Len() != before {
					changed = true
				}
			}
		}
	}

	return follow
}
