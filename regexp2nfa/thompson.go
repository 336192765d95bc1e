package regexp2nfa

import (
	"github.com/dekarrin/shiner/automaton"
	"github.com/dekarrin/shiner/ferrors"
)

// fragment is a Thompson-construction sub-expression under assembly: a
// start state and a single accept state, both already present in the
// shared NFA being built. Per §4.D, every fragment has exactly one accept
// state until it is spliced into a larger fragment, at which point its old
// accept state stops accepting and a new one takes over.
type fragment struct {
	start  automaton.State
	accept automaton.State
}

// ToNFA compiles src into an automaton.NFA via Thompson's construction
// (§4.D, the McNaughton-Yamada-Thompson algorithm): preprocess to postfix
// (component C), then assemble one fragment per postfix token on an
// operand stack, combining fragments with the standard concatenation,
// alternation, and Kleene-star combinators.
//
// '+' (one-or-more) and '?' (optional) have their own direct constructions
// (plusFragment, optionalFragment): each is the star construction with one
// ε-edge left out.
func ToNFA(src string) (*automaton.NFA, error) {
	postfix, err := ToPostfix(src)
	if err != nil {
		return nil, err
	}

	n := automaton.New()
	var stack []fragment

	pop := func() (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, ferrors.MalformedRegex("operator with missing operand")
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, nil
	}

	for _, tok := range postfix {
		switch {
		case isLiteral(tok):
			stack = append(stack, literalFragment(n, literalRune(tok)))
		case tok == concatOp:
			right, err := pop()
			if err != nil {
				return nil, err
			}
			left, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, concatFragment(n, left, right))
		case tok == opAlternate:
			right, err := pop()
			if err != nil {
				return nil, err
			}
			left, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, alternateFragment(n, left, right))
		case tok == opStar:
			f, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, starFragment(n, f))
		case tok == opPlus:
			f, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, plusFragment(n, f))
		case tok == opQuestion:
			f, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, optionalFragment(n, f))
		default:
			return nil, ferrors.MalformedRegex("unrecognized postfix token " + tok)
		}
	}

	if len(stack) != 1 {
		return nil, ferrors.MalformedRegex("expression did not reduce to a single automaton")
	}

	final := stack[0]
	n.SetStart(final.start)
	return n, nil
}

// literalFragment builds the base case: a two-state fragment for a single
// symbol ("for any subexpression r in sigma, or epsilon").
func literalFragment(n *automaton.NFA, sym string) fragment {
	start := n.AddState(false)
	accept := n.AddState(true)
	n.AddTransition(start, sym, accept)
	return fragment{start: start, accept: accept}
}

// concatFragment splices right directly after left by epsilon-joining
// left's old accept state to right's start, and un-marking left's old
// accept state (§9's note on SetAccepting safety).
func concatFragment(n *automaton.NFA, left, right fragment) fragment {
	n.AddTransition(left.accept, "", right.start)
	n.SetAccepting(left.accept, false)
	return fragment{start: left.start, accept: right.accept}
}

// alternateFragment builds s|t: a new start epsilon-branches to both
// operands' starts, and both operands' old accepts epsilon-converge on a
// new shared accept.
func alternateFragment(n *automaton.NFA, left, right fragment) fragment {
	start := n.AddState(false)
	accept := n.AddState(true)

	n.AddTransition(start, "", left.start)
	n.AddTransition(start, "", right.start)
	n.AddTransition(left.accept, "", accept)
	n.AddTransition(right.accept, "", accept)
	n.SetAccepting(left.accept, false)
	n.SetAccepting(right.accept, false)

	return fragment{start: start, accept: accept}
}

// starFragment builds s*: a new start/accept pair that can skip the
// sub-expression entirely (ε) or loop through it any number of times.
func starFragment(n *automaton.NFA, f fragment) fragment {
	start := n.AddState(false)
	accept := n.AddState(true)

	n.AddTransition(start, "", f.start)
	n.AddTransition(start, "", accept)
	n.AddTransition(f.accept, "", f.start)
	n.AddTransition(f.accept, "", accept)
	n.SetAccepting(f.accept, false)

	return fragment{start: start, accept: accept}
}

// plusFragment builds s+: like starFragment, but the new start/accept pair
// cannot skip the sub-expression -- it must be traversed at least once.
func plusFragment(n *automaton.NFA, f fragment) fragment {
	start := n.AddState(false)
	accept := n.AddState(true)

	n.AddTransition(start, "", f.start)
	n.AddTransition(f.accept, "", f.start)
	n.AddTransition(f.accept, "", accept)
	n.SetAccepting(f.accept, false)

	return fragment{start: start, accept: accept}
}

// optionalFragment builds s?: the sub-expression, or ε.
func optionalFragment(n *automaton.NFA, f fragment) fragment {
	start := n.AddState(false)
	accept := n.AddState(true)

	n.AddTransition(start, "", f.start)
	n.AddTransition(start, "", accept)
	n.AddTransition(f.accept, "", accept)
	n.SetAccepting(f.accept, false)

	return fragment{start: start, accept: accept}
}
