package grammar

import "strings"

// Production is an ordered pair (Left, Right): a non-terminal and the
// (possibly empty) ordered sequence of symbols it expands to. Equality is
// structural over both sides.
type Production struct {
	Left  Symbol
	Right []Symbol
}

// Equal reports whether p and o have the same left-hand side and identical
// right-hand side symbols in the same order.
func (p Production) Equal(o Production) bool {
	if p.Left != o.Left {
		return false
	}
	if len(p.Right) != len(o.Right) {
		return false
	}
	for i := range p.Right {
		if p.Right[i] != o.Right[i] {
			return false
		}
	}
	return true
}

// IsEpsilon reports whether this production's right-hand side is empty (or
// consists solely of the epsilon marker).
func (p Production) IsEpsilon() bool {
	return len(p.Right) == 0 || (len(p.Right) == 1 && p.Right[0].IsEpsilon())
}

func (p Production) String() string {
	var sb strings.Builder
	sb.WriteString(p.Left.Name)
	sb.WriteString(" -> ")
	if p.IsEpsilon() {
		sb.WriteString(Epsilon.Name)
		return sb.String()
	}
	for i, sym := range p.Right {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sym.Name)
	}
	return sb.String()
}
