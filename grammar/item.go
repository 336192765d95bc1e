package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/shiner/internal/util"
)

// Item is an LR item core: a production together with a dot position,
// 0 <= Dot <= len(Prod.Right). Per §9's design note, lookahead is tracked
// separately in an ItemSet rather than duplicated per-item; Item itself is
// exactly the "core" the spec defines.
type Item struct {
	Prod Production
	Dot  int
}

// AtEnd reports whether the dot has reached the end of the production (a
// candidate for a Reduce action).
func (it Item) AtEnd() bool {
	return it.Dot >= len(it.Prod.Right)
}

// NextSymbol returns the symbol immediately after the dot, if any.
func (it Item) NextSymbol() (Symbol, bool) {
	if it.AtEnd() {
		return Symbol{}, false
	}
	return it.Prod.Right[it.Dot], true
}

// Advance returns the item with the dot moved one position to the right. It
// panics if the dot is already at the end; callers only advance after
// confirming NextSymbol succeeded.
func (it Item) Advance() Item {
	if it.AtEnd() {
		panic("cannot advance an item with the dot already at the end")
	}
	return Item{Prod: it.Prod, Dot: it.Dot + 1}
}

// Key is the canonical string identity of the item's core, used as a map key
// everywhere an ItemSet needs to deduplicate or compare cores.
func (it Item) Key() string {
	var sb strings.Builder
	sb.WriteString(it.Prod.Left.Name)
	sb.WriteString(" ->")
	for i, sym := range it.Prod.Right {
		if i == it.Dot {
			sb.WriteString(" .")
		}
		sb.WriteByte(' ')
		sb.WriteString(sym.Name)
	}
	if it.Dot == len(it.Prod.Right) {
		sb.WriteString(" .")
	}
	return sb.String()
}

func (it Item) String() string { return it.Key() }

// ItemSet is an LR(1) state: a set of item cores, each carrying the set of
// lookahead terminal names associated with it (§3, "Item set (state)").
// Two ItemSets compare equal for BFS-dedup purposes by their full contents
// (core + lookaheads); CoreKey gives the core-only identity the LALR merge
// groups states by.
type ItemSet struct {
	order      []string
	cores      map[string]Item
	lookaheads map[string]util.StringSet
}

// NewItemSet returns an empty item set.
func NewItemSet() *ItemSet {
	return &ItemSet{
		cores:      map[string]Item{},
		lookaheads: map[string]util.StringSet{},
	}
}

// Add inserts core with the given lookahead, merging into an existing
// core's lookahead set if core is already present. It reports whether this
// added anything new (a fresh core, or a lookahead not already recorded for
// an existing core) -- the signal CLOSURE's fixed-point loop needs.
func (is *ItemSet) Add(core Item, lookahead string) bool {
	key := core.Key()
	if _, ok := is.cores[key]; !ok {
		is.cores[key] = core
		is.lookaheads[key] = util.NewStringSet()
		is.order = append(is.order, key)
	}
	if is.lookaheads[key].Has(lookahead) {
		return false
	}
	is.lookaheads[key].Add(lookahead)
	return true
}

// Has reports whether core (by core identity, ignoring lookahead) is present.
func (is *ItemSet) Has(core Item) bool {
	_, ok := is.cores[core.Key()]
	return ok
}

// LookaheadsFor returns the lookahead set recorded for core, or an empty set
// if core isn't present.
func (is *ItemSet) LookaheadsFor(core Item) util.StringSet {
	if set, ok := is.lookaheads[core.Key()]; ok {
		return set
	}
	return util.NewStringSet()
}

// Cores returns the set's item cores in insertion order.
func (is *ItemSet) Cores() []Item {
	out := make([]Item, 0, len(is.order))
	for _, key := range is.order {
		out = append(out, is.cores[key])
	}
	return out
}

// Len returns the number of distinct cores in the set.
func (is *ItemSet) Len() int { return len(is.order) }

// CoreKey is the canonical, order-independent identity of the set's cores
// alone (lookaheads excluded), used to group LR(1) states into LALR(1)
// states by shared core (§4.J).
func (is *ItemSet) CoreKey() string {
	keys := append([]string(nil), is.order...)
	sort.Strings(keys)
	return strings.Join(keys, " | ")
}

// Key is the canonical identity of the full set (cores plus lookaheads),
// used to deduplicate discovered states during canonical-collection BFS
// (§4.I) where two states with the same core but different lookaheads are
// legitimately distinct LR(1) states.
func (is *ItemSet) Key() string {
	keys := append([]string(nil), is.order...)
	sort.Strings(keys)
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(k)
		sb.WriteString(" [")
		las := is.lookaheads[k].Elements()
		sort.Strings(las)
		sb.WriteString(strings.Join(las, ","))
		sb.WriteByte(']')
	}
	return sb.String()
}

// Merge unions other's cores and lookaheads into is, reporting whether
// anything new was added. Used by the LALR(1) core-merge step, which unions
// the lookahead sets of every LR(1) state sharing a core.
func (is *ItemSet) Merge(other *ItemSet) bool {
	changed := false
	for _, key := range other.order {
		core := other.cores[key]
		for _, la := range other.lookaheads[key].Elements() {
			if is.Add(core, la) {
				changed = true
			}
		}
	}
	return changed
}

func (is *ItemSet) String() string {
	cores := is.Cores()
	lines := make([]string, len(cores))
	for i, c := range cores {
		las := is.LookaheadsFor(c).Elements()
		sort.Strings(las)
		lines[i] = fmt.Sprintf("[%s, %s]", c.String(), strings.Join(las, "/"))
	}
	return "{" + strings.Join(lines, "; ") + "}"
}
