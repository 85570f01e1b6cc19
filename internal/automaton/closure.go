package automaton

import (
	"slices"
	"strconv"
	"strings"
)

// StateSet is a canonical set of NFA state ids: sorted and duplicate free, so
// two sets with the same members always produce the same Key.
type StateSet struct {
	ids []StateID
}

// NewStateSet builds a canonical set from ids in any order.
func NewStateSet(ids ...StateID) StateSet {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return StateSet{ids: slices.Compact(sorted)}
}

// IDs returns the members in ascending order.
func (s StateSet) IDs() []StateID {
	return slices.Clone(s.ids)
}

// Len returns the number of members.
func (s StateSet) Len() int {
	return len(s.ids)
}

// Contains reports whether id is a member.
func (s StateSet) Contains(id StateID) bool {
	_, ok := slices.BinarySearch(s.ids, id)
	return ok
}

// Key returns the canonical string form used to deduplicate subsets.
func (s StateSet) Key() string {
	var b strings.Builder
	for i, id := range s.ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	return b.String()
}

func (s StateSet) String() string {
	return "{" + s.Key() + "}"
}

// EpsilonClosure returns every state reachable from id through epsilon edges,
// including id itself.
func (n *NFA) EpsilonClosure(id StateID) StateSet {
	return n.Closure(NewStateSet(id))
}

// Closure returns the union of the epsilon closures of the members of set.
// The walk uses an explicit stack and a visited table, so epsilon cycles such
// as the Star back edge terminate and each state is expanded once.
func (n *NFA) Closure(set StateSet) StateSet {
	visited := make([]bool, len(n.states))
	stack := make([]StateID, 0, len(set.ids))
	out := make([]StateID, 0, len(set.ids)*2)

	for _, id := range set.ids {
		if !n.valid(id) {
			precondition("Closure", "state %d out of range [0,%d)", id, len(n.states))
		}
		if !visited[id] {
			visited[id] = true
			stack = append(stack, id)
		}
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, id)

		for _, next := range n.states[id].eps {
			if !n.valid(next) {
				precondition("Closure", "epsilon edge q%d -> q%d leaves the automaton", id, next)
			}
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}

	slices.Sort(out)
	return StateSet{ids: out}
}

// Move returns the union of the symbol targets of the members of set. No
// epsilon closure is applied; callers close the result themselves.
func (n *NFA) Move(set StateSet, symbol rune) StateSet {
	var out []StateID
	for _, id := range set.ids {
		if !n.valid(id) {
			precondition("Move", "state %d out of range [0,%d)", id, len(n.states))
		}
		for _, to := range n.states[id].trans[symbol] {
			if !n.valid(to) {
				precondition("Move", "edge q%d -%s-> q%d leaves the automaton", id, SymbolLabel(symbol), to)
			}
			out = append(out, to)
		}
	}
	return NewStateSet(out...)
}
