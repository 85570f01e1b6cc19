package automaton

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Options tunes subset construction.
type Options struct {
	// Logger traces each discovered subset. Nil disables tracing.
	Logger *Logger

	// MaxStates caps the number of DFA states. Zero means no limit.
	MaxStates int
}

// DFA is a flat deterministic transition table. A missing entry for a
// (state, symbol) pair means the input is rejected from that state.
// A DFA holds no reference to the NFA it was built from and is safe for
// concurrent reads.
type DFA struct {
	start     int
	accepting []bool
	trans     []map[rune]int
	alphabet  []rune
}

// Determinize converts n into an equivalent DFA by subset construction.
// n is read, not consumed.
func Determinize(n *NFA) *DFA {
	d, err := DeterminizeWithOptions(n, Options{})
	if err != nil {
		// unreachable: construction only fails when MaxStates is set
		panic(err)
	}
	return d
}

// DeterminizeWithOptions is Determinize with tracing and an optional state
// ceiling. It returns an error wrapping ErrStateLimit when the ceiling is hit.
func DeterminizeWithOptions(n *NFA, opts Options) (*DFA, error) {
	checkOperands("Determinize", n)

	b := &subsetBuilder{
		nfa:       n,
		dfa:       &DFA{alphabet: n.Alphabet()},
		ids:       make(map[string]int),
		maxStates: opts.MaxStates,
		logger:    opts.Logger,
	}
	if err := b.run(); err != nil {
		return nil, err
	}
	return b.dfa, nil
}

type pendingSubset struct {
	id  int
	set StateSet
}

type subsetBuilder struct {
	nfa       *NFA
	dfa       *DFA
	ids       map[string]int // canonical subset key -> DFA state id
	worklist  []pendingSubset
	maxStates int
	logger    *Logger
}

func (b *subsetBuilder) run() error {
	b.logger.Section("Subset Construction")

	initial := b.nfa.EpsilonClosure(b.nfa.start)
	if _, err := b.intern(initial); err != nil {
		return err
	}

	for len(b.worklist) > 0 {
		current := b.worklist[0]
		b.worklist = b.worklist[1:]

		for _, sym := range b.dfa.alphabet {
			moved := b.nfa.Move(current.set, sym)
			if moved.Len() == 0 {
				continue
			}
			to, err := b.intern(b.nfa.Closure(moved))
			if err != nil {
				return err
			}
			b.dfa.addTransition(current.id, sym, to)
			b.logger.Edge(current.id, sym, to)
		}
	}

	b.logger.Summary(b.nfa.NumStates(), len(b.dfa.trans), b.dfa.alphabet)
	return nil
}

// intern returns the id for set, allocating the next sequential id and
// queueing the subset when it has not been seen before.
func (b *subsetBuilder) intern(set StateSet) (int, error) {
	key := set.Key()
	if id, ok := b.ids[key]; ok {
		return id, nil
	}

	id := len(b.dfa.trans)
	if b.maxStates > 0 && id >= b.maxStates {
		return 0, fmt.Errorf("subset %s: %w (limit %d)", set, ErrStateLimit, b.maxStates)
	}

	accepting := b.nfa.anyAccepting(set)
	b.ids[key] = id
	b.dfa.trans = append(b.dfa.trans, nil)
	b.dfa.accepting = append(b.dfa.accepting, accepting)
	b.worklist = append(b.worklist, pendingSubset{id: id, set: set})

	b.logger.Subset(id, set, accepting)
	return id, nil
}

func (d *DFA) addTransition(from int, sym rune, to int) {
	if d.trans[from] == nil {
		d.trans[from] = make(map[rune]int)
	}
	d.trans[from][sym] = to
}

// Start returns the start state id.
func (d *DFA) Start() int {
	return d.start
}

// NumStates returns the number of DFA states.
func (d *DFA) NumStates() int {
	return len(d.trans)
}

// IsAccepting reports whether id is an accept state.
func (d *DFA) IsAccepting(id int) bool {
	return id >= 0 && id < len(d.accepting) && d.accepting[id]
}

// AcceptStates returns the accept state ids, ascending.
func (d *DFA) AcceptStates() []int {
	var out []int
	for id, ok := range d.accepting {
		if ok {
			out = append(out, id)
		}
	}
	return out
}

// Alphabet returns the symbols the DFA was built over, ascending.
func (d *DFA) Alphabet() []rune {
	return slices.Clone(d.alphabet)
}

// Next returns the successor of id on symbol. ok is false when there is no
// transition.
func (d *DFA) Next(id int, symbol rune) (next int, ok bool) {
	if id < 0 || id >= len(d.trans) {
		return 0, false
	}
	next, ok = d.trans[id][symbol]
	return next, ok
}

// Transitions returns a copy of the outgoing edges of id.
func (d *DFA) Transitions(id int) map[rune]int {
	out := make(map[rune]int)
	if id < 0 || id >= len(d.trans) {
		return out
	}
	for sym, to := range d.trans[id] {
		out[sym] = to
	}
	return out
}

// Accepts reports whether the DFA accepts input. Input that is not valid
// UTF-8 is rejected rather than decoded to U+FFFD.
func (d *DFA) Accepts(input string) bool {
	if !utf8.ValidString(input) {
		return false
	}
	return d.AcceptsSymbols([]rune(input))
}

// AcceptsSymbols steps from the start state over symbols, rejecting as soon as
// a transition is missing.
func (d *DFA) AcceptsSymbols(symbols []rune) bool {
	state := d.start
	for _, c := range symbols {
		next, ok := d.Next(state, c)
		if !ok {
			return false
		}
		state = next
	}
	return d.IsAccepting(state)
}

// LongestPrefix returns the length of the longest prefix of symbols the DFA
// accepts, or -1 if no prefix (not even the empty one) is accepted.
func (d *DFA) LongestPrefix(symbols []rune) int {
	longest := -1
	state := d.start
	if d.IsAccepting(state) {
		longest = 0
	}
	for i, c := range symbols {
		next, ok := d.Next(state, c)
		if !ok {
			break
		}
		state = next
		if d.IsAccepting(state) {
			longest = i + 1
		}
	}
	return longest
}

// Reachable returns, for each state, whether it can be reached from the start.
func (d *DFA) Reachable() []bool {
	seen := make([]bool, len(d.trans))
	if len(seen) == 0 {
		return seen
	}
	seen[d.start] = true
	queue := []int{d.start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, to := range d.trans[id] {
			if !seen[to] {
				seen[to] = true
				queue = append(queue, to)
			}
		}
	}
	return seen
}
