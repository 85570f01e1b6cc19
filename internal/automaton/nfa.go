package automaton

import (
	"slices"
	"unicode/utf8"
)

// NFA is a Thompson automaton with exactly one start and one accept state.
//
// The composition functions consume their operands: the operand's states are
// moved into the result and the operand is marked spent. Using a spent NFA
// again panics with a *PreconditionError.
type NFA struct {
	states   []*State
	start    StateID
	accept   StateID
	consumed bool
}

// FromSymbol builds the two-state automaton for the single string c.
func FromSymbol(c rune) *NFA {
	if !utf8.ValidRune(c) {
		precondition("FromSymbol", "invalid symbol %U", c)
	}
	n := &NFA{}
	start := n.newState()
	accept := n.newState()
	start.AddTransition(c, accept.id)
	n.seal(start, accept)
	return n
}

// Epsilon builds an automaton for the language containing only the empty string.
func Epsilon() *NFA {
	n := &NFA{}
	start := n.newState()
	accept := n.newState()
	start.AddEpsilon(accept.id)
	n.seal(start, accept)
	return n
}

// FromString concatenates one symbol automaton per rune of s.
// The empty string yields Epsilon().
func FromString(s string) *NFA {
	if !utf8.ValidString(s) {
		precondition("FromString", "invalid UTF-8 in %q", s)
	}
	var out *NFA
	for _, c := range s {
		if out == nil {
			out = FromSymbol(c)
			continue
		}
		out = Concat(out, FromSymbol(c))
	}
	if out == nil {
		return Epsilon()
	}
	return out
}

// FromSet builds an automaton accepting any single symbol from symbols.
// It is language-equivalent to a union of FromSymbol automata but shares one
// start and one accept state.
func FromSet(symbols ...rune) *NFA {
	if len(symbols) == 0 {
		precondition("FromSet", "empty symbol set")
	}
	n := &NFA{}
	start := n.newState()
	accept := n.newState()
	for _, c := range symbols {
		if !utf8.ValidRune(c) {
			precondition("FromSet", "invalid symbol %U", c)
		}
		start.AddTransition(c, accept.id)
	}
	n.seal(start, accept)
	return n
}

// FromRange is FromSet over the inclusive range lo..hi.
func FromRange(lo, hi rune) *NFA {
	if lo > hi {
		precondition("FromRange", "empty range %q-%q", lo, hi)
	}
	symbols := make([]rune, 0, hi-lo+1)
	for c := lo; c <= hi; c++ {
		symbols = append(symbols, c)
	}
	return FromSet(symbols...)
}

// Concat links a's accept state to b's start with an epsilon edge.
func Concat(a, b *NFA) *NFA {
	checkOperands("Concat", a, b)
	out := &NFA{}
	aStart, aAccept := a.start, a.accept
	bStart, bAccept := b.start, b.accept

	aOff := out.absorb(a)
	bOff := out.absorb(b)

	oldAccept := out.states[aAccept+aOff]
	oldAccept.AddEpsilon(bStart + bOff)
	oldAccept.SetAccepting(false)

	out.start = aStart + aOff
	out.accept = bAccept + bOff
	return out
}

// Union builds a fresh start branching to a and b and a fresh accept joined
// from both old accept states.
func Union(a, b *NFA) *NFA {
	checkOperands("Union", a, b)
	out := &NFA{}
	start := out.newState()
	aStart, aAccept := a.start, a.accept
	bStart, bAccept := b.start, b.accept

	aOff := out.absorb(a)
	bOff := out.absorb(b)
	accept := out.newState()

	start.AddEpsilon(aStart + aOff)
	start.AddEpsilon(bStart + bOff)
	for _, id := range []StateID{aAccept + aOff, bAccept + bOff} {
		old := out.states[id]
		old.AddEpsilon(accept.id)
		old.SetAccepting(false)
	}
	out.seal(start, accept)
	return out
}

// Star builds the zero-or-more repetition of a.
func Star(a *NFA) *NFA {
	return wrap("Star", a, true, true)
}

// Plus builds the one-or-more repetition of a.
func Plus(a *NFA) *NFA {
	return wrap("Plus", a, false, true)
}

// Optional builds the zero-or-one repetition of a.
func Optional(a *NFA) *NFA {
	return wrap("Optional", a, true, false)
}

// wrap surrounds a with a fresh start and accept. skip adds the start->accept
// bypass, loop adds the accept->start back edge.
func wrap(op string, a *NFA, skip, loop bool) *NFA {
	checkOperands(op, a)
	out := &NFA{}
	start := out.newState()
	aStart, aAccept := a.start, a.accept

	off := out.absorb(a)
	accept := out.newState()

	start.AddEpsilon(aStart + off)
	if skip {
		start.AddEpsilon(accept.id)
	}
	old := out.states[aAccept+off]
	if loop {
		old.AddEpsilon(aStart + off)
	}
	old.AddEpsilon(accept.id)
	old.SetAccepting(false)

	out.seal(start, accept)
	return out
}

// Clone returns an independent deep copy. The receiver is not consumed.
func (n *NFA) Clone() *NFA {
	checkOperands("Clone", n)
	c := &NFA{
		states: make([]*State, len(n.states)),
		start:  n.start,
		accept: n.accept,
	}
	for i, s := range n.states {
		c.states[i] = s.clone()
	}
	return c
}

// Start returns the start state id.
func (n *NFA) Start() StateID {
	return n.start
}

// Accept returns the accept state id.
func (n *NFA) Accept() StateID {
	return n.accept
}

// State returns the state with the given id.
func (n *NFA) State(id StateID) *State {
	if id < 0 || int(id) >= len(n.states) {
		precondition("State", "state %d out of range [0,%d)", id, len(n.states))
	}
	return n.states[id]
}

// States returns the states ordered by id.
func (n *NFA) States() []*State {
	return slices.Clone(n.states)
}

// NumStates returns the number of states in the arena.
func (n *NFA) NumStates() int {
	return len(n.states)
}

// Consumed reports whether n has been composed into another automaton.
func (n *NFA) Consumed() bool {
	return n.consumed
}

// Alphabet returns every symbol labelling a transition, ascending.
func (n *NFA) Alphabet() []rune {
	seen := make(map[rune]struct{})
	for _, s := range n.states {
		for sym := range s.trans {
			seen[sym] = struct{}{}
		}
	}
	alphabet := make([]rune, 0, len(seen))
	for sym := range seen {
		alphabet = append(alphabet, sym)
	}
	slices.Sort(alphabet)
	return alphabet
}

// Accepts simulates the NFA on input by tracking the closure of the live set.
// Invalid UTF-8 is rejected.
func (n *NFA) Accepts(input string) bool {
	checkOperands("Accepts", n)
	if !utf8.ValidString(input) {
		return false
	}
	current := n.Closure(NewStateSet(n.start))
	for _, c := range input {
		current = n.Closure(n.Move(current, c))
		if current.Len() == 0 {
			return false
		}
	}
	return n.anyAccepting(current)
}

func (n *NFA) newState() *State {
	s := newState(StateID(len(n.states)))
	n.states = append(n.states, s)
	return s
}

func (n *NFA) seal(start, accept *State) {
	accept.SetAccepting(true)
	n.start = start.id
	n.accept = accept.id
}

// absorb moves o's states into n past n's current ids, marks o consumed and
// returns the offset applied to o's ids.
func (n *NFA) absorb(o *NFA) StateID {
	offset := StateID(len(n.states))
	for _, s := range o.states {
		s.shift(offset)
		n.states = append(n.states, s)
	}
	o.states = nil
	o.consumed = true
	return offset
}

func (n *NFA) anyAccepting(set StateSet) bool {
	for _, id := range set.ids {
		if n.states[id].accepting {
			return true
		}
	}
	return false
}

func checkOperands(op string, operands ...*NFA) {
	for i, n := range operands {
		if n == nil {
			precondition(op, "operand %d is nil", i)
		}
		if n.consumed {
			precondition(op, "operand %d was already composed into another automaton", i)
		}
		if len(n.states) == 0 {
			precondition(op, "operand %d has no states", i)
		}
		if !n.valid(n.start) || !n.valid(n.accept) {
			precondition(op, "operand %d has no start or accept state", i)
		}
		if !n.states[n.accept].accepting {
			precondition(op, "operand %d accept state q%d is not accepting", i, n.accept)
		}
		for j := 0; j < i; j++ {
			if operands[j] == n {
				precondition(op, "operands %d and %d are the same automaton", j, i)
			}
		}
	}
}

func (n *NFA) valid(id StateID) bool {
	return id >= 0 && int(id) < len(n.states)
}
