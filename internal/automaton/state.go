// Package automaton implements Thompson-style NFA construction and subset
// construction into a DFA.
//
// States live in an arena owned by the NFA and are addressed by StateID, so
// the cyclic epsilon graphs produced by Star never form pointer cycles.
package automaton

import (
	"slices"
)

// StateID identifies a state inside the arena of the NFA that created it.
type StateID int

// State is a node of an NFA graph.
type State struct {
	id        StateID
	accepting bool
	trans     map[rune][]StateID
	eps       []StateID
}

func newState(id StateID) *State {
	return &State{id: id}
}

// ID returns the state identity.
func (s *State) ID() StateID {
	return s.id
}

// Accepting reports whether the state is accepting.
func (s *State) Accepting() bool {
	return s.accepting
}

// SetAccepting flips the accepting flag.
func (s *State) SetAccepting(accepting bool) {
	s.accepting = accepting
}

// AddTransition adds target to the target set for symbol.
// Several targets per symbol are allowed; adding an existing edge is a no-op.
func (s *State) AddTransition(symbol rune, target StateID) {
	if s.trans == nil {
		s.trans = make(map[rune][]StateID)
	}
	if slices.Contains(s.trans[symbol], target) {
		return
	}
	s.trans[symbol] = append(s.trans[symbol], target)
}

// AddEpsilon adds target to the epsilon target set.
func (s *State) AddEpsilon(target StateID) {
	if slices.Contains(s.eps, target) {
		return
	}
	s.eps = append(s.eps, target)
}

// Transitions returns the targets for symbol, or an empty slice.
func (s *State) Transitions(symbol rune) []StateID {
	return slices.Clone(s.trans[symbol])
}

// Epsilons returns the epsilon targets.
func (s *State) Epsilons() []StateID {
	return slices.Clone(s.eps)
}

// AllTransitions returns a copy of the symbol -> targets map.
func (s *State) AllTransitions() map[rune][]StateID {
	out := make(map[rune][]StateID, len(s.trans))
	for sym, targets := range s.trans {
		out[sym] = slices.Clone(targets)
	}
	return out
}

// Symbols returns the symbols with outgoing edges, ascending.
func (s *State) Symbols() []rune {
	syms := make([]rune, 0, len(s.trans))
	for sym := range s.trans {
		syms = append(syms, sym)
	}
	slices.Sort(syms)
	return syms
}

// shift renumbers the state and every edge by offset. Used when a consumed
// operand is moved into a larger arena.
func (s *State) shift(offset StateID) {
	s.id += offset
	for sym, targets := range s.trans {
		for i := range targets {
			targets[i] += offset
		}
		s.trans[sym] = targets
	}
	for i := range s.eps {
		s.eps[i] += offset
	}
}

func (s *State) clone() *State {
	c := &State{
		id:        s.id,
		accepting: s.accepting,
		eps:       slices.Clone(s.eps),
	}
	if s.trans != nil {
		c.trans = s.AllTransitions()
	}
	return c
}
