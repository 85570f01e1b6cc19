// Package automata builds NFAs by Thompson construction, converts them to
// DFAs by subset construction, and generates Go matchers from the result.
package automata

import (
	"github.com/Qusai-Mansoor/CompilerContruction/internal/automaton"
)

// Version of the automata module.
const Version = "0.1.0"

type (
	// NFA is a Thompson automaton with a single start and accept state.
	NFA = automaton.NFA
	// DFA is the deterministic automaton produced by Determinize.
	DFA = automaton.DFA
	// State is one NFA state.
	State = automaton.State
	// StateID indexes a state within its NFA.
	StateID = automaton.StateID
	// StateSet is a canonical set of NFA state ids.
	StateSet = automaton.StateSet
	// DeterminizeOptions bounds and traces subset construction.
	DeterminizeOptions = automaton.Options
	// Logger traces construction when enabled.
	Logger = automaton.Logger
	// PreconditionError is the panic value for contract violations.
	PreconditionError = automaton.PreconditionError
)

// ErrStateLimit is returned when subset construction exceeds MaxStates.
var ErrStateLimit = automaton.ErrStateLimit

// Constructors and operators. Composition consumes its operands.
var (
	FromSymbol = automaton.FromSymbol
	FromString = automaton.FromString
	FromSet    = automaton.FromSet
	FromRange  = automaton.FromRange
	Epsilon    = automaton.Epsilon
	Concat     = automaton.Concat
	Union      = automaton.Union
	Star       = automaton.Star
	Plus       = automaton.Plus
	Optional   = automaton.Optional

	Determinize            = automaton.Determinize
	DeterminizeWithOptions = automaton.DeterminizeWithOptions
	NewLogger              = automaton.NewLogger
)
