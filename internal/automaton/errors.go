package automaton

import (
	"errors"
	"fmt"
)

// ErrStateLimit is returned by DeterminizeWithOptions when subset construction
// discovers more DFA states than Options.MaxStates allows.
var ErrStateLimit = errors.New("dfa state limit exceeded")

// PreconditionError is the panic value raised when an operation is invoked on
// operands that break its contract (nil or consumed NFAs, invalid symbols).
// These are programming errors, not recoverable conditions.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("automaton: %s: %s", e.Op, e.Reason)
}

func precondition(op, format string, args ...any) {
	panic(&PreconditionError{Op: op, Reason: fmt.Sprintf(format, args...)})
}
