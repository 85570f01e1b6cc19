package automaton

import (
	"fmt"
	"io"
	"os"
)

const logPrefix = "[automata] "

// Logger traces subset construction: each discovered subset, each DFA edge
// and the totals. A nil *Logger is valid and silent.
type Logger struct {
	enabled bool
	out     io.Writer
}

// NewLogger returns a logger writing to stderr.
func NewLogger(enabled bool) *Logger {
	return &Logger{enabled: enabled, out: os.Stderr}
}

// SetOutput redirects the trace.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Enabled reports whether anything will be written.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Log writes one formatted trace line.
func (l *Logger) Log(format string, args ...any) {
	if l.Enabled() {
		fmt.Fprintf(l.out, logPrefix+format+"\n", args...)
	}
}

// Section writes a phase header.
func (l *Logger) Section(name string) {
	if l.Enabled() {
		fmt.Fprintf(l.out, "\n%s=== %s ===\n", logPrefix, name)
	}
}

// Subset records that the NFA subset set became DFA state id.
func (l *Logger) Subset(id int, set StateSet, accepting bool) {
	l.Log("d%d = %s accepting=%v", id, set, accepting)
}

// Edge records the DFA transition from -sym-> to.
func (l *Logger) Edge(from int, sym rune, to int) {
	l.Log("d%d --%s--> d%d", from, SymbolLabel(sym), to)
}

// Summary records the size of a finished DFA.
func (l *Logger) Summary(nfaStates, dfaStates int, alphabet []rune) {
	l.Log("%d NFA states over %q became %d DFA states", nfaStates, string(alphabet), dfaStates)
}
