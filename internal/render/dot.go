package render

import (
	"fmt"
	"strings"

	"github.com/Qusai-Mansoor/CompilerContruction/internal/automaton"
)

// NFADot returns a Graphviz digraph of n. Epsilon edges are labelled ε.
func NFADot(n *automaton.NFA) string {
	var b strings.Builder
	b.WriteString("digraph NFA {\n    rankdir=LR;\n")
	for _, s := range n.States() {
		fmt.Fprintf(&b, "    q%d [shape=%s];\n", s.ID(), shape(s.Accepting()))
	}
	for _, s := range n.States() {
		for _, sym := range s.Symbols() {
			for _, to := range s.Transitions(sym) {
				fmt.Fprintf(&b, "    q%d -> q%d [label=%q];\n", s.ID(), to, automaton.SymbolLabel(sym))
			}
		}
		for _, to := range s.Epsilons() {
			fmt.Fprintf(&b, "    q%d -> q%d [label=%q];\n", s.ID(), to, automaton.EpsilonLabel)
		}
	}
	fmt.Fprintf(&b, "    _start [shape=point]; _start -> q%d;\n}\n", n.Start())
	return b.String()
}

// DFADot returns a Graphviz digraph of d. Symbols leading to the same target
// share one edge.
func DFADot(d *automaton.DFA) string {
	var b strings.Builder
	b.WriteString("digraph DFA {\n    rankdir=LR;\n")
	for id := 0; id < d.NumStates(); id++ {
		fmt.Fprintf(&b, "    q%d [shape=%s];\n", id, shape(d.IsAccepting(id)))
	}
	alphabet := d.Alphabet()
	for id := 0; id < d.NumStates(); id++ {
		var targets []int
		labels := make(map[int][]string)
		for _, sym := range alphabet {
			to, ok := d.Next(id, sym)
			if !ok {
				continue
			}
			if _, seen := labels[to]; !seen {
				targets = append(targets, to)
			}
			labels[to] = append(labels[to], automaton.SymbolLabel(sym))
		}
		for _, to := range targets {
			fmt.Fprintf(&b, "    q%d -> q%d [label=%q];\n", id, to, strings.Join(labels[to], ","))
		}
	}
	fmt.Fprintf(&b, "    _start [shape=point]; _start -> q%d;\n}\n", d.Start())
	return b.String()
}

func shape(accepting bool) string {
	if accepting {
		return "doublecircle"
	}
	return "circle"
}
