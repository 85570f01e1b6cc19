package automata

import (
	"sort"

	"github.com/Qusai-Mansoor/CompilerContruction/internal/automaton"
	"github.com/Qusai-Mansoor/CompilerContruction/internal/recipe"
)

// Labels reported by Analyze.
const (
	LabelAcceptsEmpty = "AcceptsEmpty"
	LabelCyclic       = "Cyclic"
	LabelFinite       = "Finite"
	LabelEmptyLang    = "EmptyLanguage"
	LabelUnary        = "Unary"
)

// Analysis summarises an automaton without generating code.
type Analysis struct {
	Name         string
	NFAStates    int
	DFAStates    int
	AlphabetSize int
	AcceptStates int
	// Labels are derived from the DFA's structure, sorted alphabetically.
	Labels []string
}

// Analyze loads the recipe at path and reports its automaton's shape.
func Analyze(path string) (*Analysis, error) {
	r, err := recipe.Load(path)
	if err != nil {
		return nil, err
	}
	n, err := r.NFA()
	if err != nil {
		return nil, err
	}
	a, err := AnalyzeNFA(n, DeterminizeOptions{})
	if err != nil {
		return nil, err
	}
	a.Name = r.Name
	return a, nil
}

// AnalyzeNFA determinizes n and reports both automata. n is not consumed.
func AnalyzeNFA(n *NFA, opts DeterminizeOptions) (*Analysis, error) {
	d, err := automaton.DeterminizeWithOptions(n, opts)
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		NFAStates:    n.NumStates(),
		DFAStates:    d.NumStates(),
		AlphabetSize: len(d.Alphabet()),
		AcceptStates: len(d.AcceptStates()),
	}
	if d.IsAccepting(d.Start()) {
		a.Labels = append(a.Labels, LabelAcceptsEmpty)
	}
	if a.AcceptStates == 0 {
		a.Labels = append(a.Labels, LabelEmptyLang)
	}
	if hasCycle(d) {
		a.Labels = append(a.Labels, LabelCyclic)
	} else {
		a.Labels = append(a.Labels, LabelFinite)
	}
	if a.AlphabetSize == 1 {
		a.Labels = append(a.Labels, LabelUnary)
	}
	sort.Strings(a.Labels)
	return a, nil
}

// hasCycle reports whether any state reachable from the start lies on a cycle.
func hasCycle(d *DFA) bool {
	const (
		unvisited = iota
		onStack
		done
	)
	color := make([]int, d.NumStates())
	var visit func(id int) bool
	visit = func(id int) bool {
		color[id] = onStack
		for _, to := range d.Transitions(id) {
			switch color[to] {
			case onStack:
				return true
			case unvisited:
				if visit(to) {
					return true
				}
			}
		}
		color[id] = done
		return false
	}
	return d.NumStates() > 0 && visit(d.Start())
}
