package automaton

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// EpsilonLabel is the column header used for epsilon edges.
const EpsilonLabel = "ε"

// emptyCell marks a (state, symbol) pair with no transition.
const emptyCell = "-"

// Table is a transition table ready for rendering: one row per state, one
// column per alphabet symbol, plus summary lines.
type Table struct {
	Title   string
	Header  []string
	Rows    [][]string
	Summary []string
}

// NFATable builds the transition table of n, with an epsilon column.
func NFATable(n *NFA) Table {
	checkOperands("NFATable", n)
	alphabet := n.Alphabet()

	header := []string{"State", EpsilonLabel}
	for _, sym := range alphabet {
		header = append(header, SymbolLabel(sym))
	}
	header = append(header, "Accepting")

	rows := make([][]string, 0, len(n.states))
	for _, s := range n.states {
		row := []string{StateLabel(int(s.id)), idsCell(NewStateSet(s.eps...).ids)}
		for _, sym := range alphabet {
			row = append(row, idsCell(NewStateSet(s.trans[sym]...).ids))
		}
		row = append(row, yesNo(s.accepting))
		rows = append(rows, row)
	}

	return Table{
		Title:  "NFA Transition Table",
		Header: header,
		Rows:   rows,
		Summary: []string{
			"Start State: " + StateLabel(int(n.start)),
			"Accept State: " + StateLabel(int(n.accept)),
			fmt.Sprintf("Total States: %d", len(n.states)),
		},
	}
}

// DFATable builds the transition table of d.
func DFATable(d *DFA) Table {
	header := []string{"State"}
	for _, sym := range d.alphabet {
		header = append(header, SymbolLabel(sym))
	}
	header = append(header, "Accepting")

	rows := make([][]string, 0, len(d.trans))
	for id := range d.trans {
		row := []string{StateLabel(id)}
		for _, sym := range d.alphabet {
			if to, ok := d.trans[id][sym]; ok {
				row = append(row, StateLabel(to))
			} else {
				row = append(row, emptyCell)
			}
		}
		row = append(row, yesNo(d.accepting[id]))
		rows = append(rows, row)
	}

	accepts := "None"
	if ids := d.AcceptStates(); len(ids) > 0 {
		labels := make([]string, len(ids))
		for i, id := range ids {
			labels[i] = StateLabel(id)
		}
		accepts = strings.Join(labels, ", ")
	}

	return Table{
		Title:  "DFA Transition Table",
		Header: header,
		Rows:   rows,
		Summary: []string{
			"Start State: " + StateLabel(d.start),
			"Accept States: " + accepts,
			fmt.Sprintf("Total States: %d", len(d.trans)),
		},
	}
}

// StateLabel formats a state id as it appears in tables and graphs.
func StateLabel(id int) string {
	return "q" + strconv.Itoa(id)
}

// SymbolLabel formats a symbol for display; non-printable symbols are quoted.
func SymbolLabel(sym rune) string {
	if unicode.IsPrint(sym) && !unicode.IsSpace(sym) {
		return string(sym)
	}
	return strconv.QuoteRune(sym)
}

func idsCell(ids []StateID) string {
	if len(ids) == 0 {
		return emptyCell
	}
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = StateLabel(int(id))
	}
	return strings.Join(labels, ",")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
