// Package render formats automata, token streams and symbol tables for the
// terminal using lipgloss tables, and automata as Graphviz DOT.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Qusai-Mansoor/CompilerContruction/internal/automaton"
	"github.com/Qusai-Mansoor/CompilerContruction/internal/lexer"
	"github.com/Qusai-Mansoor/CompilerContruction/internal/symtab"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func grid(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

// Table renders a transition table with its title and summary lines.
func Table(t automaton.Table) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Title))
	b.WriteString("\n")
	b.WriteString(grid(t.Header, t.Rows))
	b.WriteString("\n")
	for _, line := range t.Summary {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Tokens renders a token stream, one row per token.
func Tokens(toks []lexer.Token) string {
	rows := make([][]string, 0, len(toks))
	for _, tok := range toks {
		rows = append(rows, []string{
			strconv.Itoa(tok.Line),
			strconv.Itoa(tok.Column),
			tok.Kind.String(),
			tok.Lexeme,
		})
	}
	return grid([]string{"Line", "Col", "Kind", "Lexeme"}, rows)
}

// Symbols renders every symbol ever declared in tab, outer scopes first.
func Symbols(tab *symtab.Table) string {
	all := tab.All()
	rows := make([][]string, 0, len(all))
	for _, s := range all {
		rows = append(rows, []string{
			s.Name,
			s.Kind.String(),
			s.DataType,
			strconv.Itoa(s.Scope),
			yesNo(s.Global),
			yesNo(s.Constant),
			value(s.Value),
			strconv.Itoa(s.Line),
			strconv.Itoa(s.Column),
		})
	}
	return grid([]string{"Name", "Kind", "Type", "Scope", "Global", "Const", "Value", "Line", "Col"}, rows)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func value(v any) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(v)
}
