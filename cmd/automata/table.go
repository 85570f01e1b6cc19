package main

import (
	"fmt"

	"github.com/Qusai-Mansoor/CompilerContruction/internal/automaton"
	"github.com/Qusai-Mansoor/CompilerContruction/internal/recipe"
	"github.com/Qusai-Mansoor/CompilerContruction/internal/render"
	"github.com/spf13/cobra"
)

func newTableCmd(a *app) *cobra.Command {
	var (
		format  string
		nfaOnly bool
		dfaOnly bool
	)

	cmd := &cobra.Command{
		Use:   "table <recipe>",
		Short: "Print the NFA and DFA transition tables of a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "dot" {
				return fmt.Errorf("unknown format %q (want table or dot)", format)
			}
			showNFA, showDFA := !dfaOnly || nfaOnly, !nfaOnly || dfaOnly

			r, err := recipe.Load(args[0])
			if err != nil {
				return err
			}
			n, err := r.NFA()
			if err != nil {
				return err
			}
			d, err := automaton.DeterminizeWithOptions(n, a.constructionOptions(cmd))
			if err != nil {
				return err
			}
			a.log.Debug("built automata", "recipe", r.Name, "nfa_states", n.NumStates(), "dfa_states", d.NumStates())

			w := cmd.OutOrStdout()
			if showNFA {
				if format == "dot" {
					fmt.Fprint(w, render.NFADot(n))
				} else {
					fmt.Fprintln(w, render.Table(automaton.NFATable(n)))
				}
			}
			if showDFA {
				if format == "dot" {
					fmt.Fprint(w, render.DFADot(d))
				} else {
					fmt.Fprintln(w, render.Table(automaton.DFATable(d)))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or dot")
	cmd.Flags().BoolVar(&nfaOnly, "nfa", false, "Only print the NFA")
	cmd.Flags().BoolVar(&dfaOnly, "dfa", false, "Only print the DFA")
	return cmd
}
