package main

import (
	"fmt"
	"strings"

	"github.com/Qusai-Mansoor/CompilerContruction/pkg/automata"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <recipe>",
		Short: "Summarise a recipe's NFA and DFA without generating code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := automata.Analyze(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Recipe:        %s\n", res.Name)
			fmt.Fprintf(a.out, "NFA states:    %d\n", res.NFAStates)
			fmt.Fprintf(a.out, "DFA states:    %d\n", res.DFAStates)
			fmt.Fprintf(a.out, "Alphabet size: %d\n", res.AlphabetSize)
			fmt.Fprintf(a.out, "Accept states: %d\n", res.AcceptStates)
			fmt.Fprintf(a.out, "Labels:        %s\n", strings.Join(res.Labels, ", "))
			return nil
		},
	}
}
