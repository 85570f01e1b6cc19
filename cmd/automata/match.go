package main

import (
	"fmt"

	"github.com/Qusai-Mansoor/CompilerContruction/internal/automaton"
	"github.com/Qusai-Mansoor/CompilerContruction/internal/recipe"
	"github.com/spf13/cobra"
)

func newMatchCmd(a *app) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "match <recipe> [input...]",
		Short: "Run inputs through a recipe's DFA",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			for _, in := range args[1:] {
				verdict := a.colored("REJECT", colorRed)
				if d.Accepts(in) {
					verdict = a.colored("ACCEPT", colorGreen)
				}
				fmt.Fprintf(a.out, "%s %q\n", verdict, in)
			}

			if !check {
				return nil
			}
			mismatches := r.Check(d)
			for _, m := range mismatches {
				fmt.Fprintf(a.out, "%s %s\n", a.colored("FAIL", colorRed), m)
			}
			total := len(r.Accept) + len(r.Reject)
			a.log.Debug("checked vectors", "recipe", r.Name, "total", total, "failed", len(mismatches))
			if len(mismatches) > 0 {
				return fmt.Errorf("%s: %d of %d vectors failed", r.Name, len(mismatches), total)
			}
			fmt.Fprintf(a.out, "%s %d vectors\n", a.colored("PASS", colorGreen), total)
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Also verify the recipe's accept/reject vectors")
	return cmd
}
