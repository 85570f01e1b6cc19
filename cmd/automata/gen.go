package main

import (
	"fmt"

	"github.com/Qusai-Mansoor/CompilerContruction/pkg/automata"
	"github.com/spf13/cobra"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		output   string
		pkg      string
		withTest bool
	)

	cmd := &cobra.Command{
		Use:   "gen <recipe>",
		Short: "Generate a Go matcher from a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, r, err := automata.CompileRecipe(args[0], a.constructionOptions(cmd))
			if err != nil {
				return err
			}

			opts := automata.Options{
				DFA:              d,
				Name:             r.Name,
				OutputFile:       r.Output,
				Package:          r.Package,
				GenerateTestFile: withTest,
			}
			if output != "" {
				opts.OutputFile = output
			}
			if pkg != "" {
				opts.Package = pkg
			}
			if withTest {
				opts.TestInputs = append(append([]string(nil), r.Accept...), r.Reject...)
			}

			if err := automata.Generate(opts); err != nil {
				return err
			}
			a.log.Info("generated matcher", "recipe", r.Name, "output", opts.OutputFile, "states", d.NumStates())
			fmt.Fprintf(a.out, "wrote %s\n", opts.OutputFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: the recipe's output)")
	cmd.Flags().StringVar(&pkg, "package", "", "Package name (default: the recipe's package)")
	cmd.Flags().BoolVar(&withTest, "test", false, "Also generate a _test.go file from the recipe's vectors")
	return cmd
}
