package main

import (
	"fmt"

	"github.com/Qusai-Mansoor/CompilerContruction/internal/lexer"
	"github.com/Qusai-Mansoor/CompilerContruction/internal/render"
	"github.com/spf13/cobra"
)

func newScanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <file.iq>",
		Short: "Tokenize an .iq source file and print its symbol table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := lexer.ScanFile(args[0], a.log)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, "Tokens:")
			fmt.Fprintln(a.out, render.Tokens(res.Tokens))

			if res.HasErrors() {
				fmt.Fprintln(a.out, "\nLexical errors:")
				for _, d := range res.Diagnostics {
					fmt.Fprintln(a.out, a.colored(d.Error(), colorRed))
				}
			}

			fmt.Fprintln(a.out, "\nSymbol table:")
			fmt.Fprintln(a.out, render.Symbols(res.Symbols))

			if res.HasErrors() {
				return fmt.Errorf("%s: %d lexical error(s)", args[0], len(res.Diagnostics))
			}
			return nil
		},
	}
}
