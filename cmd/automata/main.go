// Command automata builds NFAs and DFAs from YAML recipes, prints their
// transition tables, matches inputs, generates Go matchers and scans .iq
// source files.
package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errOut := termenv.NewOutput(os.Stderr)
		fmt.Fprintln(errOut, errOut.String("Error: "+err.Error()).Foreground(errOut.Color(colorRed)))
		os.Exit(1)
	}
}
