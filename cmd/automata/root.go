package main

import (
	"log/slog"

	"github.com/Qusai-Mansoor/CompilerContruction/internal/automaton"
	"github.com/Qusai-Mansoor/CompilerContruction/internal/logging"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	verbose bool
	log     *slog.Logger
	out     *termenv.Output
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.NewNop()}

	root := &cobra.Command{
		Use:   "automata",
		Short: "Thompson NFA and subset-construction DFA toolkit",
		Long: `automata composes NFAs from YAML recipes, converts them to DFAs,
prints transition tables, matches inputs and generates Go matchers.
It also scans .iq source files with a DFA-driven lexer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logging.NewWithWriter(cmd.ErrOrStderr(), logging.Level(a.verbose))
			a.out = termenv.NewOutput(cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Trace construction and log debug output to stderr")

	root.AddCommand(
		newTableCmd(a),
		newMatchCmd(a),
		newGenCmd(a),
		newScanCmd(a),
		newAnalyzeCmd(a),
		newVersionCmd(),
	)
	return root
}

// constructionOptions wires --verbose into the subset construction trace.
func (a *app) constructionOptions(cmd *cobra.Command) automaton.Options {
	logger := automaton.NewLogger(a.verbose)
	logger.SetOutput(cmd.ErrOrStderr())
	return automaton.Options{Logger: logger}
}

func (a *app) colored(s, color string) string {
	return a.out.String(s).Foreground(a.out.Color(color)).String()
}

const (
	colorGreen = "2"
	colorRed   = "1"
)
