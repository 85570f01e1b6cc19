package automata

import (
	"fmt"

	"github.com/Qusai-Mansoor/CompilerContruction/internal/automaton"
	"github.com/Qusai-Mansoor/CompilerContruction/internal/codegen"
	"github.com/Qusai-Mansoor/CompilerContruction/internal/recipe"
)

// Options configures matcher generation.
type Options struct {
	// DFA is the automaton to emit
	DFA *DFA

	// Name is the prefix for generated identifiers (e.g., "Identifier" generates "IdentifierAccepts")
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// GenerateTestFile writes <output>_test.go next to the matcher (default: true if TestInputs provided)
	GenerateTestFile bool

	// TestInputs are checked by the generated test. Expected results come from the DFA itself.
	TestInputs []string
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.DFA == nil {
		return fmt.Errorf("DFA cannot be nil")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Generate writes the Go matcher for opts.DFA and, when requested, its test.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	cfg := codegen.Config{Name: codegen.UpperFirst(opts.Name), Package: opts.Package}
	f, err := codegen.Generate(opts.DFA, cfg)
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	if err := codegen.Save(f, opts.OutputFile); err != nil {
		return err
	}

	inputs := opts.TestInputs
	if !opts.GenerateTestFile && len(inputs) == 0 {
		return nil
	}
	if len(inputs) == 0 {
		inputs = []string{""}
	}

	var accept, reject []string
	for _, in := range inputs {
		if opts.DFA.Accepts(in) {
			accept = append(accept, in)
		} else {
			reject = append(reject, in)
		}
	}
	tf, err := codegen.GenerateTest(cfg, accept, reject)
	if err != nil {
		return fmt.Errorf("failed to generate test: %w", err)
	}
	return codegen.Save(tf, codegen.TestFileName(opts.OutputFile))
}

// MismatchError reports recipe vectors the automaton disagrees with.
type MismatchError struct {
	Recipe     string
	Mismatches []recipe.Mismatch
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("recipe %s: %d vector(s) disagree with the automaton, first %s",
		e.Recipe, len(e.Mismatches), e.Mismatches[0])
}

// Compile loads the recipe at path, builds its DFA and checks the recipe's
// accept/reject vectors against it.
func Compile(path string) (*DFA, error) {
	d, _, err := CompileRecipe(path, automaton.Options{})
	return d, err
}

// CompileRecipe is Compile with construction options. It also returns the
// parsed recipe.
func CompileRecipe(path string, opts DeterminizeOptions) (*DFA, *recipe.Recipe, error) {
	r, err := recipe.Load(path)
	if err != nil {
		return nil, nil, err
	}
	n, err := r.NFA()
	if err != nil {
		return nil, nil, err
	}
	d, err := automaton.DeterminizeWithOptions(n, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("recipe %s: %w", r.Name, err)
	}
	if m := r.Check(d); len(m) > 0 {
		return d, r, &MismatchError{Recipe: r.Name, Mismatches: m}
	}
	return d, r, nil
}
