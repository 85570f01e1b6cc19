package codegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Qusai-Mansoor/CompilerContruction/internal/automaton"
	"github.com/dave/jennifer/jen"
)

// Config holds the configuration for matcher generation.
type Config struct {
	Name    string // Prefix of generated identifiers (e.g. "Identifier" -> IdentifierAccepts)
	Package string // Package clause of the generated file
}

// Validate checks that the config can produce compilable Go.
func (c Config) Validate() error {
	if !IsIdentifier(c.Name) {
		return fmt.Errorf("name %q is not a valid Go identifier", c.Name)
	}
	if !IsIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", c.Package)
	}
	return nil
}

// Generate emits a file holding <Name>Accepts(input string) bool, a state
// switch over the runes of input that mirrors the transition table of d.
func Generate(d *automaton.DFA, cfg Config) (*jen.File, error) {
	if d == nil {
		return nil, fmt.Errorf("nil DFA")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	f := jen.NewFile(cfg.Package)
	f.HeaderComment(HeaderComment)

	fn := AcceptsFuncName(cfg.Name)
	f.Commentf("%s reports whether %s is accepted by the %s automaton (%d states, alphabet %q).",
		fn, InputName, cfg.Name, d.NumStates(), string(d.Alphabet()))
	f.Func().Id(fn).Params(jen.Id(InputName).String()).Bool().Block(matcherBody(d)...)

	return f, nil
}

func matcherBody(d *automaton.DFA) []jen.Code {
	stateCases := stepCases(d)
	if len(stateCases) == 0 {
		// No transitions: only the empty input can be accepted.
		if d.IsAccepting(d.Start()) {
			return []jen.Code{jen.Return(jen.Id(InputName).Op("==").Lit(""))}
		}
		return []jen.Code{jen.Return(jen.False())}
	}

	stateCases = append(stateCases, jen.Default().Block(jen.Return(jen.False())))

	code := []jen.Code{
		jen.If(jen.Op("!").Qual("unicode/utf8", "ValidString").Call(jen.Id(InputName))).Block(
			jen.Return(jen.False()),
		),
		jen.Id(StateName).Op(":=").Lit(d.Start()),
		jen.For(jen.List(jen.Id("_"), jen.Id(SymbolName)).Op(":=").Range().Id(InputName)).Block(
			jen.Switch(jen.Id(StateName)).Block(stateCases...),
		),
	}

	accepts := d.AcceptStates()
	if len(accepts) == 0 {
		return append(code, jen.Return(jen.False()))
	}
	lits := make([]jen.Code, len(accepts))
	for i, id := range accepts {
		lits[i] = jen.Lit(id)
	}
	return append(code,
		jen.Switch(jen.Id(StateName)).Block(
			jen.Case(lits...).Block(jen.Return(jen.True())),
		),
		jen.Return(jen.False()),
	)
}

// stepCases builds one case per state with outgoing edges. Symbols sharing a
// target are folded into a single case, ordered by first symbol.
func stepCases(d *automaton.DFA) []jen.Code {
	var cases []jen.Code
	alphabet := d.Alphabet()

	for id := 0; id < d.NumStates(); id++ {
		var targets []int
		symbols := make(map[int][]jen.Code)
		for _, sym := range alphabet {
			to, ok := d.Next(id, sym)
			if !ok {
				continue
			}
			if _, seen := symbols[to]; !seen {
				targets = append(targets, to)
			}
			symbols[to] = append(symbols[to], jen.LitRune(sym))
		}
		if len(targets) == 0 {
			continue
		}

		inner := make([]jen.Code, 0, len(targets)+1)
		for _, to := range targets {
			inner = append(inner, jen.Case(symbols[to]...).Block(
				jen.Id(StateName).Op("=").Lit(to),
			))
		}
		inner = append(inner, jen.Default().Block(jen.Return(jen.False())))

		cases = append(cases, jen.Case(jen.Lit(id)).Block(
			jen.Switch(jen.Id(SymbolName)).Block(inner...),
		))
	}
	return cases
}

// GenerateTest emits a table-driven test asserting the accept and reject
// vectors against the generated matcher.
func GenerateTest(cfg Config, accept, reject []string) (*jen.File, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if len(accept)+len(reject) == 0 {
		return nil, fmt.Errorf("no test inputs for %s", cfg.Name)
	}

	fn := AcceptsFuncName(cfg.Name)
	rows := make([]jen.Code, 0, len(accept)+len(reject))
	for _, in := range accept {
		rows = append(rows, jen.Values(jen.Lit(in), jen.True()))
	}
	for _, in := range reject {
		rows = append(rows, jen.Values(jen.Lit(in), jen.False()))
	}

	f := jen.NewFile(cfg.Package)
	f.HeaderComment(HeaderComment)
	f.Func().Id(TestFuncName(cfg.Name)).Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
		jen.Id(TestsName).Op(":=").Index().Struct(
			jen.Id(InputName).String(),
			jen.Id("want").Bool(),
		).Values(rows...),
		jen.For(jen.List(jen.Id("_"), jen.Id(CaseName)).Op(":=").Range().Id(TestsName)).Block(
			jen.If(
				jen.Id(ResultName).Op(":=").Id(fn).Call(jen.Id(CaseName).Dot(InputName)),
				jen.Id(ResultName).Op("!=").Id(CaseName).Dot("want"),
			).Block(
				jen.Id("t").Dot("Errorf").Call(
					jen.Lit(fn+"(%q) = %v, want %v"),
					jen.Id(CaseName).Dot(InputName),
					jen.Id(ResultName),
					jen.Id(CaseName).Dot("want"),
				),
			),
		),
	)
	return f, nil
}

// Save writes f to path, creating parent directories.
func Save(f *jen.File, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := f.Save(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// TestFileName derives the _test.go path next to a generated file.
func TestFileName(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + "_test" + ext
}
