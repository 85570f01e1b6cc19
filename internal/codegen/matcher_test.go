package codegen

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Qusai-Mansoor/CompilerContruction/internal/automaton"
	"github.com/dave/jennifer/jen"
)

func render(t *testing.T, f *jen.File) string {
	t.Helper()
	out := fmt.Sprintf("%#v", f)
	if _, err := parser.ParseFile(token.NewFileSet(), "gen.go", out, parser.AllErrors); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, out)
	}
	return out
}

func TestGenerateMatcher(t *testing.T) {
	tests := []struct {
		name     string
		nfa      func() *automaton.NFA
		contains []string
	}{
		{
			name: "AStarB",
			nfa: func() *automaton.NFA {
				return automaton.Concat(automaton.Star(automaton.FromSymbol('a')), automaton.FromSymbol('b'))
			},
			contains: []string{
				"// Code generated by automata. DO NOT EDIT.",
				"package tokens",
				"func AStarBAccepts(input string) bool {",
				"if !utf8.ValidString(input) {\n\t\treturn false\n\t}",
				"state := 0",
				"for _, c := range input {",
				"case 'a':",
				"state = 1",
				"case 'b':",
				"state = 2",
				"case 2:\n\t\treturn true",
			},
		},
		{
			name: "Digit",
			nfa: func() *automaton.NFA {
				return automaton.FromRange('0', '3')
			},
			contains: []string{
				"func DigitAccepts(input string) bool {",
				"case '0', '1', '2', '3':",
			},
		},
		{
			name:     "Empty",
			nfa:      automaton.Epsilon,
			contains: []string{"return input == \"\""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := automaton.Determinize(tt.nfa())
			f, err := Generate(d, Config{Name: tt.name, Package: "tokens"})
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}
			out := render(t, f)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("generated code missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	d := automaton.Determinize(automaton.FromSymbol('a'))

	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty name", Config{Name: "", Package: "p"}},
		{"bad name", Config{Name: "a-b", Package: "p"}},
		{"keyword package", Config{Name: "A", Package: "func"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(d, tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	if _, err := Generate(nil, Config{Name: "A", Package: "p"}); err == nil {
		t.Error("expected error for nil DFA")
	}
}

func TestGenerateTest(t *testing.T) {
	f, err := GenerateTest(Config{Name: "ab", Package: "tokens"}, []string{"ab"}, []string{"", "ba"})
	if err != nil {
		t.Fatalf("GenerateTest() error: %v", err)
	}
	out := render(t, f)

	for _, want := range []string{
		"func TestAbAccepts(t *testing.T) {",
		`{"ab", true}`,
		`{"", false}`,
		`{"ba", false}`,
		"AbAccepts(tt.input)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated test missing %q:\n%s", want, out)
		}
	}

	if _, err := GenerateTest(Config{Name: "ab", Package: "tokens"}, nil, nil); err == nil {
		t.Error("expected error when no inputs are given")
	}
}

func TestSave(t *testing.T) {
	d := automaton.Determinize(automaton.FromString("iq"))
	f, err := Generate(d, Config{Name: "Ext", Package: "gen"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "nested", "ext.go")
	if err := Save(f, path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file was not created: %v", err)
	}
	if !strings.Contains(string(data), "func ExtAccepts(input string) bool") {
		t.Errorf("saved file missing matcher:\n%s", data)
	}
}

func TestTestFileName(t *testing.T) {
	if got := TestFileName("out/matcher.go"); got != "out/matcher_test.go" {
		t.Errorf("TestFileName() = %q", got)
	}
}
