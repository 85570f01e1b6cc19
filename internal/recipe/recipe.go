// Package recipe loads automaton definitions from YAML files. A recipe is a
// composition tree of automaton primitives plus generation settings and
// accept/reject vectors.
package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/Qusai-Mansoor/CompilerContruction/internal/automaton"
	"gopkg.in/yaml.v3"
)

// ErrInvalidExpr is returned when an expression node is malformed.
var ErrInvalidExpr = errors.New("invalid expression")

// DefaultPackage is used when a recipe does not name one.
const DefaultPackage = "main"

// MaxRangeSize caps the number of symbols a single range may expand to.
const MaxRangeSize = 1 << 12

// surrogates is the UTF-16 surrogate block; its code points are not runes.
const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Recipe describes one automaton.
type Recipe struct {
	Name    string   `yaml:"name"`
	Package string   `yaml:"package"`
	Output  string   `yaml:"output"`
	Expr    *Expr    `yaml:"expr"`
	Accept  []string `yaml:"accept"`
	Reject  []string `yaml:"reject"`
}

// Expr is a node of the composition tree. Exactly one field must be set.
type Expr struct {
	Symbol   string  `yaml:"symbol,omitempty"`
	Literal  string  `yaml:"literal,omitempty"`
	Set      string  `yaml:"set,omitempty"`
	Range    string  `yaml:"range,omitempty"`
	Epsilon  bool    `yaml:"epsilon,omitempty"`
	Concat   []*Expr `yaml:"concat,omitempty"`
	Union    []*Expr `yaml:"union,omitempty"`
	Star     *Expr   `yaml:"star,omitempty"`
	Plus     *Expr   `yaml:"plus,omitempty"`
	Optional *Expr   `yaml:"optional,omitempty"`
}

// Load reads and parses the recipe at path.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes a recipe. Unknown keys are rejected.
func Parse(data []byte) (*Recipe, error) {
	var r Recipe
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse recipe: %w", err)
	}
	if r.Package == "" {
		r.Package = DefaultPackage
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the recipe header and its expression tree.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("recipe name is required")
	}
	if r.Expr == nil {
		return fmt.Errorf("recipe %s: expr: %w: missing", r.Name, ErrInvalidExpr)
	}
	if err := r.Expr.validate("expr"); err != nil {
		return fmt.Errorf("recipe %s: %w", r.Name, err)
	}
	return nil
}

// NFA builds a fresh automaton for the recipe's expression.
func (r *Recipe) NFA() (*automaton.NFA, error) {
	return r.Expr.Build()
}

// Mismatch is a vector the automaton disagrees with.
type Mismatch struct {
	Input string
	Want  bool
	Got   bool
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%q: want accept=%v, got %v", m.Input, m.Want, m.Got)
}

// Check runs the accept and reject vectors against d.
func (r *Recipe) Check(d *automaton.DFA) []Mismatch {
	var out []Mismatch
	for _, in := range r.Accept {
		if !d.Accepts(in) {
			out = append(out, Mismatch{Input: in, Want: true})
		}
	}
	for _, in := range r.Reject {
		if d.Accepts(in) {
			out = append(out, Mismatch{Input: in, Want: false, Got: true})
		}
	}
	return out
}

// Build validates the tree and composes a new NFA from it.
func (e *Expr) Build() (*automaton.NFA, error) {
	if err := e.validate("expr"); err != nil {
		return nil, err
	}
	return e.build(), nil
}

func (e *Expr) build() *automaton.NFA {
	switch {
	case e.Symbol != "":
		c, _ := utf8.DecodeRuneInString(e.Symbol)
		return automaton.FromSymbol(c)
	case e.Literal != "":
		return automaton.FromString(e.Literal)
	case e.Set != "":
		return automaton.FromSet([]rune(e.Set)...)
	case e.Range != "":
		r := []rune(e.Range)
		return automaton.FromRange(r[0], r[2])
	case e.Epsilon:
		return automaton.Epsilon()
	case e.Concat != nil:
		return fold(e.Concat, automaton.Concat)
	case e.Union != nil:
		return fold(e.Union, automaton.Union)
	case e.Star != nil:
		return automaton.Star(e.Star.build())
	case e.Plus != nil:
		return automaton.Plus(e.Plus.build())
	default:
		return automaton.Optional(e.Optional.build())
	}
}

func fold(items []*Expr, op func(a, b *automaton.NFA) *automaton.NFA) *automaton.NFA {
	out := items[0].build()
	for _, item := range items[1:] {
		out = op(out, item.build())
	}
	return out
}

func (e *Expr) validate(path string) error {
	if e == nil {
		return invalid(path, "empty node")
	}

	var set []string
	mark := func(ok bool, name string) {
		if ok {
			set = append(set, name)
		}
	}
	mark(e.Symbol != "", "symbol")
	mark(e.Literal != "", "literal")
	mark(e.Set != "", "set")
	mark(e.Range != "", "range")
	mark(e.Epsilon, "epsilon")
	mark(e.Concat != nil, "concat")
	mark(e.Union != nil, "union")
	mark(e.Star != nil, "star")
	mark(e.Plus != nil, "plus")
	mark(e.Optional != nil, "optional")

	switch len(set) {
	case 0:
		return invalid(path, "no operator set")
	case 1:
	default:
		return invalid(path, "more than one operator set: %s", strings.Join(set, ", "))
	}

	switch {
	case e.Symbol != "":
		if !utf8.ValidString(e.Symbol) || utf8.RuneCountInString(e.Symbol) != 1 {
			return invalid(path, "symbol %q must be exactly one character", e.Symbol)
		}
	case e.Range != "":
		r := []rune(e.Range)
		if !utf8.ValidString(e.Range) || len(r) != 3 || r[1] != '-' {
			return invalid(path, "range %q must look like a-z", e.Range)
		}
		lo, hi := r[0], r[2]
		if lo > hi {
			return invalid(path, "range %q is empty", e.Range)
		}
		if lo <= surrogateMax && hi >= surrogateMin {
			return invalid(path, "range %q overlaps the surrogate block U+D800-U+DFFF", e.Range)
		}
		if n := int(hi-lo) + 1; n > MaxRangeSize {
			return invalid(path, "range %q spans %d symbols (limit %d)", e.Range, n, MaxRangeSize)
		}
	case e.Literal != "" || e.Set != "":
		if !utf8.ValidString(e.Literal + e.Set) {
			return invalid(path, "invalid UTF-8")
		}
	case e.Concat != nil:
		return validateList(path+".concat", e.Concat)
	case e.Union != nil:
		return validateList(path+".union", e.Union)
	case e.Star != nil:
		return e.Star.validate(path + ".star")
	case e.Plus != nil:
		return e.Plus.validate(path + ".plus")
	case e.Optional != nil:
		return e.Optional.validate(path + ".optional")
	}
	return nil
}

func validateList(path string, items []*Expr) error {
	if len(items) == 0 {
		return invalid(path, "needs at least one operand")
	}
	for i, item := range items {
		if err := item.validate(fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func invalid(path, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", path, ErrInvalidExpr, fmt.Sprintf(format, args...))
}
