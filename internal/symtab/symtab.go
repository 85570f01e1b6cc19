// Package symtab implements a scope-based symbol table for the .iq language.
package symtab

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrRedeclared is returned when a name is inserted twice in one scope.
	ErrRedeclared = errors.New("redeclared in the same scope")
	// ErrUndeclared is returned when a name does not resolve.
	ErrUndeclared = errors.New("undeclared identifier")
	// ErrConstant is returned when updating the value of a constant.
	ErrConstant = errors.New("cannot assign to constant")
)

// Kind classifies a symbol.
type Kind int

const (
	Variable Kind = iota
	Function
	Parameter
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "VARIABLE"
	case Function:
		return "FUNCTION"
	case Parameter:
		return "PARAMETER"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// GlobalScope is the level of the outermost scope.
const GlobalScope = 0

// Symbol is one declared name.
type Symbol struct {
	Name     string
	Kind     Kind
	DataType string
	Constant bool
	Global   bool
	Value    any
	Scope    int
	Line     int
	Column   int
}

// Table tracks declarations across nested scopes. Symbols of closed scopes
// stop resolving but stay listed by All.
type Table struct {
	scope int
	live  map[string][]*Symbol // innermost declaration last
	all   []*Symbol
}

// New returns a table positioned at the global scope.
func New() *Table {
	return &Table{live: make(map[string][]*Symbol)}
}

// EnterScope opens a nested scope.
func (t *Table) EnterScope() {
	t.scope++
}

// ExitScope closes the current scope. Exiting the global scope is a no-op.
func (t *Table) ExitScope() {
	if t.scope == GlobalScope {
		return
	}
	for name, decls := range t.live {
		kept := decls[:0]
		for _, s := range decls {
			if s.Scope != t.scope {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			delete(t.live, name)
		} else {
			t.live[name] = kept
		}
	}
	t.scope--
}

// CurrentScope returns the nesting level, GlobalScope at the top.
func (t *Table) CurrentScope() int {
	return t.scope
}

// Insert declares sym in the current scope, or in the global scope when
// sym.Global is set. The stored copy is returned.
func (t *Table) Insert(sym Symbol) (*Symbol, error) {
	sym.Scope = t.scope
	if sym.Global {
		sym.Scope = GlobalScope
	}
	if prev := t.lookupIn(sym.Name, sym.Scope); prev != nil {
		return prev, fmt.Errorf("%q at line %d: %w (first declared at line %d)", sym.Name, sym.Line, ErrRedeclared, prev.Line)
	}
	s := &sym
	t.live[s.Name] = append(t.live[s.Name], s)
	t.all = append(t.all, s)
	return s, nil
}

// LookupCurrent resolves name in the current scope only.
func (t *Table) LookupCurrent(name string) (*Symbol, bool) {
	s := t.lookupIn(name, t.scope)
	return s, s != nil
}

// Lookup resolves name from the innermost open scope outwards.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	decls := t.live[name]
	if len(decls) == 0 {
		return nil, false
	}
	best := decls[0]
	for _, s := range decls[1:] {
		if s.Scope >= best.Scope {
			best = s
		}
	}
	return best, true
}

// UpdateValue sets the value of the symbol name resolves to.
func (t *Table) UpdateValue(name string, value any) error {
	s, ok := t.Lookup(name)
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUndeclared)
	}
	if s.Constant {
		return fmt.Errorf("%q: %w", name, ErrConstant)
	}
	s.Value = value
	return nil
}

// All returns every symbol ever declared, ordered by scope then name.
func (t *Table) All() []*Symbol {
	out := append([]*Symbol(nil), t.all...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			return out[i].Scope < out[j].Scope
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ScopeSymbols returns the symbols declared at the given level, by name.
func (t *Table) ScopeSymbols(scope int) []*Symbol {
	var out []*Symbol
	for _, s := range t.All() {
		if s.Scope == scope {
			out = append(out, s)
		}
	}
	return out
}

func (t *Table) lookupIn(name string, scope int) *Symbol {
	decls := t.live[name]
	for i := len(decls) - 1; i >= 0; i-- {
		if decls[i].Scope == scope {
			return decls[i]
		}
	}
	return nil
}
