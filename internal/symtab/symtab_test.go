package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndLookup(t *testing.T) {
	tab := New()

	s, err := tab.Insert(Symbol{Name: "count", DataType: "int", Line: 1})
	require.NoError(t, err)
	assert.Equal(t, GlobalScope, s.Scope)

	got, ok := tab.Lookup("count")
	require.True(t, ok)
	assert.Equal(t, "int", got.DataType)

	_, ok = tab.Lookup("missing")
	assert.False(t, ok)
}

func TestRedeclaration(t *testing.T) {
	tab := New()
	_, err := tab.Insert(Symbol{Name: "x", DataType: "int", Line: 1})
	require.NoError(t, err)

	_, err = tab.Insert(Symbol{Name: "x", DataType: "float", Line: 2})
	require.ErrorIs(t, err, ErrRedeclared)
	assert.Contains(t, err.Error(), "first declared at line 1")

	tab.EnterScope()
	_, err = tab.Insert(Symbol{Name: "x", DataType: "char", Line: 3})
	assert.NoError(t, err, "shadowing in a nested scope is allowed")
}

func TestScopesResolveInnermostFirst(t *testing.T) {
	tab := New()
	_, _ = tab.Insert(Symbol{Name: "x", DataType: "int"})

	tab.EnterScope()
	_, _ = tab.Insert(Symbol{Name: "x", DataType: "char"})
	_, _ = tab.Insert(Symbol{Name: "y", DataType: "boolean"})

	got, ok := tab.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "char", got.DataType)
	assert.Equal(t, 1, tab.CurrentScope())

	tab.ExitScope()
	got, ok = tab.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "int", got.DataType)

	_, ok = tab.Lookup("y")
	assert.False(t, ok, "symbols of a closed scope must not resolve")

	assert.Len(t, tab.All(), 3, "closed scopes stay listed")
}

func TestLookupCurrent(t *testing.T) {
	tab := New()
	_, _ = tab.Insert(Symbol{Name: "g"})
	tab.EnterScope()

	_, ok := tab.LookupCurrent("g")
	assert.False(t, ok)
	_, ok = tab.Lookup("g")
	assert.True(t, ok)
}

func TestGlobalInsertFromNestedScope(t *testing.T) {
	tab := New()
	tab.EnterScope()
	tab.EnterScope()

	s, err := tab.Insert(Symbol{Name: "total", Global: true})
	require.NoError(t, err)
	assert.Equal(t, GlobalScope, s.Scope)

	tab.ExitScope()
	tab.ExitScope()
	_, ok := tab.Lookup("total")
	assert.True(t, ok)
}

func TestExitGlobalScopeIsNoop(t *testing.T) {
	tab := New()
	tab.ExitScope()
	assert.Equal(t, GlobalScope, tab.CurrentScope())
}

func TestUpdateValue(t *testing.T) {
	tab := New()
	_, _ = tab.Insert(Symbol{Name: "v"})
	_, _ = tab.Insert(Symbol{Name: "pi", Constant: true, Value: 3.14})

	require.NoError(t, tab.UpdateValue("v", 42))
	got, _ := tab.Lookup("v")
	assert.Equal(t, 42, got.Value)

	assert.ErrorIs(t, tab.UpdateValue("pi", 3.0), ErrConstant)
	assert.ErrorIs(t, tab.UpdateValue("nope", 1), ErrUndeclared)
}

func TestAllOrdering(t *testing.T) {
	tab := New()
	_, _ = tab.Insert(Symbol{Name: "zeta"})
	_, _ = tab.Insert(Symbol{Name: "alpha"})
	tab.EnterScope()
	_, _ = tab.Insert(Symbol{Name: "beta"})

	var names []string
	for _, s := range tab.All() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"alpha", "zeta", "beta"}, names)

	scoped := tab.ScopeSymbols(1)
	require.Len(t, scoped, 1)
	assert.Equal(t, "beta", scoped[0].Name)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "VARIABLE", Variable.String())
	assert.Equal(t, "FUNCTION", Function.String())
	assert.Equal(t, "PARAMETER", Parameter.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
