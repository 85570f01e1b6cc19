package lexer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func lexemes(toks []Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Lexeme
	}
	return out
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	res := Scan("true false read print numx num deci letter cond", nil)

	assert.Equal(t, []Kind{
		BooleanLiteral, BooleanLiteral, Input, Output, Identifier, Error, Num, Deci, Letter, Cond, EOF,
	}, kinds(res.Tokens))
	assert.Equal(t, "numx", res.Tokens[4].Lexeme)
	assert.Equal(t, "Undeclared identifier: numx", res.Tokens[5].Lexeme)
}

func TestOperatorsLongestMatch(t *testing.T) {
	res := Scan("+ - * / % ^ = == != < > <= >= && || ! ( ) { } ; ,", nil)
	require.False(t, res.HasErrors(), "diagnostics: %v", res.Diagnostics)

	assert.Equal(t, []Kind{
		Plus, Minus, Multiply, Divide, Modulo, Exponent, Assign, Equal, NotEqual,
		LessThan, GreaterThan, LessEqual, GreaterEqual, And, Or, Not,
		LParen, RParen, LBrace, RBrace, Semicolon, Comma, EOF,
	}, kinds(res.Tokens))
}

func TestAdjacentOperators(t *testing.T) {
	res := Scan("a<=b", nil)
	assert.Equal(t, []string{"a", "Undeclared identifier: a", "<=", "b", "Undeclared identifier: b", ""}, lexemes(res.Tokens))
}

func TestLiterals(t *testing.T) {
	res := Scan(`42 3.14 'x' '\n' 0`, nil)
	require.False(t, res.HasErrors(), "diagnostics: %v", res.Diagnostics)

	assert.Equal(t, []Kind{IntegerLiteral, DecimalLiteral, CharacterLiteral, CharacterLiteral, IntegerLiteral, EOF}, kinds(res.Tokens))
	assert.Equal(t, []string{"42", "3.14", "'x'", `'\n'`, "0", ""}, lexemes(res.Tokens))
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"malformed decimal", "12.", "Malformed decimal number: no digits after decimal point"},
		{"empty char", "''", "Empty character literal"},
		{"unterminated char", "'ab'", "Unterminated character literal"},
		{"lone quote", "'", "Unterminated character literal"},
		{"lone ampersand", "&", "Expected '&' after '&'"},
		{"lone pipe", "|", "Expected '|' after '|'"},
		{"unexpected", "@", "Unexpected character: @"},
		{"integer overflow", "99999999999", "Invalid integer format: 99999999999"},
		{"unterminated comment", "/* never closed", "Unterminated block comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Scan(tt.src, nil)
			require.True(t, res.HasErrors())
			assert.Equal(t, tt.msg, res.Diagnostics[0].Msg)
			assert.Equal(t, 1, res.Diagnostics[0].Line)
			assert.Equal(t, 1, res.Diagnostics[0].Column)
		})
	}
}

func TestDiagnosticError(t *testing.T) {
	d := Diagnostic{Line: 3, Column: 7, Msg: "Empty character literal"}
	assert.Equal(t, "Lexical error at line 3, column 7: Empty character literal", d.Error())
}

func TestDecimalBeatsMalformed(t *testing.T) {
	res := Scan("12.5", nil)
	require.False(t, res.HasErrors())
	assert.Equal(t, DecimalLiteral, res.Tokens[0].Kind)
}

func TestCommentsKeepPositions(t *testing.T) {
	src := "// header\nnum a; /* one\ntwo */ num b;"
	res := Scan(src, nil)
	require.False(t, res.HasErrors(), "diagnostics: %v", res.Diagnostics)

	var nums []Token
	for _, tok := range res.Tokens {
		if tok.Kind == Num {
			nums = append(nums, tok)
		}
	}
	require.Len(t, nums, 2)
	assert.Equal(t, 2, nums[0].Line)
	assert.Equal(t, 1, nums[0].Column)
	assert.Equal(t, 3, nums[1].Line)
	assert.Equal(t, 8, nums[1].Column)
}

func TestDeclarationsFeedSymbolTable(t *testing.T) {
	res := Scan("num a, b = a; deci c; letter d = 'z';", nil)
	require.False(t, res.HasErrors(), "diagnostics: %v", res.Diagnostics)

	types := map[string]string{}
	for _, s := range res.Symbols.All() {
		types[s.Name] = s.DataType
		assert.True(t, s.Global)
	}
	assert.Equal(t, map[string]string{"a": "int", "b": "int", "c": "float", "d": "char"}, types)
}

func TestRedeclarationAndUndeclared(t *testing.T) {
	res := Scan("num a; num a; b = 1;", nil)
	require.Len(t, res.Diagnostics, 2)
	assert.Equal(t, "Redeclaration of identifier 'a' in the same scope", res.Diagnostics[0].Msg)
	assert.Equal(t, "Undeclared identifier: b", res.Diagnostics[1].Msg)
}

func TestScopes(t *testing.T) {
	res := Scan("num x; { num x; num y; y = x; } y = 1;", nil)

	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "Undeclared identifier: y", res.Diagnostics[0].Msg)

	inner := res.Symbols.ScopeSymbols(1)
	require.Len(t, inner, 2)
	assert.False(t, inner[0].Global)
	assert.Len(t, res.Symbols.All(), 3)
}

func TestEOFPosition(t *testing.T) {
	res := Scan("num a;\n", nil)
	last := res.Tokens[len(res.Tokens)-1]
	assert.Equal(t, EOF, last.Kind)
	assert.Equal(t, 2, last.Line)
	assert.Equal(t, 1, last.Column)
}

func TestScanFile(t *testing.T) {
	res, err := ScanFile(filepath.Join("testdata", "sample.iq"), nil)
	require.NoError(t, err)
	assert.False(t, res.HasErrors(), "diagnostics: %v", res.Diagnostics)

	names := map[string]bool{}
	for _, s := range res.Symbols.All() {
		names[s.Name] = true
	}
	for _, want := range []string{"count", "limit", "rate", "grade", "done", "step"} {
		assert.True(t, names[want], "missing symbol %q", want)
	}
}

func TestScanFileRejectsOtherExtensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.txt")
	require.NoError(t, os.WriteFile(path, []byte("num a;"), 0o644))

	_, err := ScanFile(path, nil)
	assert.ErrorIs(t, err, ErrNotSource)

	_, err = ScanFile(filepath.Join(t.TempDir(), "missing.iq"), nil)
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "INTEGER_LITERAL", IntegerLiteral.String())
	assert.Equal(t, "GREATER_EQUAL", GreaterEqual.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.Equal(t, "float", Deci.DataType())
	assert.Empty(t, Identifier.DataType())
}
