// Package codegen generates Go matcher source from a DFA.
package codegen

import (
	"go/token"
	"unicode"
	"unicode/utf8"
)

// Variable names used in generated code
const (
	InputName  = "input"
	StateName  = "state"
	SymbolName = "c"
	TestsName  = "tests"
	CaseName   = "tt"
	ResultName = "got"
)

// AcceptsSuffix is appended to the automaton name to form the matcher name.
const AcceptsSuffix = "Accepts"

// HeaderComment marks generated files.
const HeaderComment = "Code generated by automata. DO NOT EDIT."

// AcceptsFuncName returns the exported matcher name for an automaton.
func AcceptsFuncName(name string) string {
	return UpperFirst(name) + AcceptsSuffix
}

// TestFuncName returns the name of the generated test for an automaton.
func TestFuncName(name string) string {
	return "Test" + AcceptsFuncName(name)
}

// IsIdentifier reports whether name can prefix generated Go identifiers.
func IsIdentifier(name string) bool {
	return token.IsIdentifier(name) && !token.IsKeyword(name)
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
