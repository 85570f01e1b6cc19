package lexer

import (
	"sync"

	"github.com/Qusai-Mansoor/CompilerContruction/internal/automaton"
)

// Diagnostic messages produced by error rules and literal validation.
const (
	msgMalformedDecimal    = "Malformed decimal number: no digits after decimal point"
	msgEmptyChar           = "Empty character literal"
	msgUnterminatedChar    = "Unterminated character literal"
	msgLoneAmpersand       = "Expected '&' after '&'"
	msgLonePipe            = "Expected '|' after '|'"
	msgUnexpected          = "Unexpected character: "
	msgInvalidInteger      = "Invalid integer format: "
	msgInvalidDecimal      = "Invalid decimal number format: "
	msgUnterminatedComment = "Unterminated block comment"
	msgRedeclared          = "Redeclaration of identifier '%s' in the same scope"
	msgUndeclared          = "Undeclared identifier: "
)

// rule recognises one token class. A rule with a message is an error rule:
// its match is reported as a diagnostic instead of a token.
type rule struct {
	kind Kind
	dfa  *automaton.DFA
	msg  string
}

// rules returns the scanner's rule set in priority order. Earlier rules win
// ties on match length, so keywords shadow identifiers of equal length.
var rules = sync.OnceValue(buildRules)

func buildRules() []rule {
	var rs []rule
	add := func(kind Kind, n *automaton.NFA) {
		rs = append(rs, rule{kind: kind, dfa: automaton.Determinize(n)})
	}
	fail := func(msg string, n *automaton.NFA) {
		rs = append(rs, rule{kind: Error, dfa: automaton.Determinize(n), msg: msg})
	}

	for _, kw := range []struct {
		word string
		kind Kind
	}{
		{"num", Num},
		{"deci", Deci},
		{"letter", Letter},
		{"cond", Cond},
		{"true", BooleanLiteral},
		{"false", BooleanLiteral},
		{"read", Input},
		{"print", Output},
	} {
		add(kw.kind, automaton.FromString(kw.word))
	}

	add(Identifier, automaton.Plus(automaton.FromRange('a', 'z')))

	add(DecimalLiteral, automaton.Concat(automaton.Concat(digits(), automaton.FromSymbol('.')), digits()))
	fail(msgMalformedDecimal, automaton.Concat(digits(), automaton.FromSymbol('.')))
	add(IntegerLiteral, digits())

	add(CharacterLiteral, quoted(charBody(), automaton.FromSymbol('\'')))
	fail(msgEmptyChar, automaton.FromString("''"))
	fail(msgUnterminatedChar, quoted(automaton.Optional(charBody()), automaton.Epsilon()))

	for _, op := range []struct {
		text string
		kind Kind
	}{
		{"==", Equal},
		{"!=", NotEqual},
		{"<=", LessEqual},
		{">=", GreaterEqual},
		{"&&", And},
		{"||", Or},
		{"+", Plus},
		{"-", Minus},
		{"*", Multiply},
		{"/", Divide},
		{"%", Modulo},
		{"^", Exponent},
		{"=", Assign},
		{"<", LessThan},
		{">", GreaterThan},
		{"!", Not},
		{"(", LParen},
		{")", RParen},
		{"{", LBrace},
		{"}", RBrace},
		{";", Semicolon},
		{",", Comma},
	} {
		add(op.kind, automaton.FromString(op.text))
	}
	fail(msgLoneAmpersand, automaton.FromSymbol('&'))
	fail(msgLonePipe, automaton.FromSymbol('|'))

	return rs
}

func digits() *automaton.NFA {
	return automaton.Plus(automaton.FromRange('0', '9'))
}

// charBody matches one printable ASCII character other than a quote or
// backslash, or a backslash escape of any printable character.
func charBody() *automaton.NFA {
	plain := automaton.Union(
		automaton.Union(automaton.FromRange(' ', '&'), automaton.FromRange('(', '[')),
		automaton.FromRange(']', '~'),
	)
	escape := automaton.Concat(automaton.FromSymbol('\\'), automaton.FromRange(' ', '~'))
	return automaton.Union(plain, escape)
}

func quoted(body, closing *automaton.NFA) *automaton.NFA {
	return automaton.Concat(automaton.Concat(automaton.FromSymbol('\''), body), closing)
}
