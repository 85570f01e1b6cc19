package lexer

import "fmt"

// Kind identifies the class of a token.
type Kind int

const (
	// Type keywords
	Num Kind = iota
	Deci
	Letter
	Cond

	IntegerLiteral
	DecimalLiteral
	CharacterLiteral
	BooleanLiteral

	Identifier

	Plus
	Minus
	Multiply
	Divide
	Modulo
	Exponent
	Assign
	Equal
	NotEqual
	LessThan
	GreaterThan
	LessEqual
	GreaterEqual
	And
	Or
	Not

	LParen
	RParen
	LBrace
	RBrace
	Semicolon
	Comma

	Input
	Output

	EOF
	Error
)

var kindNames = [...]string{
	Num:              "NUM",
	Deci:             "DECI",
	Letter:           "LETTER",
	Cond:             "COND",
	IntegerLiteral:   "INTEGER_LITERAL",
	DecimalLiteral:   "DECIMAL_LITERAL",
	CharacterLiteral: "CHARACTER_LITERAL",
	BooleanLiteral:   "BOOLEAN_LITERAL",
	Identifier:       "IDENTIFIER",
	Plus:             "PLUS",
	Minus:            "MINUS",
	Multiply:         "MULTIPLY",
	Divide:           "DIVIDE",
	Modulo:           "MODULO",
	Exponent:         "EXPONENT",
	Assign:           "ASSIGN",
	Equal:            "EQUAL",
	NotEqual:         "NOT_EQUAL",
	LessThan:         "LESS_THAN",
	GreaterThan:      "GREATER_THAN",
	LessEqual:        "LESS_EQUAL",
	GreaterEqual:     "GREATER_EQUAL",
	And:              "AND",
	Or:               "OR",
	Not:              "NOT",
	LParen:           "LPAREN",
	RParen:           "RPAREN",
	LBrace:           "LBRACE",
	RBrace:           "RBRACE",
	Semicolon:        "SEMICOLON",
	Comma:            "COMMA",
	Input:            "INPUT",
	Output:           "OUTPUT",
	EOF:              "EOF",
	Error:            "ERROR",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsType reports whether k is a type keyword that opens a declaration.
func (k Kind) IsType() bool {
	return k >= Num && k <= Cond
}

// dataTypes maps type keywords to the data type recorded in the symbol table.
var dataTypes = map[Kind]string{
	Num:    "int",
	Deci:   "float",
	Letter: "char",
	Cond:   "boolean",
}

// DataType returns the data type a type keyword declares, or "".
func (k Kind) DataType() string {
	return dataTypes[k]
}

// Token is a lexeme with its 1-based source position. For Error tokens the
// lexeme holds the diagnostic message.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %d:%d", t.Kind, t.Lexeme, t.Line, t.Column)
}

// Diagnostic is a lexical or declaration error.
type Diagnostic struct {
	Line   int
	Column int
	Msg    string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("Lexical error at line %d, column %d: %s", d.Line, d.Column, d.Msg)
}
