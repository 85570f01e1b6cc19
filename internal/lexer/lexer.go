// Package lexer scans .iq source into tokens. Every token class is a DFA
// produced by the automaton package; the scanner runs them all at the
// current position and keeps the longest match.
package lexer

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"unicode"

	"github.com/Qusai-Mansoor/CompilerContruction/internal/logging"
	"github.com/Qusai-Mansoor/CompilerContruction/internal/symtab"
)

// SourceExt is the extension accepted by ScanFile.
const SourceExt = ".iq"

// ErrNotSource is returned by ScanFile for paths without the .iq extension.
var ErrNotSource = errors.New("not an .iq source file")

// Result holds everything produced by one scan.
type Result struct {
	Tokens      []Token
	Diagnostics []Diagnostic
	Symbols     *symtab.Table
}

// HasErrors reports whether any diagnostic was raised.
func (r *Result) HasErrors() bool {
	return len(r.Diagnostics) > 0
}

// Scanner tokenizes a single source text.
type Scanner struct {
	src  []rune
	pos  int
	line int
	col  int

	log    *slog.Logger
	result *Result

	// declaration tracking
	declType   string
	expectDecl bool
}

// New creates a scanner over src. A nil logger discards debug output.
func New(src string, log *slog.Logger) *Scanner {
	if log == nil {
		log = logging.NewNop()
	}
	return &Scanner{
		src:  []rune(src),
		line: 1,
		col:  1,
		log:  log,
		result: &Result{
			Symbols: symtab.New(),
		},
	}
}

// Scan tokenizes src and returns the tokens, diagnostics and symbol table.
func Scan(src string, log *slog.Logger) *Result {
	return New(src, log).Run()
}

// ScanFile reads and scans an .iq file.
func ScanFile(path string, log *slog.Logger) (*Result, error) {
	if filepath.Ext(path) != SourceExt {
		return nil, fmt.Errorf("%s: %w", path, ErrNotSource)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Scan(string(data), log), nil
}

// Run scans the whole input. The token list always ends with EOF.
func (s *Scanner) Run() *Result {
	for {
		s.skipTrivia()
		if s.pos >= len(s.src) {
			break
		}
		s.next()
	}
	s.result.Tokens = append(s.result.Tokens, Token{Kind: EOF, Line: s.line, Column: s.col})
	s.log.Debug("scan complete",
		"tokens", len(s.result.Tokens),
		"diagnostics", len(s.result.Diagnostics),
		"symbols", len(s.result.Symbols.All()))
	return s.result
}

// next consumes one token or one diagnostic at the current position.
func (s *Scanner) next() {
	line, col := s.line, s.col
	rest := s.src[s.pos:]

	best, length := -1, 0
	for i, r := range rules() {
		if n := r.dfa.LongestPrefix(rest); n > length {
			best, length = i, n
		}
	}

	if best < 0 {
		s.report(line, col, msgUnexpected+string(rest[0]))
		s.advance(1)
		return
	}

	r := rules()[best]
	lexeme := string(rest[:length])
	s.advance(length)

	if r.msg != "" {
		s.report(line, col, r.msg)
		return
	}

	switch r.kind {
	case IntegerLiteral:
		if _, err := strconv.ParseInt(lexeme, 10, 32); err != nil {
			s.report(line, col, msgInvalidInteger+lexeme)
			return
		}
	case DecimalLiteral:
		if _, err := strconv.ParseFloat(lexeme, 64); err != nil {
			s.report(line, col, msgInvalidDecimal+lexeme)
			return
		}
	}

	tok := Token{Kind: r.kind, Lexeme: lexeme, Line: line, Column: col}
	s.result.Tokens = append(s.result.Tokens, tok)
	s.log.Debug("token", "kind", tok.Kind, "lexeme", tok.Lexeme, "line", line, "col", col)
	s.track(tok)
}

// track feeds declarations and references into the symbol table. A type
// keyword opens a declaration list in which the first identifier and every
// identifier after a comma are declared; initialisers are references.
func (s *Scanner) track(tok Token) {
	table := s.result.Symbols
	switch {
	case tok.Kind.IsType():
		s.declType = tok.Kind.DataType()
		s.expectDecl = true
	case tok.Kind == Identifier && s.expectDecl:
		s.expectDecl = false
		_, err := table.Insert(symtab.Symbol{
			Name:     tok.Lexeme,
			Kind:     symtab.Variable,
			DataType: s.declType,
			Global:   table.CurrentScope() == symtab.GlobalScope,
			Line:     tok.Line,
			Column:   tok.Column,
		})
		if err != nil {
			s.report(tok.Line, tok.Column, fmt.Sprintf(msgRedeclared, tok.Lexeme))
		}
	case tok.Kind == Identifier:
		if _, ok := table.Lookup(tok.Lexeme); !ok {
			s.report(tok.Line, tok.Column, msgUndeclared+tok.Lexeme)
		}
	case tok.Kind == Comma:
		s.expectDecl = s.declType != ""
	case tok.Kind == Assign:
		s.expectDecl = false
	case tok.Kind == LBrace:
		table.EnterScope()
		s.endDecl()
	case tok.Kind == RBrace:
		table.ExitScope()
		s.endDecl()
	case tok.Kind == Semicolon:
		s.endDecl()
	}
}

func (s *Scanner) endDecl() {
	s.declType = ""
	s.expectDecl = false
}

// skipTrivia advances past whitespace and comments.
func (s *Scanner) skipTrivia() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case unicode.IsSpace(c):
			s.advance(1)
		case s.hasPrefix("//"):
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.advance(1)
			}
		case s.hasPrefix("/*"):
			line, col := s.line, s.col
			s.advance(2)
			for !s.hasPrefix("*/") {
				if s.pos >= len(s.src) {
					s.report(line, col, msgUnterminatedComment)
					return
				}
				s.advance(1)
			}
			s.advance(2)
		default:
			return
		}
	}
}

func (s *Scanner) hasPrefix(p string) bool {
	i := s.pos
	for _, c := range p {
		if i >= len(s.src) || s.src[i] != c {
			return false
		}
		i++
	}
	return true
}

// advance moves n runes forward, keeping line and column current.
func (s *Scanner) advance(n int) {
	for ; n > 0 && s.pos < len(s.src); n-- {
		if s.src[s.pos] == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
		s.pos++
	}
}

func (s *Scanner) report(line, col int, msg string) {
	d := Diagnostic{Line: line, Column: col, Msg: msg}
	s.result.Diagnostics = append(s.result.Diagnostics, d)
	s.result.Tokens = append(s.result.Tokens, Token{Kind: Error, Lexeme: msg, Line: line, Column: col})
	s.log.Debug("diagnostic", "line", line, "col", col, "msg", msg)
}
