package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	EOF rune = -(iota + 1)
	EOL
	Invalid
	BadBool
	BadChar
	Ident
	Keyword
	Number
	Boolean
	Lparen
	Rparen
	Lbrace
	Rbrace
	Assign
	And
	Or
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	Add
	Sub
	Mul
	Div
)

var keywords = map[string]struct{}{
	"let":  {},
	"if":   {},
	"else": {},
}

// operators maps every accepted operator spelling to its token type. The
// scanner reads the longest run of operator characters and looks it up here.
var operators = map[string]rune{
	"=":  Assign,
	"&&": And,
	"||": Or,
	"==": Eq,
	"!=": Ne,
	"<":  Lt,
	"<=": Le,
	">":  Gt,
	">=": Ge,
	"+":  Add,
	"-":  Sub,
	"*":  Mul,
	"/":  Div,
}

const operatorChars = "+-*/<>=!&|^%~?"

// Position is a 1-based line and column in the source.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a lexical unit. Invalid tokens carry operator-like text with no
// operator behind it, BadBool tokens carry a misspelled boolean, and BadChar
// tokens carry a character the language does not use at all.
type Token struct {
	Literal string
	Type    rune
	Position
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "<eof>"
	case EOL:
		return "<eol>"
	default:
		return fmt.Sprintf("%q", t.Literal)
	}
}

// Scanner splits source text into tokens. Whitespace other than newlines is
// insignificant; newlines and semicolons both produce EOL tokens; a '#'
// comments out the rest of the line.
type Scanner struct {
	input string
	pos   int
	Position
}

func Scan(input string) *Scanner {
	return &Scanner{
		input:    input,
		Position: Position{Line: 1, Column: 1},
	}
}

func (s *Scanner) Scan() Token {
	s.skipBlank()

	tok := Token{Position: s.Position}
	char := s.peek()

	switch {
	case s.done():
		tok.Type = EOF
	case char == '#':
		s.skipComment()
		return s.Scan()
	case char == '\n' || char == ';':
		tok.Literal = string(char)
		tok.Type = EOL
		s.read()
	case isDigit(char):
		tok.Literal = s.readWhile(isDigit)
		tok.Type = Number
	case isLetter(char):
		s.scanIdent(&tok)
	case strings.ContainsRune(operatorChars, char):
		s.scanOperator(&tok)
	default:
		s.scanDelimiter(&tok, char)
	}
	return tok
}

func (s *Scanner) scanIdent(tok *Token) {
	tok.Literal = s.readWhile(func(r rune) bool {
		return isLetter(r) || isDigit(r)
	})
	switch {
	case tok.Literal == "True" || tok.Literal == "False":
		tok.Type = Boolean
	case strings.EqualFold(tok.Literal, "true") || strings.EqualFold(tok.Literal, "false"):
		tok.Type = BadBool
	default:
		if _, ok := keywords[tok.Literal]; ok {
			tok.Type = Keyword
		} else {
			tok.Type = Ident
		}
	}
}

func (s *Scanner) scanOperator(tok *Token) {
	start, startPos := s.pos, s.Position
	run := s.readWhile(func(r rune) bool {
		return strings.ContainsRune(operatorChars, r)
	})
	if kind, ok := operators[run]; ok {
		tok.Literal, tok.Type = run, kind
		return
	}
	// A known operator directly followed by minus signs, as in 4*-3 or
	// x=--1: give the trailing '-' run back so each minus is scanned as its
	// own token.
	for prefix, ok := strings.CutSuffix(run, "-"); ok; prefix, ok = strings.CutSuffix(prefix, "-") {
		if kind, known := operators[prefix]; known {
			s.pos, s.Position = start, startPos
			s.readN(len(prefix))
			tok.Literal, tok.Type = prefix, kind
			return
		}
	}
	tok.Literal, tok.Type = run, Invalid
}

func (s *Scanner) scanDelimiter(tok *Token, char rune) {
	tok.Literal = string(char)
	switch char {
	case '(':
		tok.Type = Lparen
	case ')':
		tok.Type = Rparen
	case '{':
		tok.Type = Lbrace
	case '}':
		tok.Type = Rbrace
	default:
		tok.Type = BadChar
	}
	s.read()
}

func (s *Scanner) skipBlank() {
	s.readWhile(func(r rune) bool {
		return r != '\n' && unicode.IsSpace(r)
	})
}

func (s *Scanner) skipComment() {
	s.readWhile(func(r rune) bool {
		return r != '\n'
	})
}

func (s *Scanner) readWhile(accept func(rune) bool) string {
	start := s.pos
	for !s.done() && accept(s.peek()) {
		s.read()
	}
	return s.input[start:s.pos]
}

func (s *Scanner) readN(n int) {
	for end := s.pos + n; s.pos < end && !s.done(); {
		s.read()
	}
}

func (s *Scanner) peek() rune {
	if s.done() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
	return r
}

func (s *Scanner) read() {
	r, n := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += n
	if r == '\n' {
		s.Line++
		s.Column = 1
	} else {
		s.Column++
	}
}

func (s *Scanner) done() bool {
	return s.pos >= len(s.input)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// IsIdentifier reports whether name scans as a single variable name, so that
// a binding under it can be referenced from source.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	tok := Scan(name).Scan()
	return tok.Type == Ident && tok.Literal == name
}
