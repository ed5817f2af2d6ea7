// Package parser turns expr source text into syntax trees.
//
// Failures are reported as *interp.Error values so that parse and
// evaluation errors travel through the same channel: ParseFailure for text
// that does not form a program, MalformedBoolean for misspelled booleans and
// UnknownOperator for operator-like text the language does not define.
package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/robbyt/go-exprscript/engines/expr/ast"
	"github.com/robbyt/go-exprscript/engines/expr/interp"
)

const (
	powLowest int = iota
	powOr
	powAnd
	powEqual
	powCompare
	powAdd
	powMul
	powPrefix
)

var bindings = map[rune]int{
	Or:  powOr,
	And: powAnd,
	Eq:  powEqual,
	Ne:  powEqual,
	Lt:  powCompare,
	Le:  powCompare,
	Gt:  powCompare,
	Ge:  powCompare,
	Add: powAdd,
	Sub: powAdd,
	Mul: powMul,
	Div: powMul,
}

var binaryOps = map[rune]ast.Operator{
	Or:  ast.Or,
	And: ast.And,
	Eq:  ast.Equal,
	Ne:  ast.NotEqual,
	Lt:  ast.LessThan,
	Le:  ast.LessOrEqual,
	Gt:  ast.GreaterThan,
	Ge:  ast.GreaterOrEqual,
	Add: ast.Plus,
	Sub: ast.Minus,
	Mul: ast.Times,
	Div: ast.Divide,
}

// Parse parses a whole program into its top-level nodes.
func Parse(source string) ([]ast.Node, error) {
	return NewParser(source).Parse()
}

// ParseReader reads r to the end and parses its content.
func ParseReader(r io.Reader) ([]ast.Node, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	return Parse(string(b))
}

type Parser struct {
	source string

	scan *Scanner
	curr Token
	peek Token

	// parens counts the open parentheses around the current position.
	// Newlines inside them do not end an expression.
	parens int

	keywords map[string]func() (ast.Node, error)
	prefix   map[rune]func() (ast.Node, error)
	infix    map[rune]func(ast.Node) (ast.Node, error)
}

func NewParser(source string) *Parser {
	p := Parser{
		source:   source,
		scan:     Scan(source),
		keywords: make(map[string]func() (ast.Node, error)),
		prefix:   make(map[rune]func() (ast.Node, error)),
		infix:    make(map[rune]func(ast.Node) (ast.Node, error)),
	}
	for kind := range binaryOps {
		p.registerInfix(kind, p.parseBinary)
	}

	p.registerPrefix(Number, p.parseNumber)
	p.registerPrefix(Boolean, p.parseBool)
	p.registerPrefix(Ident, p.parseIdentifier)
	p.registerPrefix(Lparen, p.parseGroup)
	p.registerPrefix(Lbrace, p.parseBlock)
	p.registerPrefix(Sub, p.parseNegative)
	p.registerPrefix(Keyword, p.parseKeyword)

	p.registerKeyword("let", p.parseLet)
	p.registerKeyword("if", p.parseIf)

	p.next()
	p.next()
	return &p
}

// Parse consumes the whole input. Statements are separated by newlines or
// semicolons; blank statements are ignored.
func (p *Parser) Parse() ([]ast.Node, error) {
	var list []ast.Node
	p.skip(EOL)
	for !p.done() {
		n, err := p.parseExpression(powLowest)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
		if err := p.endStatement(EOF); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (p *Parser) parseExpression(pow int) (ast.Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		if p.parens > 0 {
			p.skip(EOL)
		}
		if p.done() || pow >= bindings[p.curr.Type] {
			break
		}
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parsePrefix() (ast.Node, error) {
	fn, ok := p.prefix[p.curr.Type]
	if !ok {
		return nil, p.unexpected()
	}
	return fn()
}

func (p *Parser) parseInfix(left ast.Node) (ast.Node, error) {
	fn, ok := p.infix[p.curr.Type]
	if !ok {
		return nil, p.unexpected()
	}
	return fn(left)
}

func (p *Parser) parseBinary(left ast.Node) (ast.Node, error) {
	kind := p.curr.Type
	b := ast.BinaryExpr{
		Op:   binaryOps[kind],
		Left: left,
	}
	p.next()
	p.skip(EOL)
	right, err := p.parseExpression(bindings[kind])
	if err != nil {
		return nil, err
	}
	b.Right = right
	return b, nil
}

func (p *Parser) parseNumber() (ast.Node, error) {
	n, err := strconv.ParseInt(p.curr.Literal, 10, 64)
	if err != nil {
		return nil, p.failure("integer literal out of range: %s", p.curr.Literal)
	}
	p.next()
	return ast.IntLiteral{Value: n}, nil
}

// parseNegative handles a leading minus. A minus in front of a number folds
// into the literal, so the most negative int64 can be written; anything else
// becomes 0 - operand.
func (p *Parser) parseNegative() (ast.Node, error) {
	p.next()
	if p.is(Number) {
		n, err := strconv.ParseInt("-"+p.curr.Literal, 10, 64)
		if err != nil {
			return nil, p.failure("integer literal out of range: -%s", p.curr.Literal)
		}
		p.next()
		return ast.IntLiteral{Value: n}, nil
	}
	operand, err := p.parseExpression(powPrefix)
	if err != nil {
		return nil, err
	}
	return ast.BinaryExpr{Op: ast.Minus, Left: ast.IntLiteral{}, Right: operand}, nil
}

func (p *Parser) parseBool() (ast.Node, error) {
	b := ast.BoolLiteral{Value: p.curr.Literal == "True"}
	p.next()
	return b, nil
}

func (p *Parser) parseIdentifier() (ast.Node, error) {
	v := ast.Var{Name: p.curr.Literal}
	p.next()
	return v, nil
}

func (p *Parser) parseGroup() (ast.Node, error) {
	p.next()
	p.skip(EOL)
	p.parens++
	n, err := p.parseExpression(powLowest)
	p.parens--
	if err != nil {
		return nil, err
	}
	p.skip(EOL)
	if err := p.expect(Rparen); err != nil {
		return nil, err
	}
	return n, nil
}

// parseBlock parses { stmt; stmt }. A block with a single statement is that
// statement; otherwise it is a Sequence, possibly empty. Newlines separate
// statements inside a block even when the block sits within parentheses.
func (p *Parser) parseBlock() (ast.Node, error) {
	if err := p.expect(Lbrace); err != nil {
		return nil, err
	}
	parens := p.parens
	p.parens = 0
	defer func() { p.parens = parens }()
	var seq ast.Sequence
	p.skip(EOL)
	for !p.is(Rbrace) {
		if p.done() {
			return nil, p.unexpected()
		}
		n, err := p.parseExpression(powLowest)
		if err != nil {
			return nil, err
		}
		seq.Nodes = append(seq.Nodes, n)
		if err := p.endStatement(Rbrace); err != nil {
			return nil, err
		}
	}
	p.next()
	if len(seq.Nodes) == 1 {
		return seq.Nodes[0], nil
	}
	return seq, nil
}

func (p *Parser) parseKeyword() (ast.Node, error) {
	fn, ok := p.keywords[p.curr.Literal]
	if !ok {
		return nil, p.unexpected()
	}
	return fn()
}

func (p *Parser) parseLet() (ast.Node, error) {
	p.next()
	if !p.is(Ident) {
		return nil, p.unexpected()
	}
	let := ast.Let{Name: p.curr.Literal}
	p.next()
	if err := p.expect(Assign); err != nil {
		return nil, err
	}
	p.skip(EOL)
	value, err := p.parseExpression(powLowest)
	if err != nil {
		return nil, err
	}
	let.Value = value
	return let, nil
}

func (p *Parser) parseIf() (ast.Node, error) {
	p.next()
	var (
		expr ast.If
		err  error
	)
	if expr.Cond, err = p.parseExpression(powLowest); err != nil {
		return nil, err
	}
	p.skip(EOL)
	if expr.Then, err = p.parseBlock(); err != nil {
		return nil, err
	}
	p.skip(EOL)
	if !p.isKeyword("else") {
		if p.done() {
			return nil, p.unexpected()
		}
		return nil, p.failure("if expression requires an else branch, got %s", p.curr)
	}
	p.next()
	p.skip(EOL)
	if p.isKeyword("if") {
		expr.Else, err = p.parseIf()
	} else {
		expr.Else, err = p.parseBlock()
	}
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// endStatement accepts the separator after a statement: one or more EOL
// tokens, the end of input, or the closing token of the enclosing block.
func (p *Parser) endStatement(closing rune) error {
	switch {
	case p.is(EOL):
		p.skip(EOL)
		return nil
	case p.done(), p.is(closing):
		return nil
	default:
		return p.unexpected()
	}
}

// unexpected reports the current token. Lexical errors keep their own kind.
func (p *Parser) unexpected() error {
	switch p.curr.Type {
	case Invalid:
		return interp.NewUnknownOperator(p.curr.Literal)
	case BadBool:
		return interp.NewMalformedBoolean(p.curr.Literal)
	case EOF:
		return p.failure("unexpected end of input")
	default:
		return p.failure("unexpected token %s", p.curr)
	}
}

func (p *Parser) failure(format string, args ...any) error {
	e := interp.NewParseFailure(strings.TrimSpace(p.source))
	e.Detail = fmt.Sprintf("%s: %s", p.curr.Position, fmt.Sprintf(format, args...))
	return e
}

func (p *Parser) expect(kind rune) error {
	if !p.is(kind) {
		return p.unexpected()
	}
	p.next()
	return nil
}

func (p *Parser) registerInfix(kind rune, fn func(ast.Node) (ast.Node, error)) {
	p.infix[kind] = fn
}

func (p *Parser) registerPrefix(kind rune, fn func() (ast.Node, error)) {
	p.prefix[kind] = fn
}

func (p *Parser) registerKeyword(kw string, fn func() (ast.Node, error)) {
	p.keywords[kw] = fn
}

func (p *Parser) skip(kind rune) {
	for p.is(kind) {
		p.next()
	}
}

func (p *Parser) is(kind rune) bool {
	return p.curr.Type == kind
}

func (p *Parser) isKeyword(kw string) bool {
	return p.curr.Type == Keyword && p.curr.Literal == kw
}

func (p *Parser) done() bool {
	return p.is(EOF)
}

func (p *Parser) next() {
	p.curr = p.peek
	p.peek = p.scan.Scan()
}
