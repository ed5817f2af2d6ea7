package interp

import (
	"errors"
	"fmt"

	"github.com/robbyt/go-exprscript/engines/expr/ast"
)

// ErrorKind classifies an *Error. The kinds form a closed set. An ErrorKind
// is itself an error so callers can write errors.Is(err, UndeclaredVariable).
type ErrorKind uint8

const (
	// ParseFailure: the source text could not be parsed.
	ParseFailure ErrorKind = iota + 1
	// MalformedBoolean: boolean-like text that is not True or False.
	MalformedBoolean
	// UnknownOperator: operator-like text with no operator tag.
	UnknownOperator
	// OperatorTypeMismatch: the operator does not apply to the operand kind.
	OperatorTypeMismatch
	// ValueTypeMismatch: the two operands have different kinds.
	ValueTypeMismatch
	// UnexpectedValueKind: a value of the wrong kind where a specific kind is required.
	UnexpectedValueKind
	// UndeclaredVariable: a reference to a name with no binding.
	UndeclaredVariable
	// DivisionByZero: integer division with a zero divisor.
	DivisionByZero
)

var kindNames = [...]string{
	ParseFailure:         "ParseFailure",
	MalformedBoolean:     "MalformedBoolean",
	UnknownOperator:      "UnknownOperator",
	OperatorTypeMismatch: "OperatorTypeMismatch",
	ValueTypeMismatch:    "ValueTypeMismatch",
	UnexpectedValueKind:  "UnexpectedValueKind",
	UndeclaredVariable:   "UndeclaredVariable",
	DivisionByZero:       "DivisionByZero",
}

func (k ErrorKind) String() string {
	if k == 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
	return kindNames[k]
}

func (k ErrorKind) Error() string {
	return k.String()
}

// Error is the failure arm of every evaluation. Which fields are set depends
// on Kind:
//
//	ParseFailure          Text = source text
//	MalformedBoolean      Text = raw text
//	UnknownOperator       Text = raw text
//	OperatorTypeMismatch  Text = operand kind name, Op
//	ValueTypeMismatch     Left, Right
//	UnexpectedValueKind   Left = actual value, Text = expected kind name
//	UndeclaredVariable    Text = name
//	DivisionByZero        Left = dividend
//
// Detail optionally locates a parse failure within the source.
type Error struct {
	Kind   ErrorKind
	Text   string
	Op     ast.Operator
	Left   Value
	Right  Value
	Detail string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ParseFailure:
		if e.Detail != "" {
			return fmt.Sprintf("error in parsing instruction: %s (%s)", e.Text, e.Detail)
		}
		return fmt.Sprintf("error in parsing instruction: %s", e.Text)
	case MalformedBoolean:
		return fmt.Sprintf("wrong boolean form: %s", e.Text)
	case UnknownOperator:
		return fmt.Sprintf("unknown operator, got %s", e.Text)
	case OperatorTypeMismatch:
		return fmt.Sprintf("unapplicable operator for %s: %s", e.Text, e.Op)
	case ValueTypeMismatch:
		return fmt.Sprintf(
			"operands should have the same type, got %#v and %#v", e.Left, e.Right)
	case UnexpectedValueKind:
		return fmt.Sprintf("expected %s, got %#v", e.Text, e.Left)
	case UndeclaredVariable:
		return fmt.Sprintf("unknown var: %s", e.Text)
	case DivisionByZero:
		return fmt.Sprintf("division by zero: %#v / 0", e.Left)
	default:
		return e.Kind.String()
	}
}

// Is matches an ErrorKind target against e.Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

func NewParseFailure(source string) *Error {
	return &Error{Kind: ParseFailure, Text: source}
}

func NewMalformedBoolean(raw string) *Error {
	return &Error{Kind: MalformedBoolean, Text: raw}
}

func NewUnknownOperator(raw string) *Error {
	return &Error{Kind: UnknownOperator, Text: raw}
}

func NewOperatorTypeMismatch(kindName string, op ast.Operator) *Error {
	return &Error{Kind: OperatorTypeMismatch, Text: kindName, Op: op}
}

func NewValueTypeMismatch(left, right Value) *Error {
	return &Error{Kind: ValueTypeMismatch, Left: left, Right: right}
}

func NewUnexpectedValueKind(actual Value, expected string) *Error {
	return &Error{Kind: UnexpectedValueKind, Left: actual, Text: expected}
}

func NewUndeclaredVariable(name string) *Error {
	return &Error{Kind: UndeclaredVariable, Text: name}
}

func NewDivisionByZero(dividend Value) *Error {
	return &Error{Kind: DivisionByZero, Left: dividend}
}

// KindOf returns the ErrorKind carried by err, or 0 when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
