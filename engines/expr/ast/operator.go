package ast

import "strconv"

// Operator identifies a binary operator. The zero value is not a valid
// operator.
type Operator uint8

const (
	Plus Operator = iota + 1
	Minus
	Times
	Divide
	And
	Or
	GreaterThan
	GreaterOrEqual
	LessThan
	LessOrEqual
	Equal
	NotEqual
)

var operatorNames = [...]string{
	Plus:           "Plus",
	Minus:          "Minus",
	Times:          "Times",
	Divide:         "Divide",
	And:            "And",
	Or:             "Or",
	GreaterThan:    "GreaterThan",
	GreaterOrEqual: "GreaterOrEqual",
	LessThan:       "LessThan",
	LessOrEqual:    "LessOrEqual",
	Equal:          "Equal",
	NotEqual:       "NotEqual",
}

var operatorSymbols = [...]string{
	Plus:           "+",
	Minus:          "-",
	Times:          "*",
	Divide:         "/",
	And:            "&&",
	Or:             "||",
	GreaterThan:    ">",
	GreaterOrEqual: ">=",
	LessThan:       "<",
	LessOrEqual:    "<=",
	Equal:          "==",
	NotEqual:       "!=",
}

// Operators lists every valid operator in declaration order.
func Operators() []Operator {
	ops := make([]Operator, 0, len(operatorNames)-1)
	for op := Plus; op <= NotEqual; op++ {
		ops = append(ops, op)
	}
	return ops
}

// Valid reports whether op is one of the declared operators.
func (op Operator) Valid() bool {
	return op >= Plus && op <= NotEqual
}

// String returns the operator name, e.g. "Plus".
func (op Operator) String() string {
	if !op.Valid() {
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
	return operatorNames[op]
}

// Symbol returns the concrete spelling, e.g. "+".
func (op Operator) Symbol() string {
	if !op.Valid() {
		return "?"
	}
	return operatorSymbols[op]
}

// LookupSymbol resolves a concrete operator spelling.
func LookupSymbol(sym string) (Operator, bool) {
	for op := Plus; op <= NotEqual; op++ {
		if operatorSymbols[op] == sym {
			return op, true
		}
	}
	return 0, false
}
