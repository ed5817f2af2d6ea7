// Package ast defines the syntax tree consumed by the expr evaluator.
//
// Nodes are plain values. Once built by the parser they are never modified,
// so a tree can be evaluated any number of times and shared between
// evaluations without copying.
package ast

import (
	"strconv"
	"strings"
)

// Node is a closed set of syntax tree variants. The unexported marker method
// keeps other packages from adding variants, so a type switch over the types
// below is exhaustive.
type Node interface {
	node()
	String() string
}

// IntLiteral is an integer constant.
type IntLiteral struct {
	Value int64
}

// BoolLiteral is a boolean constant, spelled True or False.
type BoolLiteral struct {
	Value bool
}

// BinaryExpr applies Op to the values of Left and Right.
type BinaryExpr struct {
	Op    Operator
	Left  Node
	Right Node
}

// If evaluates Cond and then exactly one of Then or Else.
type If struct {
	Cond Node
	Then Node
	Else Node
}

// Let binds Name to the value of Value in the ambient environment. It has no
// body: the binding stays visible to every node evaluated after it.
type Let struct {
	Name  string
	Value Node
}

// Var references a bound name.
type Var struct {
	Name string
}

// Sequence evaluates Nodes in order; its value is the value of the last one.
type Sequence struct {
	Nodes []Node
}

func (IntLiteral) node()  {}
func (BoolLiteral) node() {}
func (BinaryExpr) node()  {}
func (If) node()          {}
func (Let) node()         {}
func (Var) node()         {}
func (Sequence) node()    {}

func (n IntLiteral) String() string {
	return strconv.FormatInt(n.Value, 10)
}

func (n BoolLiteral) String() string {
	if n.Value {
		return "True"
	}
	return "False"
}

func (n BinaryExpr) String() string {
	return "(" + n.Left.String() + " " + n.Op.Symbol() + " " + n.Right.String() + ")"
}

func (n If) String() string {
	return "if " + n.Cond.String() + " { " + n.Then.String() + " } else { " + n.Else.String() + " }"
}

func (n Let) String() string {
	return "let " + strings.TrimSpace(n.Name) + " = " + n.Value.String()
}

func (n Var) String() string {
	return strings.TrimSpace(n.Name)
}

func (n Sequence) String() string {
	parts := make([]string, len(n.Nodes))
	for i, child := range n.Nodes {
		parts[i] = child.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}
