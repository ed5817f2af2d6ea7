// Package interp evaluates expr syntax trees.
//
// Evaluation threads an Env explicitly: every call receives the environment
// to read from and returns the environment its successors should see. There
// is no other state, so Evaluate is a pure function of its two arguments.
//
// Bindings are not block scoped. A let inside an if branch or a nested
// sequence stays visible for the rest of the program.
package interp

import (
	"fmt"
	"strings"

	"github.com/robbyt/go-exprscript/engines/expr/ast"
)

// Evaluate computes the value of node against env and returns the
// environment that results from it. Only Let changes the environment;
// sequences and conditionals pass changes made by their children along.
func Evaluate(node ast.Node, env Env) (Value, Env, error) {
	switch n := node.(type) {
	case ast.IntLiteral:
		return Int(n.Value), env, nil
	case ast.BoolLiteral:
		return Bool(n.Value), env, nil
	case ast.Sequence:
		return evalSequence(n, env)
	case ast.BinaryExpr:
		return evalBinary(n, env)
	case ast.If:
		return evalIf(n, env)
	case ast.Let:
		return evalLet(n, env)
	case ast.Var:
		return evalVar(n, env)
	default:
		// Only reachable with a nil node, the variant set is sealed.
		return Value{}, env, fmt.Errorf("%T unsupported node type", node)
	}
}

func evalSequence(s ast.Sequence, env Env) (Value, Env, error) {
	res := Null()
	for _, child := range s.Nodes {
		var err error
		res, env, err = Evaluate(child, env)
		if err != nil {
			return Value{}, env, err
		}
	}
	return res, env, nil
}

func evalBinary(b ast.BinaryExpr, env Env) (Value, Env, error) {
	left, _, err := Evaluate(b.Left, env)
	if err != nil {
		return Value{}, env, err
	}
	right, _, err := Evaluate(b.Right, env)
	if err != nil {
		return Value{}, env, err
	}
	res, err := ApplyOperator(b.Op, left, right)
	return res, env, err
}

func evalIf(i ast.If, env Env) (Value, Env, error) {
	cond, env, err := Evaluate(i.Cond, env)
	if err != nil {
		return Value{}, env, err
	}
	ok, isBool := cond.AsBool()
	if !isBool {
		return Value{}, env, NewUnexpectedValueKind(cond, KindBool.String())
	}
	if ok {
		return Evaluate(i.Then, env)
	}
	return Evaluate(i.Else, env)
}

func evalLet(l ast.Let, env Env) (Value, Env, error) {
	v, _, err := Evaluate(l.Value, env)
	if err != nil {
		return Value{}, env, err
	}
	return Null(), env.Bind(l.Name, v), nil
}

func evalVar(v ast.Var, env Env) (Value, Env, error) {
	res, ok := env.Lookup(v.Name)
	if !ok {
		return Value{}, env, NewUndeclaredVariable(strings.TrimSpace(v.Name))
	}
	return res, env, nil
}
