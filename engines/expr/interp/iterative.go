package interp

import (
	"fmt"
	"strings"

	"github.com/robbyt/go-exprscript/engines/expr/ast"
)

// task is one pending evaluation on the explicit stack. step records how far
// the node has progressed: which operand is being computed, or for sequences
// whether a child has completed. index is the next sequence child.
type task struct {
	node  ast.Node
	env   Env
	step  int
	index int
	left  Value
}

// EvaluateIterative has the same contract as Evaluate but keeps pending work
// on a heap-allocated stack instead of the goroutine stack, so arbitrarily
// deep trees do not grow the call stack.
func EvaluateIterative(node ast.Node, env Env) (Value, Env, error) {
	var (
		val Value
		out = env
	)
	stack := []task{{node: node, env: env}}

	push := func(n ast.Node, e Env) {
		stack = append(stack, task{node: n, env: e})
	}
	pop := func() {
		stack[len(stack)-1] = task{}
		stack = stack[:len(stack)-1]
	}

	for len(stack) > 0 {
		t := &stack[len(stack)-1]

		switch n := t.node.(type) {
		case ast.IntLiteral:
			val, out = Int(n.Value), t.env
			pop()

		case ast.BoolLiteral:
			val, out = Bool(n.Value), t.env
			pop()

		case ast.Var:
			v, ok := t.env.Lookup(n.Name)
			if !ok {
				return Value{}, env, NewUndeclaredVariable(strings.TrimSpace(n.Name))
			}
			val, out = v, t.env
			pop()

		case ast.Let:
			if t.step == 0 {
				t.step = 1
				push(n.Value, t.env)
				continue
			}
			val, out = Null(), t.env.Bind(n.Name, val)
			pop()

		case ast.BinaryExpr:
			switch t.step {
			case 0:
				t.step = 1
				push(n.Left, t.env)
			case 1:
				t.left = val
				t.step = 2
				push(n.Right, t.env)
			default:
				res, err := ApplyOperator(n.Op, t.left, val)
				if err != nil {
					return Value{}, env, err
				}
				val, out = res, t.env
				pop()
			}

		case ast.If:
			if t.step == 0 {
				t.step = 1
				push(n.Cond, t.env)
				continue
			}
			ok, isBool := val.AsBool()
			if !isBool {
				return Value{}, env, NewUnexpectedValueKind(val, KindBool.String())
			}
			branch := n.Else
			if ok {
				branch = n.Then
			}
			// The chosen branch replaces the conditional on the stack.
			*t = task{node: branch, env: out}

		case ast.Sequence:
			if t.step == 1 {
				t.env = out
			}
			if t.index == len(n.Nodes) {
				if len(n.Nodes) == 0 {
					val = Null()
				}
				out = t.env
				pop()
				continue
			}
			child := n.Nodes[t.index]
			t.index++
			t.step = 1
			push(child, t.env)

		default:
			return Value{}, env, fmt.Errorf("%T unsupported node type", t.node)
		}
	}

	return val, out, nil
}
