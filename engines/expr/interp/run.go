package interp

import (
	"fmt"

	"github.com/robbyt/go-exprscript/engines/expr/ast"
)

// Strategy selects the evaluator implementation used by a run.
type Strategy uint8

const (
	// Recursive walks the tree on the goroutine stack.
	Recursive Strategy = iota
	// Iterative walks the tree with an explicit stack.
	Iterative
)

func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy resolves a strategy name as returned by Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "recursive", "":
		return Recursive, nil
	case "iterative":
		return Iterative, nil
	default:
		return 0, fmt.Errorf("unknown evaluation strategy: %q", name)
	}
}

// Evaluator returns the evaluation function implementing s.
func (s Strategy) Evaluator() func(ast.Node, Env) (Value, Env, error) {
	if s == Iterative {
		return EvaluateIterative
	}
	return Evaluate
}

// Run evaluates a program, the list of top-level nodes produced by the
// parser, starting from an empty environment. It returns the value of the
// last node, Null for an empty program, or the first error encountered.
func Run(nodes []ast.Node) (Value, error) {
	v, _, err := RunWithEnv(Recursive, nodes, NewEnv())
	return v, err
}

// RunIterative is Run on the explicit-stack evaluator.
func RunIterative(nodes []ast.Node) (Value, error) {
	v, _, err := RunWithEnv(Iterative, nodes, NewEnv())
	return v, err
}

// RunWithEnv folds the nodes starting from env, so a caller can continue a
// previous program (an interactive session) or start from seeded bindings.
// On failure the returned environment is env unchanged.
func RunWithEnv(s Strategy, nodes []ast.Node, env Env) (Value, Env, error) {
	eval := s.Evaluator()
	res := Null()
	cur := env
	for _, node := range nodes {
		var err error
		res, cur, err = eval(node, cur)
		if err != nil {
			return Value{}, env, err
		}
	}
	return res, cur, nil
}
