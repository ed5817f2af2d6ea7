package platform

import (
	"context"

	"github.com/robbyt/go-exprscript/platform/data"
)

// EvalOnly runs a parsed expr program.
type EvalOnly interface {
	// Eval runs the program once. The bindings it starts from come from the
	// ExecutableUnit's DataProvider, read out of ctx; a program that refers to
	// a name nobody supplied fails with an UndeclaredVariable error. The
	// returned response holds an Int, Bool or Null value.
	Eval(ctx context.Context) (EvaluatorResponse, error)
}

// Evaluator is an EvalOnly that can also stage bindings into a context, so
// a caller can prepare the per-run variables in one place and run in another.
type Evaluator interface {
	EvalOnly
	data.Setter
}
