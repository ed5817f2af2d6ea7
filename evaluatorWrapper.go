package exprscript

import (
	"context"

	"github.com/robbyt/go-exprscript/platform"
	"github.com/robbyt/go-exprscript/platform/script"
)

// EvaluatorWrapper wraps the engine evaluator and stores the ExecutableUnit.
// This allows callers to follow the "compile once, run many times" pattern.
type EvaluatorWrapper struct {
	delegate platform.Evaluator
	execUnit *script.ExecutableUnit
}

// NewEvaluatorWrapper creates a new evaluator wrapper
func NewEvaluatorWrapper(
	delegate platform.Evaluator,
	execUnit *script.ExecutableUnit,
) *EvaluatorWrapper {
	return &EvaluatorWrapper{
		delegate: delegate,
		execUnit: execUnit,
	}
}

// Eval delegates to the wrapped evaluator
func (e *EvaluatorWrapper) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	return e.delegate.Eval(ctx)
}

// AddDataToContext stores runtime bindings for the next Eval with the returned context
func (e *EvaluatorWrapper) AddDataToContext(
	ctx context.Context,
	d ...map[string]any,
) (context.Context, error) {
	return e.delegate.AddDataToContext(ctx, d...)
}

// GetExecutableUnit returns the stored ExecutableUnit
func (e *EvaluatorWrapper) GetExecutableUnit() *script.ExecutableUnit {
	return e.execUnit
}
