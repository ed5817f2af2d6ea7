// Package evaluator runs compiled expr programs on the platform.
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-exprscript/engines/expr/ast"
	"github.com/robbyt/go-exprscript/engines/expr/internal"
	"github.com/robbyt/go-exprscript/engines/expr/interp"
	"github.com/robbyt/go-exprscript/internal/helpers"
	"github.com/robbyt/go-exprscript/platform"
	"github.com/robbyt/go-exprscript/platform/data"
	"github.com/robbyt/go-exprscript/platform/script"
)

// Evaluator evaluates an executable unit holding an expr program. The data
// provider of the unit supplies the initial bindings of every run.
type Evaluator struct {
	// execUnit contains the compiled script and data provider
	execUnit *script.ExecutableUnit
	strategy interp.Strategy
	metrics  *Metrics

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new Evaluator object
func New(
	handler slog.Handler,
	execUnit *script.ExecutableUnit,
	opts ...FunctionalOption,
) (*Evaluator, error) {
	e := &Evaluator{
		execUnit:   execUnit,
		strategy:   interp.Recursive,
		logHandler: handler,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("error applying evaluator option: %w", err)
		}
	}
	e.logHandler, e.logger = helpers.SetupLogger(e.logHandler, "expr", "Evaluator")
	return e, nil
}

func (be *Evaluator) String() string {
	return "expr.Evaluator"
}

// loadInputData retrieves input data using the data provider in the executable unit.
func (be *Evaluator) loadInputData(ctx context.Context) (map[string]any, error) {
	logger := be.logger.WithGroup("loadInputData")

	if be.execUnit.GetDataProvider() == nil {
		logger.DebugContext(ctx, "no data provider available, using empty data")
		return make(map[string]any), nil
	}

	inputData, err := be.execUnit.GetDataProvider().GetData(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get input data from provider", "error", err)
		return nil, err
	}

	logger.DebugContext(ctx, "input data loaded from provider", "inputData", inputData)
	return inputData, nil
}

// exec folds the program over env with the configured strategy.
func (be *Evaluator) exec(
	ctx context.Context,
	program []ast.Node,
	env interp.Env,
) (*execResult, error) {
	logger := be.logger.WithGroup("exec")
	startTime := time.Now()

	val, out, err := interp.RunWithEnv(be.strategy, program, env)
	execTime := time.Since(startTime)
	be.metrics.observe(be.strategy, execTime, err)

	if err != nil {
		logger.DebugContext(ctx, "evaluation failed", "error", err, "kind", interp.KindOf(err))
		return nil, err
	}

	return newEvalResult(be.logHandler, val, out, execTime, be.execUnit.GetID()), nil
}

// Eval evaluates the loaded program with the bindings supplied by the data
// provider. Evaluation errors are returned as *interp.Error values.
func (be *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	logger := be.logger.WithGroup("Eval")
	if be.execUnit == nil {
		return nil, fmt.Errorf("executable unit is nil")
	}

	if be.execUnit.GetContent() == nil {
		return nil, fmt.Errorf("content is nil")
	}

	bytecode := be.execUnit.GetContent().GetByteCode()
	if bytecode == nil {
		return nil, fmt.Errorf("bytecode is nil")
	}

	exeID := be.execUnit.GetID()
	if exeID == "" {
		return nil, fmt.Errorf("exeID is empty")
	}
	logger = logger.With("exeID", exeID)

	// 1. Type assert to the parsed program
	program, ok := bytecode.([]ast.Node)
	if !ok {
		return nil, fmt.Errorf("invalid bytecode type: expected []ast.Node, got %T", bytecode)
	}

	// 2. Evaluation is not interruptible once started
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluation not started: %w", err)
	}

	// 3. Get the raw input data
	rawInputData, err := be.loadInputData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get input data: %w", err)
	}

	// 4. Convert input data to initial bindings
	env, err := internal.ConvertToEnv(rawInputData)
	if err != nil {
		return nil, fmt.Errorf("failed to convert input data: %w", err)
	}

	// 5. Run the program
	result, err := be.exec(ctx, program, env)
	if err != nil {
		return nil, err
	}
	logger.DebugContext(ctx, "exec complete", "result", result)
	return result, nil
}

// AddDataToContext implements the data.Setter interface which stores and prepares runtime data
// which can be eventually passed to the Eval method.
func (be *Evaluator) AddDataToContext(
	ctx context.Context,
	d ...map[string]any,
) (context.Context, error) {
	logger := be.logger.WithGroup("AddDataToContext")

	if be.execUnit == nil || be.execUnit.GetDataProvider() == nil {
		return ctx, fmt.Errorf("no data provider available")
	}

	return data.AddDataToContextHelper(
		ctx,
		logger,
		be.execUnit.GetDataProvider(),
		d...,
	)
}
