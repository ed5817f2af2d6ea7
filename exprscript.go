// Package exprscript evaluates programs in a small expression language with
// integers, booleans, variables and conditionals.
//
// A program is compiled once and evaluated any number of times, each run
// starting from bindings supplied by a data provider:
//
//	eval, err := exprscript.FromExprString("if n > 0 { n * 2 } else { 0 }")
//	ctx, err := eval.AddDataToContext(context.Background(), map[string]any{"n": 21})
//	resp, err := eval.Eval(ctx) // resp.Interface() == int64(42)
package exprscript

import (
	"fmt"

	"github.com/robbyt/go-exprscript/engines/expr"
	"github.com/robbyt/go-exprscript/engines/expr/compiler"
	"github.com/robbyt/go-exprscript/engines/expr/evaluator"
	"github.com/robbyt/go-exprscript/engines/expr/interp"
	"github.com/robbyt/go-exprscript/engines/expr/parser"
	"github.com/robbyt/go-exprscript/options"
	"github.com/robbyt/go-exprscript/platform/data"
	"github.com/robbyt/go-exprscript/platform/script"
	"github.com/robbyt/go-exprscript/platform/script/loader"
)

// NewExprEvaluator creates an evaluator from options. A loader is required.
func NewExprEvaluator(opts ...options.Option) (*EvaluatorWrapper, error) {
	cfg := options.DefaultConfig()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return createEvaluator(cfg)
}

func createEvaluator(cfg *options.Config) (*EvaluatorWrapper, error) {
	compOpts := []compiler.FunctionalOption{compiler.WithEmptyProgram()}
	if h := cfg.GetHandler(); h != nil {
		compOpts = append(compOpts, compiler.WithLogHandler(h))
	}
	comp, err := expr.NewCompiler(compOpts...)
	if err != nil {
		return nil, err
	}

	execUnitID := ""
	if sourceURL := cfg.GetLoader().GetSourceURL(); sourceURL != nil {
		execUnitID = sourceURL.String()
	}

	execUnit, err := script.NewExecutableUnit(
		cfg.GetHandler(),
		execUnitID,
		cfg.GetLoader(),
		comp,
		cfg.GetDataProvider(),
	)
	if err != nil {
		return nil, err
	}

	evalOpts := []evaluator.FunctionalOption{evaluator.WithStrategy(cfg.GetStrategy())}
	if reg := cfg.GetRegisterer(); reg != nil {
		evalOpts = append(evalOpts, evaluator.WithMetrics(reg))
	}
	delegate, err := evaluator.New(cfg.GetHandler(), execUnit, evalOpts...)
	if err != nil {
		return nil, err
	}

	return NewEvaluatorWrapper(delegate, execUnit), nil
}

// FromExprString creates an evaluator from source text
func FromExprString(content string, opts ...options.Option) (*EvaluatorWrapper, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}

	allOpts := append([]options.Option{options.WithLoader(l)}, opts...)
	return NewExprEvaluator(allOpts...)
}

// FromExprStringWithData creates an evaluator whose runs start from
// staticData. Runtime data added with AddDataToContext overrides it.
func FromExprStringWithData(
	content string,
	staticData map[string]any,
	opts ...options.Option,
) (*EvaluatorWrapper, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}

	provider := data.NewCompositeProvider(
		data.NewStaticProvider(staticData),
		options.DefaultDataProvider(),
	)
	allOpts := append(
		[]options.Option{options.WithLoader(l), options.WithDataProvider(provider)},
		opts...,
	)
	return NewExprEvaluator(allOpts...)
}

// FromExprFile creates an evaluator from a script file. The path must be
// absolute, or a file:// URL.
func FromExprFile(filePath string, opts ...options.Option) (*EvaluatorWrapper, error) {
	l, err := loader.NewFromDisk(filePath)
	if err != nil {
		return nil, err
	}

	allOpts := append([]options.Option{options.WithLoader(l)}, opts...)
	return NewExprEvaluator(allOpts...)
}

// Eval parses and runs source from an empty environment. Errors are
// *interp.Error values; use errors.Is with an interp.ErrorKind to classify.
func Eval(source string) (interp.Value, error) {
	nodes, err := parser.Parse(source)
	if err != nil {
		return interp.Value{}, err
	}
	return interp.Run(nodes)
}
