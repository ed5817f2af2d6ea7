// Package expr wires the expr language into the platform: parsing through
// compiler, evaluation through evaluator.
package expr

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-exprscript/engines/expr/compiler"
	"github.com/robbyt/go-exprscript/engines/expr/evaluator"
	"github.com/robbyt/go-exprscript/platform/constants"
	"github.com/robbyt/go-exprscript/platform/data"
	"github.com/robbyt/go-exprscript/platform/script"
	"github.com/robbyt/go-exprscript/platform/script/loader"
)

// FromExprLoader creates an expr evaluator from a loader with dynamic data only (ContextProvider)
//
// Input parameters:
// - logHandler: logger handler for logging
// - ldr: loader implementation for loading the expr script content
// - opts: evaluator options such as evaluator.WithStrategy
//
// Returns an evaluator, which implements the platform.Evaluator interface.
func FromExprLoader(
	logHandler slog.Handler,
	ldr loader.Loader,
	opts ...evaluator.FunctionalOption,
) (*evaluator.Evaluator, error) {
	return NewEvaluator(
		logHandler,
		ldr,
		data.NewContextProvider(constants.EvalData),
		opts...,
	)
}

// FromExprLoaderWithData creates an expr evaluator with both static and dynamic data capabilities.
// Static data becomes the initial bindings of every run; data added with AddDataToContext
// overrides it for that context.
//
// Input parameters:
// - logHandler: logger handler for logging
// - ldr: loader implementation for loading the expr script content
// - staticData: map of initial bindings passed to every run
// - opts: evaluator options
func FromExprLoaderWithData(
	logHandler slog.Handler,
	ldr loader.Loader,
	staticData map[string]any,
	opts ...evaluator.FunctionalOption,
) (*evaluator.Evaluator, error) {
	staticProvider := data.NewStaticProvider(staticData)
	dynamicProvider := data.NewContextProvider(constants.EvalData)
	compositeProvider := data.NewCompositeProvider(staticProvider, dynamicProvider)

	return NewEvaluator(
		logHandler,
		ldr,
		compositeProvider,
		opts...,
	)
}

// NewCompiler creates a new expr compiler using the functional options pattern.
// Returns a compiler implementing the script.Compiler interface.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// NewEvaluator parses the script provided by ldr and returns an evaluator ready
// for execution.
func NewEvaluator(
	logHandler slog.Handler,
	ldr loader.Loader,
	dataProvider data.Provider,
	opts ...evaluator.FunctionalOption,
) (*evaluator.Evaluator, error) {
	if ldr == nil {
		return nil, fmt.Errorf("loader is nil")
	}
	if dataProvider == nil {
		return nil, fmt.Errorf("provider is nil")
	}

	compilerOpts := []compiler.FunctionalOption{}
	if logHandler != nil {
		compilerOpts = append(compilerOpts, compiler.WithLogHandler(logHandler))
	}
	comp, err := NewCompiler(compilerOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create expr compiler: %w", err)
	}

	execUnitID := ""
	sourceURL := ldr.GetSourceURL()
	if sourceURL != nil {
		execUnitID = sourceURL.String()
	}

	// Create executable unit (to compile and prepare the script)
	execUnit, err := script.NewExecutableUnit(
		logHandler,
		execUnitID,
		ldr,
		comp,
		dataProvider,
	)
	if err != nil {
		return nil, err
	}

	return evaluator.New(logHandler, execUnit, opts...)
}
