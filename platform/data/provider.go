package data

import (
	"context"
)

// Getter defines the interface for retrieving data from a context.
type Getter interface {
	GetData(ctx context.Context) (map[string]any, error)
}

// Setter prepares data for script evaluation by enriching a context.
// This interface supports separating data preparation from evaluation, enabling
// architectures where these steps happen in different places.
type Setter interface {
	// AddDataToContext enriches a context with data for script evaluation.
	// It stores the data in the context using the ExecutableUnit's DataProvider.
	//
	// Each key becomes a variable binding when the script runs, so values must be
	// integers, booleans or nil.
	//
	// Example:
	//  enrichedCtx, err := evaluator.AddDataToContext(ctx, map[string]any{"limit": 10})
	//  if err != nil {
	//      return err
	//  }
	//  result, err := evaluator.Eval(enrichedCtx)
	AddDataToContext(ctx context.Context, data ...map[string]any) (context.Context, error)
}

// Provider defines the interface for accessing runtime data for script execution.
type Provider interface {
	// Getter retrieves associated data from a context during script eval.
	Getter

	// Setter enriches a context with a link to data, allowing the script
	// to access it using the ExecutableUnit's DataProvider.
	Setter
}
