package data

import (
	"context"
	"errors"
	"fmt"
	"maps"
)

// CompositeProvider combines multiple providers and merges their results.
// Later providers in the chain override values from earlier providers.
type CompositeProvider struct {
	providers []Provider
}

// NewCompositeProvider creates a new CompositeProvider with the given providers.
// The providers will be queried in the order they are provided.
func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{
		providers: providers,
	}
}

// GetData calls each provider in sequence and merges the results.
func (p *CompositeProvider) GetData(ctx context.Context) (map[string]any, error) {
	result := make(map[string]any)

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		data, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("error from provider %d: %w", i, err)
		}

		maps.Copy(result, data)
	}

	return result, nil
}

// AddDataToContext distributes data to all providers in the chain.
// StaticProvider refusals are ignored as long as another provider accepted
// the data; the call fails only when no provider could store it.
//
// Example:
//
//	staticProvider := NewStaticProvider(map[string]any{"limit": 10})
//	contextProvider := NewContextProvider(constants.EvalData)
//	composite := NewCompositeProvider(staticProvider, contextProvider)
//	ctx, err := composite.AddDataToContext(ctx, map[string]any{"x": 3})
func (p *CompositeProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	finalCtx := ctx

	var errs []error
	var staticErrs []error
	successCount := 0
	dynamicCount := 0

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		_, isStaticProvider := provider.(*StaticProvider)
		if !isStaticProvider {
			dynamicCount++
		}

		nextCtx, err := provider.AddDataToContext(finalCtx, data...)
		if err != nil {
			if isStaticProvider && errors.Is(err, ErrStaticProviderNoRuntimeUpdates) {
				staticErrs = append(staticErrs, fmt.Errorf("error from provider %d: %w", i, err))
				continue
			}
			errs = append(errs, fmt.Errorf("error from provider %d: %w", i, err))
			continue
		}

		finalCtx = nextCtx
		successCount++
	}

	if dynamicCount == 0 && len(staticErrs) > 0 {
		return ctx, errors.Join(staticErrs...)
	}

	if successCount == 0 && len(errs) > 0 {
		return ctx, errors.Join(errs...)
	}

	return finalCtx, nil
}
