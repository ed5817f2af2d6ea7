package data

import (
	"context"
	"errors"
	"maps"
)

// ErrStaticProviderNoRuntimeUpdates is returned when runtime data is added to a StaticProvider.
var ErrStaticProviderNoRuntimeUpdates = errors.New("static provider does not accept runtime updates")

// StaticProvider is a simple provider that returns a predefined map of data.
// It is useful for constants known at compile time that every run should see.
type StaticProvider struct {
	data map[string]any
}

// NewStaticProvider creates a new StaticProvider with the provided data map
func NewStaticProvider(data map[string]any) *StaticProvider {
	if data == nil {
		data = make(map[string]any)
	}
	return &StaticProvider{
		data: maps.Clone(data),
	}
}

// GetData returns a clone of the static data map regardless of the context.
func (p *StaticProvider) GetData(_ context.Context) (map[string]any, error) {
	return maps.Clone(p.data), nil
}

// AddDataToContext always fails: static data is fixed at creation time.
func (p *StaticProvider) AddDataToContext(
	ctx context.Context,
	_ ...map[string]any,
) (context.Context, error) {
	return ctx, ErrStaticProviderNoRuntimeUpdates
}
