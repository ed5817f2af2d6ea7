package data

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Bindings shared by the provider tests; expr inputs are ints, bools and nil.
var (
	simpleData = map[string]any{
		"limit":   10,
		"enabled": true,
	}

	overrideData = map[string]any{
		"limit": 20,
		"unset": nil,
	}
)

// MockProvider is a testify mock implementation of Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetData(ctx context.Context) (map[string]any, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).(map[string]any)
	return d, args.Error(1)
}

func (m *MockProvider) AddDataToContext(
	ctx context.Context,
	d ...map[string]any,
) (context.Context, error) {
	args := m.Called(ctx, d)
	newCtx, _ := args.Get(0).(context.Context)
	if newCtx == nil {
		newCtx = ctx
	}
	return newCtx, args.Error(1)
}
