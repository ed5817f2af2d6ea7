package data

import (
	"context"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/robbyt/go-exprscript/platform/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddDataToContextHelper(t *testing.T) {
	t.Parallel()

	t.Run("stores data", func(t *testing.T) {
		t.Parallel()
		p := NewContextProvider(constants.EvalData)
		ctx, err := AddDataToContextHelper(context.Background(), slogt.New(t), p, simpleData)
		require.NoError(t, err)

		got, err := p.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, simpleData, got)
	})

	t.Run("nil provider", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		newCtx, err := AddDataToContextHelper(ctx, nil, nil, simpleData)
		require.Error(t, err)
		assert.Equal(t, ctx, newCtx)
	})

	t.Run("provider error keeps context", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		failing := new(MockProvider)
		failing.On("AddDataToContext", ctx, mock.Anything).
			Return(context.WithValue(ctx, constants.EvalData, "ignored"), assert.AnError)

		newCtx, err := AddDataToContextHelper(ctx, slogt.New(t), failing, simpleData)
		require.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to prepare context")
		assert.Equal(t, ctx, newCtx)
		failing.AssertExpectations(t)
	})
}
