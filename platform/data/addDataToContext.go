package data

import (
	"context"
	"fmt"
	"log/slog"
)

// AddDataToContextHelper stores each map in d as variable bindings through
// provider and returns the enriched context. On failure the original ctx is
// returned with the provider error wrapped. Every engine evaluator's
// AddDataToContext delegates here.
func AddDataToContextHelper(
	ctx context.Context,
	logger *slog.Logger,
	provider Provider,
	d ...map[string]any,
) (context.Context, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if provider == nil {
		logger.WarnContext(ctx, "no data provider available for context preparation")
		return ctx, fmt.Errorf("no data provider available")
	}

	enrichedCtx, err := provider.AddDataToContext(ctx, d...)
	if err != nil {
		return ctx, fmt.Errorf("failed to prepare context: %w", err)
	}

	return enrichedCtx, nil
}
