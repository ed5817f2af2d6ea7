package evaluator

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robbyt/go-exprscript/engines/expr/interp"
)

// FunctionalOption is a function that configures an Evaluator instance
type FunctionalOption func(*Evaluator) error

// WithStrategy selects the tree walking implementation. The default is
// interp.Recursive.
func WithStrategy(s interp.Strategy) FunctionalOption {
	return func(e *Evaluator) error {
		if s != interp.Recursive && s != interp.Iterative {
			return fmt.Errorf("unknown evaluation strategy: %s", s)
		}
		e.strategy = s
		return nil
	}
}

// WithLogHandler replaces the handler given to New.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(e *Evaluator) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		e.logHandler = handler
		return nil
	}
}

// WithMetrics records evaluation counts and durations on reg.
func WithMetrics(reg prometheus.Registerer) FunctionalOption {
	return func(e *Evaluator) error {
		if reg == nil {
			return fmt.Errorf("metrics registerer cannot be nil")
		}
		m, err := NewMetrics(reg)
		if err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		e.metrics = m
		return nil
	}
}
