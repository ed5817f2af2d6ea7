// Package options configures evaluators created by the exprscript package.
package options

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robbyt/go-exprscript/engines/expr/interp"
	"github.com/robbyt/go-exprscript/platform/data"
	"github.com/robbyt/go-exprscript/platform/script/loader"
)

// Config holds all configuration for creating an expr evaluator
type Config struct {
	handler      slog.Handler
	dataProvider data.Provider
	loader       loader.Loader
	strategy     interp.Strategy
	registerer   prometheus.Registerer
}

// Option is a function that modifies Config
type Option func(*Config) error

// WithLogHandler sets the log handler for the compiler and evaluator
func WithLogHandler(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		c.handler = handler
		return nil
	}
}

// WithDataProvider sets the provider of the initial bindings
func WithDataProvider(provider data.Provider) Option {
	return func(c *Config) error {
		if provider == nil {
			return fmt.Errorf("data provider cannot be nil")
		}
		c.dataProvider = provider
		return nil
	}
}

// WithLoader sets the script loader
func WithLoader(l loader.Loader) Option {
	return func(c *Config) error {
		if l == nil {
			return fmt.Errorf("loader cannot be nil")
		}
		c.loader = l
		return nil
	}
}

// WithStrategy selects the evaluator implementation
func WithStrategy(s interp.Strategy) Option {
	return func(c *Config) error {
		c.strategy = s
		return nil
	}
}

// WithMetrics registers evaluation metrics on reg
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Config) error {
		c.registerer = reg
		return nil
	}
}

// Validate performs basic validation on the configuration
func (c *Config) Validate() error {
	if c.loader == nil {
		return fmt.Errorf("no loader specified")
	}
	if c.dataProvider == nil {
		return fmt.Errorf("no data provider specified")
	}
	return nil
}

// GetHandler returns the configured log handler
func (c *Config) GetHandler() slog.Handler {
	return c.handler
}

// GetDataProvider returns the configured data provider
func (c *Config) GetDataProvider() data.Provider {
	return c.dataProvider
}

// GetLoader returns the configured loader
func (c *Config) GetLoader() loader.Loader {
	return c.loader
}

// GetStrategy returns the configured evaluation strategy
func (c *Config) GetStrategy() interp.Strategy {
	return c.strategy
}

// GetRegisterer returns the metrics registerer, nil when metrics are off
func (c *Config) GetRegisterer() prometheus.Registerer {
	return c.registerer
}
