package options

import (
	"log/slog"
	"os"

	"github.com/robbyt/go-exprscript/engines/expr/interp"
	"github.com/robbyt/go-exprscript/platform/constants"
	"github.com/robbyt/go-exprscript/platform/data"
)

// DefaultConfig initializes a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		handler:      DefaultHandler(),
		dataProvider: DefaultDataProvider(),
		strategy:     interp.Recursive,
	}
}

// DefaultHandler returns the default logging handler, warnings and above to stderr
func DefaultHandler() slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
}

// DefaultDataProvider returns the default data provider, which reads
// runtime data stored under constants.EvalData
func DefaultDataProvider() data.Provider {
	return data.NewContextProvider(constants.EvalData)
}

// WithDefaults applies default values to any config properties that are nil
func WithDefaults() Option {
	return func(c *Config) error {
		if c.handler == nil {
			c.handler = DefaultHandler()
		}
		if c.dataProvider == nil {
			c.dataProvider = DefaultDataProvider()
		}
		return nil
	}
}
