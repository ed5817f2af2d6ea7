package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger creates a logger for an engine component.
// If the provided handler is nil, a text handler writing to stderr is used, so
// that logging never mixes with results a CLI prints on stdout.
//
// Parameters:
//   - handler: The slog.Handler to use, or nil for defaults
//   - engineName: The name of the engine or platform package (e.g., "expr", "script")
//   - groupName: Optional additional group name within the engine
//
// Returns:
//   - The configured handler
//   - A logger created from the handler
func SetupLogger(handler slog.Handler, engineName string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}).
			WithGroup(engineName)
		slog.New(handler).Debug("Handler is nil, using the default logger configuration.")
	}

	if groupName != "" {
		return handler, slog.New(handler.WithGroup(groupName))
	}
	return handler, slog.New(handler)
}
