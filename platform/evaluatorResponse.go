package platform

import "github.com/robbyt/go-exprscript/platform/data"

// EvaluatorResponse is the result of one evaluation.
type EvaluatorResponse interface {
	// Type of the value.
	Type() data.Types

	// Inspect returns a string representation of the value in surface syntax.
	Inspect() string

	// Interface converts the value to a native Go value (int64, bool or nil).
	Interface() any

	// GetScriptExeID returns the ID of the script that generated the value.
	GetScriptExeID() string

	// GetExecTime returns the time it took to execute the script
	GetExecTime() string
}
