package evaluator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-exprscript/engines/expr/interp"
	"github.com/robbyt/go-exprscript/internal/helpers"
	"github.com/robbyt/go-exprscript/platform/data"
)

// execResult wraps the value produced by one evaluation.
type execResult struct {
	interp.Value
	env         interp.Env
	execTime    time.Duration
	scriptExeID string
	logger      *slog.Logger
}

func newEvalResult(
	handler slog.Handler,
	val interp.Value,
	env interp.Env,
	execTime time.Duration,
	versionID string,
) *execResult {
	_, logger := helpers.SetupLogger(handler, "expr", "execResult")
	return &execResult{
		Value:       val,
		env:         env,
		execTime:    execTime,
		scriptExeID: versionID,
		logger:      logger,
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"execResult{Type: %s, Value: %s, ExecTime: %s, ScriptExeID: %s}",
		r.Type(), r.Value, r.GetExecTime(), r.GetScriptExeID())
}

func (r *execResult) Type() data.Types {
	switch r.Kind() {
	case interp.KindInt:
		return data.INT
	case interp.KindBool:
		return data.BOOL
	case interp.KindNull:
		return data.NONE
	default:
		r.logger.Error("Unknown value kind", "kind", r.Kind())
		return data.ERROR
	}
}

func (r *execResult) Inspect() string {
	return r.Value.String()
}

// Interface returns the Go native form of the value: int64, bool or nil.
func (r *execResult) Interface() any {
	return r.Value.Interface()
}

// Env returns the bindings in effect after the program finished.
func (r *execResult) Env() interp.Env {
	return r.env
}

func (r *execResult) GetScriptExeID() string {
	return r.scriptExeID
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}
