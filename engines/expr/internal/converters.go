// Package internal converts host data into expr bindings.
package internal

import (
	"fmt"
	"slices"

	"github.com/ccoveille/go-safecast"
	"github.com/robbyt/go-exprscript/engines/expr/interp"
	"github.com/robbyt/go-exprscript/engines/expr/parser"
)

// ConvertToEnv builds the initial environment of an evaluation from
// provider data. Names are bound in sorted order so that Env.Names is the
// same for equal inputs.
//
// For example, {"limit": 10, "debug": true} becomes the bindings
// debug = True and limit = 10.
func ConvertToEnv(inputData map[string]any) (interp.Env, error) {
	env := interp.NewEnv()
	names := make([]string, 0, len(inputData))
	for name := range inputData {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if !parser.IsIdentifier(name) {
			return interp.Env{}, fmt.Errorf("invalid variable name: %q", name)
		}
		v, err := ConvertToValue(inputData[name])
		if err != nil {
			return interp.Env{}, fmt.Errorf("variable %s: %w", name, err)
		}
		env = env.Bind(name, v)
	}
	return env, nil
}

// ConvertToValue converts one Go value. Integers of every width become Int,
// failing when an unsigned value does not fit into int64. bool becomes Bool
// and nil becomes Null. Other types are rejected.
func ConvertToValue(v any) (interp.Value, error) {
	switch t := v.(type) {
	case nil:
		return interp.Null(), nil
	case interp.Value:
		return t, nil
	case bool:
		return interp.Bool(t), nil
	case int:
		return interp.Int(int64(t)), nil
	case int8:
		return interp.Int(int64(t)), nil
	case int16:
		return interp.Int(int64(t)), nil
	case int32:
		return interp.Int(int64(t)), nil
	case int64:
		return interp.Int(t), nil
	case uint:
		return toInt(t)
	case uint8:
		return toInt(t)
	case uint16:
		return toInt(t)
	case uint32:
		return toInt(t)
	case uint64:
		return toInt(t)
	default:
		return interp.Value{}, fmt.Errorf("unsupported value type %T", v)
	}
}

func toInt[T uint | uint8 | uint16 | uint32 | uint64](v T) (interp.Value, error) {
	n, err := safecast.ToInt64(v)
	if err != nil {
		return interp.Value{}, err
	}
	return interp.Int(n), nil
}

// ConvertFromEnv returns the bindings of env as native Go values.
func ConvertFromEnv(env interp.Env) map[string]any {
	out := make(map[string]any, env.Len())
	env.Each(func(name string, v interp.Value) bool {
		out[name] = v.Interface()
		return true
	})
	return out
}
