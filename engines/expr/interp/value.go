package interp

import (
	"fmt"
	"strconv"
)

// Kind is the tag of a runtime Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindBool:
		return "Bool"
	case KindNull:
		return "Null"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a runtime value: an Int, a Bool or Null. The zero Value is Null.
// Values are small and compared with ==.
type Value struct {
	kind Kind
	i    int64
	b    bool
}

// Int returns an Int value.
func Int(n int64) Value {
	return Value{kind: KindInt, i: n}
}

// Bool returns a Bool value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Null returns the unit value produced by empty sequences and let bindings.
func Null() Value {
	return Value{kind: KindNull}
}

func (v Value) Kind() Kind {
	return v.kind
}

// AsInt returns the payload of an Int value.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsBool returns the payload of a Bool value.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Equal reports whether v and other have the same tag and payload.
func (v Value) Equal(other Value) bool {
	return v == other
}

// Interface converts v to a native Go value: int64, bool, or nil for Null.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// String renders v in the language's surface syntax.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	default:
		return "Null"
	}
}

// GoString renders v with its tag, e.g. Int(3).
func (v Value) GoString() string {
	switch v.kind {
	case KindInt:
		return "Int(" + strconv.FormatInt(v.i, 10) + ")"
	case KindBool:
		return "Bool(" + strconv.FormatBool(v.b) + ")"
	default:
		return "Null"
	}
}
