package interp

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// Env is a flat, insertion-ordered set of variable bindings. It is
// persistent: Bind returns a new Env and leaves the receiver untouched, so an
// Env can be handed to an evaluation and reused afterwards without aliasing.
// The zero Env is empty and ready to use.
type Env struct {
	vars *orderedmap.OrderedMap[string, Value]
}

// NewEnv returns an empty environment.
func NewEnv() Env {
	return Env{}
}

// Lookup returns the value bound to name. Surrounding whitespace in name is
// ignored.
func (e Env) Lookup(name string) (Value, bool) {
	if e.vars == nil {
		return Value{}, false
	}
	return e.vars.Get(strings.TrimSpace(name))
}

// Bind returns a copy of e with name bound to v. A previous binding for the
// same name is overwritten in place, keeping its original position.
func (e Env) Bind(name string, v Value) Env {
	next := orderedmap.NewOrderedMap[string, Value]()
	if e.vars != nil {
		for el := e.vars.Front(); el != nil; el = el.Next() {
			next.Set(el.Key, el.Value)
		}
	}
	next.Set(strings.TrimSpace(name), v)
	return Env{vars: next}
}

// Len returns the number of bindings.
func (e Env) Len() int {
	if e.vars == nil {
		return 0
	}
	return e.vars.Len()
}

// Names returns the bound names in insertion order.
func (e Env) Names() []string {
	names := make([]string, 0, e.Len())
	e.Each(func(name string, _ Value) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Each calls fn for every binding in insertion order until fn returns false.
func (e Env) Each(fn func(name string, v Value) bool) {
	if e.vars == nil {
		return
	}
	for el := e.vars.Front(); el != nil; el = el.Next() {
		if !fn(el.Key, el.Value) {
			return
		}
	}
}

func (e Env) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	e.Each(func(name string, v Value) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(v.GoString())
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
