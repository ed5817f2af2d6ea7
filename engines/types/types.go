// Package types names the script engines the platform can host.
package types

// Type is a script engine identifier.
type Type string

const (
	// Expr is the integer/boolean expression language engine.
	Expr Type = "expr"
)

// String returns the engine name.
func (t Type) String() string {
	return string(t)
}
