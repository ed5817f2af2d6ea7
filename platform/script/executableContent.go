package script

import (
	machineTypes "github.com/robbyt/go-exprscript/engines/types"
)

// ExecutableContent represents validated script content that is ready for execution.
// It provides access to the script's source code and its compiled form.
// For the expr engine ([`compiler.Executable`](../../engines/expr/compiler/executable.go))
// the compiled form is the parsed syntax tree.
type ExecutableContent interface {
	// GetSource returns the original script content as a string.
	GetSource() string

	// GetByteCode returns the compiled form of the script in an engine-specific format.
	// This object is asserted into the type the target engine requires. If the
	// target engine is unable to assert it into the correct type, it will return
	// an error at runtime, so the engine type and ByteCode must be compatible.
	GetByteCode() any

	// GetMachineType returns the engine type this script is intended to run on.
	GetMachineType() machineTypes.Type
}
