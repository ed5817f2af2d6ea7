package compiler

import (
	"github.com/robbyt/go-exprscript/engines/expr/ast"
	machineTypes "github.com/robbyt/go-exprscript/engines/types"
)

// Executable is a parsed expr program together with its source.
type Executable struct {
	scriptBodyBytes []byte
	program         []ast.Node
}

func newExecutable(scriptBodyBytes []byte, program []ast.Node) *Executable {
	if len(scriptBodyBytes) == 0 {
		return nil
	}

	return &Executable{
		scriptBodyBytes: scriptBodyBytes,
		program:         program,
	}
}

func (e *Executable) GetSource() string {
	return string(e.scriptBodyBytes)
}

// GetByteCode returns the program as a []ast.Node.
func (e *Executable) GetByteCode() any {
	return e.program
}

// GetAST returns the top-level nodes of the program.
func (e *Executable) GetAST() []ast.Node {
	return e.program
}

func (e *Executable) GetMachineType() machineTypes.Type {
	return machineTypes.Expr
}
