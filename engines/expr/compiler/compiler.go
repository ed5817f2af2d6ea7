// Package compiler validates expr source and turns it into an Executable
// holding the parsed program.
package compiler

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-exprscript/engines/expr/parser"
	"github.com/robbyt/go-exprscript/platform/script"
)

// Compiler implements script.Compiler for the expr language.
type Compiler struct {
	allowEmpty bool
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new expr Compiler instance with the provided options.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{}
	c.applyDefaults()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid compiler configuration: %w", err)
	}

	c.setupLogger()
	return c, nil
}

func (c *Compiler) String() string {
	return "expr.Compiler"
}

// Compile reads the whole script, closes the reader and parses the content.
// Parse errors are wrapped with ErrValidationFailed and keep their
// *interp.Error form for errors.As.
func (c *Compiler) Compile(scriptReader io.ReadCloser) (script.ExecutableContent, error) {
	if scriptReader == nil {
		return nil, ErrContentNil
	}

	scriptBodyBytes, err := io.ReadAll(scriptReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	err = scriptReader.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to close reader: %w", err)
	}

	return c.compile(scriptBodyBytes)
}

func (c *Compiler) compile(scriptBodyBytes []byte) (*Executable, error) {
	logger := c.logger.WithGroup("compile")
	if len(bytes.TrimSpace(scriptBodyBytes)) == 0 {
		logger.Error("Compile called with empty script")
		return nil, ErrContentNil
	}

	logger.Debug("Starting validation")

	program, err := parser.Parse(string(scriptBodyBytes))
	if err != nil {
		logger.Warn("Parsing failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if len(program) == 0 && !c.allowEmpty {
		logger.Warn("Script contains no statements")
		return nil, ErrNoStatements
	}

	logger.Debug("Validation completed", "statements", len(program))
	return newExecutable(scriptBodyBytes, program), nil
}
