package compiler

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/robbyt/go-exprscript/engines/expr/ast"
	"github.com/robbyt/go-exprscript/engines/expr/interp"
	machineTypes "github.com/robbyt/go-exprscript/engines/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockScriptReaderCloser implements io.ReadCloser for testing
type mockScriptReaderCloser struct {
	*mock.Mock
	content string
	offset  int
}

func newMockScriptReaderCloser(content string) *mockScriptReaderCloser {
	return &mockScriptReaderCloser{
		Mock:    &mock.Mock{},
		content: content,
	}
}

func (m *mockScriptReaderCloser) Read(p []byte) (n int, err error) {
	if m.offset >= len(m.content) {
		return 0, io.EOF
	}
	n = copy(p, m.content[m.offset:])
	m.offset += n
	return n, nil
}

func (m *mockScriptReaderCloser) Close() error {
	args := m.Called()
	return args.Error(0)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }
func (failingReader) Close() error             { return nil }

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("basic creation", func(t *testing.T) {
		comp, err := New(WithLogHandler(slogt.New(t).Handler()))
		require.NoError(t, err)
		require.NotNil(t, comp)
		assert.Equal(t, "expr.Compiler", comp.String())
	})

	t.Run("with logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		comp, err := New(WithLogger(logger))
		require.NoError(t, err)
		assert.Same(t, logger, comp.logger)
		assert.Equal(t, logger.Handler(), comp.logHandler)
	})

	t.Run("defaults", func(t *testing.T) {
		comp, err := New()
		require.NoError(t, err)
		require.NotNil(t, comp.logger)
		assert.False(t, comp.allowEmpty)
	})

	t.Run("nil handler", func(t *testing.T) {
		_, err := New(WithLogHandler(nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log handler cannot be nil")
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := New(WithLogger(nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logger cannot be nil")
	})
}

func TestCompiler_Compile(t *testing.T) {
	t.Parallel()

	t.Run("success cases", func(t *testing.T) {
		tests := []struct {
			name       string
			script     string
			statements int
		}{
			{name: "literal", script: "3", statements: 1},
			{name: "arithmetic", script: "(5*4)-(60/3)", statements: 1},
			{name: "let and use", script: "let x = 2\nx * 3", statements: 2},
			{name: "semicolons", script: "let a = 1; let b = 2; a + b", statements: 3},
			{
				name: "conditional with comment",
				script: `
# choose a branch
let limit = 10
if limit > 5 { True } else { False }
`,
				statements: 2,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				comp, err := New(WithLogHandler(slogt.New(t).Handler()))
				require.NoError(t, err)

				reader := newMockScriptReaderCloser(tt.script)
				reader.On("Close").Return(nil)

				content, err := comp.Compile(reader)
				require.NoError(t, err)
				require.NotNil(t, content)
				reader.AssertExpectations(t)

				assert.Equal(t, tt.script, content.GetSource())
				assert.Equal(t, machineTypes.Expr, content.GetMachineType())

				program, ok := content.GetByteCode().([]ast.Node)
				require.True(t, ok, "bytecode should be []ast.Node")
				assert.Len(t, program, tt.statements)
			})
		}
	})

	t.Run("error cases", func(t *testing.T) {
		tests := []struct {
			name     string
			script   string
			sentinel error
			kind     interp.ErrorKind
		}{
			{name: "empty", script: "", sentinel: ErrContentNil},
			{name: "whitespace", script: " \n\t", sentinel: ErrContentNil},
			{name: "comments only", script: "# nothing\n", sentinel: ErrNoStatements},
			{
				name:     "unbalanced paren",
				script:   "(2))",
				sentinel: ErrValidationFailed,
				kind:     interp.ParseFailure,
			},
			{
				name:     "misspelled boolean",
				script:   "true && False",
				sentinel: ErrValidationFailed,
				kind:     interp.MalformedBoolean,
			},
			{
				name:     "unknown operator",
				script:   "2 ** 3",
				sentinel: ErrValidationFailed,
				kind:     interp.UnknownOperator,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				comp, err := New(WithLogHandler(slogt.New(t).Handler()))
				require.NoError(t, err)

				reader := newMockScriptReaderCloser(tt.script)
				reader.On("Close").Return(nil)

				content, err := comp.Compile(reader)
				require.Error(t, err)
				assert.Nil(t, content)
				require.ErrorIs(t, err, tt.sentinel)
				if tt.kind != 0 {
					require.ErrorIs(t, err, tt.kind)
					assert.Equal(t, tt.kind, interp.KindOf(err))
				}
			})
		}
	})

	t.Run("empty program allowed", func(t *testing.T) {
		comp, err := New(WithLogHandler(slogt.New(t).Handler()), WithEmptyProgram())
		require.NoError(t, err)

		reader := newMockScriptReaderCloser("# only a comment")
		reader.On("Close").Return(nil)

		content, err := comp.Compile(reader)
		require.NoError(t, err)
		assert.Empty(t, content.GetByteCode())
	})

	t.Run("nil reader", func(t *testing.T) {
		comp, err := New()
		require.NoError(t, err)
		_, err = comp.Compile(nil)
		require.ErrorIs(t, err, ErrContentNil)
	})

	t.Run("read error", func(t *testing.T) {
		comp, err := New()
		require.NoError(t, err)
		_, err = comp.Compile(failingReader{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read script")
	})

	t.Run("close error", func(t *testing.T) {
		comp, err := New(WithLogHandler(slogt.New(t).Handler()))
		require.NoError(t, err)

		reader := newMockScriptReaderCloser("1 + 1")
		reader.On("Close").Return(errors.New("close failed"))

		_, err = comp.Compile(reader)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to close reader")
	})
}

func TestExecutable(t *testing.T) {
	t.Parallel()

	t.Run("nil content", func(t *testing.T) {
		assert.Nil(t, newExecutable(nil, nil))
	})

	t.Run("getters", func(t *testing.T) {
		program := []ast.Node{ast.IntLiteral{Value: 3}}
		exe := newExecutable([]byte("3"), program)
		require.NotNil(t, exe)
		assert.Equal(t, "3", exe.GetSource())
		assert.Equal(t, program, exe.GetAST())
		assert.Equal(t, program, exe.GetByteCode())
		assert.Equal(t, machineTypes.Expr, exe.GetMachineType())
	})
}
