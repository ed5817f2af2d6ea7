package interp

import (
	"math/rand/v2"
	"testing"

	"github.com/robbyt/go-exprscript/engines/expr/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []Strategy{Recursive, Iterative}

func lit(n int64) ast.Node { return ast.IntLiteral{Value: n} }

func boolean(b bool) ast.Node { return ast.BoolLiteral{Value: b} }

func ref(name string) ast.Node { return ast.Var{Name: name} }

func let(name string, v ast.Node) ast.Node { return ast.Let{Name: name, Value: v} }

func bin(op ast.Operator, l, r ast.Node) ast.Node {
	return ast.BinaryExpr{Op: op, Left: l, Right: r}
}

func seq(nodes ...ast.Node) ast.Node { return ast.Sequence{Nodes: nodes} }

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		node     ast.Node
		env      Env
		expected Value
		names    []string
	}{
		{name: "int literal", node: lit(42), expected: Int(42)},
		{name: "bool literal", node: boolean(false), expected: Bool(false)},
		{name: "empty sequence", node: seq(), expected: Null()},
		{name: "let yields null", node: let("x", lit(1)), expected: Null(), names: []string{"x"}},
		{
			name:     "let persists",
			node:     seq(let("x", lit(5)), ref("x")),
			expected: Int(5),
			names:    []string{"x"},
		},
		{
			name:     "let overwrite",
			node:     seq(let("x", lit(1)), let("x", lit(2)), ref("x")),
			expected: Int(2),
			names:    []string{"x"},
		},
		{
			name:     "let reads previous binding",
			node:     seq(let("x", lit(1)), let("x", bin(ast.Plus, ref("x"), lit(1))), ref("x")),
			expected: Int(2),
			names:    []string{"x"},
		},
		{
			name:     "seeded environment",
			node:     bin(ast.Times, ref("n"), lit(3)),
			env:      NewEnv().Bind("n", Int(4)),
			expected: Int(12),
			names:    []string{"n"},
		},
		{
			name:     "var name is trimmed",
			node:     ref("  n "),
			env:      NewEnv().Bind("n", Bool(true)),
			expected: Bool(true),
			names:    []string{"n"},
		},
		{
			name:     "then branch",
			node:     ast.If{Cond: boolean(true), Then: lit(1), Else: ref("missing")},
			expected: Int(1),
		},
		{
			name:     "else branch",
			node:     ast.If{Cond: boolean(false), Then: ref("missing"), Else: lit(2)},
			expected: Int(2),
		},
		{
			name: "let in branch stays visible",
			node: seq(
				ast.If{Cond: boolean(true), Then: let("inner", lit(4)), Else: lit(0)},
				ref("inner"),
			),
			expected: Int(4),
			names:    []string{"inner"},
		},
		{
			name:     "nested sequence leaks bindings",
			node:     seq(seq(let("a", lit(1)), let("b", lit(2))), bin(ast.Plus, ref("a"), ref("b"))),
			expected: Int(3),
			names:    []string{"a", "b"},
		},
		{
			name:     "binding in condition is kept",
			node:     seq(ast.If{Cond: seq(let("c", lit(1)), boolean(true)), Then: ref("c"), Else: lit(0)}, ref("c")),
			expected: Int(1),
			names:    []string{"c"},
		},
		{
			name:     "operand side effects are dropped",
			node:     seq(bin(ast.Equal, let("a", lit(1)), let("b", lit(2)))),
			expected: Bool(true),
		},
		{
			name:     "let value side effects are dropped",
			node:     let("a", seq(let("b", lit(1)), ref("b"))),
			expected: Null(),
			names:    []string{"a"},
		},
		{
			name:     "null bound by let",
			node:     seq(let("a", let("b", lit(1))), bin(ast.NotEqual, ref("a"), ref("a"))),
			expected: Bool(false),
			names:    []string{"a"},
		},
	}

	for _, tt := range tests {
		for _, s := range strategies {
			t.Run(tt.name+"/"+s.String(), func(t *testing.T) {
				t.Parallel()
				before := tt.env.String()

				got, env, err := s.Evaluator()(tt.node, tt.env)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
				if tt.names == nil {
					assert.Empty(t, env.Names())
				} else {
					assert.Equal(t, tt.names, env.Names())
				}
				assert.Equal(t, before, tt.env.String(), "input env must not change")
			})
		}
	}
}

func TestEvaluate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		node  ast.Node
		check func(t *testing.T, e *Error)
	}{
		{
			name: "undeclared variable",
			node: ref(" x "),
			check: func(t *testing.T, e *Error) {
				assert.Equal(t, UndeclaredVariable, e.Kind)
				assert.Equal(t, "x", e.Text)
			},
		},
		{
			name: "mixed operands",
			node: bin(ast.Plus, lit(2), boolean(true)),
			check: func(t *testing.T, e *Error) {
				assert.Equal(t, ValueTypeMismatch, e.Kind)
				assert.Equal(t, Int(2), e.Left)
				assert.Equal(t, Bool(true), e.Right)
			},
		},
		{
			name: "and on ints",
			node: bin(ast.And, lit(1), lit(2)),
			check: func(t *testing.T, e *Error) {
				assert.Equal(t, OperatorTypeMismatch, e.Kind)
				assert.Equal(t, "Int", e.Text)
				assert.Equal(t, ast.And, e.Op)
			},
		},
		{
			name: "non bool condition",
			node: ast.If{Cond: lit(1), Then: lit(2), Else: lit(3)},
			check: func(t *testing.T, e *Error) {
				assert.Equal(t, UnexpectedValueKind, e.Kind)
				assert.Equal(t, Int(1), e.Left)
				assert.Equal(t, "Bool", e.Text)
			},
		},
		{
			name: "null condition",
			node: ast.If{Cond: let("x", lit(1)), Then: lit(2), Else: lit(3)},
			check: func(t *testing.T, e *Error) {
				assert.Equal(t, UnexpectedValueKind, e.Kind)
				assert.Equal(t, Null(), e.Left)
			},
		},
		{
			name: "error in left operand wins",
			node: bin(ast.Plus, ref("a"), ref("b")),
			check: func(t *testing.T, e *Error) {
				assert.Equal(t, "a", e.Text)
			},
		},
		{
			name: "right operand does not see left bindings",
			node: bin(ast.Plus, seq(let("a", lit(1)), ref("a")), ref("a")),
			check: func(t *testing.T, e *Error) {
				assert.Equal(t, UndeclaredVariable, e.Kind)
				assert.Equal(t, "a", e.Text)
			},
		},
		{
			name: "right operand does not see bindings from taken branch",
			node: bin(ast.Plus,
				ast.If{
					Cond: boolean(true),
					Then: seq(let("a", lit(1)), lit(2)),
					Else: lit(3),
				},
				ref("a"),
			),
			check: func(t *testing.T, e *Error) {
				assert.Equal(t, UndeclaredVariable, e.Kind)
				assert.Equal(t, "a", e.Text)
			},
		},
		{
			name: "error stops sequence",
			node: seq(let("x", bin(ast.Divide, lit(1), lit(0))), ref("never")),
			check: func(t *testing.T, e *Error) {
				assert.Equal(t, DivisionByZero, e.Kind)
				assert.Equal(t, Int(1), e.Left)
			},
		},
		{
			name: "error in taken branch",
			node: ast.If{Cond: boolean(false), Then: lit(1), Else: bin(ast.Or, lit(1), boolean(true))},
			check: func(t *testing.T, e *Error) {
				assert.Equal(t, ValueTypeMismatch, e.Kind)
			},
		},
	}

	for _, tt := range tests {
		for _, s := range strategies {
			t.Run(tt.name+"/"+s.String(), func(t *testing.T) {
				t.Parallel()
				_, _, err := s.Evaluator()(tt.node, NewEnv())
				var e *Error
				require.ErrorAs(t, err, &e)
				tt.check(t, e)
			})
		}
	}

	t.Run("nil node", func(t *testing.T) {
		t.Parallel()
		for _, s := range strategies {
			_, _, err := s.Evaluator()(nil, NewEnv())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unsupported node type")
		}
	})
}

func TestEvaluate_LiteralIdempotence(t *testing.T) {
	t.Parallel()

	env := NewEnv().Bind("x", Int(1))
	for _, n := range sampleInts {
		for _, s := range strategies {
			got, out, err := s.Evaluator()(lit(n), env)
			require.NoError(t, err)
			assert.Equal(t, Int(n), got)
			assert.Equal(t, env.Names(), out.Names())
		}
	}
	for _, b := range []bool{true, false} {
		got, _, err := Evaluate(boolean(b), env)
		require.NoError(t, err)
		assert.Equal(t, Bool(b), got)
	}
}

func TestEvaluateIterative_DeepNesting(t *testing.T) {
	t.Parallel()

	const depth = 200_000

	t.Run("left nested sum", func(t *testing.T) {
		node := lit(0)
		for range depth {
			node = bin(ast.Plus, node, lit(1))
		}
		got, _, err := EvaluateIterative(node, NewEnv())
		require.NoError(t, err)
		assert.Equal(t, Int(depth), got)
	})

	t.Run("right nested conditionals", func(t *testing.T) {
		node := ast.Node(let("done", boolean(true)))
		for i := range depth {
			node = ast.If{Cond: boolean(i%2 == 0), Then: seq(node), Else: seq(node)}
		}
		got, env, err := EvaluateIterative(seq(node, ref("done")), NewEnv())
		require.NoError(t, err)
		assert.Equal(t, Bool(true), got)
		assert.Equal(t, []string{"done"}, env.Names())
	})
}

// randomNode builds a program over a small set of variables, mixing kinds
// so that a share of the programs fail.
func randomNode(r *rand.Rand, depth int) ast.Node {
	names := []string{"a", "b", "c"}
	if depth <= 0 {
		switch r.IntN(4) {
		case 0:
			return lit(r.Int64N(21) - 10)
		case 1:
			return boolean(r.IntN(2) == 0)
		default:
			return ref(names[r.IntN(len(names))])
		}
	}
	switch r.IntN(5) {
	case 0:
		ops := ast.Operators()
		return bin(ops[r.IntN(len(ops))], randomNode(r, depth-1), randomNode(r, depth-1))
	case 1:
		return ast.If{
			Cond: randomNode(r, depth-1),
			Then: randomNode(r, depth-1),
			Else: randomNode(r, depth-1),
		}
	case 2:
		return let(names[r.IntN(len(names))], randomNode(r, depth-1))
	case 3:
		n := r.IntN(4)
		nodes := make([]ast.Node, n)
		for i := range nodes {
			nodes[i] = randomNode(r, depth-1)
		}
		return seq(nodes...)
	default:
		return randomNode(r, 0)
	}
}

func TestEvaluate_StrategiesAgree(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	seeded := NewEnv().Bind("a", Int(3)).Bind("b", Bool(true))

	for range 2000 {
		node := randomNode(r, 5)

		wantVal, wantEnv, wantErr := Evaluate(node, seeded)
		gotVal, gotEnv, gotErr := EvaluateIterative(node, seeded)

		if wantErr != nil {
			require.Error(t, gotErr, node.String())
			assert.Equal(t, wantErr.Error(), gotErr.Error(), node.String())
			continue
		}
		require.NoError(t, gotErr, node.String())
		assert.Equal(t, wantVal, gotVal, node.String())
		assert.Equal(t, wantEnv.String(), gotEnv.String(), node.String())
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("empty program", func(t *testing.T) {
		got, err := Run(nil)
		require.NoError(t, err)
		assert.Equal(t, Null(), got)

		got, err = RunIterative(nil)
		require.NoError(t, err)
		assert.Equal(t, Null(), got)
	})

	t.Run("last value wins", func(t *testing.T) {
		program := []ast.Node{let("x", lit(4)), let("y", lit(3)), bin(ast.Plus, ref("x"), ref("y"))}
		got, err := Run(program)
		require.NoError(t, err)
		assert.Equal(t, Int(7), got)

		got, err = RunIterative(program)
		require.NoError(t, err)
		assert.Equal(t, Int(7), got)
	})

	t.Run("continuation", func(t *testing.T) {
		_, env, err := RunWithEnv(Recursive, []ast.Node{let("x", lit(2))}, NewEnv())
		require.NoError(t, err)

		got, env, err := RunWithEnv(Iterative, []ast.Node{bin(ast.Times, ref("x"), lit(5))}, env)
		require.NoError(t, err)
		assert.Equal(t, Int(10), got)
		assert.Equal(t, []string{"x"}, env.Names())
	})

	t.Run("failure keeps initial env", func(t *testing.T) {
		start := NewEnv().Bind("keep", Int(1))
		program := []ast.Node{let("lost", lit(1)), ref("missing")}

		for _, s := range strategies {
			_, env, err := RunWithEnv(s, program, start)
			require.ErrorIs(t, err, UndeclaredVariable)
			assert.Equal(t, []string{"keep"}, env.Names())
		}
	})
}

func TestStrategy(t *testing.T) {
	t.Parallel()

	for _, s := range strategies {
		parsed, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	s, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, Recursive, s)

	_, err = ParseStrategy("parallel")
	require.Error(t, err)
	assert.Equal(t, "Strategy(7)", Strategy(7).String())
}
