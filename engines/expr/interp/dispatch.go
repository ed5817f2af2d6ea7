package interp

import "github.com/robbyt/go-exprscript/engines/expr/ast"

// ApplyOperator computes op applied to two already evaluated operands.
//
// Operands of different kinds fail with ValueTypeMismatch before the operator
// is looked at. Int operands accept arithmetic and comparisons, Bool operands
// accept And, Or, Equal and NotEqual, Null operands accept Equal and
// NotEqual. Any other combination fails with OperatorTypeMismatch. Integer
// arithmetic wraps on overflow and Divide truncates toward zero.
func ApplyOperator(op ast.Operator, left, right Value) (Value, error) {
	if left.kind != right.kind {
		return Value{}, NewValueTypeMismatch(left, right)
	}

	switch left.kind {
	case KindInt:
		return applyInt(op, left, right)
	case KindBool:
		return applyBool(op, left, right)
	default:
		return applyNull(op, left, right)
	}
}

func applyInt(op ast.Operator, left, right Value) (Value, error) {
	a, b := left.i, right.i
	switch op {
	case ast.Plus:
		return Int(a + b), nil
	case ast.Minus:
		return Int(a - b), nil
	case ast.Times:
		return Int(a * b), nil
	case ast.Divide:
		if b == 0 {
			return Value{}, NewDivisionByZero(left)
		}
		return Int(a / b), nil
	case ast.GreaterThan:
		return Bool(a > b), nil
	case ast.GreaterOrEqual:
		return Bool(a >= b), nil
	case ast.LessThan:
		return Bool(a < b), nil
	case ast.LessOrEqual:
		return Bool(a <= b), nil
	case ast.Equal:
		return Bool(a == b), nil
	case ast.NotEqual:
		return Bool(a != b), nil
	default:
		return Value{}, NewOperatorTypeMismatch(KindInt.String(), op)
	}
}

func applyBool(op ast.Operator, left, right Value) (Value, error) {
	a, b := left.b, right.b
	switch op {
	case ast.And:
		return Bool(a && b), nil
	case ast.Or:
		return Bool(a || b), nil
	case ast.Equal:
		return Bool(a == b), nil
	case ast.NotEqual:
		return Bool(a != b), nil
	default:
		return Value{}, NewOperatorTypeMismatch(KindBool.String(), op)
	}
}

func applyNull(op ast.Operator, left, right Value) (Value, error) {
	switch op {
	case ast.Equal:
		return Bool(left.Equal(right)), nil
	case ast.NotEqual:
		return Bool(!left.Equal(right)), nil
	default:
		return Value{}, NewOperatorTypeMismatch(left.kind.String(), op)
	}
}
