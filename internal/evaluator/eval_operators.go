package evaluator

import (
	"fmt"
	"math"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/scope"
	"github.com/cwbudde/n/internal/token"
	"github.com/cwbudde/n/internal/values"
)

// evalBinary evaluates every non-comparison binary operator: the
// short-circuiting OR/AND combinators (which return whichever operand
// decided the result, not necessarily a bool — spec.md §4.2's `int, int
// -> int` table entries exist because of exactly this), and the
// arithmetic operators.
func (ev *Evaluator) evalBinary(b *ast.BinaryExpr, s *scope.Scope) (values.Value, error) {
	switch b.Op.Type {
	case token.OR:
		left, err := ev.EvalExpr(b.Left, s)
		if err != nil {
			return nil, err
		}
		if truthy(left) {
			return left, nil
		}
		return ev.EvalExpr(b.Right, s)
	case token.AND:
		left, err := ev.EvalExpr(b.Left, s)
		if err != nil {
			return nil, err
		}
		if !truthy(left) {
			return left, nil
		}
		return ev.EvalExpr(b.Right, s)
	default:
		left, err := ev.EvalExpr(b.Left, s)
		if err != nil {
			return nil, err
		}
		right, err := ev.EvalExpr(b.Right, s)
		if err != nil {
			return nil, err
		}
		return arithmetic(b.Op.Type, left, right)
	}
}

func arithmetic(op token.Type, left, right values.Value) (values.Value, error) {
	switch l := left.(type) {
	case values.IntValue:
		r, ok := right.(values.IntValue)
		if !ok {
			return nil, fmt.Errorf("I don't know how to use %s on a %s and %s", op, left.Type(), right.Type())
		}
		return intArithmetic(op, l, r)
	case values.FloatValue:
		r, ok := right.(values.FloatValue)
		if !ok {
			return nil, fmt.Errorf("I don't know how to use %s on a %s and %s", op, left.Type(), right.Type())
		}
		return floatArithmetic(op, l, r)
	case values.StrValue:
		r, ok := right.(values.StrValue)
		if !ok || op != token.ADD {
			return nil, fmt.Errorf("I don't know how to use %s on a %s and %s", op, left.Type(), right.Type())
		}
		return l + r, nil
	default:
		return nil, fmt.Errorf("I don't know how to use %s on a %s and %s", op, left.Type(), right.Type())
	}
}

func intArithmetic(op token.Type, l, r values.IntValue) (values.Value, error) {
	switch op {
	case token.ADD:
		return l + r, nil
	case token.SUBTRACT:
		return l - r, nil
	case token.MULTIPLY:
		return l * r, nil
	case token.DIVIDE:
		// Open Question resolution (spec.md §9): int/int truncates toward
		// zero and stays an int, matching Go's native integer division.
		if r == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return l / r, nil
	case token.ROUNDDIV:
		if r == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return floorDivInt(l, r), nil
	case token.MODULO:
		if r == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return floorModInt(l, r), nil
	case token.EXPONENT:
		return values.FloatValue(math.Pow(float64(l), float64(r))), nil
	default:
		return nil, fmt.Errorf("unexpected int operator %s", op)
	}
}

// floorDivInt and floorModInt implement Python's floor (round-towards
// negative-infinity) division and modulo for ROUNDDIV/MODULO, as
// distinct from DIVIDE's truncating-towards-zero Go-native semantics.
func floorDivInt(l, r values.IntValue) values.IntValue {
	q := l / r
	if (l%r != 0) && ((l < 0) != (r < 0)) {
		q--
	}
	return q
}

func floorModInt(l, r values.IntValue) values.IntValue {
	m := l % r
	if m != 0 && ((m < 0) != (r < 0)) {
		m += r
	}
	return m
}

func floatArithmetic(op token.Type, l, r values.FloatValue) (values.Value, error) {
	switch op {
	case token.ADD:
		return l + r, nil
	case token.SUBTRACT:
		return l - r, nil
	case token.MULTIPLY:
		return l * r, nil
	case token.DIVIDE:
		if r == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return l / r, nil
	case token.ROUNDDIV:
		if r == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return floorDivFloat(l, r), nil
	case token.MODULO:
		if r == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return floorModFloat(l, r), nil
	case token.EXPONENT:
		return values.FloatValue(math.Pow(float64(l), float64(r))), nil
	default:
		return nil, fmt.Errorf("unexpected float operator %s", op)
	}
}

// floorDivFloat and floorModFloat are floatArithmetic's counterparts to
// floorDivInt/floorModInt: ROUNDDIV/MODULO use floor (sign-of-divisor)
// semantics for floats too, matching Python's `//`/`%` rather than
// math.Mod's sign-of-dividend C semantics.
func floorDivFloat(l, r values.FloatValue) values.FloatValue {
	return values.FloatValue(math.Floor(float64(l) / float64(r)))
}

func floorModFloat(l, r values.FloatValue) values.FloatValue {
	m := values.FloatValue(math.Mod(float64(l), float64(r)))
	if m != 0 && (m < 0) != (r < 0) {
		m += r
	}
	return m
}

func evalUnaryValue(op token.Type, operand values.Value) (values.Value, error) {
	switch v := operand.(type) {
	case values.IntValue:
		switch op {
		case token.NEGATE:
			return -v, nil
		case token.NOT:
			// Type table quirk preserved from the original source
			// (spec.md §4.2): NOT on an int still yields an int, encoding
			// the negated truthiness as 0/1 rather than collapsing to bool.
			if v == 0 {
				return values.IntValue(1), nil
			}
			return values.IntValue(0), nil
		}
	case values.FloatValue:
		if op == token.NEGATE {
			return -v, nil
		}
	case values.BoolValue:
		if op == token.NOT {
			return !v, nil
		}
	}
	return nil, fmt.Errorf("I don't know how to use %s on a %s", op, operand.Type())
}

func (ev *Evaluator) evalUnary(u *ast.UnaryExpr, s *scope.Scope) (values.Value, error) {
	operand, err := ev.EvalExpr(u.Operand, s)
	if err != nil {
		return nil, err
	}
	return evalUnaryValue(u.Op.Type, operand)
}
